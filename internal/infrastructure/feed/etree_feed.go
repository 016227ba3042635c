// Package feed genera el feed XML de productos (RSS 2.0 con el espacio de nombres g:
// de Google Merchant) que consumen catálogos de redes sociales y comparadores.
package feed

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/boutique-api/internal/application/ports"
)

// NamespaceGoogle espacio de nombres de los atributos de producto.
const NamespaceGoogle = "http://base.google.com/ns/1.0"

// maxAdditionalImages tope de g:additional_image_link por ítem.
const maxAdditionalImages = 10

// EtreeFeedBuilder implementa ports.ProductFeedBuilder con beevik/etree.
type EtreeFeedBuilder struct{}

func NewEtreeFeedBuilder() *EtreeFeedBuilder {
	return &EtreeFeedBuilder{}
}

var _ ports.ProductFeedBuilder = (*EtreeFeedBuilder)(nil)

// BuildProductFeed serializa el canal y sus ítems con sangría de dos espacios.
func (b *EtreeFeedBuilder) BuildProductFeed(ctx context.Context, ch ports.FeedChannel, items []ports.FeedItem) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	rss := doc.CreateElement("rss")
	rss.CreateAttr("version", "2.0")
	rss.CreateAttr("xmlns:g", NamespaceGoogle)

	channel := rss.CreateElement("channel")
	channel.CreateElement("title").SetText(ch.Title)
	channel.CreateElement("link").SetText(ch.Link)
	channel.CreateElement("description").SetText(ch.Description)
	if !ch.GeneratedAt.IsZero() {
		channel.CreateElement("lastBuildDate").SetText(ch.GeneratedAt.UTC().Format("Mon, 02 Jan 2006 15:04:05 GMT"))
	}

	for i, it := range items {
		if i%200 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		item := channel.CreateElement("item")
		g(item, "id").SetText(strconv.FormatInt(it.ID, 10))
		g(item, "title").SetText(it.Title)
		g(item, "description").SetText(it.Description)
		g(item, "link").SetText(it.Link)
		for j, img := range it.ImageLinks {
			switch {
			case j == 0:
				g(item, "image_link").SetText(img)
			case j <= maxAdditionalImages:
				g(item, "additional_image_link").SetText(img)
			}
		}
		g(item, "availability").SetText(availability(it.Availability))
		g(item, "condition").SetText("new")
		g(item, "price").SetText(money(it.Price, ch.Currency))
		if it.SalePrice != nil {
			g(item, "sale_price").SetText(money(*it.SalePrice, ch.Currency))
		}
		if it.Category != "" {
			g(item, "product_type").SetText(it.Category)
		}
	}

	doc.Indent(2)
	var out bytes.Buffer
	if _, err := doc.WriteTo(&out); err != nil {
		return nil, fmt.Errorf("feed: serializar XML: %w", err)
	}
	return out.Bytes(), nil
}

func g(parent *etree.Element, tag string) *etree.Element {
	el := parent.CreateElement(tag)
	el.Space = "g"
	return el
}

func availability(ok bool) string {
	if ok {
		return "in_stock"
	}
	return "out_of_stock"
}

func money(d decimal.Decimal, currency string) string {
	return d.StringFixed(2) + " " + currency
}
