package feed_test

import (
	"context"
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/boutique-api/internal/application/ports"
	"github.com/jhoicas/boutique-api/internal/infrastructure/feed"
)

func TestBuildProductFeed(t *testing.T) {
	oferta := decimal.RequireFromString("89.9")
	out, err := feed.NewEtreeFeedBuilder().BuildProductFeed(context.Background(), ports.FeedChannel{
		Title:       "Boutique",
		Link:        "https://boutique.pe",
		Currency:    "PEN",
		GeneratedAt: time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC),
	}, []ports.FeedItem{
		{
			ID:           7,
			Title:        "Vestido <Floral> & lino",
			Link:         "https://boutique.pe/productos/vestido",
			ImageLinks:   []string{"https://cdn/a.jpg", "https://cdn/b.jpg"},
			Price:        decimal.NewFromInt(120),
			SalePrice:    &oferta,
			Availability: true,
			Category:     "Vestidos",
		},
		{ID: 8, Title: "Cartera", Price: decimal.NewFromInt(80)},
	})
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))
	assert.Equal(t, feed.NamespaceGoogle, doc.Root().SelectAttrValue("xmlns:g", ""))

	items := doc.FindElements("//item")
	require.Len(t, items, 2)
	assert.Equal(t, "Vestido <Floral> & lino", items[0].FindElement("g:title").Text())
	assert.Equal(t, "120.00 PEN", items[0].FindElement("g:price").Text())
	assert.Equal(t, "89.90 PEN", items[0].FindElement("g:sale_price").Text())
	assert.Len(t, items[0].FindElements("g:additional_image_link"), 1)
	assert.Equal(t, "in_stock", items[0].FindElement("g:availability").Text())
	assert.Equal(t, "out_of_stock", items[1].FindElement("g:availability").Text())
	assert.Nil(t, items[1].FindElement("g:sale_price"))
	assert.Equal(t, "Mon, 10 Mar 2025 12:00:00 GMT", doc.FindElement("//lastBuildDate").Text())
}
