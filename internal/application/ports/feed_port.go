package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// FeedChannel cabecera del feed de productos.
type FeedChannel struct {
	Title       string
	Link        string
	Description string
	Currency    string
	GeneratedAt time.Time
}

// FeedItem producto publicado en el feed.
type FeedItem struct {
	ID           int64
	Title        string
	Description  string
	Link         string
	ImageLinks   []string
	Price        decimal.Decimal
	SalePrice    *decimal.Decimal
	Category     string
	Availability bool
}

// ProductFeedBuilder define el puerto de salida para serializar el feed XML.
type ProductFeedBuilder interface {
	BuildProductFeed(ctx context.Context, channel FeedChannel, items []FeedItem) ([]byte, error)
}
