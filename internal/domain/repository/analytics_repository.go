package repository

import (
	"context"
	"time"

	"github.com/jhoicas/boutique-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// LowStockItem producto o variante con stock bajo el umbral.
type LowStockItem struct {
	ProductID int64
	VariantID *int64
	Nombre    string
	Detalle   string // "Rojo / M" para variantes
	Stock     int
}

// AnalyticsRepository consultas read-only del dashboard.
type AnalyticsRepository interface {
	MovementCountsSince(ctx context.Context, since time.Time) (map[entity.MovementType]int, error)
	LowStock(ctx context.Context, threshold, limit int) ([]LowStockItem, error)
	OutstandingPurchases(ctx context.Context) (decimal.Decimal, error)
	UnreadMessages(ctx context.Context) (int, error)
}
