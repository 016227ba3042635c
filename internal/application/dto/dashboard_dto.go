package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
type DashboardSummaryDTO struct {
	// Movimientos registrados hoy (desde 00:00 hora del servidor) por tipo.
	MovimientosHoy map[string]int `json:"movimientosHoy"`

	StockBajo        []LowStockDTO   `json:"stockBajo"`
	UmbralStockBajo  int             `json:"umbralStockBajo"`
	SaldoProveedores decimal.Decimal `json:"saldoProveedores"` // compras registradas pendientes de pago
	MensajesNoLeidos int             `json:"mensajesNoLeidos"`

	DateLabel string `json:"dateLabel"` // ej: "19/10/2026"
}

// LowStockDTO producto o variante bajo el umbral.
type LowStockDTO struct {
	IDProducto int64  `json:"idProducto"`
	IDVariante *int64 `json:"idVariante"`
	Nombre     string `json:"nombre"`
	Detalle    string `json:"detalle,omitempty"`
	Stock      int    `json:"stock"`
}
