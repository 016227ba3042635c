package dto

import "time"

// CreateMovementRequest body para POST /api/movements.
// Los punteros distinguen "ausente" de cero; la validación de rango la hace el caso de uso.
type CreateMovementRequest struct {
	IDProducto *int64  `json:"idProducto"`
	IDVariante *int64  `json:"idVariante,omitempty"`
	Tipo       string  `json:"tipo"`
	Cantidad   *int    `json:"cantidad"`
	Referencia *string `json:"referencia,omitempty"`
	Nota       *string `json:"nota,omitempty"`
}

// MovementListQuery filtros de GET /api/movements.
type MovementListQuery struct {
	Producto string `query:"producto"`
	Variante string `query:"variante"`
	Tipo     string `query:"tipo"`
	Dir      string `query:"dir"`
}

// MovementResponse movimiento con los nombres de producto, variante y usuario.
type MovementResponse struct {
	ID            int64     `json:"id"`
	IDProducto    int64     `json:"idProducto"`
	IDVariante    *int64    `json:"idVariante"`
	Tipo          string    `json:"tipo"`
	Cantidad      int       `json:"cantidad"`
	StockAnterior int       `json:"stockAnterior"`
	StockNuevo    int       `json:"stockNuevo"`
	Referencia    *string   `json:"referencia"`
	Nota          *string   `json:"nota"`
	IDUsuario     *int64    `json:"idUsuario"`
	CreatedAt     time.Time `json:"createdAt"`
	Producto      string    `json:"producto"`
	VarianteSKU   *string   `json:"varianteSku"`
	Color         *string   `json:"color"`
	Talla         *string   `json:"talla"`
	Usuario       *string   `json:"usuario"`
}
