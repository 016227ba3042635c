package dto

import "github.com/shopspring/decimal"

// PublicProductResponse producto visto desde la tienda (sin datos internos).
type PublicProductResponse struct {
	ID            int64                   `json:"id"`
	Nombre        string                  `json:"nombre"`
	Slug          string                  `json:"slug"`
	Descripcion   string                  `json:"descripcion"`
	Categoria     *CategoryResponse       `json:"categoria,omitempty"`
	Precio        decimal.Decimal         `json:"precio"`
	PrecioOferta  *decimal.Decimal        `json:"precioOferta"`
	PrecioVigente decimal.Decimal         `json:"precioVigente"`
	Imagenes      []string                `json:"imagenes"`
	Destacado     bool                    `json:"destacado"`
	Disponible    bool                    `json:"disponible"`
	Variantes     []PublicVariantResponse `json:"variantes,omitempty"`
	Colores       []ColorResponse         `json:"colores,omitempty"`
	Tallas        []SizeResponse          `json:"tallas,omitempty"`
}

// PublicVariantResponse variante visible en la tienda.
type PublicVariantResponse struct {
	ID         int64           `json:"id"`
	IDColor    *int64          `json:"idColor"`
	IDTalla    *int64          `json:"idTalla"`
	SKU        *string         `json:"sku"`
	Precio     decimal.Decimal `json:"precio"`
	Imagen     *string         `json:"imagen"`
	Disponible bool            `json:"disponible"`
	Stock      int             `json:"stock"`
}

// PublicProductListResponse página de productos de la tienda.
type PublicProductListResponse struct {
	Items []PublicProductResponse `json:"items"`
	Page  PageResponse            `json:"page"`
}

// CartLineRequest línea del carrito o de la lista de deseos.
type CartLineRequest struct {
	IDProducto int64  `json:"idProducto" validate:"required,gt=0"`
	IDVariante *int64 `json:"idVariante" validate:"omitempty,gt=0"`
	Cantidad   int    `json:"cantidad" validate:"required,gt=0,max=99"`
}

// CartValidateRequest body de POST /api/public/cart/validate.
type CartValidateRequest struct {
	Items []CartLineRequest `json:"items" validate:"required,min=1,max=50,dive"`
}

// CartLineResponse resultado por línea. Motivo explica por qué no está disponible.
type CartLineResponse struct {
	IDProducto     int64           `json:"idProducto"`
	IDVariante     *int64          `json:"idVariante"`
	Nombre         string          `json:"nombre"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	StockActual    int             `json:"stockActual"`
	Disponible     bool            `json:"disponible"`
	Motivo         string          `json:"motivo,omitempty"`
}

// CartValidateResponse totales del carrito validado.
type CartValidateResponse struct {
	Items    []CartLineResponse `json:"items"`
	Total    decimal.Decimal    `json:"total"`
	Moneda   string             `json:"moneda"`
	Valido   bool               `json:"valido"`
	Unidades int                `json:"unidades"`
}
