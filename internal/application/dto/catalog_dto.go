package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryRequest alta/edición de categoría.
type CategoryRequest struct {
	Nombre      string `json:"nombre" validate:"required,min=1,max=120"`
	Descripcion string `json:"descripcion" validate:"max=2000"`
	Activo      *bool  `json:"activo"`
}

// CategoryResponse salida de categoría.
type CategoryResponse struct {
	ID          int64     `json:"id"`
	Nombre      string    `json:"nombre"`
	Slug        string    `json:"slug"`
	Descripcion string    `json:"descripcion"`
	Activo      bool      `json:"activo"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ColorRequest alta/edición de color.
type ColorRequest struct {
	Nombre string `json:"nombre" validate:"required,min=1,max=60"`
	Hex    string `json:"hex" validate:"omitempty,hexcolor"`
}

// ColorResponse salida de color.
type ColorResponse struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
	Hex    string `json:"hex"`
}

// SizeRequest alta/edición de talla.
type SizeRequest struct {
	Nombre string `json:"nombre" validate:"required,min=1,max=20"`
	Orden  int    `json:"orden"`
}

// SizeResponse salida de talla.
type SizeResponse struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
	Orden  int    `json:"orden"`
}

// CreateProductRequest alta de producto. StockInicial > 0 genera un ingreso en el kardex.
type CreateProductRequest struct {
	IDCategoria  *int64           `json:"idCategoria" validate:"omitempty,gt=0"`
	Nombre       string           `json:"nombre" validate:"required,min=1,max=200"`
	Descripcion  string           `json:"descripcion"`
	Precio       decimal.Decimal  `json:"precio"`
	PrecioOferta *decimal.Decimal `json:"precioOferta"`
	Imagenes     []string         `json:"imagenes" validate:"omitempty,max=12,dive,url"`
	Activo       *bool            `json:"activo"`
	Destacado    bool             `json:"destacado"`
	StockInicial int              `json:"stockInicial" validate:"min=0,max=2147483647"`
}

// UpdateProductRequest edición parcial de producto (sin stock).
type UpdateProductRequest struct {
	IDCategoria  *int64           `json:"idCategoria" validate:"omitempty,gt=0"`
	Nombre       *string          `json:"nombre" validate:"omitempty,min=1,max=200"`
	Descripcion  *string          `json:"descripcion"`
	Precio       *decimal.Decimal `json:"precio"`
	PrecioOferta *decimal.Decimal `json:"precioOferta"`
	QuitarOferta bool             `json:"quitarOferta"`
	Imagenes     []string         `json:"imagenes" validate:"omitempty,max=12,dive,url"`
	Activo       *bool            `json:"activo"`
	Destacado    *bool            `json:"destacado"`
}

// ProductListQuery filtros del listado de productos (admin y tienda).
type ProductListQuery struct {
	Categoria string `query:"categoria"`
	Color     int64  `query:"color"`
	Talla     int64  `query:"talla"`
	Min       string `query:"min"`
	Max       string `query:"max"`
	Q         string `query:"q"`
	Orden     string `query:"orden" validate:"omitempty,oneof=recientes precio_asc precio_desc nombre"`
	Destacado bool   `query:"destacado"`
	Limit     int    `query:"limit" validate:"omitempty,min=1,max=100"`
	Offset    int    `query:"offset" validate:"omitempty,min=0"`
}

// ProductResponse salida de producto.
type ProductResponse struct {
	ID            int64             `json:"id"`
	IDCategoria   *int64            `json:"idCategoria"`
	Nombre        string            `json:"nombre"`
	Slug          string            `json:"slug"`
	Descripcion   string            `json:"descripcion"`
	Precio        decimal.Decimal   `json:"precio"`
	PrecioOferta  *decimal.Decimal  `json:"precioOferta"`
	PrecioVigente decimal.Decimal   `json:"precioVigente"`
	Imagenes      []string          `json:"imagenes"`
	Stock         int               `json:"stock"`
	Activo        bool              `json:"activo"`
	Destacado     bool              `json:"destacado"`
	Variantes     []VariantResponse `json:"variantes,omitempty"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// CreateVariantRequest alta de variante.
type CreateVariantRequest struct {
	IDColor      *int64           `json:"idColor" validate:"omitempty,gt=0"`
	IDTalla      *int64           `json:"idTalla" validate:"omitempty,gt=0"`
	SKU          *string          `json:"sku" validate:"omitempty,min=1,max=80"`
	Precio       *decimal.Decimal `json:"precio"`
	Imagen       *string          `json:"imagen" validate:"omitempty,url"`
	StockInicial int              `json:"stockInicial" validate:"min=0,max=2147483647"`
}

// UpdateVariantRequest edición de variante (sin stock).
type UpdateVariantRequest struct {
	IDColor *int64           `json:"idColor" validate:"omitempty,gt=0"`
	IDTalla *int64           `json:"idTalla" validate:"omitempty,gt=0"`
	SKU     *string          `json:"sku" validate:"omitempty,min=1,max=80"`
	Precio  *decimal.Decimal `json:"precio"`
	Imagen  *string          `json:"imagen" validate:"omitempty,url"`
}

// VariantResponse salida de variante.
type VariantResponse struct {
	ID         int64            `json:"id"`
	IDProducto int64            `json:"idProducto"`
	IDColor    *int64           `json:"idColor"`
	IDTalla    *int64           `json:"idTalla"`
	SKU        *string          `json:"sku"`
	Precio     *decimal.Decimal `json:"precio"`
	Imagen     *string          `json:"imagen"`
	Stock      int              `json:"stock"`
}
