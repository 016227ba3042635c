package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product producto del catálogo. Stock solo se usa cuando el producto no tiene variantes
// y únicamente cambia a través de movimientos de inventario.
type Product struct {
	ID           int64
	CategoryID   *int64
	Nombre       string
	Slug         string
	Descripcion  string
	Precio       decimal.Decimal
	PrecioOferta *decimal.Decimal
	Imagenes     []string
	Stock        int
	Activo       bool
	Destacado    bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PrecioVigente devuelve el precio de oferta si existe y es menor al regular.
func (p *Product) PrecioVigente() decimal.Decimal {
	if p.PrecioOferta != nil && p.PrecioOferta.GreaterThan(decimal.Zero) && p.PrecioOferta.LessThan(p.Precio) {
		return *p.PrecioOferta
	}
	return p.Precio
}

// ProductVariant combinación color/talla de un producto con su propio stock.
// Precio, Imagen y SKU, si existen, reemplazan a los del producto padre.
type ProductVariant struct {
	ID        int64
	ProductID int64
	ColorID   *int64
	SizeID    *int64
	SKU       *string
	Precio    *decimal.Decimal
	Imagen    *string
	Stock     int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PrecioFinal precio de la variante o, si no tiene, el vigente del producto.
func (v *ProductVariant) PrecioFinal(p *Product) decimal.Decimal {
	if v.Precio != nil {
		return *v.Precio
	}
	return p.PrecioVigente()
}
