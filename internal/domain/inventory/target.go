// Package inventory contiene las reglas puras del kardex: a qué contador afecta
// un movimiento y cómo cambia ese contador.
package inventory

import "fmt"

// Target identifica el contador de stock que afecta un movimiento:
// el del producto (sin variantes) o el de una variante concreta.
type Target interface {
	Product() int64
	isTarget()
}

// ProductTarget stock propio del producto.
type ProductTarget struct {
	ProductID int64
}

// VariantTarget stock de una variante que pertenece a ProductID.
type VariantTarget struct {
	ProductID int64
	VariantID int64
}

func (t ProductTarget) Product() int64 { return t.ProductID }
func (t VariantTarget) Product() int64 { return t.ProductID }
func (ProductTarget) isTarget()        {}
func (VariantTarget) isTarget()        {}

func (t ProductTarget) String() string { return fmt.Sprintf("producto #%d", t.ProductID) }
func (t VariantTarget) String() string {
	return fmt.Sprintf("variante #%d (producto #%d)", t.VariantID, t.ProductID)
}

// NewTarget resuelve el destino una sola vez a partir de los ids recibidos.
func NewTarget(productID int64, variantID *int64) Target {
	if variantID != nil {
		return VariantTarget{ProductID: productID, VariantID: *variantID}
	}
	return ProductTarget{ProductID: productID}
}

// VariantID devuelve el id de variante del destino o nil.
func VariantID(t Target) *int64 {
	if v, ok := t.(VariantTarget); ok {
		id := v.VariantID
		return &id
	}
	return nil
}

// StockHolder contador bloqueado dentro de una transacción.
type StockHolder struct {
	Target Target
	stock  int
}

// NewStockHolder envuelve el valor leído de la fila bloqueada.
func NewStockHolder(t Target, stock int) *StockHolder {
	return &StockHolder{Target: t, stock: stock}
}

func (h *StockHolder) Stock() int     { return h.stock }
func (h *StockHolder) SetStock(n int) { h.stock = n }
