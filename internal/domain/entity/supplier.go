package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Supplier proveedor de mercadería.
type Supplier struct {
	ID        int64
	Nombre    string
	RUC       string
	Contacto  string
	Telefono  string
	Email     string
	Direccion string
	Activo    bool
	CreatedAt time.Time
}

// Estados de compra.
const (
	PurchaseRegistrada = "registrada"
	PurchaseAnulada    = "anulada"
)

// Purchase compra a proveedor. Cada detalle genera un ingreso en el kardex.
type Purchase struct {
	ID              int64
	SupplierID      int64
	SupplierNombre  string
	Fecha           time.Time
	NumeroDocumento string
	Estado          string
	Total           decimal.Decimal
	Pagado          decimal.Decimal
	Nota            string
	UserID          *int64
	Detalles        []PurchaseDetail
	CreatedAt       time.Time
}

// Saldo monto pendiente de pago.
func (p *Purchase) Saldo() decimal.Decimal {
	return p.Total.Sub(p.Pagado)
}

// PurchaseDetail línea de compra.
type PurchaseDetail struct {
	ID            int64
	PurchaseID    int64
	ProductID     int64
	VariantID     *int64
	Cantidad      int
	CostoUnitario decimal.Decimal
}

// Subtotal cantidad * costo unitario.
func (d PurchaseDetail) Subtotal() decimal.Decimal {
	return d.CostoUnitario.Mul(decimal.NewFromInt(int64(d.Cantidad)))
}

// SupplierReturn devolución de mercadería al proveedor (egresos en el kardex).
type SupplierReturn struct {
	ID         int64
	SupplierID int64
	PurchaseID *int64
	Motivo     string
	UserID     *int64
	Detalles   []ReturnDetail
	CreatedAt  time.Time
}

// ReturnDetail línea de devolución.
type ReturnDetail struct {
	ID        int64
	ReturnID  int64
	ProductID int64
	VariantID *int64
	Cantidad  int
}

// SupplierPayment pago aplicado a una compra.
type SupplierPayment struct {
	ID         int64
	PurchaseID int64
	Monto      decimal.Decimal
	Metodo     string
	Fecha      time.Time
	Nota       string
	CreatedAt  time.Time
}
