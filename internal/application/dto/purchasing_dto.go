package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SupplierRequest alta/edición de proveedor.
type SupplierRequest struct {
	Nombre    string `json:"nombre" validate:"required,min=1,max=200"`
	RUC       string `json:"ruc" validate:"omitempty,numeric,len=11"`
	Contacto  string `json:"contacto" validate:"max=150"`
	Telefono  string `json:"telefono" validate:"max=40"`
	Email     string `json:"email" validate:"omitempty,email"`
	Direccion string `json:"direccion"`
	Activo    *bool  `json:"activo"`
}

// SupplierResponse salida de proveedor.
type SupplierResponse struct {
	ID        int64     `json:"id"`
	Nombre    string    `json:"nombre"`
	RUC       string    `json:"ruc"`
	Contacto  string    `json:"contacto"`
	Telefono  string    `json:"telefono"`
	Email     string    `json:"email"`
	Direccion string    `json:"direccion"`
	Activo    bool      `json:"activo"`
	CreatedAt time.Time `json:"createdAt"`
}

// PurchaseLineRequest línea de compra o devolución.
type PurchaseLineRequest struct {
	IDProducto    int64           `json:"idProducto" validate:"required,gt=0"`
	IDVariante    *int64          `json:"idVariante" validate:"omitempty,gt=0"`
	Cantidad      int             `json:"cantidad" validate:"required,gt=0"`
	CostoUnitario decimal.Decimal `json:"costoUnitario"`
}

// CreatePurchaseRequest body de POST /api/purchases. Fecha en formato 2006-01-02.
type CreatePurchaseRequest struct {
	IDProveedor     int64                 `json:"idProveedor" validate:"required,gt=0"`
	Fecha           string                `json:"fecha" validate:"required,datetime=2006-01-02"`
	NumeroDocumento string                `json:"numeroDocumento" validate:"max=60"`
	Nota            string                `json:"nota"`
	Detalles        []PurchaseLineRequest `json:"detalles" validate:"required,min=1,dive"`
}

// PurchaseListQuery filtros del listado de compras.
type PurchaseListQuery struct {
	Proveedor int64  `query:"proveedor"`
	Estado    string `query:"estado" validate:"omitempty,oneof=registrada anulada"`
	Desde     string `query:"desde" validate:"omitempty,datetime=2006-01-02"`
	Hasta     string `query:"hasta" validate:"omitempty,datetime=2006-01-02"`
	Limit     int    `query:"limit" validate:"omitempty,min=1,max=200"`
	Offset    int    `query:"offset" validate:"omitempty,min=0"`
}

// PurchaseDetailResponse línea de compra.
type PurchaseDetailResponse struct {
	ID            int64           `json:"id"`
	IDProducto    int64           `json:"idProducto"`
	IDVariante    *int64          `json:"idVariante"`
	Cantidad      int             `json:"cantidad"`
	CostoUnitario decimal.Decimal `json:"costoUnitario"`
	Subtotal      decimal.Decimal `json:"subtotal"`
}

// PurchaseResponse compra con saldo y, en el detalle, sus líneas y pagos.
type PurchaseResponse struct {
	ID              int64                    `json:"id"`
	IDProveedor     int64                    `json:"idProveedor"`
	Proveedor       string                   `json:"proveedor"`
	Fecha           string                   `json:"fecha"`
	NumeroDocumento string                   `json:"numeroDocumento"`
	Estado          string                   `json:"estado"`
	Total           decimal.Decimal          `json:"total"`
	Pagado          decimal.Decimal          `json:"pagado"`
	Saldo           decimal.Decimal          `json:"saldo"`
	Nota            string                   `json:"nota"`
	Detalles        []PurchaseDetailResponse `json:"detalles,omitempty"`
	Pagos           []PaymentResponse        `json:"pagos,omitempty"`
	CreatedAt       time.Time                `json:"createdAt"`
}

// PaymentRequest body de POST /api/purchases/:id/payments.
type PaymentRequest struct {
	Monto  decimal.Decimal `json:"monto"`
	Metodo string          `json:"metodo" validate:"omitempty,oneof=efectivo transferencia tarjeta yape plin"`
	Fecha  string          `json:"fecha" validate:"omitempty,datetime=2006-01-02"`
	Nota   string          `json:"nota"`
}

// PaymentResponse pago registrado.
type PaymentResponse struct {
	ID        int64           `json:"id"`
	IDCompra  int64           `json:"idCompra"`
	Monto     decimal.Decimal `json:"monto"`
	Metodo    string          `json:"metodo"`
	Fecha     string          `json:"fecha"`
	Nota      string          `json:"nota"`
	CreatedAt time.Time       `json:"createdAt"`
}

// ReturnLineRequest línea de devolución.
type ReturnLineRequest struct {
	IDProducto int64  `json:"idProducto" validate:"required,gt=0"`
	IDVariante *int64 `json:"idVariante" validate:"omitempty,gt=0"`
	Cantidad   int    `json:"cantidad" validate:"required,gt=0"`
}

// CreateReturnRequest body de POST /api/returns.
type CreateReturnRequest struct {
	IDProveedor int64               `json:"idProveedor" validate:"required,gt=0"`
	IDCompra    *int64              `json:"idCompra" validate:"omitempty,gt=0"`
	Motivo      string              `json:"motivo" validate:"max=2000"`
	Detalles    []ReturnLineRequest `json:"detalles" validate:"required,min=1,dive"`
}

// ReturnResponse devolución a proveedor.
type ReturnResponse struct {
	ID          int64               `json:"id"`
	IDProveedor int64               `json:"idProveedor"`
	IDCompra    *int64              `json:"idCompra"`
	Motivo      string              `json:"motivo"`
	Detalles    []ReturnLineRequest `json:"detalles,omitempty"`
	CreatedAt   time.Time           `json:"createdAt"`
}
