package repository

import (
	"context"
	"time"

	"github.com/jhoicas/boutique-api/internal/domain/entity"
)

// SupplierRepository define el puerto de persistencia para proveedores.
type SupplierRepository interface {
	Create(ctx context.Context, supplier *entity.Supplier) error
	GetByID(ctx context.Context, id int64) (*entity.Supplier, error)
	Update(ctx context.Context, supplier *entity.Supplier) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, search string) ([]*entity.Supplier, error)
}

// PurchaseFilter filtros del listado de compras.
type PurchaseFilter struct {
	SupplierID *int64
	Estado     string
	From, To   *time.Time
	Limit      int
	Offset     int
}

// PurchaseRepository define el puerto de persistencia para compras y sus pagos.
type PurchaseRepository interface {
	// Create inserta cabecera y detalles; asigna IDs.
	Create(ctx context.Context, purchase *entity.Purchase) error
	// GetByID devuelve la compra con detalles o nil, nil.
	GetByID(ctx context.Context, id int64) (*entity.Purchase, error)
	// GetForUpdate bloquea la cabecera (SELECT FOR UPDATE) y carga los detalles.
	GetForUpdate(ctx context.Context, id int64) (*entity.Purchase, error)
	SetEstado(ctx context.Context, id int64, estado string) error
	List(ctx context.Context, filter PurchaseFilter) ([]*entity.Purchase, error)
	AddPayment(ctx context.Context, payment *entity.SupplierPayment) error
	ListPayments(ctx context.Context, purchaseID int64) ([]*entity.SupplierPayment, error)
}

// ReturnRepository define el puerto de persistencia para devoluciones a proveedor.
type ReturnRepository interface {
	Create(ctx context.Context, ret *entity.SupplierReturn) error
	GetByID(ctx context.Context, id int64) (*entity.SupplierReturn, error)
	List(ctx context.Context, supplierID *int64, limit, offset int) ([]*entity.SupplierReturn, error)
}
