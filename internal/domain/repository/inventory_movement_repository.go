package repository

import (
	"context"

	"github.com/jhoicas/boutique-api/internal/domain/entity"
)

// MaxMovementRows tope del listado de movimientos (sin cursor de paginación).
const MaxMovementRows = 200

// MovementFilter filtros del listado de movimientos. Limit fuera de (0, MaxMovementRows] se lleva al tope.
type MovementFilter struct {
	ProductID *int64
	VariantID *int64
	Tipo      *entity.MovementType
	Ascending bool
	Limit     int
}

// InventoryMovementRepository define el puerto de persistencia del kardex.
type InventoryMovementRepository interface {
	Create(ctx context.Context, movement *entity.InventoryMovement) error
	// GetForUpdate devuelve nil, nil si no existe.
	GetForUpdate(ctx context.Context, id int64) (*entity.InventoryMovement, error)
	GetDetail(ctx context.Context, id int64) (*entity.MovementDetail, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter MovementFilter) ([]*entity.MovementDetail, error)
}
