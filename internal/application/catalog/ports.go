package catalog

import (
	"context"

	appinventory "github.com/jhoicas/boutique-api/internal/application/inventory"
	"github.com/jhoicas/boutique-api/internal/domain/entity"
	"github.com/jhoicas/boutique-api/internal/domain/repository"
)

// TxRunner transacción con repositorios de catálogo y del kardex atados a la misma tx.
type TxRunner interface {
	RunCatalog(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		variantRepo repository.VariantRepository,
		movRepo repository.InventoryMovementRepository,
		stockRepo repository.StockRepository,
	) error) error
}

// StockRecorder aplica un movimiento dentro de una transacción ajena (lo implementa inventory.MovementUseCase).
type StockRecorder interface {
	ApplyInTx(
		ctx context.Context,
		movRepo repository.InventoryMovementRepository,
		stockRepo repository.StockRepository,
		in appinventory.MovementInput,
	) (*entity.InventoryMovement, error)
}
