package purchasing

import (
	"context"

	appinventory "github.com/jhoicas/boutique-api/internal/application/inventory"
	"github.com/jhoicas/boutique-api/internal/domain/entity"
	"github.com/jhoicas/boutique-api/internal/domain/repository"
)

// TxRunner transacción con repositorios de compras y del kardex atados a la misma tx.
type TxRunner interface {
	RunPurchasing(ctx context.Context, fn func(
		movRepo repository.InventoryMovementRepository,
		stockRepo repository.StockRepository,
		purchaseRepo repository.PurchaseRepository,
		returnRepo repository.ReturnRepository,
	) error) error
}

// StockRecorder aplica un movimiento dentro de una transacción ajena.
type StockRecorder interface {
	ApplyInTx(
		ctx context.Context,
		movRepo repository.InventoryMovementRepository,
		stockRepo repository.StockRepository,
		in appinventory.MovementInput,
	) (*entity.InventoryMovement, error)
}
