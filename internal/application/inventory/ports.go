package inventory

import (
	"context"

	"github.com/jhoicas/boutique-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Garantiza que el contador de stock y la fila del kardex se confirman juntos o no se confirman.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.InventoryMovementRepository,
		stockRepo repository.StockRepository,
	) error) error
}
