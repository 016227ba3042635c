package repository

import (
	"context"

	"github.com/jhoicas/boutique-api/internal/domain/inventory"
)

// StockRepository define el puerto para leer y escribir el contador de stock de un producto o variante.
// Solo tiene sentido dentro de una transacción: LockHolder bloquea la fila (SELECT FOR UPDATE).
type StockRepository interface {
	// LockHolder devuelve domain.ErrProductNotFound o domain.ErrVariantNotFound si el destino no existe.
	LockHolder(ctx context.Context, target inventory.Target) (*inventory.StockHolder, error)
	SaveHolder(ctx context.Context, holder *inventory.StockHolder) error
}
