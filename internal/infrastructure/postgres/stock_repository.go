package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/boutique-api/internal/domain"
	"github.com/jhoicas/boutique-api/internal/domain/inventory"
	"github.com/jhoicas/boutique-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo lee y escribe los contadores products.stock y product_variants.stock.
// Pensado para usarse con una pgx.Tx (ver TxRunner).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// LockHolder bloquea la fila del producto y, si el destino es una variante, también la de la variante.
// El producto se bloquea siempre primero para que dos transacciones sobre el mismo producto no se crucen.
func (r *StockRepo) LockHolder(ctx context.Context, target inventory.Target) (*inventory.StockHolder, error) {
	var productStock int
	err := r.q.QueryRow(ctx,
		`SELECT stock FROM products WHERE id = $1 FOR UPDATE`, target.Product(),
	).Scan(&productStock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("lock product stock: %w", err)
	}

	switch t := target.(type) {
	case inventory.ProductTarget:
		return inventory.NewStockHolder(t, productStock), nil
	case inventory.VariantTarget:
		var variantStock int
		err := r.q.QueryRow(ctx,
			`SELECT stock FROM product_variants WHERE id = $1 AND product_id = $2 FOR UPDATE`,
			t.VariantID, t.ProductID,
		).Scan(&variantStock)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, domain.ErrVariantNotFound
			}
			return nil, fmt.Errorf("lock variant stock: %w", err)
		}
		return inventory.NewStockHolder(t, variantStock), nil
	}
	return nil, fmt.Errorf("destino de stock desconocido: %T", target)
}

// SaveHolder escribe el contador en la tabla que corresponde al destino.
func (r *StockRepo) SaveHolder(ctx context.Context, holder *inventory.StockHolder) error {
	var (
		query string
		args  []any
	)
	switch t := holder.Target.(type) {
	case inventory.ProductTarget:
		query = `UPDATE products SET stock = $2, updated_at = now() WHERE id = $1`
		args = []any{t.ProductID, holder.Stock()}
	case inventory.VariantTarget:
		query = `UPDATE product_variants SET stock = $3, updated_at = now() WHERE id = $1 AND product_id = $2`
		args = []any{t.VariantID, t.ProductID, holder.Stock()}
	default:
		return fmt.Errorf("destino de stock desconocido: %T", holder.Target)
	}
	cmd, err := r.q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("save stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
