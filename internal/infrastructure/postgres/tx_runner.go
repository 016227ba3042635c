package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/boutique-api/internal/application/catalog"
	"github.com/jhoicas/boutique-api/internal/application/inventory"
	"github.com/jhoicas/boutique-api/internal/application/purchasing"
	"github.com/jhoicas/boutique-api/internal/domain/repository"
)

var (
	_ inventory.TxRunner  = (*TxRunner)(nil)
	_ catalog.TxRunner    = (*TxRunner)(nil)
	_ purchasing.TxRunner = (*TxRunner)(nil)
)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción con los repositorios del kardex y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	movRepo repository.InventoryMovementRepository,
	stockRepo repository.StockRepository,
) error) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		return fn(NewInventoryMovementRepository(tx), NewStockRepository(tx))
	})
}

// RunCatalog transacción para altas de catálogo con stock inicial.
func (r *TxRunner) RunCatalog(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	variantRepo repository.VariantRepository,
	movRepo repository.InventoryMovementRepository,
	stockRepo repository.StockRepository,
) error) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		return fn(NewProductRepository(tx), NewVariantRepository(tx),
			NewInventoryMovementRepository(tx), NewStockRepository(tx))
	})
}

// RunPurchasing transacción con repos de compras e inventario (compras, anulaciones, devoluciones, pagos).
func (r *TxRunner) RunPurchasing(ctx context.Context, fn func(
	movRepo repository.InventoryMovementRepository,
	stockRepo repository.StockRepository,
	purchaseRepo repository.PurchaseRepository,
	returnRepo repository.ReturnRepository,
) error) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		return fn(NewInventoryMovementRepository(tx), NewStockRepository(tx),
			NewPurchaseRepository(tx), NewReturnRepository(tx))
	})
}

func (r *TxRunner) inTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
