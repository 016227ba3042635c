package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/boutique-api/internal/domain/entity"
	"github.com/jhoicas/boutique-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el dashboard del back-office.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// MovementCountsSince cuenta movimientos por tipo desde la fecha dada.
// Los tipos sin movimientos vienen con 0.
func (r *AnalyticsRepo) MovementCountsSince(ctx context.Context, since time.Time) (map[entity.MovementType]int, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT tipo, COUNT(*) FROM inventory_movements
		WHERE created_at >= $1
		GROUP BY tipo`, since)
	if err != nil {
		return nil, fmt.Errorf("analytics.MovementCountsSince: %w", err)
	}
	defer rows.Close()

	counts := map[entity.MovementType]int{
		entity.MovementIngreso: 0,
		entity.MovementEgreso:  0,
		entity.MovementAjuste:  0,
	}
	for rows.Next() {
		var (
			tipo string
			n    int
		)
		if err := rows.Scan(&tipo, &n); err != nil {
			return nil, fmt.Errorf("analytics.MovementCountsSince scan: %w", err)
		}
		counts[entity.MovementType(tipo)] = n
	}
	return counts, rows.Err()
}

// LowStock productos sin variantes y variantes cuyo stock está por debajo del umbral.
// Fórmula del detalle de variante: "color / talla" omitiendo la dimensión que falte.
func (r *AnalyticsRepo) LowStock(ctx context.Context, threshold, limit int) ([]repository.LowStockItem, error) {
	const query = `
	SELECT p.id, NULL::BIGINT, p.nombre, '' AS detalle, p.stock
	FROM products p
	WHERE p.activo = TRUE
	  AND p.stock < $1
	  AND NOT EXISTS (SELECT 1 FROM product_variants v WHERE v.product_id = p.id)
	UNION ALL
	SELECT p.id, v.id, p.nombre,
	       CONCAT_WS(' / ', c.nombre, s.nombre) AS detalle,
	       v.stock
	FROM product_variants v
	JOIN products p ON p.id = v.product_id
	LEFT JOIN colors c ON c.id = v.color_id
	LEFT JOIN sizes  s ON s.id = v.size_id
	WHERE p.activo = TRUE
	  AND v.stock < $1
	ORDER BY 5 ASC, 3 ASC
	LIMIT $2`

	rows, err := r.pool.Query(ctx, query, threshold, limitOr(limit, 20, 100))
	if err != nil {
		return nil, fmt.Errorf("analytics.LowStock: %w", err)
	}
	defer rows.Close()

	results := make([]repository.LowStockItem, 0)
	for rows.Next() {
		var it repository.LowStockItem
		if err := rows.Scan(&it.ProductID, &it.VariantID, &it.Nombre, &it.Detalle, &it.Stock); err != nil {
			return nil, fmt.Errorf("analytics.LowStock scan: %w", err)
		}
		results = append(results, it)
	}
	return results, rows.Err()
}

// OutstandingPurchases saldo total por pagar de compras no anuladas.
func (r *AnalyticsRepo) OutstandingPurchases(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(total - pagado), 0) FROM purchases WHERE estado <> $1`,
		entity.PurchaseAnulada,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("analytics.OutstandingPurchases: %w", err)
	}
	return total, nil
}

// UnreadMessages mensajes de contacto sin leer.
func (r *AnalyticsRepo) UnreadMessages(ctx context.Context) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM contact_messages WHERE leido = FALSE`).Scan(&n); err != nil {
		return 0, fmt.Errorf("analytics.UnreadMessages: %w", err)
	}
	return n, nil
}
