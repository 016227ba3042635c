package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/boutique-api/internal/domain/entity"
	"github.com/jhoicas/boutique-api/internal/domain/repository"
)

var _ repository.InventoryMovementRepository = (*InventoryMovementRepo)(nil)

const movementDetailSelect = `
	SELECT m.id, m.product_id, m.variant_id, m.tipo, m.cantidad, m.stock_anterior, m.stock_nuevo,
	       m.referencia, m.nota, m.user_id, m.created_at,
	       p.nombre, v.sku, c.nombre, s.nombre, u.nombre
	FROM inventory_movements m
	JOIN products p ON p.id = m.product_id
	LEFT JOIN product_variants v ON v.id = m.variant_id
	LEFT JOIN colors c ON c.id = v.color_id
	LEFT JOIN sizes s ON s.id = v.size_id
	LEFT JOIN users u ON u.id = m.user_id`

// InventoryMovementRepo implementación sobre PostgreSQL (usable con pool o tx).
type InventoryMovementRepo struct {
	q Querier
}

// NewInventoryMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryMovementRepository(q Querier) *InventoryMovementRepo {
	return &InventoryMovementRepo{q: q}
}

// Create persiste un movimiento y completa ID y CreatedAt.
func (r *InventoryMovementRepo) Create(ctx context.Context, m *entity.InventoryMovement) error {
	query := `
		INSERT INTO inventory_movements (product_id, variant_id, tipo, cantidad, stock_anterior, stock_nuevo, referencia, nota, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at`
	err := r.q.QueryRow(ctx, query,
		m.ProductID, m.VariantID, string(m.Tipo), m.Cantidad, m.StockAnterior, m.StockNuevo,
		m.Referencia, m.Nota, m.UserID,
	).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return insertErr("create inventory movement", err)
	}
	return nil
}

// GetForUpdate obtiene un movimiento y bloquea la fila.
func (r *InventoryMovementRepo) GetForUpdate(ctx context.Context, id int64) (*entity.InventoryMovement, error) {
	query := `
		SELECT id, product_id, variant_id, tipo, cantidad, stock_anterior, stock_nuevo, referencia, nota, user_id, created_at
		FROM inventory_movements WHERE id = $1
		FOR UPDATE`
	var (
		m    entity.InventoryMovement
		tipo string
	)
	err := r.q.QueryRow(ctx, query, id).Scan(
		&m.ID, &m.ProductID, &m.VariantID, &tipo, &m.Cantidad, &m.StockAnterior, &m.StockNuevo,
		&m.Referencia, &m.Nota, &m.UserID, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	m.Tipo = entity.MovementType(tipo)
	return &m, nil
}

// GetDetail obtiene un movimiento con nombres de producto, variante y usuario.
func (r *InventoryMovementRepo) GetDetail(ctx context.Context, id int64) (*entity.MovementDetail, error) {
	d, err := scanMovementDetail(r.q.QueryRow(ctx, movementDetailSelect+` WHERE m.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement detail: %w", err)
	}
	return d, nil
}

// Delete elimina la fila del movimiento (la compensación de stock la hace el caso de uso).
func (r *InventoryMovementRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM inventory_movements WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete movement: %w", err)
	}
	return nil
}

// List lista movimientos filtrados, ordenados por fecha y con tope de filas.
func (r *InventoryMovementRepo) List(ctx context.Context, f repository.MovementFilter) ([]*entity.MovementDetail, error) {
	query := movementDetailSelect + ` WHERE 1=1`
	args := []any{}
	pos := 1
	if f.ProductID != nil {
		query += fmt.Sprintf(" AND m.product_id = $%d", pos)
		args = append(args, *f.ProductID)
		pos++
	}
	if f.VariantID != nil {
		query += fmt.Sprintf(" AND m.variant_id = $%d", pos)
		args = append(args, *f.VariantID)
		pos++
	}
	if f.Tipo != nil {
		query += fmt.Sprintf(" AND m.tipo = $%d", pos)
		args = append(args, string(*f.Tipo))
		pos++
	}
	dir := "DESC"
	if f.Ascending {
		dir = "ASC"
	}
	query += fmt.Sprintf(" ORDER BY m.created_at %s, m.id %s LIMIT $%d", dir, dir, pos)
	args = append(args, limitOr(f.Limit, repository.MaxMovementRows, repository.MaxMovementRows))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.MovementDetail, 0)
	for rows.Next() {
		d, err := scanMovementDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

func scanMovementDetail(row pgx.Row) (*entity.MovementDetail, error) {
	var (
		d    entity.MovementDetail
		tipo string
	)
	err := row.Scan(
		&d.ID, &d.ProductID, &d.VariantID, &tipo, &d.Cantidad, &d.StockAnterior, &d.StockNuevo,
		&d.Referencia, &d.Nota, &d.UserID, &d.CreatedAt,
		&d.ProductoNombre, &d.VarianteSKU, &d.ColorNombre, &d.TallaNombre, &d.UsuarioNombre,
	)
	if err != nil {
		return nil, err
	}
	d.Tipo = entity.MovementType(tipo)
	return &d, nil
}
