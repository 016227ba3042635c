package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/boutique-api/internal/domain"
	"github.com/jhoicas/boutique-api/internal/domain/entity"
	"github.com/jhoicas/boutique-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

const supplierColumns = `id, nombre, ruc, contacto, telefono, email, direccion, activo, created_at`

// SupplierRepo persistencia de proveedores.
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

func (r *SupplierRepo) Create(ctx context.Context, s *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (nombre, ruc, contacto, telefono, email, direccion, activo)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`
	err := r.q.QueryRow(ctx, query, s.Nombre, s.RUC, s.Contacto, s.Telefono, s.Email, s.Direccion, s.Activo).
		Scan(&s.ID, &s.CreatedAt)
	return insertErr("insert supplier", err)
}

func (r *SupplierRepo) GetByID(ctx context.Context, id int64) (*entity.Supplier, error) {
	s, err := scanSupplier(r.q.QueryRow(ctx, `SELECT `+supplierColumns+` FROM suppliers WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return s, nil
}

func (r *SupplierRepo) Update(ctx context.Context, s *entity.Supplier) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE suppliers SET nombre = $2, ruc = $3, contacto = $4, telefono = $5, email = $6, direccion = $7, activo = $8
		WHERE id = $1`,
		s.ID, s.Nombre, s.RUC, s.Contacto, s.Telefono, s.Email, s.Direccion, s.Activo,
	)
	if err != nil {
		return insertErr("update supplier", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete falla con ErrInUse si el proveedor tiene compras o devoluciones.
func (r *SupplierRepo) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.q, "suppliers", id)
}

// List busca por nombre o RUC cuando search no está vacío.
func (r *SupplierRepo) List(ctx context.Context, search string) ([]*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers`
	var args []any
	if s := strings.TrimSpace(search); s != "" {
		query += ` WHERE nombre ILIKE $1 OR ruc ILIKE $1`
		args = append(args, "%"+s+"%")
	}
	rows, err := r.q.Query(ctx, query+` ORDER BY nombre`, args...)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Supplier, 0)
	for rows.Next() {
		s, err := scanSupplier(rows)
		if err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func scanSupplier(row pgx.Row) (*entity.Supplier, error) {
	var s entity.Supplier
	if err := row.Scan(&s.ID, &s.Nombre, &s.RUC, &s.Contacto, &s.Telefono, &s.Email, &s.Direccion, &s.Activo, &s.CreatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}
