package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/boutique-api/internal/domain"
	"github.com/jhoicas/boutique-api/internal/domain/entity"
	"github.com/jhoicas/boutique-api/internal/domain/repository"
)

var _ repository.VariantRepository = (*VariantRepo)(nil)

const variantColumns = `id, product_id, color_id, size_id, sku, precio, imagen, stock, created_at, updated_at`

// VariantRepo persistencia de variantes color/talla.
type VariantRepo struct {
	q Querier
}

// NewVariantRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVariantRepository(q Querier) *VariantRepo {
	return &VariantRepo{q: q}
}

// Create inserta la variante con stock 0.
func (r *VariantRepo) Create(ctx context.Context, v *entity.ProductVariant) error {
	query := `
		INSERT INTO product_variants (product_id, color_id, size_id, sku, precio, imagen)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, stock, created_at, updated_at`
	err := r.q.QueryRow(ctx, query, v.ProductID, v.ColorID, v.SizeID, v.SKU, v.Precio, v.Imagen).
		Scan(&v.ID, &v.Stock, &v.CreatedAt, &v.UpdatedAt)
	return insertErr("insert variant", err)
}

func (r *VariantRepo) GetByID(ctx context.Context, id int64) (*entity.ProductVariant, error) {
	v, err := scanVariant(r.q.QueryRow(ctx, `SELECT `+variantColumns+` FROM product_variants WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get variant: %w", err)
	}
	return v, nil
}

// Update no toca stock ni product_id.
func (r *VariantRepo) Update(ctx context.Context, v *entity.ProductVariant) error {
	query := `
		UPDATE product_variants SET color_id = $2, size_id = $3, sku = $4, precio = $5, imagen = $6, updated_at = now()
		WHERE id = $1
		RETURNING updated_at`
	err := r.q.QueryRow(ctx, query, v.ID, v.ColorID, v.SizeID, v.SKU, v.Precio, v.Imagen).Scan(&v.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	return insertErr("update variant", err)
}

func (r *VariantRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM product_variants WHERE id = $1`, id)
	if err != nil {
		return writeErr("delete variant", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *VariantRepo) ListByProduct(ctx context.Context, productID int64) ([]*entity.ProductVariant, error) {
	return r.list(ctx, `SELECT `+variantColumns+` FROM product_variants WHERE product_id = $1 ORDER BY id`, productID)
}

// ListByProducts carga las variantes de varios productos en una sola consulta (listados de tienda).
func (r *VariantRepo) ListByProducts(ctx context.Context, productIDs []int64) ([]*entity.ProductVariant, error) {
	if len(productIDs) == 0 {
		return []*entity.ProductVariant{}, nil
	}
	return r.list(ctx, `SELECT `+variantColumns+` FROM product_variants WHERE product_id = ANY($1) ORDER BY product_id, id`, productIDs)
}

func (r *VariantRepo) list(ctx context.Context, query string, args ...any) ([]*entity.ProductVariant, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list variants: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.ProductVariant, 0)
	for rows.Next() {
		v, err := scanVariant(rows)
		if err != nil {
			return nil, fmt.Errorf("scan variant: %w", err)
		}
		list = append(list, v)
	}
	return list, rows.Err()
}

func scanVariant(row pgx.Row) (*entity.ProductVariant, error) {
	var v entity.ProductVariant
	err := row.Scan(&v.ID, &v.ProductID, &v.ColorID, &v.SizeID, &v.SKU, &v.Precio, &v.Imagen, &v.Stock, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
