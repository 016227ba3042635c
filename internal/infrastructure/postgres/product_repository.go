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

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `p.id, p.category_id, p.nombre, p.slug, p.descripcion, p.precio, p.precio_oferta,
	p.imagenes, p.stock, p.activo, p.destacado, p.created_at, p.updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto con stock 0; el stock inicial entra como movimiento.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	if p.Imagenes == nil {
		p.Imagenes = []string{}
	}
	query := `
		INSERT INTO products (category_id, nombre, slug, descripcion, precio, precio_oferta, imagenes, activo, destacado)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, stock, created_at, updated_at`
	err := r.q.QueryRow(ctx, query,
		p.CategoryID, p.Nombre, p.Slug, p.Descripcion, p.Precio, p.PrecioOferta, p.Imagenes, p.Activo, p.Destacado,
	).Scan(&p.ID, &p.Stock, &p.CreatedAt, &p.UpdatedAt)
	return insertErr("insert product", err)
}

// GetByID obtiene un producto por ID. Devuelve nil, nil si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, `SELECT `+productColumns+` FROM products p WHERE p.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// GetBySlug obtiene un producto por slug.
func (r *ProductRepo) GetBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, `SELECT `+productColumns+` FROM products p WHERE p.slug = $1`, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by slug: %w", err)
	}
	return p, nil
}

// SlugExists informa si el slug ya está tomado.
func (r *ProductRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM products WHERE slug = $1)`, slug).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("product slug exists: %w", err)
	}
	return exists, nil
}

// Update actualiza los datos del producto. No modifica stock.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	if p.Imagenes == nil {
		p.Imagenes = []string{}
	}
	query := `
		UPDATE products SET category_id = $2, nombre = $3, slug = $4, descripcion = $5, precio = $6,
		       precio_oferta = $7, imagenes = $8, activo = $9, destacado = $10, updated_at = now()
		WHERE id = $1
		RETURNING updated_at`
	err := r.q.QueryRow(ctx, query,
		p.ID, p.CategoryID, p.Nombre, p.Slug, p.Descripcion, p.Precio, p.PrecioOferta, p.Imagenes, p.Activo, p.Destacado,
	).Scan(&p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	return insertErr("update product", err)
}

// Delete elimina el producto. Falla con ErrInUse si tiene variantes o movimientos.
func (r *ProductRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return writeErr("delete product", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista productos filtrados y devuelve también el total sin paginar.
func (r *ProductRepo) List(ctx context.Context, f repository.ProductFilter) ([]*entity.Product, int, error) {
	var (
		where []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	if f.OnlyActive {
		where = append(where, "p.activo = TRUE")
	}
	if f.OnlyFeatured {
		where = append(where, "p.destacado = TRUE")
	}
	if f.CategoryID != nil {
		where = append(where, "p.category_id = "+arg(*f.CategoryID))
	}
	if f.CategorySlug != "" {
		where = append(where, "EXISTS (SELECT 1 FROM categories c WHERE c.id = p.category_id AND c.slug = "+arg(f.CategorySlug)+")")
	}
	if f.ColorID != nil {
		where = append(where, "EXISTS (SELECT 1 FROM product_variants v WHERE v.product_id = p.id AND v.color_id = "+arg(*f.ColorID)+")")
	}
	if f.SizeID != nil {
		where = append(where, "EXISTS (SELECT 1 FROM product_variants v WHERE v.product_id = p.id AND v.size_id = "+arg(*f.SizeID)+")")
	}
	if f.MinPrice != nil {
		where = append(where, "COALESCE(p.precio_oferta, p.precio) >= "+arg(*f.MinPrice))
	}
	if f.MaxPrice != nil {
		where = append(where, "COALESCE(p.precio_oferta, p.precio) <= "+arg(*f.MaxPrice))
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		p := arg("%" + s + "%")
		where = append(where, "(p.nombre ILIKE "+p+" OR p.descripcion ILIKE "+p+")")
	}
	cond := ""
	if len(where) > 0 {
		cond = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM products p`+cond, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	query := `SELECT ` + productColumns + ` FROM products p` + cond +
		` ORDER BY ` + productOrder(f.Sort) +
		` LIMIT ` + arg(limitOr(f.Limit, 24, 100)) + ` OFFSET ` + arg(max(f.Offset, 0))
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, total, rows.Err()
}

func productOrder(sort string) string {
	switch sort {
	case "precio_asc":
		return "COALESCE(p.precio_oferta, p.precio) ASC, p.id"
	case "precio_desc":
		return "COALESCE(p.precio_oferta, p.precio) DESC, p.id"
	case "nombre":
		return "p.nombre ASC, p.id"
	default:
		return "p.created_at DESC, p.id DESC"
	}
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.CategoryID, &p.Nombre, &p.Slug, &p.Descripcion, &p.Precio, &p.PrecioOferta,
		&p.Imagenes, &p.Stock, &p.Activo, &p.Destacado, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
