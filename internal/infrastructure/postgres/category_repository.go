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

var (
	_ repository.CategoryRepository = (*CategoryRepo)(nil)
	_ repository.ColorRepository    = (*ColorRepo)(nil)
	_ repository.SizeRepository     = (*SizeRepo)(nil)
)

// CategoryRepo persistencia de categorías.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

func (r *CategoryRepo) Create(ctx context.Context, c *entity.Category) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO categories (nombre, slug, descripcion, activo) VALUES ($1, $2, $3, $4) RETURNING id, created_at`,
		c.Nombre, c.Slug, c.Descripcion, c.Activo,
	).Scan(&c.ID, &c.CreatedAt)
	return insertErr("insert category", err)
}

func (r *CategoryRepo) GetByID(ctx context.Context, id int64) (*entity.Category, error) {
	var c entity.Category
	err := r.q.QueryRow(ctx,
		`SELECT id, nombre, slug, descripcion, activo, created_at FROM categories WHERE id = $1`, id,
	).Scan(&c.ID, &c.Nombre, &c.Slug, &c.Descripcion, &c.Activo, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

func (r *CategoryRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	if err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM categories WHERE slug = $1)`, slug).Scan(&exists); err != nil {
		return false, fmt.Errorf("category slug exists: %w", err)
	}
	return exists, nil
}

func (r *CategoryRepo) Update(ctx context.Context, c *entity.Category) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE categories SET nombre = $2, slug = $3, descripcion = $4, activo = $5 WHERE id = $1`,
		c.ID, c.Nombre, c.Slug, c.Descripcion, c.Activo,
	)
	if err != nil {
		return insertErr("update category", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete deja los productos de la categoría sin categoría (ON DELETE SET NULL).
func (r *CategoryRepo) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.q, "categories", id)
}

func (r *CategoryRepo) List(ctx context.Context, onlyActive bool) ([]*entity.Category, error) {
	query := `SELECT id, nombre, slug, descripcion, activo, created_at FROM categories`
	if onlyActive {
		query += ` WHERE activo = TRUE`
	}
	rows, err := r.q.Query(ctx, query+` ORDER BY nombre`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Category, 0)
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Nombre, &c.Slug, &c.Descripcion, &c.Activo, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// ColorRepo persistencia de colores.
type ColorRepo struct {
	q Querier
}

func NewColorRepository(q Querier) *ColorRepo {
	return &ColorRepo{q: q}
}

func (r *ColorRepo) Create(ctx context.Context, c *entity.Color) error {
	err := r.q.QueryRow(ctx, `INSERT INTO colors (nombre, hex) VALUES ($1, $2) RETURNING id`, c.Nombre, c.Hex).Scan(&c.ID)
	return insertErr("insert color", err)
}

func (r *ColorRepo) GetByID(ctx context.Context, id int64) (*entity.Color, error) {
	var c entity.Color
	err := r.q.QueryRow(ctx, `SELECT id, nombre, hex FROM colors WHERE id = $1`, id).Scan(&c.ID, &c.Nombre, &c.Hex)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get color: %w", err)
	}
	return &c, nil
}

func (r *ColorRepo) Update(ctx context.Context, c *entity.Color) error {
	cmd, err := r.q.Exec(ctx, `UPDATE colors SET nombre = $2, hex = $3 WHERE id = $1`, c.ID, c.Nombre, c.Hex)
	if err != nil {
		return insertErr("update color", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete falla con ErrInUse si alguna variante usa el color.
func (r *ColorRepo) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.q, "colors", id)
}

func (r *ColorRepo) List(ctx context.Context) ([]*entity.Color, error) {
	rows, err := r.q.Query(ctx, `SELECT id, nombre, hex FROM colors ORDER BY nombre`)
	if err != nil {
		return nil, fmt.Errorf("list colors: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Color, 0)
	for rows.Next() {
		var c entity.Color
		if err := rows.Scan(&c.ID, &c.Nombre, &c.Hex); err != nil {
			return nil, fmt.Errorf("scan color: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// SizeRepo persistencia de tallas.
type SizeRepo struct {
	q Querier
}

func NewSizeRepository(q Querier) *SizeRepo {
	return &SizeRepo{q: q}
}

func (r *SizeRepo) Create(ctx context.Context, s *entity.Size) error {
	err := r.q.QueryRow(ctx, `INSERT INTO sizes (nombre, orden) VALUES ($1, $2) RETURNING id`, s.Nombre, s.Orden).Scan(&s.ID)
	return insertErr("insert size", err)
}

func (r *SizeRepo) GetByID(ctx context.Context, id int64) (*entity.Size, error) {
	var s entity.Size
	err := r.q.QueryRow(ctx, `SELECT id, nombre, orden FROM sizes WHERE id = $1`, id).Scan(&s.ID, &s.Nombre, &s.Orden)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get size: %w", err)
	}
	return &s, nil
}

func (r *SizeRepo) Update(ctx context.Context, s *entity.Size) error {
	cmd, err := r.q.Exec(ctx, `UPDATE sizes SET nombre = $2, orden = $3 WHERE id = $1`, s.ID, s.Nombre, s.Orden)
	if err != nil {
		return insertErr("update size", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *SizeRepo) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.q, "sizes", id)
}

func (r *SizeRepo) List(ctx context.Context) ([]*entity.Size, error) {
	rows, err := r.q.Query(ctx, `SELECT id, nombre, orden FROM sizes ORDER BY orden, nombre`)
	if err != nil {
		return nil, fmt.Errorf("list sizes: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Size, 0)
	for rows.Next() {
		var s entity.Size
		if err := rows.Scan(&s.ID, &s.Nombre, &s.Orden); err != nil {
			return nil, fmt.Errorf("scan size: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
