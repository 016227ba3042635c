package repository

import (
	"context"

	"github.com/jhoicas/boutique-api/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id int64) (*entity.Category, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, onlyActive bool) ([]*entity.Category, error)
}

// ColorRepository define el puerto de persistencia para Color.
type ColorRepository interface {
	Create(ctx context.Context, color *entity.Color) error
	GetByID(ctx context.Context, id int64) (*entity.Color, error)
	Update(ctx context.Context, color *entity.Color) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*entity.Color, error)
}

// SizeRepository define el puerto de persistencia para Size.
type SizeRepository interface {
	Create(ctx context.Context, size *entity.Size) error
	GetByID(ctx context.Context, id int64) (*entity.Size, error)
	Update(ctx context.Context, size *entity.Size) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*entity.Size, error)
}
