package repository

import (
	"context"

	"github.com/jhoicas/boutique-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// ProductFilter filtros del listado de productos (admin y tienda).
type ProductFilter struct {
	CategoryID   *int64
	CategorySlug string
	ColorID      *int64
	SizeID       *int64
	MinPrice     *decimal.Decimal
	MaxPrice     *decimal.Decimal
	Search       string
	OnlyActive   bool
	OnlyFeatured bool
	Sort         string // recientes, precio_asc, precio_desc, nombre
	Limit        int
	Offset       int
}

// ProductRepository define el puerto de persistencia para Product.
// Update nunca toca el stock: el stock solo cambia vía StockRepository.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Product, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, int, error)
}

// VariantRepository define el puerto de persistencia para ProductVariant.
type VariantRepository interface {
	Create(ctx context.Context, variant *entity.ProductVariant) error
	GetByID(ctx context.Context, id int64) (*entity.ProductVariant, error)
	Update(ctx context.Context, variant *entity.ProductVariant) error
	Delete(ctx context.Context, id int64) error
	ListByProduct(ctx context.Context, productID int64) ([]*entity.ProductVariant, error)
	ListByProducts(ctx context.Context, productIDs []int64) ([]*entity.ProductVariant, error)
}
