package catalog

import (
	"context"
	"strings"

	"github.com/jhoicas/boutique-api/internal/application/dto"
	"github.com/jhoicas/boutique-api/internal/application/ports"
	"github.com/jhoicas/boutique-api/internal/domain"
	"github.com/jhoicas/boutique-api/internal/domain/entity"
	"github.com/jhoicas/boutique-api/internal/domain/repository"
	"github.com/jhoicas/boutique-api/pkg/slug"
)

// CategoryUseCase CRUD de categorías, colores y tallas (dimensiones del catálogo).
type CategoryUseCase struct {
	categories repository.CategoryRepository
	colors     repository.ColorRepository
	sizes      repository.SizeRepository
	cache      ports.CatalogCache
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(
	categories repository.CategoryRepository,
	colors repository.ColorRepository,
	sizes repository.SizeRepository,
	cache ports.CatalogCache,
) *CategoryUseCase {
	return &CategoryUseCase{categories: categories, colors: colors, sizes: sizes, cache: cache}
}

// CreateCategory genera el slug a partir del nombre.
func (uc *CategoryUseCase) CreateCategory(ctx context.Context, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	s, err := slug.Unique(slug.Make(in.Nombre), func(c string) (bool, error) {
		return uc.categories.SlugExists(ctx, c)
	})
	if err != nil {
		return nil, err
	}
	c := &entity.Category{
		Nombre:      strings.TrimSpace(in.Nombre),
		Slug:        s,
		Descripcion: in.Descripcion,
		Activo:      in.Activo == nil || *in.Activo,
	}
	if err := uc.categories.Create(ctx, c); err != nil {
		return nil, err
	}
	ports.InvalidateCatalog(ctx, uc.cache)
	return ToCategoryResponse(c), nil
}

func (uc *CategoryUseCase) GetCategory(ctx context.Context, id int64) (*dto.CategoryResponse, error) {
	c, err := uc.categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return ToCategoryResponse(c), nil
}

// UpdateCategory regenera el slug solo si cambia el nombre.
func (uc *CategoryUseCase) UpdateCategory(ctx context.Context, id int64, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	c, err := uc.categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	nombre := strings.TrimSpace(in.Nombre)
	if nombre != c.Nombre {
		current := c.Slug
		c.Slug, err = slug.Unique(slug.Make(nombre), func(s string) (bool, error) {
			if s == current {
				return false, nil
			}
			return uc.categories.SlugExists(ctx, s)
		})
		if err != nil {
			return nil, err
		}
	}
	c.Nombre = nombre
	c.Descripcion = in.Descripcion
	if in.Activo != nil {
		c.Activo = *in.Activo
	}
	if err := uc.categories.Update(ctx, c); err != nil {
		return nil, err
	}
	ports.InvalidateCatalog(ctx, uc.cache)
	return ToCategoryResponse(c), nil
}

func (uc *CategoryUseCase) DeleteCategory(ctx context.Context, id int64) error {
	if err := uc.categories.Delete(ctx, id); err != nil {
		return err
	}
	ports.InvalidateCatalog(ctx, uc.cache)
	return nil
}

func (uc *CategoryUseCase) ListCategories(ctx context.Context, onlyActive bool) ([]dto.CategoryResponse, error) {
	list, err := uc.categories.List(ctx, onlyActive)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *ToCategoryResponse(c))
	}
	return out, nil
}

func (uc *CategoryUseCase) CreateColor(ctx context.Context, in dto.ColorRequest) (*dto.ColorResponse, error) {
	c := &entity.Color{Nombre: strings.TrimSpace(in.Nombre), Hex: strings.ToUpper(in.Hex)}
	if err := uc.colors.Create(ctx, c); err != nil {
		return nil, err
	}
	ports.InvalidateCatalog(ctx, uc.cache)
	return &dto.ColorResponse{ID: c.ID, Nombre: c.Nombre, Hex: c.Hex}, nil
}

func (uc *CategoryUseCase) UpdateColor(ctx context.Context, id int64, in dto.ColorRequest) (*dto.ColorResponse, error) {
	c := &entity.Color{ID: id, Nombre: strings.TrimSpace(in.Nombre), Hex: strings.ToUpper(in.Hex)}
	if err := uc.colors.Update(ctx, c); err != nil {
		return nil, err
	}
	ports.InvalidateCatalog(ctx, uc.cache)
	return &dto.ColorResponse{ID: c.ID, Nombre: c.Nombre, Hex: c.Hex}, nil
}

// DeleteColor devuelve ErrInUse si alguna variante lo usa.
func (uc *CategoryUseCase) DeleteColor(ctx context.Context, id int64) error {
	if err := uc.colors.Delete(ctx, id); err != nil {
		return err
	}
	ports.InvalidateCatalog(ctx, uc.cache)
	return nil
}

func (uc *CategoryUseCase) ListColors(ctx context.Context) ([]dto.ColorResponse, error) {
	list, err := uc.colors.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ColorResponse, 0, len(list))
	for _, c := range list {
		out = append(out, dto.ColorResponse{ID: c.ID, Nombre: c.Nombre, Hex: c.Hex})
	}
	return out, nil
}

func (uc *CategoryUseCase) CreateSize(ctx context.Context, in dto.SizeRequest) (*dto.SizeResponse, error) {
	s := &entity.Size{Nombre: strings.ToUpper(strings.TrimSpace(in.Nombre)), Orden: in.Orden}
	if err := uc.sizes.Create(ctx, s); err != nil {
		return nil, err
	}
	ports.InvalidateCatalog(ctx, uc.cache)
	return &dto.SizeResponse{ID: s.ID, Nombre: s.Nombre, Orden: s.Orden}, nil
}

func (uc *CategoryUseCase) UpdateSize(ctx context.Context, id int64, in dto.SizeRequest) (*dto.SizeResponse, error) {
	s := &entity.Size{ID: id, Nombre: strings.ToUpper(strings.TrimSpace(in.Nombre)), Orden: in.Orden}
	if err := uc.sizes.Update(ctx, s); err != nil {
		return nil, err
	}
	ports.InvalidateCatalog(ctx, uc.cache)
	return &dto.SizeResponse{ID: s.ID, Nombre: s.Nombre, Orden: s.Orden}, nil
}

func (uc *CategoryUseCase) DeleteSize(ctx context.Context, id int64) error {
	if err := uc.sizes.Delete(ctx, id); err != nil {
		return err
	}
	ports.InvalidateCatalog(ctx, uc.cache)
	return nil
}

func (uc *CategoryUseCase) ListSizes(ctx context.Context) ([]dto.SizeResponse, error) {
	list, err := uc.sizes.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SizeResponse, 0, len(list))
	for _, s := range list {
		out = append(out, dto.SizeResponse{ID: s.ID, Nombre: s.Nombre, Orden: s.Orden})
	}
	return out, nil
}

// ToCategoryResponse convierte una categoría a su salida HTTP.
func ToCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:          c.ID,
		Nombre:      c.Nombre,
		Slug:        c.Slug,
		Descripcion: c.Descripcion,
		Activo:      c.Activo,
		CreatedAt:   c.CreatedAt,
	}
}
