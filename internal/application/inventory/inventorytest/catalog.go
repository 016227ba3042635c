package inventorytest

import (
	"context"
	"sort"
	"strings"

	"github.com/jhoicas/boutique-api/internal/domain"
	"github.com/jhoicas/boutique-api/internal/domain/entity"
	"github.com/jhoicas/boutique-api/internal/domain/repository"
)

// ProductRepo implementa repository.ProductRepository sobre el Store.
type ProductRepo struct {
	s    *Store
	inTx bool
}

func (r *ProductRepo) Create(_ context.Context, p *entity.Product) error {
	defer r.s.guard(r.inTx)()
	for _, other := range r.s.st.products {
		if other.Slug == p.Slug {
			return domain.ErrDuplicate
		}
	}
	p.ID = r.s.nextID()
	p.Stock = 0
	p.CreatedAt = r.s.now()
	p.UpdatedAt = p.CreatedAt
	r.s.st.products[p.ID] = *p
	return nil
}

func (r *ProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	defer r.s.guard(r.inTx)()
	p, ok := r.s.st.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *ProductRepo) GetBySlug(_ context.Context, slug string) (*entity.Product, error) {
	defer r.s.guard(r.inTx)()
	for _, p := range r.s.st.products {
		if p.Slug == slug {
			return &p, nil
		}
	}
	return nil, nil
}

func (r *ProductRepo) SlugExists(_ context.Context, slug string) (bool, error) {
	defer r.s.guard(r.inTx)()
	for _, p := range r.s.st.products {
		if p.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

// Update conserva el stock guardado, igual que el adaptador de PostgreSQL.
func (r *ProductRepo) Update(_ context.Context, p *entity.Product) error {
	defer r.s.guard(r.inTx)()
	cur, ok := r.s.st.products[p.ID]
	if !ok {
		return domain.ErrNotFound
	}
	p.Stock = cur.Stock
	p.UpdatedAt = r.s.now()
	r.s.st.products[p.ID] = *p
	return nil
}

func (r *ProductRepo) Delete(_ context.Context, id int64) error {
	defer r.s.guard(r.inTx)()
	if _, ok := r.s.st.products[id]; !ok {
		return domain.ErrNotFound
	}
	for _, v := range r.s.st.variants {
		if v.ProductID == id {
			return domain.ErrInUse
		}
	}
	for _, m := range r.s.st.movements {
		if m.ProductID == id {
			return domain.ErrInUse
		}
	}
	delete(r.s.st.products, id)
	return nil
}

// List aplica solo los filtros que usan las pruebas (activo, destacado, búsqueda) y pagina por id.
func (r *ProductRepo) List(_ context.Context, f repository.ProductFilter) ([]*entity.Product, int, error) {
	defer r.s.guard(r.inTx)()
	all := make([]*entity.Product, 0)
	for _, p := range r.s.st.products {
		if f.OnlyActive && !p.Activo {
			continue
		}
		if f.OnlyFeatured && !p.Destacado {
			continue
		}
		if f.CategoryID != nil && (p.CategoryID == nil || *p.CategoryID != *f.CategoryID) {
			continue
		}
		if f.Search != "" && !strings.Contains(strings.ToLower(p.Nombre), strings.ToLower(f.Search)) {
			continue
		}
		p := p
		all = append(all, &p)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	total := len(all)
	if f.Offset > 0 {
		if f.Offset >= len(all) {
			return []*entity.Product{}, total, nil
		}
		all = all[f.Offset:]
	}
	if f.Limit > 0 && len(all) > f.Limit {
		all = all[:f.Limit]
	}
	return all, total, nil
}

// VariantRepo implementa repository.VariantRepository sobre el Store.
type VariantRepo struct {
	s    *Store
	inTx bool
}

func (r *VariantRepo) Create(_ context.Context, v *entity.ProductVariant) error {
	defer r.s.guard(r.inTx)()
	if _, ok := r.s.st.products[v.ProductID]; !ok {
		return domain.ErrInUse
	}
	if v.SKU != nil {
		for _, other := range r.s.st.variants {
			if other.SKU != nil && *other.SKU == *v.SKU {
				return domain.ErrDuplicate
			}
		}
	}
	v.ID = r.s.nextID()
	v.Stock = 0
	v.CreatedAt = r.s.now()
	v.UpdatedAt = v.CreatedAt
	r.s.st.variants[v.ID] = *v
	return nil
}

func (r *VariantRepo) GetByID(_ context.Context, id int64) (*entity.ProductVariant, error) {
	defer r.s.guard(r.inTx)()
	v, ok := r.s.st.variants[id]
	if !ok {
		return nil, nil
	}
	return &v, nil
}

func (r *VariantRepo) Update(_ context.Context, v *entity.ProductVariant) error {
	defer r.s.guard(r.inTx)()
	cur, ok := r.s.st.variants[v.ID]
	if !ok {
		return domain.ErrNotFound
	}
	v.Stock = cur.Stock
	v.ProductID = cur.ProductID
	v.UpdatedAt = r.s.now()
	r.s.st.variants[v.ID] = *v
	return nil
}

func (r *VariantRepo) Delete(_ context.Context, id int64) error {
	defer r.s.guard(r.inTx)()
	if _, ok := r.s.st.variants[id]; !ok {
		return domain.ErrNotFound
	}
	for _, m := range r.s.st.movements {
		if m.VariantID != nil && *m.VariantID == id {
			return domain.ErrInUse
		}
	}
	delete(r.s.st.variants, id)
	return nil
}

func (r *VariantRepo) ListByProduct(ctx context.Context, productID int64) ([]*entity.ProductVariant, error) {
	return r.ListByProducts(ctx, []int64{productID})
}

func (r *VariantRepo) ListByProducts(_ context.Context, productIDs []int64) ([]*entity.ProductVariant, error) {
	defer r.s.guard(r.inTx)()
	want := make(map[int64]bool, len(productIDs))
	for _, id := range productIDs {
		want[id] = true
	}
	list := make([]*entity.ProductVariant, 0)
	for _, v := range r.s.st.variants {
		if want[v.ProductID] {
			v := v
			list = append(list, &v)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}
