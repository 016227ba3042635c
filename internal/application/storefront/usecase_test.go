package storefront_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/boutique-api/internal/application/dto"
	"github.com/jhoicas/boutique-api/internal/application/inventory/inventorytest"
	"github.com/jhoicas/boutique-api/internal/application/ports"
	"github.com/jhoicas/boutique-api/internal/application/storefront"
	"github.com/jhoicas/boutique-api/internal/domain"
	"github.com/jhoicas/boutique-api/internal/domain/entity"
	"github.com/jhoicas/boutique-api/internal/infrastructure/feed"
)

type noCategories struct{}

func (noCategories) Create(context.Context, *entity.Category) error           { return nil }
func (noCategories) GetByID(context.Context, int64) (*entity.Category, error) { return nil, nil }
func (noCategories) SlugExists(context.Context, string) (bool, error)         { return false, nil }
func (noCategories) Update(context.Context, *entity.Category) error           { return nil }
func (noCategories) Delete(context.Context, int64) error                      { return nil }
func (noCategories) List(context.Context, bool) ([]*entity.Category, error)   { return nil, nil }

type memCache struct {
	data  map[string][]byte
	gets  int
	hits  int
	clear int
}

func (c *memCache) Get(_ context.Context, key string) ([]byte, bool) {
	c.gets++
	v, ok := c.data[key]
	if ok {
		c.hits++
	}
	return v, ok
}
func (c *memCache) Set(_ context.Context, key string, value []byte) { c.data[key] = value }
func (c *memCache) InvalidateCatalog(context.Context) {
	c.clear++
	c.data = map[string][]byte{}
}

var _ ports.CatalogCache = (*memCache)(nil)

func setup(t *testing.T) (*inventorytest.Store, *memCache, *storefront.StorefrontUseCase) {
	t.Helper()
	store := inventorytest.NewStore()
	store.PutProduct(7, "blusa", 3)
	store.PutProduct(8, "pantalon", 0)
	store.PutVariant(55, 8, "PA-M", 2)
	store.PutVariant(56, 8, "PA-L", 0)
	cache := &memCache{data: map[string][]byte{}}
	uc := storefront.NewStorefrontUseCase(
		store.ProductRepo(), store.VariantRepo(), noCategories{}, nil, nil,
		cache, feed.NewEtreeFeedBuilder(),
		storefront.Config{StoreName: "Boutique", BaseURL: "https://boutique.pe/", Currency: "PEN"},
	)
	return store, cache, uc
}

func TestGetProduct_DisponibilidadPorVariantes(t *testing.T) {
	ctx := context.Background()
	_, cache, uc := setup(t)

	p, err := uc.GetProduct(ctx, "pantalon")
	require.NoError(t, err)
	assert.True(t, p.Disponible)
	require.Len(t, p.Variantes, 2)
	assert.True(t, p.Variantes[0].Disponible)
	assert.False(t, p.Variantes[1].Disponible)

	_, err = uc.GetProduct(ctx, "pantalon")
	require.NoError(t, err)
	assert.Equal(t, 1, cache.hits, "la segunda lectura sale de la caché")

	_, err = uc.GetProduct(ctx, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestValidateCart(t *testing.T) {
	ctx := context.Background()
	_, _, uc := setup(t)
	v55, v56 := int64(55), int64(56)

	out, err := uc.ValidateCart(ctx, dto.CartValidateRequest{Items: []dto.CartLineRequest{
		{IDProducto: 7, Cantidad: 2},
		{IDProducto: 8, IDVariante: &v55, Cantidad: 2},
	}})
	require.NoError(t, err)
	assert.True(t, out.Valido)
	assert.Equal(t, 4, out.Unidades)
	assert.Equal(t, "PEN", out.Moneda)

	out, err = uc.ValidateCart(ctx, dto.CartValidateRequest{Items: []dto.CartLineRequest{
		{IDProducto: 7, Cantidad: 2},
		{IDProducto: 7, Cantidad: 2},
		{IDProducto: 8, IDVariante: &v56, Cantidad: 1},
		{IDProducto: 8, Cantidad: 1},
		{IDProducto: 999, Cantidad: 1},
	}})
	require.NoError(t, err)
	assert.False(t, out.Valido)
	require.Len(t, out.Items, 5)
	assert.False(t, out.Items[0].Disponible, "la demanda repetida supera el stock")
	assert.Equal(t, 3, out.Items[0].StockActual)
	assert.False(t, out.Items[2].Disponible)
	assert.Equal(t, "seleccione color y talla", out.Items[3].Motivo)
	assert.Equal(t, "producto no disponible", out.Items[4].Motivo)
	assert.True(t, out.Total.Equal(decimal.Zero))
}

func TestListProducts_SoloActivosYCacheInvalidable(t *testing.T) {
	ctx := context.Background()
	store, cache, uc := setup(t)

	out, err := uc.ListProducts(ctx, dto.ProductListQuery{})
	require.NoError(t, err)
	assert.Equal(t, 2, out.Page.Total)

	store.PutProduct(9, "casaca", 1)
	cached, err := uc.ListProducts(ctx, dto.ProductListQuery{})
	require.NoError(t, err)
	assert.Equal(t, 2, cached.Page.Total)

	cache.InvalidateCatalog(ctx)
	fresh, err := uc.ListProducts(ctx, dto.ProductListQuery{})
	require.NoError(t, err)
	assert.Equal(t, 3, fresh.Page.Total)

	_, err = uc.ListProducts(ctx, dto.ProductListQuery{Min: "abc"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestFeed(t *testing.T) {
	_, _, uc := setup(t)
	data, err := uc.Feed(context.Background())
	require.NoError(t, err)
	assert.Contains(t, string(data), "https://boutique.pe/productos/blusa")
	assert.Contains(t, string(data), "<g:availability>in_stock</g:availability>")
}
