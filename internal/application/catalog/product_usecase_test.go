package catalog_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/boutique-api/internal/application/catalog"
	"github.com/jhoicas/boutique-api/internal/application/dto"
	appinventory "github.com/jhoicas/boutique-api/internal/application/inventory"
	"github.com/jhoicas/boutique-api/internal/application/inventory/inventorytest"
	"github.com/jhoicas/boutique-api/internal/domain"
	"github.com/jhoicas/boutique-api/internal/domain/entity"
)

func newProductUseCase(store *inventorytest.Store) *catalog.ProductUseCase {
	movements := appinventory.NewMovementUseCase(store, store.MovementRepo(), nil, nil, "Boutique", 200)
	return catalog.NewProductUseCase(store, movements, store.ProductRepo(), store.VariantRepo(), nil)
}

func TestCreateProduct_StockInicialEntraPorKardex(t *testing.T) {
	ctx := context.Background()
	store := inventorytest.NewStore()
	uc := newProductUseCase(store)

	uid := int64(1)
	out, err := uc.Create(ctx, dto.CreateProductRequest{
		Nombre:       "Vestido Floral Niña",
		Precio:       decimal.NewFromInt(120),
		StockInicial: 8,
	}, &uid)
	require.NoError(t, err)
	assert.Equal(t, "vestido-floral-nina", out.Slug)
	assert.Equal(t, 8, out.Stock)
	assert.Equal(t, 8, store.ProductStock(out.ID))
	assert.True(t, out.Activo)

	movs := store.Movements()
	require.Len(t, movs, 1)
	assert.Equal(t, entity.MovementIngreso, movs[0].Tipo)
	assert.Equal(t, 8, movs[0].Cantidad)
	require.NotNil(t, movs[0].Referencia)
	assert.Equal(t, catalog.ReferenciaStockInicial, *movs[0].Referencia)
	assert.Equal(t, uid, *movs[0].UserID)
}

func TestCreateProduct_SlugRepetidoRecibeSufijo(t *testing.T) {
	ctx := context.Background()
	store := inventorytest.NewStore()
	uc := newProductUseCase(store)

	first, err := uc.Create(ctx, dto.CreateProductRequest{Nombre: "Polo Básico", Precio: decimal.NewFromInt(35)}, nil)
	require.NoError(t, err)
	second, err := uc.Create(ctx, dto.CreateProductRequest{Nombre: "Polo basico", Precio: decimal.NewFromInt(35)}, nil)
	require.NoError(t, err)
	assert.Equal(t, "polo-basico", first.Slug)
	assert.Equal(t, "polo-basico-2", second.Slug)
	assert.Empty(t, store.Movements(), "sin stock inicial no hay movimiento")
}

func TestCreateProduct_OfertaMayorAlPrecio(t *testing.T) {
	uc := newProductUseCase(inventorytest.NewStore())
	oferta := decimal.NewFromInt(200)
	_, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Nombre: "Casaca", Precio: decimal.NewFromInt(150), PrecioOferta: &oferta,
	}, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateVariant_StockInicialEnVariante(t *testing.T) {
	ctx := context.Background()
	store := inventorytest.NewStore()
	store.PutProduct(7, "Blusa lino", 10)
	uc := newProductUseCase(store)

	sku := "BL-AZ-S"
	v, err := uc.CreateVariant(ctx, 7, dto.CreateVariantRequest{SKU: &sku, StockInicial: 4}, nil)
	require.NoError(t, err)
	assert.Equal(t, 4, v.Stock)
	assert.Equal(t, 4, store.VariantStock(v.ID))
	assert.Equal(t, 10, store.ProductStock(7))

	_, err = uc.CreateVariant(ctx, 404, dto.CreateVariantRequest{StockInicial: 1}, nil)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestUpdateProduct_NoTocaStock(t *testing.T) {
	ctx := context.Background()
	store := inventorytest.NewStore()
	store.PutProduct(7, "Blusa lino", 10)
	uc := newProductUseCase(store)

	nombre := "Blusa Lino Premium"
	out, err := uc.Update(ctx, 7, dto.UpdateProductRequest{Nombre: &nombre})
	require.NoError(t, err)
	assert.Equal(t, "blusa-lino-premium", out.Slug)
	assert.Equal(t, 10, store.ProductStock(7))
}

func TestDeleteProduct_ConMovimientos(t *testing.T) {
	ctx := context.Background()
	store := inventorytest.NewStore()
	uc := newProductUseCase(store)

	out, err := uc.Create(ctx, dto.CreateProductRequest{Nombre: "Cartera", Precio: decimal.NewFromInt(80), StockInicial: 2}, nil)
	require.NoError(t, err)
	assert.ErrorIs(t, uc.Delete(ctx, out.ID), domain.ErrInUse)
}
