package inventory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/boutique-api/internal/application/dto"
	appinventory "github.com/jhoicas/boutique-api/internal/application/inventory"
	"github.com/jhoicas/boutique-api/internal/application/inventory/inventorytest"
	"github.com/jhoicas/boutique-api/internal/domain"
	"github.com/jhoicas/boutique-api/internal/domain/entity"
	"github.com/jhoicas/boutique-api/internal/domain/inventory"
	"github.com/jhoicas/boutique-api/internal/domain/repository"
)

func newUseCase(store *inventorytest.Store) *appinventory.MovementUseCase {
	return appinventory.NewMovementUseCase(store, store.MovementRepo(), nil, nil, "Boutique", 200)
}

func productInput(productID int64, tipo entity.MovementType, cantidad int) appinventory.MovementInput {
	return appinventory.MovementInput{
		Target:   inventory.ProductTarget{ProductID: productID},
		Tipo:     tipo,
		Cantidad: cantidad,
	}
}

func TestRecordMovement_Producto7(t *testing.T) {
	ctx := context.Background()
	store := inventorytest.NewStore()
	store.PutProduct(7, "Blusa lino", 10)
	uc := newUseCase(store)

	_, err := uc.RecordMovement(ctx, productInput(7, entity.MovementEgreso, 15))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 10, store.ProductStock(7))
	assert.Empty(t, store.Movements())

	out, err := uc.RecordMovement(ctx, productInput(7, entity.MovementEgreso, 4))
	require.NoError(t, err)
	assert.Equal(t, 6, store.ProductStock(7))
	assert.Equal(t, "egreso", out.Tipo)
	assert.Equal(t, 4, out.Cantidad)
	assert.Equal(t, 10, out.StockAnterior)
	assert.Equal(t, 6, out.StockNuevo)
	assert.Equal(t, "Blusa lino", out.Producto)

	out, err = uc.RecordMovement(ctx, productInput(7, entity.MovementAjuste, 100))
	require.NoError(t, err)
	assert.Equal(t, 100, store.ProductStock(7))
	assert.Equal(t, 100, out.Cantidad)
	assert.Len(t, store.Movements(), 2)
}

func TestRecordMovement_VarianteNoTocaProducto(t *testing.T) {
	ctx := context.Background()
	store := inventorytest.NewStore()
	store.PutProduct(7, "Blusa lino", 10)
	store.PutVariant(55, 7, "BL-ROJ-M", 3)
	uc := newUseCase(store)

	out, err := uc.RecordMovement(ctx, appinventory.MovementInput{
		Target:   inventory.VariantTarget{ProductID: 7, VariantID: 55},
		Tipo:     entity.MovementIngreso,
		Cantidad: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, store.VariantStock(55))
	assert.Equal(t, 10, store.ProductStock(7))
	require.NotNil(t, out.IDVariante)
	assert.Equal(t, int64(55), *out.IDVariante)
	require.NotNil(t, out.VarianteSKU)
	assert.Equal(t, "BL-ROJ-M", *out.VarianteSKU)
}

func TestRecordMovement_DestinoInexistente(t *testing.T) {
	ctx := context.Background()
	store := inventorytest.NewStore()
	store.PutProduct(7, "Blusa lino", 10)
	store.PutProduct(8, "Falda", 1)
	store.PutVariant(90, 8, "FA-S", 4)
	uc := newUseCase(store)

	_, err := uc.RecordMovement(ctx, productInput(404, entity.MovementIngreso, 1))
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	// La variante 90 existe pero pertenece a otro producto.
	_, err = uc.RecordMovement(ctx, appinventory.MovementInput{
		Target:   inventory.VariantTarget{ProductID: 7, VariantID: 90},
		Tipo:     entity.MovementIngreso,
		Cantidad: 1,
	})
	assert.ErrorIs(t, err, domain.ErrVariantNotFound)
	assert.Equal(t, 4, store.VariantStock(90))
	assert.Empty(t, store.Movements())
}

func TestRecordMovement_FallaDelKardexRevierteStock(t *testing.T) {
	ctx := context.Background()
	store := inventorytest.NewStore()
	store.PutProduct(7, "Blusa lino", 10)
	store.FailMovementCreate = errors.New("insert falló")
	uc := newUseCase(store)

	_, err := uc.RecordMovement(ctx, productInput(7, entity.MovementIngreso, 5))
	require.Error(t, err)
	assert.Equal(t, 10, store.ProductStock(7))
	assert.Empty(t, store.Movements())
}

func TestRecordMovement_UsuarioOpcional(t *testing.T) {
	ctx := context.Background()
	store := inventorytest.NewStore()
	store.PutProduct(7, "Blusa lino", 10)
	store.PutUser(3, "Ana")
	uc := newUseCase(store)

	anon, err := uc.RecordMovement(ctx, productInput(7, entity.MovementIngreso, 1))
	require.NoError(t, err)
	assert.Nil(t, anon.IDUsuario)
	assert.Nil(t, anon.Usuario)

	uid := int64(3)
	in := productInput(7, entity.MovementIngreso, 1)
	in.UserID = &uid
	withUser, err := uc.RecordMovement(ctx, in)
	require.NoError(t, err)
	require.NotNil(t, withUser.Usuario)
	assert.Equal(t, "Ana", *withUser.Usuario)
}

func TestDeleteMovement_IdaYVuelta(t *testing.T) {
	ctx := context.Background()
	store := inventorytest.NewStore()
	store.PutProduct(7, "Blusa lino", 10)
	uc := newUseCase(store)

	in, err := uc.RecordMovement(ctx, productInput(7, entity.MovementIngreso, 5))
	require.NoError(t, err)
	out, err := uc.RecordMovement(ctx, productInput(7, entity.MovementEgreso, 3))
	require.NoError(t, err)
	assert.Equal(t, 12, store.ProductStock(7))

	require.NoError(t, uc.DeleteMovement(ctx, out.ID))
	assert.Equal(t, 15, store.ProductStock(7))
	require.NoError(t, uc.DeleteMovement(ctx, in.ID))
	assert.Equal(t, 10, store.ProductStock(7))
	assert.Empty(t, store.Movements())
}

func TestDeleteMovement_AjusteRechazado(t *testing.T) {
	ctx := context.Background()
	store := inventorytest.NewStore()
	store.PutProduct(7, "Blusa lino", 10)
	uc := newUseCase(store)

	adj, err := uc.RecordMovement(ctx, productInput(7, entity.MovementAjuste, 2))
	require.NoError(t, err)

	err = uc.DeleteMovement(ctx, adj.ID)
	assert.ErrorIs(t, err, domain.ErrIrreversibleMovement)
	assert.Equal(t, 2, store.ProductStock(7))
	assert.Len(t, store.Movements(), 1)
}

func TestDeleteMovement_IngresoYaConsumido(t *testing.T) {
	ctx := context.Background()
	store := inventorytest.NewStore()
	store.PutProduct(7, "Blusa lino", 0)
	uc := newUseCase(store)

	in, err := uc.RecordMovement(ctx, productInput(7, entity.MovementIngreso, 5))
	require.NoError(t, err)
	_, err = uc.RecordMovement(ctx, productInput(7, entity.MovementEgreso, 4))
	require.NoError(t, err)

	err = uc.DeleteMovement(ctx, in.ID)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 1, store.ProductStock(7))
	assert.Len(t, store.Movements(), 2)
}

func TestDeleteMovement_Inexistente(t *testing.T) {
	uc := newUseCase(inventorytest.NewStore())
	assert.ErrorIs(t, uc.DeleteMovement(context.Background(), 999), domain.ErrMovementNotFound)
}

func TestListMovements_FiltrosYOrden(t *testing.T) {
	ctx := context.Background()
	store := inventorytest.NewStore()
	store.PutProduct(7, "Blusa lino", 10)
	store.PutProduct(8, "Falda", 10)
	uc := newUseCase(store)

	for _, in := range []appinventory.MovementInput{
		productInput(7, entity.MovementIngreso, 1),
		productInput(8, entity.MovementIngreso, 2),
		productInput(7, entity.MovementEgreso, 3),
	} {
		_, err := uc.RecordMovement(ctx, in)
		require.NoError(t, err)
	}

	all, err := uc.ListMovements(ctx, dto.MovementListQuery{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, 3, all[0].Cantidad, "por defecto el más reciente primero")

	asc, err := uc.ListMovements(ctx, dto.MovementListQuery{Producto: "7", Dir: "asc"})
	require.NoError(t, err)
	require.Len(t, asc, 2)
	assert.Equal(t, "ingreso", asc[0].Tipo)
	assert.Equal(t, "egreso", asc[1].Tipo)

	egresos, err := uc.ListMovements(ctx, dto.MovementListQuery{Tipo: "egreso"})
	require.NoError(t, err)
	assert.Len(t, egresos, 1)

	_, err = uc.ListMovements(ctx, dto.MovementListQuery{Tipo: "venta"})
	assert.ErrorIs(t, err, domain.ErrInvalidMovementType)
	_, err = uc.ListMovements(ctx, dto.MovementListQuery{Producto: "abc"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestListMovements_TopeDeFilas(t *testing.T) {
	ctx := context.Background()
	store := inventorytest.NewStore()
	store.PutProduct(7, "Blusa lino", 0)
	seed := newUseCase(store)
	for i := 0; i < 201; i++ {
		_, err := seed.RecordMovement(ctx, productInput(7, entity.MovementIngreso, 1))
		require.NoError(t, err)
	}
	require.Len(t, store.Movements(), 201)

	for _, tc := range []struct {
		limit, want int
	}{
		{500, repository.MaxMovementRows},
		{0, repository.MaxMovementRows},
		{-3, repository.MaxMovementRows},
		{50, 50},
	} {
		uc := appinventory.NewMovementUseCase(store, store.MovementRepo(), nil, nil, "Boutique", tc.limit)
		got, err := uc.ListMovements(ctx, dto.MovementListQuery{})
		require.NoError(t, err)
		assert.Len(t, got, tc.want, "MOVEMENTS_LIMIT=%d", tc.limit)
	}
}
func TestGetMovement_NoExiste(t *testing.T) {
	_, err := newUseCase(inventorytest.NewStore()).GetMovement(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrMovementNotFound)
}
