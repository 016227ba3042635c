package inventory_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/boutique-api/internal/domain"
	"github.com/jhoicas/boutique-api/internal/domain/entity"
	"github.com/jhoicas/boutique-api/internal/domain/inventory"
)

func TestApply_Ingreso(t *testing.T) {
	for _, tc := range []struct{ stock, n int }{{0, 0}, {0, 5}, {10, 3}, {7, 100}} {
		got, err := inventory.Apply(entity.MovementIngreso, tc.stock, tc.n)
		require.NoError(t, err)
		assert.Equal(t, tc.stock+tc.n, got)
	}
}

func TestApply_EgresoNoBajaDeCero(t *testing.T) {
	got, err := inventory.Apply(entity.MovementEgreso, 10, 15)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 10, got, "el stock no se recorta: la operación falla")

	got, err = inventory.Apply(entity.MovementEgreso, 10, 4)
	require.NoError(t, err)
	assert.Equal(t, 6, got)

	got, err = inventory.Apply(entity.MovementEgreso, 4, 4)
	require.NoError(t, err)
	assert.Equal(t, 0, got)
}

func TestApply_AjusteEsAbsoluto(t *testing.T) {
	for _, prev := range []int{0, 6, 500} {
		got, err := inventory.Apply(entity.MovementAjuste, prev, 100)
		require.NoError(t, err)
		assert.Equal(t, 100, got)
	}
}

func TestApply_CantidadNegativa(t *testing.T) {
	_, err := inventory.Apply(entity.MovementIngreso, 3, -1)
	assert.ErrorIs(t, err, domain.ErrNegativeQuantity)
}

func TestApply_TopeDelContador(t *testing.T) {
	for _, tipo := range []entity.MovementType{entity.MovementIngreso, entity.MovementEgreso, entity.MovementAjuste} {
		got, err := inventory.Apply(tipo, 10, math.MaxInt64)
		assert.ErrorIs(t, err, domain.ErrQuantityTooLarge, tipo)
		assert.Equal(t, 10, got, tipo)
	}

	got, err := inventory.Apply(entity.MovementIngreso, 10, inventory.MaxStock-9)
	assert.ErrorIs(t, err, domain.ErrStockOverflow)
	assert.Equal(t, 10, got)

	got, err = inventory.Apply(entity.MovementIngreso, 10, inventory.MaxStock-10)
	require.NoError(t, err)
	assert.Equal(t, inventory.MaxStock, got)

	got, err = inventory.Apply(entity.MovementAjuste, 10, inventory.MaxStock)
	require.NoError(t, err)
	assert.Equal(t, inventory.MaxStock, got)
}

func TestReverse_EgresoNoDesbordaElContador(t *testing.T) {
	_, err := inventory.Reverse(entity.MovementEgreso, inventory.MaxStock, 1)
	assert.ErrorIs(t, err, domain.ErrStockOverflow)
}

func TestApply_TipoDesconocido(t *testing.T) {
	_, err := inventory.Apply(entity.MovementType("traslado"), 3, 1)
	assert.ErrorIs(t, err, domain.ErrInvalidMovementType)
}

func TestReverse_IdaYVuelta(t *testing.T) {
	for _, tipo := range []entity.MovementType{entity.MovementIngreso, entity.MovementEgreso} {
		start := 9
		after, err := inventory.Apply(tipo, start, 4)
		require.NoError(t, err)
		back, err := inventory.Reverse(tipo, after, 4)
		require.NoError(t, err)
		assert.Equal(t, start, back, "aplicar y revertir %s debe dejar el stock igual", tipo)
	}
}

func TestReverse_AjusteRechazado(t *testing.T) {
	_, err := inventory.Reverse(entity.MovementAjuste, 100, 100)
	assert.ErrorIs(t, err, domain.ErrIrreversibleMovement)
}

func TestReverse_IngresoYaConsumido(t *testing.T) {
	_, err := inventory.Reverse(entity.MovementIngreso, 2, 5)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestNewTarget(t *testing.T) {
	pt := inventory.NewTarget(7, nil)
	assert.Equal(t, inventory.ProductTarget{ProductID: 7}, pt)
	assert.Nil(t, inventory.VariantID(pt))

	v := int64(55)
	vt := inventory.NewTarget(7, &v)
	assert.Equal(t, inventory.VariantTarget{ProductID: 7, VariantID: 55}, vt)
	require.NotNil(t, inventory.VariantID(vt))
	assert.Equal(t, int64(55), *inventory.VariantID(vt))
	assert.Equal(t, int64(7), vt.Product())
}
