package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/boutique-api/internal/application/dto"
	appinventory "github.com/jhoicas/boutique-api/internal/application/inventory"
	"github.com/jhoicas/boutique-api/internal/domain"
	"github.com/jhoicas/boutique-api/internal/domain/entity"
	"github.com/jhoicas/boutique-api/internal/domain/inventory"
)

func ptr[T any](v T) *T { return &v }

func TestParseMovementRequest_OrdenDeValidacion(t *testing.T) {
	cases := []struct {
		name string
		req  dto.CreateMovementRequest
		want error
	}{
		{"tipo desconocido gana a todo", dto.CreateMovementRequest{Tipo: "venta", Cantidad: ptr(-1)}, domain.ErrInvalidMovementType},
		{"sin producto", dto.CreateMovementRequest{Tipo: "ingreso", Cantidad: ptr(1)}, domain.ErrMissingProduct},
		{"producto cero", dto.CreateMovementRequest{Tipo: "ingreso", IDProducto: ptr(int64(0)), Cantidad: ptr(1)}, domain.ErrMissingProduct},
		{"variante inválida", dto.CreateMovementRequest{Tipo: "ingreso", IDProducto: ptr(int64(7)), IDVariante: ptr(int64(-2)), Cantidad: ptr(-1)}, domain.ErrInvalidVariant},
		{"cantidad negativa", dto.CreateMovementRequest{Tipo: "egreso", IDProducto: ptr(int64(7)), Cantidad: ptr(-1)}, domain.ErrNegativeQuantity},
		{"sin cantidad", dto.CreateMovementRequest{Tipo: "egreso", IDProducto: ptr(int64(7))}, domain.ErrInvalidInput},
		{"cantidad fuera de INT", dto.CreateMovementRequest{Tipo: "ingreso", IDProducto: ptr(int64(7)), Cantidad: ptr(inventory.MaxStock + 1)}, domain.ErrQuantityTooLarge},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := appinventory.ParseMovementRequest(tc.req, nil)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestParseMovementRequest_ResuelveDestino(t *testing.T) {
	in, err := appinventory.ParseMovementRequest(dto.CreateMovementRequest{
		IDProducto: ptr(int64(7)),
		Tipo:       " ajuste ",
		Cantidad:   ptr(0),
		Referencia: ptr("  "),
		Nota:       ptr(" conteo físico "),
	}, ptr(int64(3)))
	require.NoError(t, err)
	assert.Equal(t, inventory.ProductTarget{ProductID: 7}, in.Target)
	assert.Equal(t, entity.MovementAjuste, in.Tipo)
	assert.Nil(t, in.Referencia)
	require.NotNil(t, in.Nota)
	assert.Equal(t, "conteo físico", *in.Nota)
	assert.Equal(t, int64(3), *in.UserID)

	in, err = appinventory.ParseMovementRequest(dto.CreateMovementRequest{
		IDProducto: ptr(int64(7)), IDVariante: ptr(int64(55)), Tipo: "ingreso", Cantidad: ptr(2),
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, inventory.VariantTarget{ProductID: 7, VariantID: 55}, in.Target)
	assert.Nil(t, in.UserID)
}

func TestParseMovementQuery(t *testing.T) {
	f, err := appinventory.ParseMovementQuery(dto.MovementListQuery{Producto: "7", Variante: "55", Tipo: "egreso", Dir: "ASC"}, 200)
	require.NoError(t, err)
	assert.Equal(t, int64(7), *f.ProductID)
	assert.Equal(t, int64(55), *f.VariantID)
	assert.Equal(t, entity.MovementEgreso, *f.Tipo)
	assert.True(t, f.Ascending)
	assert.Equal(t, 200, f.Limit)

	_, err = appinventory.ParseMovementQuery(dto.MovementListQuery{Dir: "lateral"}, 200)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
