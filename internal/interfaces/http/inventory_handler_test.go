package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/boutique-api/internal/application/dto"
	appinventory "github.com/jhoicas/boutique-api/internal/application/inventory"
	"github.com/jhoicas/boutique-api/internal/application/inventory/inventorytest"
	"github.com/jhoicas/boutique-api/internal/domain/inventory"
	apphttp "github.com/jhoicas/boutique-api/internal/interfaces/http"
)

// newMovementsApp monta el router completo con solo el kardex conectado a un almacén en memoria.
func newMovementsApp(store *inventorytest.Store) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler})
	apphttp.Router(app, apphttp.RouterDeps{
		MovementUC: appinventory.NewMovementUseCase(store, store.MovementRepo(), nil, nil, "Boutique", 200),
		Auth:       testAuth,
	})
	return app
}

func send(t *testing.T, app *fiber.App, method, path, body, authHeader string) *http.Response {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeError(t *testing.T, resp *http.Response) dto.ErrorResponse {
	t.Helper()
	defer resp.Body.Close()
	var out dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestPostMovement_EgresoSinStock_Retorna400(t *testing.T) {
	store := inventorytest.NewStore()
	store.PutProduct(7, "Blusa lino", 10)
	app := newMovementsApp(store)

	resp := send(t, app, http.MethodPost, "/api/movements", `{"idProducto":7,"tipo":"egreso","cantidad":15}`, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INSUFFICIENT_STOCK", decodeError(t, resp).Code)
	assert.Equal(t, 10, store.ProductStock(7))
	assert.Empty(t, store.Movements())
}

func TestPostMovement_ConTokenAtribuyeUsuario(t *testing.T) {
	store := inventorytest.NewStore()
	store.PutProduct(7, "Blusa lino", 10)
	store.PutUser(testUserID, "Ana")
	app := newMovementsApp(store)

	resp := send(t, app, http.MethodPost, "/api/movements",
		`{"idProducto":7,"tipo":"ingreso","cantidad":5,"referencia":"  Factura 12 "}`, tokenForRole(t, "vendedor"))
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var out dto.MovementResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, 10, out.StockAnterior)
	assert.Equal(t, 15, out.StockNuevo)
	require.NotNil(t, out.IDUsuario)
	assert.Equal(t, testUserID, *out.IDUsuario)
	require.NotNil(t, out.Usuario)
	assert.Equal(t, "Ana", *out.Usuario)
	require.NotNil(t, out.Referencia)
	assert.Equal(t, "Factura 12", *out.Referencia)
	assert.Equal(t, 15, store.ProductStock(7))
}

func TestPostMovement_AnonimoYTokenInvalido(t *testing.T) {
	store := inventorytest.NewStore()
	store.PutProduct(7, "Blusa lino", 10)
	app := newMovementsApp(store)

	for _, header := range []string{"", "Bearer caducado"} {
		resp := send(t, app, http.MethodPost, "/api/movements", `{"idProducto":7,"tipo":"ingreso","cantidad":1}`, header)
		resp.Body.Close()
		assert.Equal(t, http.StatusCreated, resp.StatusCode, "header %q", header)
	}
	for _, m := range store.Movements() {
		assert.Nil(t, m.UserID)
	}
	assert.Equal(t, 12, store.ProductStock(7))
}

func TestPostMovement_EntradaMalformada(t *testing.T) {
	store := inventorytest.NewStore()
	store.PutProduct(7, "Blusa lino", 10)
	store.PutVariant(70, 7, "BL-M", 3)
	app := newMovementsApp(store)

	cases := map[string]string{
		`{"idProducto":7,"tipo":"regalo","cantidad":1}`:                    "INVALID_MOVEMENT_TYPE",
		`{"tipo":"ingreso","cantidad":1}`:                                  "MISSING_PRODUCT",
		`{"idProducto":7,"idVariante":0,"tipo":"ingreso","cantidad":1}`:    "INVALID_VARIANT",
		`{"idProducto":7,"tipo":"ingreso","cantidad":-1}`:                  "NEGATIVE_QUANTITY",
		`{"idProducto":99,"tipo":"ingreso","cantidad":1}`:                  "PRODUCT_NOT_FOUND",
		`{"idProducto":7,"idVariante":71,"tipo":"ingreso","cantidad":1}`:   "VARIANT_NOT_FOUND",
		`{"idProducto":7,"tipo":"ingreso","cantidad":"uno"}`:               "INVALID_BODY",
		`{"idProducto":7,"tipo":"ingreso","cantidad":9223372036854775807}`: "QUANTITY_TOO_LARGE",
	}
	for body, code := range cases {
		resp := send(t, app, http.MethodPost, "/api/movements", body, "")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, body)
		assert.Equal(t, code, decodeError(t, resp).Code, body)
	}
	assert.Equal(t, 10, store.ProductStock(7))
	assert.Equal(t, 3, store.VariantStock(70))
	assert.Empty(t, store.Movements())
}

func TestPostMovement_IngresoDesbordaContador_Retorna400(t *testing.T) {
	store := inventorytest.NewStore()
	store.PutProduct(7, "Blusa lino", inventory.MaxStock-1)
	app := newMovementsApp(store)

	resp := send(t, app, http.MethodPost, "/api/movements", `{"idProducto":7,"tipo":"ingreso","cantidad":2}`, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "STOCK_OVERFLOW", decodeError(t, resp).Code)
	assert.Equal(t, inventory.MaxStock-1, store.ProductStock(7))
	assert.Empty(t, store.Movements())
}

func TestDeleteMovement_Reversa(t *testing.T) {
	store := inventorytest.NewStore()
	store.PutProduct(7, "Blusa lino", 10)
	app := newMovementsApp(store)

	resp := send(t, app, http.MethodPost, "/api/movements", `{"idProducto":7,"tipo":"ingreso","cantidad":4}`, "")
	var created dto.MovementResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	resp.Body.Close()
	require.Equal(t, 14, store.ProductStock(7))

	resp = send(t, app, http.MethodDelete, "/api/movements/"+strconv.FormatInt(created.ID, 10), "", "")
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, 10, store.ProductStock(7))
	assert.Empty(t, store.Movements())

	resp = send(t, app, http.MethodDelete, "/api/movements/"+strconv.FormatInt(created.ID, 10), "", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "MOVEMENT_NOT_FOUND", decodeError(t, resp).Code)
}

func TestDeleteMovement_AjusteEsIrreversible(t *testing.T) {
	store := inventorytest.NewStore()
	store.PutProduct(7, "Blusa lino", 10)
	app := newMovementsApp(store)

	resp := send(t, app, http.MethodPost, "/api/movements", `{"idProducto":7,"tipo":"ajuste","cantidad":3}`, "")
	var created dto.MovementResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	resp.Body.Close()

	resp = send(t, app, http.MethodDelete, "/api/movements/"+strconv.FormatInt(created.ID, 10), "", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "IRREVERSIBLE_MOVEMENT", decodeError(t, resp).Code)
	assert.Equal(t, 3, store.ProductStock(7))
	assert.Len(t, store.Movements(), 1)
}

func TestListMovements_FiltroInvalido(t *testing.T) {
	app := newMovementsApp(inventorytest.NewStore())

	resp := send(t, app, http.MethodGet, "/api/movements?tipo=regalo", "", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_MOVEMENT_TYPE", decodeError(t, resp).Code)
}

func TestListMovements_OrdenYFiltros(t *testing.T) {
	store := inventorytest.NewStore()
	store.PutProduct(7, "Blusa lino", 10)
	store.PutProduct(8, "Falda", 2)
	app := newMovementsApp(store)
	for _, body := range []string{
		`{"idProducto":7,"tipo":"ingreso","cantidad":1}`,
		`{"idProducto":8,"tipo":"ingreso","cantidad":1}`,
		`{"idProducto":7,"tipo":"egreso","cantidad":2}`,
	} {
		resp := send(t, app, http.MethodPost, "/api/movements", body, "")
		resp.Body.Close()
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp := send(t, app, http.MethodGet, "/api/movements?producto=7&dir=asc", "", "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list []dto.MovementResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	require.Len(t, list, 2)
	assert.Equal(t, "ingreso", list[0].Tipo)
	assert.Equal(t, "egreso", list[1].Tipo)
}

func TestRutasProtegidas_SinTokenRetornan401(t *testing.T) {
	app := newMovementsApp(inventorytest.NewStore())

	for _, path := range []string{"/api/products", "/api/purchases", "/api/users", "/api/dashboard/summary"} {
		resp := send(t, app, http.MethodGet, path, "", "")
		resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, path)
	}
}
