package purchasing_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/boutique-api/internal/application/dto"
	appinventory "github.com/jhoicas/boutique-api/internal/application/inventory"
	"github.com/jhoicas/boutique-api/internal/application/inventory/inventorytest"
	"github.com/jhoicas/boutique-api/internal/application/purchasing"
	"github.com/jhoicas/boutique-api/internal/domain"
	"github.com/jhoicas/boutique-api/internal/domain/entity"
	"github.com/jhoicas/boutique-api/internal/domain/inventory"
)

type supplierStub struct {
	byID map[int64]*entity.Supplier
}

func (s *supplierStub) Create(_ context.Context, sup *entity.Supplier) error {
	sup.ID = int64(len(s.byID) + 1)
	s.byID[sup.ID] = sup
	return nil
}
func (s *supplierStub) GetByID(_ context.Context, id int64) (*entity.Supplier, error) {
	return s.byID[id], nil
}
func (s *supplierStub) Update(context.Context, *entity.Supplier) error { return nil }
func (s *supplierStub) Delete(context.Context, int64) error            { return nil }
func (s *supplierStub) List(context.Context, string) ([]*entity.Supplier, error) {
	return nil, nil
}

func setup(t *testing.T) (*inventorytest.Store, *purchasing.PurchaseUseCase) {
	t.Helper()
	store := inventorytest.NewStore()
	store.PutProduct(7, "Blusa lino", 2)
	store.PutProduct(8, "Pantalón", 0)
	store.PutVariant(55, 8, "PA-NE-M", 1)
	suppliers := &supplierStub{byID: map[int64]*entity.Supplier{
		1: {ID: 1, Nombre: "Textiles Gamarra", Activo: true},
		2: {ID: 2, Nombre: "Importaciones Lima", Activo: true},
	}}
	movements := appinventory.NewMovementUseCase(store, store.MovementRepo(), nil, nil, "Boutique", 200)
	uc := purchasing.NewPurchaseUseCase(store, movements, suppliers, store.PurchaseRepo(), store.ReturnRepo(), nil)
	return store, uc
}

func purchaseRequest() dto.CreatePurchaseRequest {
	variant := int64(55)
	return dto.CreatePurchaseRequest{
		IDProveedor: 1,
		Fecha:       "2025-03-10",
		Detalles: []dto.PurchaseLineRequest{
			{IDProducto: 7, Cantidad: 10, CostoUnitario: decimal.RequireFromString("12.50")},
			{IDProducto: 8, IDVariante: &variant, Cantidad: 4, CostoUnitario: decimal.NewFromInt(30)},
		},
	}
}

func TestCreatePurchase_IngresoPorLinea(t *testing.T) {
	ctx := context.Background()
	store, uc := setup(t)

	out, err := uc.CreatePurchase(ctx, purchaseRequest(), nil)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(245).Equal(out.Total), "total %s", out.Total)
	assert.True(t, out.Saldo.Equal(out.Total))
	assert.Equal(t, entity.PurchaseRegistrada, out.Estado)
	assert.Equal(t, "Textiles Gamarra", out.Proveedor)

	assert.Equal(t, 12, store.ProductStock(7))
	assert.Equal(t, 5, store.VariantStock(55))
	assert.Equal(t, 0, store.ProductStock(8))

	movs := store.Movements()
	require.Len(t, movs, 2)
	for _, m := range movs {
		assert.Equal(t, entity.MovementIngreso, m.Tipo)
		require.NotNil(t, m.Referencia)
		assert.Contains(t, *m.Referencia, "Compra #")
	}
}

func TestCreatePurchase_LineaInvalidaNoDejaRastro(t *testing.T) {
	ctx := context.Background()
	store, uc := setup(t)

	req := purchaseRequest()
	req.Detalles = append(req.Detalles, dto.PurchaseLineRequest{IDProducto: 999, Cantidad: 1})
	_, err := uc.CreatePurchase(ctx, req, nil)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	assert.Equal(t, 2, store.ProductStock(7))
	assert.Equal(t, 1, store.VariantStock(55))
	assert.Empty(t, store.Movements())
}

func TestCreatePurchase_VarianteInexistente(t *testing.T) {
	ctx := context.Background()
	store, uc := setup(t)

	req := purchaseRequest()
	ghost := int64(404)
	req.Detalles = append(req.Detalles, dto.PurchaseLineRequest{IDProducto: 8, IDVariante: &ghost, Cantidad: 1})
	_, err := uc.CreatePurchase(ctx, req, nil)
	assert.ErrorIs(t, err, domain.ErrVariantNotFound)
	assert.Equal(t, 2, store.ProductStock(7))
	assert.Empty(t, store.Movements())
}

func TestCreatePurchase_CantidadFueraDeRango(t *testing.T) {
	ctx := context.Background()
	store, uc := setup(t)

	req := purchaseRequest()
	req.Detalles = append(req.Detalles, dto.PurchaseLineRequest{IDProducto: 7, Cantidad: inventory.MaxStock + 1})
	_, err := uc.CreatePurchase(ctx, req, nil)
	assert.ErrorIs(t, err, domain.ErrQuantityTooLarge)
	assert.Equal(t, 2, store.ProductStock(7))
	assert.Empty(t, store.Movements())

	_, err = uc.CreateReturn(ctx, dto.CreateReturnRequest{
		IDProveedor: 1,
		Detalles:    []dto.ReturnLineRequest{{IDProducto: 7, Cantidad: inventory.MaxStock + 1}},
	}, nil)
	assert.ErrorIs(t, err, domain.ErrQuantityTooLarge)
	assert.Equal(t, 2, store.ProductStock(7))
}

func TestCreateReturn_ProductoInexistente(t *testing.T) {
	ctx := context.Background()
	store, uc := setup(t)

	_, err := uc.CreateReturn(ctx, dto.CreateReturnRequest{
		IDProveedor: 1,
		Detalles:    []dto.ReturnLineRequest{{IDProducto: 7, Cantidad: 1}, {IDProducto: 999, Cantidad: 1}},
	}, nil)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	assert.Equal(t, 2, store.ProductStock(7))
	assert.Empty(t, store.Movements())
}

func TestCreatePurchase_ProveedorInexistente(t *testing.T) {
	_, uc := setup(t)
	req := purchaseRequest()
	req.IDProveedor = 77
	_, err := uc.CreatePurchase(context.Background(), req, nil)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCancelPurchase(t *testing.T) {
	ctx := context.Background()
	store, uc := setup(t)

	out, err := uc.CreatePurchase(ctx, purchaseRequest(), nil)
	require.NoError(t, err)

	cancelled, err := uc.CancelPurchase(ctx, out.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, entity.PurchaseAnulada, cancelled.Estado)
	assert.Equal(t, 2, store.ProductStock(7))
	assert.Equal(t, 1, store.VariantStock(55))
	assert.Len(t, store.Movements(), 4)

	_, err = uc.CancelPurchase(ctx, out.ID, nil)
	assert.ErrorIs(t, err, domain.ErrPurchaseCancelled)
}

func TestCancelPurchase_MercaderiaConsumida(t *testing.T) {
	ctx := context.Background()
	store, uc := setup(t)

	out, err := uc.CreatePurchase(ctx, purchaseRequest(), nil)
	require.NoError(t, err)

	// sale casi todo el lote de la blusa
	_, err = uc.CreateReturn(ctx, dto.CreateReturnRequest{
		IDProveedor: 1,
		Detalles:    []dto.ReturnLineRequest{{IDProducto: 7, Cantidad: 11}},
	}, nil)
	require.NoError(t, err)
	require.Equal(t, 1, store.ProductStock(7))

	_, err = uc.CancelPurchase(ctx, out.ID, nil)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, entity.PurchaseRegistrada, store.Purchase(out.ID).Estado)
	assert.Equal(t, 5, store.VariantStock(55))
}

func TestRegisterPayment(t *testing.T) {
	ctx := context.Background()
	store, uc := setup(t)

	out, err := uc.CreatePurchase(ctx, purchaseRequest(), nil)
	require.NoError(t, err)

	_, err = uc.RegisterPayment(ctx, out.ID, dto.PaymentRequest{Monto: decimal.Zero})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.RegisterPayment(ctx, out.ID, dto.PaymentRequest{Monto: decimal.NewFromInt(300)})
	assert.ErrorIs(t, err, domain.ErrOverpayment)

	pay, err := uc.RegisterPayment(ctx, out.ID, dto.PaymentRequest{Monto: decimal.NewFromInt(100), Fecha: "2025-03-11"})
	require.NoError(t, err)
	assert.Equal(t, "efectivo", pay.Metodo)
	assert.Equal(t, "2025-03-11", pay.Fecha)
	assert.True(t, decimal.NewFromInt(100).Equal(store.Purchase(out.ID).Pagado))

	detail, err := uc.GetPurchase(ctx, out.ID)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(145).Equal(detail.Saldo))
	assert.Len(t, detail.Pagos, 1)

	_, err = uc.CancelPurchase(ctx, out.ID, nil)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestRegisterPayment_CompraAnulada(t *testing.T) {
	ctx := context.Background()
	_, uc := setup(t)

	out, err := uc.CreatePurchase(ctx, purchaseRequest(), nil)
	require.NoError(t, err)
	_, err = uc.CancelPurchase(ctx, out.ID, nil)
	require.NoError(t, err)

	_, err = uc.RegisterPayment(ctx, out.ID, dto.PaymentRequest{Monto: decimal.NewFromInt(10)})
	assert.ErrorIs(t, err, domain.ErrPurchaseCancelled)
}

func TestCreateReturn_CompraDeOtroProveedor(t *testing.T) {
	ctx := context.Background()
	store, uc := setup(t)

	out, err := uc.CreatePurchase(ctx, purchaseRequest(), nil)
	require.NoError(t, err)

	_, err = uc.CreateReturn(ctx, dto.CreateReturnRequest{
		IDProveedor: 2,
		IDCompra:    &out.ID,
		Detalles:    []dto.ReturnLineRequest{{IDProducto: 7, Cantidad: 1}},
	}, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 12, store.ProductStock(7))
}
