package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/boutique-api/internal/domain/entity"
	"github.com/jhoicas/boutique-api/internal/domain/repository"
)

type analyticsStub struct {
	since     time.Time
	threshold int
	lowErr    error
}

func (s *analyticsStub) MovementCountsSince(_ context.Context, since time.Time) (map[entity.MovementType]int, error) {
	s.since = since
	return map[entity.MovementType]int{entity.MovementEgreso: 4}, nil
}

func (s *analyticsStub) LowStock(_ context.Context, threshold, _ int) ([]repository.LowStockItem, error) {
	s.threshold = threshold
	if s.lowErr != nil {
		return nil, s.lowErr
	}
	v := int64(55)
	return []repository.LowStockItem{{ProductID: 8, VariantID: &v, Nombre: "Pantalón", Detalle: "Negro / M", Stock: 1}}, nil
}

func (s *analyticsStub) OutstandingPurchases(context.Context) (decimal.Decimal, error) {
	return decimal.RequireFromString("145.005"), nil
}

func (s *analyticsStub) UnreadMessages(context.Context) (int, error) { return 2, nil }

func TestGetSummary(t *testing.T) {
	stub := &analyticsStub{}
	uc := NewDashboardUseCase(stub, 3)
	uc.now = func() time.Time { return time.Date(2026, 10, 19, 15, 30, 0, 0, time.UTC) }

	out, err := uc.GetSummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC), stub.since)
	assert.Equal(t, 3, stub.threshold)
	assert.Equal(t, map[string]int{"ingreso": 0, "egreso": 4, "ajuste": 0}, out.MovimientosHoy)
	require.Len(t, out.StockBajo, 1)
	assert.Equal(t, "Negro / M", out.StockBajo[0].Detalle)
	assert.Equal(t, "145.01", out.SaldoProveedores.String())
	assert.Equal(t, 2, out.MensajesNoLeidos)
	assert.Equal(t, "19/10/2026", out.DateLabel)
}

func TestGetSummary_PropagaError(t *testing.T) {
	boom := errors.New("db caída")
	uc := NewDashboardUseCase(&analyticsStub{lowErr: boom}, 3)
	_, err := uc.GetSummary(context.Background())
	assert.ErrorIs(t, err, boom)
}
