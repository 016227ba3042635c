// Package analytics contiene el resumen del dashboard del back-office.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/boutique-api/internal/application/dto"
	"github.com/jhoicas/boutique-api/internal/domain/entity"
	"github.com/jhoicas/boutique-api/internal/domain/repository"
)

const dashboardLowStockRows = 20 // filas del widget de stock bajo

// DashboardUseCase genera el resumen del día.
//
// Fuente de datos: AnalyticsRepository (consultas read-only).
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	threshold     int
	now           func() time.Time
}

// NewDashboardUseCase construye el caso de uso. threshold es el umbral de stock bajo.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository, threshold int) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo, threshold: threshold, now: time.Now}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Cuatro consultas en paralelo:
//  1. MovementCountsSince(hoy 00:00) → MovimientosHoy
//  2. LowStock(umbral)               → StockBajo
//  3. OutstandingPurchases           → SaldoProveedores
//  4. UnreadMessages                 → MensajesNoLeidos
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	now := uc.now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	type countsResult struct {
		counts map[entity.MovementType]int
		err    error
	}
	type lowStockResult struct {
		items []repository.LowStockItem
		err   error
	}
	type balanceResult struct {
		saldo decimal.Decimal
		err   error
	}
	type unreadResult struct {
		n   int
		err error
	}

	countsCh := make(chan countsResult, 1)
	lowCh := make(chan lowStockResult, 1)
	balanceCh := make(chan balanceResult, 1)
	unreadCh := make(chan unreadResult, 1)

	go func() {
		c, err := uc.analyticsRepo.MovementCountsSince(ctx, todayStart)
		countsCh <- countsResult{c, err}
	}()
	go func() {
		items, err := uc.analyticsRepo.LowStock(ctx, uc.threshold, dashboardLowStockRows)
		lowCh <- lowStockResult{items, err}
	}()
	go func() {
		s, err := uc.analyticsRepo.OutstandingPurchases(ctx)
		balanceCh <- balanceResult{s, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.UnreadMessages(ctx)
		unreadCh <- unreadResult{n, err}
	}()

	counts := <-countsCh
	low := <-lowCh
	balance := <-balanceCh
	unread := <-unreadCh

	if counts.err != nil {
		return nil, fmt.Errorf("dashboard: movimientos de hoy: %w", counts.err)
	}
	if low.err != nil {
		return nil, fmt.Errorf("dashboard: stock bajo: %w", low.err)
	}
	if balance.err != nil {
		return nil, fmt.Errorf("dashboard: saldo proveedores: %w", balance.err)
	}
	if unread.err != nil {
		return nil, fmt.Errorf("dashboard: mensajes: %w", unread.err)
	}

	movs := map[string]int{
		string(entity.MovementIngreso): 0,
		string(entity.MovementEgreso):  0,
		string(entity.MovementAjuste):  0,
	}
	for tipo, n := range counts.counts {
		movs[string(tipo)] = n
	}
	stockBajo := make([]dto.LowStockDTO, 0, len(low.items))
	for _, it := range low.items {
		stockBajo = append(stockBajo, dto.LowStockDTO{
			IDProducto: it.ProductID,
			IDVariante: it.VariantID,
			Nombre:     it.Nombre,
			Detalle:    it.Detalle,
			Stock:      it.Stock,
		})
	}

	return &dto.DashboardSummaryDTO{
		MovimientosHoy:   movs,
		StockBajo:        stockBajo,
		UmbralStockBajo:  uc.threshold,
		SaldoProveedores: balance.saldo.Round(2),
		MensajesNoLeidos: unread.n,
		DateLabel:        now.Format("02/01/2006"),
	}, nil
}
