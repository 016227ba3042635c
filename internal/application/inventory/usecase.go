package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/boutique-api/internal/application/dto"
	"github.com/jhoicas/boutique-api/internal/application/ports"
	"github.com/jhoicas/boutique-api/internal/domain"
	"github.com/jhoicas/boutique-api/internal/domain/entity"
	"github.com/jhoicas/boutique-api/internal/domain/inventory"
	"github.com/jhoicas/boutique-api/internal/domain/repository"
)

// MovementUseCase registra y compensa movimientos de inventario de forma transaccional
// (ingreso, egreso, ajuste) con bloqueo de fila (SELECT FOR UPDATE) y Commit/Rollback.
type MovementUseCase struct {
	txRunner  TxRunner
	movRepo   repository.InventoryMovementRepository // lecturas fuera de transacción
	cache     ports.CatalogCache
	report    ports.MovementReportGenerator
	storeName string
	limit     int
}

// NewMovementUseCase construye el caso de uso. cache y report pueden ser nil.
func NewMovementUseCase(
	txRunner TxRunner,
	movRepo repository.InventoryMovementRepository,
	cache ports.CatalogCache,
	report ports.MovementReportGenerator,
	storeName string,
	limit int,
) *MovementUseCase {
	if limit <= 0 || limit > repository.MaxMovementRows {
		limit = repository.MaxMovementRows
	}
	return &MovementUseCase{
		txRunner:  txRunner,
		movRepo:   movRepo,
		cache:     cache,
		report:    report,
		storeName: storeName,
		limit:     limit,
	}
}

// RecordMovement inicia una transacción, bloquea el contador del destino, aplica el tipo,
// guarda el contador y el registro del kardex, y devuelve el movimiento con sus nombres.
func (uc *MovementUseCase) RecordMovement(ctx context.Context, in MovementInput) (*dto.MovementResponse, error) {
	var detail *entity.MovementDetail
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.InventoryMovementRepository,
		stockRepo repository.StockRepository,
	) error {
		mov, err := uc.ApplyInTx(ctx, movRepo, stockRepo, in)
		if err != nil {
			return err
		}
		detail, err = movRepo.GetDetail(ctx, mov.ID)
		if err != nil {
			return err
		}
		if detail == nil {
			return fmt.Errorf("movimiento %d no visible tras insertarlo", mov.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	ports.InvalidateCatalog(ctx, uc.cache)
	return ToMovementResponse(detail), nil
}

// ApplyInTx aplica un movimiento usando los repositorios proporcionados (misma transacción del caller).
// Lo usan también catálogo (stock inicial) y compras (ingresos, anulaciones, devoluciones).
func (uc *MovementUseCase) ApplyInTx(
	ctx context.Context,
	movRepo repository.InventoryMovementRepository,
	stockRepo repository.StockRepository,
	in MovementInput,
) (*entity.InventoryMovement, error) {
	// Bloquea producto y, si aplica, variante; rechaza destinos inexistentes.
	holder, err := stockRepo.LockHolder(ctx, in.Target)
	if err != nil {
		return nil, err
	}
	before := holder.Stock()
	after, err := inventory.Apply(in.Tipo, before, in.Cantidad)
	if err != nil {
		return nil, err
	}
	holder.SetStock(after)
	if err := stockRepo.SaveHolder(ctx, holder); err != nil {
		return nil, err
	}
	mov := &entity.InventoryMovement{
		ProductID:     in.Target.Product(),
		VariantID:     inventory.VariantID(in.Target),
		Tipo:          in.Tipo,
		Cantidad:      in.Cantidad,
		StockAnterior: before,
		StockNuevo:    after,
		Referencia:    in.Referencia,
		Nota:          in.Nota,
		UserID:        in.UserID,
	}
	if err := movRepo.Create(ctx, mov); err != nil {
		return nil, err
	}
	return mov, nil
}

// DeleteMovement compensa el efecto del movimiento sobre el mismo contador y borra la fila.
// Un ajuste no tiene inverso y se rechaza.
func (uc *MovementUseCase) DeleteMovement(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.ErrMovementNotFound
	}
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.InventoryMovementRepository,
		stockRepo repository.StockRepository,
	) error {
		mov, err := movRepo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if mov == nil {
			return domain.ErrMovementNotFound
		}
		if !mov.Tipo.Reversible() {
			return domain.ErrIrreversibleMovement
		}
		holder, err := stockRepo.LockHolder(ctx, inventory.NewTarget(mov.ProductID, mov.VariantID))
		if err != nil {
			return err
		}
		restored, err := inventory.Reverse(mov.Tipo, holder.Stock(), mov.Cantidad)
		if err != nil {
			return err
		}
		holder.SetStock(restored)
		if err := stockRepo.SaveHolder(ctx, holder); err != nil {
			return err
		}
		return movRepo.Delete(ctx, mov.ID)
	})
	if err != nil {
		return err
	}
	ports.InvalidateCatalog(ctx, uc.cache)
	return nil
}

// GetMovement obtiene un movimiento con sus nombres.
func (uc *MovementUseCase) GetMovement(ctx context.Context, id int64) (*dto.MovementResponse, error) {
	detail, err := uc.movRepo.GetDetail(ctx, id)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, domain.ErrMovementNotFound
	}
	return ToMovementResponse(detail), nil
}

// ListMovements lista el kardex filtrado, ordenado por fecha y con tope de filas.
func (uc *MovementUseCase) ListMovements(ctx context.Context, q dto.MovementListQuery) ([]dto.MovementResponse, error) {
	filter, err := ParseMovementQuery(q, uc.limit)
	if err != nil {
		return nil, err
	}
	list, err := uc.movRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(list))
	for _, d := range list {
		out = append(out, *ToMovementResponse(d))
	}
	return out, nil
}

// MovementReportPDF genera el PDF del mismo listado que ListMovements.
func (uc *MovementUseCase) MovementReportPDF(ctx context.Context, q dto.MovementListQuery) ([]byte, error) {
	if uc.report == nil {
		return nil, fmt.Errorf("reporte PDF no configurado")
	}
	rows, err := uc.ListMovements(ctx, q)
	if err != nil {
		return nil, err
	}
	meta := ports.MovementReportMeta{
		StoreName:   uc.storeName,
		Filtros:     describeFilters(q),
		GeneratedAt: time.Now(),
	}
	return uc.report.GenerateMovementsPDF(ctx, meta, rows)
}

func describeFilters(q dto.MovementListQuery) string {
	var parts []string
	if q.Producto != "" {
		parts = append(parts, "producto #"+q.Producto)
	}
	if q.Variante != "" {
		parts = append(parts, "variante #"+q.Variante)
	}
	if q.Tipo != "" {
		parts = append(parts, "tipo "+q.Tipo)
	}
	if len(parts) == 0 {
		return "Todos los movimientos"
	}
	return strings.Join(parts, ", ")
}

// ToMovementResponse convierte el detalle del kardex a su salida HTTP.
func ToMovementResponse(d *entity.MovementDetail) *dto.MovementResponse {
	if d == nil {
		return nil
	}
	return &dto.MovementResponse{
		ID:            d.ID,
		IDProducto:    d.ProductID,
		IDVariante:    d.VariantID,
		Tipo:          string(d.Tipo),
		Cantidad:      d.Cantidad,
		StockAnterior: d.StockAnterior,
		StockNuevo:    d.StockNuevo,
		Referencia:    d.Referencia,
		Nota:          d.Nota,
		IDUsuario:     d.UserID,
		CreatedAt:     d.CreatedAt,
		Producto:      d.ProductoNombre,
		VarianteSKU:   d.VarianteSKU,
		Color:         d.ColorNombre,
		Talla:         d.TallaNombre,
		Usuario:       d.UsuarioNombre,
	}
}
