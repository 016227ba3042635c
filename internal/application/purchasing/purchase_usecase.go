package purchasing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/boutique-api/internal/application/dto"
	appinventory "github.com/jhoicas/boutique-api/internal/application/inventory"
	"github.com/jhoicas/boutique-api/internal/application/ports"
	"github.com/jhoicas/boutique-api/internal/domain"
	"github.com/jhoicas/boutique-api/internal/domain/entity"
	"github.com/jhoicas/boutique-api/internal/domain/inventory"
	"github.com/jhoicas/boutique-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// PurchaseUseCase compras, anulaciones, devoluciones y pagos a proveedores.
// Todo lo que mueve stock pasa por StockRecorder dentro de RunPurchasing.
type PurchaseUseCase struct {
	txRunner     TxRunner
	stock        StockRecorder
	suppliers    repository.SupplierRepository
	purchaseRepo repository.PurchaseRepository
	returnRepo   repository.ReturnRepository
	cache        ports.CatalogCache
	now          func() time.Time
}

// NewPurchaseUseCase construye el caso de uso.
func NewPurchaseUseCase(
	txRunner TxRunner,
	stock StockRecorder,
	suppliers repository.SupplierRepository,
	purchaseRepo repository.PurchaseRepository,
	returnRepo repository.ReturnRepository,
	cache ports.CatalogCache,
) *PurchaseUseCase {
	return &PurchaseUseCase{
		txRunner:     txRunner,
		stock:        stock,
		suppliers:    suppliers,
		purchaseRepo: purchaseRepo,
		returnRepo:   returnRepo,
		cache:        cache,
		now:          time.Now,
	}
}

// CreatePurchase registra la compra y un ingreso por línea en una sola transacción.
func (uc *PurchaseUseCase) CreatePurchase(ctx context.Context, in dto.CreatePurchaseRequest, userID *int64) (*dto.PurchaseResponse, error) {
	if len(in.Detalles) == 0 {
		return nil, domain.ErrEmptyDetail
	}
	fecha, err := time.Parse(dateLayout, in.Fecha)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	supplier, err := uc.requireSupplier(ctx, in.IDProveedor)
	if err != nil {
		return nil, err
	}

	purchase := &entity.Purchase{
		SupplierID:      supplier.ID,
		SupplierNombre:  supplier.Nombre,
		Fecha:           fecha,
		NumeroDocumento: strings.TrimSpace(in.NumeroDocumento),
		Estado:          entity.PurchaseRegistrada,
		Total:           decimal.Zero,
		Pagado:          decimal.Zero,
		Nota:            strings.TrimSpace(in.Nota),
		UserID:          userID,
	}
	for _, l := range in.Detalles {
		if l.IDProducto <= 0 || l.Cantidad <= 0 || l.CostoUnitario.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		if l.Cantidad > inventory.MaxStock {
			return nil, domain.ErrQuantityTooLarge
		}
		d := entity.PurchaseDetail{
			ProductID:     l.IDProducto,
			VariantID:     l.IDVariante,
			Cantidad:      l.Cantidad,
			CostoUnitario: l.CostoUnitario,
		}
		purchase.Detalles = append(purchase.Detalles, d)
		purchase.Total = purchase.Total.Add(d.Subtotal())
	}

	err = uc.txRunner.RunPurchasing(ctx, func(
		movRepo repository.InventoryMovementRepository,
		stockRepo repository.StockRepository,
		purchaseRepo repository.PurchaseRepository,
		_ repository.ReturnRepository,
	) error {
		targets := make([]inventory.Target, len(purchase.Detalles))
		for i, d := range purchase.Detalles {
			targets[i] = inventory.NewTarget(d.ProductID, d.VariantID)
		}
		if err := lockLines(ctx, stockRepo, targets); err != nil {
			return err
		}
		if err := purchaseRepo.Create(ctx, purchase); err != nil {
			return err
		}
		ref := fmt.Sprintf("Compra #%d", purchase.ID)
		for _, d := range purchase.Detalles {
			in := lineMovement(d.ProductID, d.VariantID, entity.MovementIngreso, d.Cantidad, ref, userID)
			if _, err := uc.stock.ApplyInTx(ctx, movRepo, stockRepo, in); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	ports.InvalidateCatalog(ctx, uc.cache)
	return ToPurchaseResponse(purchase, nil), nil
}

// CancelPurchase revierte cada línea con un egreso y marca la compra como anulada.
// Si parte de la mercadería ya salió, el egreso falla con ErrInsufficientStock y nada cambia.
func (uc *PurchaseUseCase) CancelPurchase(ctx context.Context, id int64, userID *int64) (*dto.PurchaseResponse, error) {
	var out *entity.Purchase
	err := uc.txRunner.RunPurchasing(ctx, func(
		movRepo repository.InventoryMovementRepository,
		stockRepo repository.StockRepository,
		purchaseRepo repository.PurchaseRepository,
		_ repository.ReturnRepository,
	) error {
		p, err := purchaseRepo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}
		if p.Estado == entity.PurchaseAnulada {
			return domain.ErrPurchaseCancelled
		}
		if p.Pagado.IsPositive() {
			return fmt.Errorf("%w: la compra tiene pagos registrados", domain.ErrConflict)
		}
		ref := fmt.Sprintf("Anulación compra #%d", p.ID)
		for _, d := range p.Detalles {
			in := lineMovement(d.ProductID, d.VariantID, entity.MovementEgreso, d.Cantidad, ref, userID)
			if _, err := uc.stock.ApplyInTx(ctx, movRepo, stockRepo, in); err != nil {
				return err
			}
		}
		if err := purchaseRepo.SetEstado(ctx, p.ID, entity.PurchaseAnulada); err != nil {
			return err
		}
		p.Estado = entity.PurchaseAnulada
		out = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	ports.InvalidateCatalog(ctx, uc.cache)
	return ToPurchaseResponse(out, nil), nil
}

// GetPurchase compra con detalles y pagos.
func (uc *PurchaseUseCase) GetPurchase(ctx context.Context, id int64) (*dto.PurchaseResponse, error) {
	p, err := uc.purchaseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	pays, err := uc.purchaseRepo.ListPayments(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToPurchaseResponse(p, pays), nil
}

// ListPurchases listado sin detalles.
func (uc *PurchaseUseCase) ListPurchases(ctx context.Context, q dto.PurchaseListQuery) ([]dto.PurchaseResponse, error) {
	f := repository.PurchaseFilter{Estado: q.Estado, Limit: q.Limit, Offset: q.Offset}
	if q.Proveedor > 0 {
		f.SupplierID = &q.Proveedor
	}
	var err error
	if f.From, err = optionalDate(q.Desde); err != nil {
		return nil, err
	}
	if f.To, err = optionalDate(q.Hasta); err != nil {
		return nil, err
	}
	list, err := uc.purchaseRepo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PurchaseResponse, 0, len(list))
	for _, p := range list {
		r := ToPurchaseResponse(p, nil)
		r.Detalles = nil
		out = append(out, *r)
	}
	return out, nil
}

// RegisterPayment aplica un pago a la compra. La fila de la compra queda bloqueada
// mientras se valida el saldo.
func (uc *PurchaseUseCase) RegisterPayment(ctx context.Context, purchaseID int64, in dto.PaymentRequest) (*dto.PaymentResponse, error) {
	if !in.Monto.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	fecha := uc.now()
	if in.Fecha != "" {
		var err error
		if fecha, err = time.Parse(dateLayout, in.Fecha); err != nil {
			return nil, domain.ErrInvalidInput
		}
	}
	metodo := in.Metodo
	if metodo == "" {
		metodo = "efectivo"
	}
	pay := &entity.SupplierPayment{
		PurchaseID: purchaseID,
		Monto:      in.Monto,
		Metodo:     metodo,
		Fecha:      fecha,
		Nota:       strings.TrimSpace(in.Nota),
	}
	err := uc.txRunner.RunPurchasing(ctx, func(
		_ repository.InventoryMovementRepository,
		_ repository.StockRepository,
		purchaseRepo repository.PurchaseRepository,
		_ repository.ReturnRepository,
	) error {
		p, err := purchaseRepo.GetForUpdate(ctx, purchaseID)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}
		if p.Estado == entity.PurchaseAnulada {
			return domain.ErrPurchaseCancelled
		}
		if in.Monto.GreaterThan(p.Saldo()) {
			return domain.ErrOverpayment
		}
		return purchaseRepo.AddPayment(ctx, pay)
	})
	if err != nil {
		return nil, err
	}
	return ToPaymentResponse(pay), nil
}

// CreateReturn registra la devolución y un egreso por línea.
func (uc *PurchaseUseCase) CreateReturn(ctx context.Context, in dto.CreateReturnRequest, userID *int64) (*dto.ReturnResponse, error) {
	if len(in.Detalles) == 0 {
		return nil, domain.ErrEmptyDetail
	}
	if _, err := uc.requireSupplier(ctx, in.IDProveedor); err != nil {
		return nil, err
	}
	ret := &entity.SupplierReturn{
		SupplierID: in.IDProveedor,
		PurchaseID: in.IDCompra,
		Motivo:     strings.TrimSpace(in.Motivo),
		UserID:     userID,
	}
	for _, l := range in.Detalles {
		if l.IDProducto <= 0 || l.Cantidad <= 0 {
			return nil, domain.ErrInvalidInput
		}
		if l.Cantidad > inventory.MaxStock {
			return nil, domain.ErrQuantityTooLarge
		}
		ret.Detalles = append(ret.Detalles, entity.ReturnDetail{
			ProductID: l.IDProducto,
			VariantID: l.IDVariante,
			Cantidad:  l.Cantidad,
		})
	}

	err := uc.txRunner.RunPurchasing(ctx, func(
		movRepo repository.InventoryMovementRepository,
		stockRepo repository.StockRepository,
		purchaseRepo repository.PurchaseRepository,
		returnRepo repository.ReturnRepository,
	) error {
		if ret.PurchaseID != nil {
			p, err := purchaseRepo.GetForUpdate(ctx, *ret.PurchaseID)
			if err != nil {
				return err
			}
			if p == nil {
				return domain.ErrNotFound
			}
			if p.SupplierID != ret.SupplierID {
				return fmt.Errorf("%w: la compra pertenece a otro proveedor", domain.ErrInvalidInput)
			}
			if p.Estado == entity.PurchaseAnulada {
				return domain.ErrPurchaseCancelled
			}
		}
		targets := make([]inventory.Target, len(ret.Detalles))
		for i, d := range ret.Detalles {
			targets[i] = inventory.NewTarget(d.ProductID, d.VariantID)
		}
		if err := lockLines(ctx, stockRepo, targets); err != nil {
			return err
		}
		if err := returnRepo.Create(ctx, ret); err != nil {
			return err
		}
		ref := fmt.Sprintf("Devolución #%d", ret.ID)
		for _, d := range ret.Detalles {
			in := lineMovement(d.ProductID, d.VariantID, entity.MovementEgreso, d.Cantidad, ref, userID)
			if _, err := uc.stock.ApplyInTx(ctx, movRepo, stockRepo, in); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	ports.InvalidateCatalog(ctx, uc.cache)
	return ToReturnResponse(ret), nil
}

func (uc *PurchaseUseCase) GetReturn(ctx context.Context, id int64) (*dto.ReturnResponse, error) {
	r, err := uc.returnRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}
	return ToReturnResponse(r), nil
}

func (uc *PurchaseUseCase) ListReturns(ctx context.Context, supplierID int64, limit, offset int) ([]dto.ReturnResponse, error) {
	var sid *int64
	if supplierID > 0 {
		sid = &supplierID
	}
	list, err := uc.returnRepo.List(ctx, sid, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ReturnResponse, 0, len(list))
	for _, r := range list {
		out = append(out, *ToReturnResponse(r))
	}
	return out, nil
}

func (uc *PurchaseUseCase) requireSupplier(ctx context.Context, id int64) (*entity.Supplier, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidInput
	}
	s, err := uc.suppliers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, fmt.Errorf("%w: proveedor %d", domain.ErrNotFound, id)
	}
	return s, nil
}

func lineMovement(productID int64, variantID *int64, tipo entity.MovementType, cantidad int, ref string, userID *int64) appinventory.MovementInput {
	return appinventory.MovementInput{
		Target:     inventory.NewTarget(productID, variantID),
		Tipo:       tipo,
		Cantidad:   cantidad,
		Referencia: &ref,
		UserID:     userID,
	}
}

func optionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	return &t, nil
}

// ToPurchaseResponse convierte la compra; pays puede ser nil.
func ToPurchaseResponse(p *entity.Purchase, pays []*entity.SupplierPayment) *dto.PurchaseResponse {
	out := &dto.PurchaseResponse{
		ID:              p.ID,
		IDProveedor:     p.SupplierID,
		Proveedor:       p.SupplierNombre,
		Fecha:           p.Fecha.Format(dateLayout),
		NumeroDocumento: p.NumeroDocumento,
		Estado:          p.Estado,
		Total:           p.Total,
		Pagado:          p.Pagado,
		Saldo:           p.Saldo(),
		Nota:            p.Nota,
		CreatedAt:       p.CreatedAt,
	}
	for _, d := range p.Detalles {
		out.Detalles = append(out.Detalles, dto.PurchaseDetailResponse{
			ID:            d.ID,
			IDProducto:    d.ProductID,
			IDVariante:    d.VariantID,
			Cantidad:      d.Cantidad,
			CostoUnitario: d.CostoUnitario,
			Subtotal:      d.Subtotal(),
		})
	}
	for _, pay := range pays {
		out.Pagos = append(out.Pagos, *ToPaymentResponse(pay))
	}
	return out
}

// lockLines bloquea el contador de cada línea antes de escribir el detalle,
// así un producto o variante inexistente sale como ErrProductNotFound / ErrVariantNotFound.
func lockLines(ctx context.Context, stockRepo repository.StockRepository, targets []inventory.Target) error {
	for _, t := range targets {
		if _, err := stockRepo.LockHolder(ctx, t); err != nil {
			return err
		}
	}
	return nil
}

func ToPaymentResponse(p *entity.SupplierPayment) *dto.PaymentResponse {
	return &dto.PaymentResponse{
		ID:        p.ID,
		IDCompra:  p.PurchaseID,
		Monto:     p.Monto,
		Metodo:    p.Metodo,
		Fecha:     p.Fecha.Format(dateLayout),
		Nota:      p.Nota,
		CreatedAt: p.CreatedAt,
	}
}

func ToReturnResponse(r *entity.SupplierReturn) *dto.ReturnResponse {
	out := &dto.ReturnResponse{
		ID:          r.ID,
		IDProveedor: r.SupplierID,
		IDCompra:    r.PurchaseID,
		Motivo:      r.Motivo,
		CreatedAt:   r.CreatedAt,
	}
	for _, d := range r.Detalles {
		out.Detalles = append(out.Detalles, dto.ReturnLineRequest{
			IDProducto: d.ProductID,
			IDVariante: d.VariantID,
			Cantidad:   d.Cantidad,
		})
	}
	return out
}
