package inventorytest

import (
	"context"
	"errors"
	"sort"

	"github.com/jhoicas/boutique-api/internal/domain"
	"github.com/jhoicas/boutique-api/internal/domain/entity"
	"github.com/jhoicas/boutique-api/internal/domain/repository"
)

// PurchaseRepo implementa repository.PurchaseRepository sobre el Store.
type PurchaseRepo struct {
	s    *Store
	inTx bool
}

// errDetailFK imita la violación de FK que PostgreSQL reporta al insertar un detalle huérfano.
var errDetailFK = errors.New("inventorytest: detalle referencia un producto o variante inexistente")

func (s *Store) checkLine(productID int64, variantID *int64) error {
	if _, ok := s.st.products[productID]; !ok {
		return errDetailFK
	}
	if variantID != nil {
		if _, ok := s.st.variants[*variantID]; !ok {
			return errDetailFK
		}
	}
	return nil
}

func (r *PurchaseRepo) Create(_ context.Context, p *entity.Purchase) error {
	defer r.s.guard(r.inTx)()
	for _, d := range p.Detalles {
		if err := r.s.checkLine(d.ProductID, d.VariantID); err != nil {
			return err
		}
	}
	p.ID = r.s.nextID()
	p.CreatedAt = r.s.now()
	detalles := make([]entity.PurchaseDetail, len(p.Detalles))
	for i, d := range p.Detalles {
		d.ID = r.s.nextID()
		d.PurchaseID = p.ID
		detalles[i] = d
	}
	p.Detalles = detalles
	r.s.st.purchases[p.ID] = *p
	return nil
}

func (r *PurchaseRepo) GetByID(_ context.Context, id int64) (*entity.Purchase, error) {
	defer r.s.guard(r.inTx)()
	p, ok := r.s.st.purchases[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *PurchaseRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Purchase, error) {
	return r.GetByID(ctx, id)
}

func (r *PurchaseRepo) SetEstado(_ context.Context, id int64, estado string) error {
	defer r.s.guard(r.inTx)()
	p, ok := r.s.st.purchases[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Estado = estado
	r.s.st.purchases[id] = p
	return nil
}

func (r *PurchaseRepo) List(_ context.Context, f repository.PurchaseFilter) ([]*entity.Purchase, error) {
	defer r.s.guard(r.inTx)()
	list := make([]*entity.Purchase, 0)
	for _, p := range r.s.st.purchases {
		if f.SupplierID != nil && p.SupplierID != *f.SupplierID {
			continue
		}
		if f.Estado != "" && p.Estado != f.Estado {
			continue
		}
		p := p
		list = append(list, &p)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID > list[j].ID })
	return list, nil
}

func (r *PurchaseRepo) AddPayment(_ context.Context, pay *entity.SupplierPayment) error {
	defer r.s.guard(r.inTx)()
	p, ok := r.s.st.purchases[pay.PurchaseID]
	if !ok {
		return domain.ErrNotFound
	}
	pay.ID = r.s.nextID()
	pay.CreatedAt = r.s.now()
	p.Pagado = p.Pagado.Add(pay.Monto)
	r.s.st.purchases[p.ID] = p
	r.s.st.payments = append(r.s.st.payments, *pay)
	return nil
}

func (r *PurchaseRepo) ListPayments(_ context.Context, purchaseID int64) ([]*entity.SupplierPayment, error) {
	defer r.s.guard(r.inTx)()
	list := make([]*entity.SupplierPayment, 0)
	for _, p := range r.s.st.payments {
		if p.PurchaseID == purchaseID {
			p := p
			list = append(list, &p)
		}
	}
	return list, nil
}

// ReturnRepo implementa repository.ReturnRepository sobre el Store.
type ReturnRepo struct {
	s    *Store
	inTx bool
}

func (r *ReturnRepo) Create(_ context.Context, ret *entity.SupplierReturn) error {
	defer r.s.guard(r.inTx)()
	for _, d := range ret.Detalles {
		if err := r.s.checkLine(d.ProductID, d.VariantID); err != nil {
			return err
		}
	}
	ret.ID = r.s.nextID()
	ret.CreatedAt = r.s.now()
	detalles := make([]entity.ReturnDetail, len(ret.Detalles))
	for i, d := range ret.Detalles {
		d.ID = r.s.nextID()
		d.ReturnID = ret.ID
		detalles[i] = d
	}
	ret.Detalles = detalles
	r.s.st.returns[ret.ID] = *ret
	return nil
}

func (r *ReturnRepo) GetByID(_ context.Context, id int64) (*entity.SupplierReturn, error) {
	defer r.s.guard(r.inTx)()
	ret, ok := r.s.st.returns[id]
	if !ok {
		return nil, nil
	}
	return &ret, nil
}

func (r *ReturnRepo) List(_ context.Context, supplierID *int64, _, _ int) ([]*entity.SupplierReturn, error) {
	defer r.s.guard(r.inTx)()
	list := make([]*entity.SupplierReturn, 0)
	for _, ret := range r.s.st.returns {
		if supplierID != nil && ret.SupplierID != *supplierID {
			continue
		}
		ret := ret
		list = append(list, &ret)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID > list[j].ID })
	return list, nil
}
