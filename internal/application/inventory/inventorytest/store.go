// Package inventorytest ofrece un almacén en memoria con transacciones simuladas
// (snapshot + rollback) para probar los casos de uso que mueven stock sin PostgreSQL.
package inventorytest

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jhoicas/boutique-api/internal/domain"
	"github.com/jhoicas/boutique-api/internal/domain/entity"
	"github.com/jhoicas/boutique-api/internal/domain/inventory"
	"github.com/jhoicas/boutique-api/internal/domain/repository"
)

type state struct {
	products  map[int64]entity.Product
	variants  map[int64]entity.ProductVariant
	movements map[int64]entity.InventoryMovement
	purchases map[int64]entity.Purchase
	payments  []entity.SupplierPayment
	returns   map[int64]entity.SupplierReturn
	seq       int64
}

func (s *state) clone() *state {
	c := &state{
		products:  make(map[int64]entity.Product, len(s.products)),
		variants:  make(map[int64]entity.ProductVariant, len(s.variants)),
		movements: make(map[int64]entity.InventoryMovement, len(s.movements)),
		purchases: make(map[int64]entity.Purchase, len(s.purchases)),
		payments:  append([]entity.SupplierPayment(nil), s.payments...),
		returns:   make(map[int64]entity.SupplierReturn, len(s.returns)),
		seq:       s.seq,
	}
	for k, v := range s.products {
		c.products[k] = v
	}
	for k, v := range s.variants {
		c.variants[k] = v
	}
	for k, v := range s.movements {
		c.movements[k] = v
	}
	for k, v := range s.purchases {
		c.purchases[k] = v
	}
	for k, v := range s.returns {
		c.returns[k] = v
	}
	return c
}

// Store base de datos en memoria. Las transacciones se serializan con un mutex.
type Store struct {
	mu    sync.Mutex
	st    *state
	users map[int64]string
	now   func() time.Time

	// FailMovementCreate, si no es nil, hace fallar el siguiente insert del kardex.
	FailMovementCreate error
}

// NewStore crea un almacén vacío. Los ids autogenerados empiezan en 1000.
func NewStore() *Store {
	return &Store{
		st: &state{
			products:  map[int64]entity.Product{},
			variants:  map[int64]entity.ProductVariant{},
			movements: map[int64]entity.InventoryMovement{},
			purchases: map[int64]entity.Purchase{},
			returns:   map[int64]entity.SupplierReturn{},
			seq:       1000,
		},
		users: map[int64]string{},
		now:   time.Now,
	}
}

// PutProduct inserta o reemplaza un producto con su id.
func (s *Store) PutProduct(id int64, nombre string, stock int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.products[id] = entity.Product{ID: id, Nombre: nombre, Slug: strings.ToLower(nombre), Stock: stock, Activo: true, CreatedAt: s.now()}
}

// PutVariant inserta o reemplaza una variante con su id.
func (s *Store) PutVariant(id, productID int64, sku string, stock int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.variants[id] = entity.ProductVariant{ID: id, ProductID: productID, SKU: &sku, Stock: stock, CreatedAt: s.now()}
}

// PutUser registra el nombre de un usuario para los listados.
func (s *Store) PutUser(id int64, nombre string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[id] = nombre
}

// ProductStock stock propio del producto (-1 si no existe).
func (s *Store) ProductStock(id int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.st.products[id]
	if !ok {
		return -1
	}
	return p.Stock
}

// VariantStock stock de la variante (-1 si no existe).
func (s *Store) VariantStock(id int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.st.variants[id]
	if !ok {
		return -1
	}
	return v.Stock
}

// Movements copia de los movimientos ordenados por id.
func (s *Store) Movements() []entity.InventoryMovement {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.InventoryMovement, 0, len(s.st.movements))
	for _, m := range s.st.movements {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Purchase copia de una compra o nil.
func (s *Store) Purchase(id int64) *entity.Purchase {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.st.purchases[id]
	if !ok {
		return nil
	}
	return &p
}

// ── transacciones ────────────────────────────────────────────────────────────

func (s *Store) inTx(fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := s.st.clone()
	if err := fn(); err != nil {
		s.st = snapshot
		return err
	}
	return nil
}

// Run implementa inventory.TxRunner.
func (s *Store) Run(ctx context.Context, fn func(
	movRepo repository.InventoryMovementRepository,
	stockRepo repository.StockRepository,
) error) error {
	return s.inTx(func() error {
		return fn(&MovementRepo{s: s, inTx: true}, &StockRepo{s: s})
	})
}

// RunCatalog implementa catalog.TxRunner.
func (s *Store) RunCatalog(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	variantRepo repository.VariantRepository,
	movRepo repository.InventoryMovementRepository,
	stockRepo repository.StockRepository,
) error) error {
	return s.inTx(func() error {
		return fn(&ProductRepo{s: s, inTx: true}, &VariantRepo{s: s, inTx: true},
			&MovementRepo{s: s, inTx: true}, &StockRepo{s: s})
	})
}

// RunPurchasing implementa purchasing.TxRunner.
func (s *Store) RunPurchasing(ctx context.Context, fn func(
	movRepo repository.InventoryMovementRepository,
	stockRepo repository.StockRepository,
	purchaseRepo repository.PurchaseRepository,
	returnRepo repository.ReturnRepository,
) error) error {
	return s.inTx(func() error {
		return fn(&MovementRepo{s: s, inTx: true}, &StockRepo{s: s},
			&PurchaseRepo{s: s, inTx: true}, &ReturnRepo{s: s, inTx: true})
	})
}

// MovementRepo devuelve el repositorio del kardex para lecturas fuera de transacción.
func (s *Store) MovementRepo() *MovementRepo { return &MovementRepo{s: s} }

// ProductRepo devuelve el repositorio de productos fuera de transacción.
func (s *Store) ProductRepo() *ProductRepo { return &ProductRepo{s: s} }

// VariantRepo devuelve el repositorio de variantes fuera de transacción.
func (s *Store) VariantRepo() *VariantRepo { return &VariantRepo{s: s} }

// PurchaseRepo devuelve el repositorio de compras fuera de transacción.
func (s *Store) PurchaseRepo() *PurchaseRepo { return &PurchaseRepo{s: s} }

// ReturnRepo devuelve el repositorio de devoluciones fuera de transacción.
func (s *Store) ReturnRepo() *ReturnRepo { return &ReturnRepo{s: s} }

func (s *Store) nextID() int64 {
	s.st.seq++
	return s.st.seq
}

// guard bloquea el mutex solo fuera de transacción (dentro, Run ya lo tiene).
func (s *Store) guard(inTx bool) func() {
	if inTx {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

// ── stock ────────────────────────────────────────────────────────────────────

// StockRepo implementa repository.StockRepository; solo existe dentro de una transacción.
type StockRepo struct {
	s *Store
}

func (r *StockRepo) LockHolder(_ context.Context, target inventory.Target) (*inventory.StockHolder, error) {
	p, ok := r.s.st.products[target.Product()]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	switch t := target.(type) {
	case inventory.ProductTarget:
		return inventory.NewStockHolder(t, p.Stock), nil
	case inventory.VariantTarget:
		v, ok := r.s.st.variants[t.VariantID]
		if !ok || v.ProductID != t.ProductID {
			return nil, domain.ErrVariantNotFound
		}
		return inventory.NewStockHolder(t, v.Stock), nil
	}
	return nil, errors.New("destino desconocido")
}

func (r *StockRepo) SaveHolder(_ context.Context, h *inventory.StockHolder) error {
	switch t := h.Target.(type) {
	case inventory.ProductTarget:
		p, ok := r.s.st.products[t.ProductID]
		if !ok {
			return domain.ErrNotFound
		}
		p.Stock = h.Stock()
		r.s.st.products[t.ProductID] = p
	case inventory.VariantTarget:
		v, ok := r.s.st.variants[t.VariantID]
		if !ok {
			return domain.ErrNotFound
		}
		v.Stock = h.Stock()
		r.s.st.variants[t.VariantID] = v
	}
	return nil
}

// ── kardex ───────────────────────────────────────────────────────────────────

// MovementRepo implementa repository.InventoryMovementRepository.
type MovementRepo struct {
	s    *Store
	inTx bool
}

func (r *MovementRepo) Create(_ context.Context, m *entity.InventoryMovement) error {
	defer r.s.guard(r.inTx)()
	if err := r.s.FailMovementCreate; err != nil {
		r.s.FailMovementCreate = nil
		return err
	}
	m.ID = r.s.nextID()
	m.CreatedAt = r.s.now()
	r.s.st.movements[m.ID] = *m
	return nil
}

func (r *MovementRepo) GetForUpdate(_ context.Context, id int64) (*entity.InventoryMovement, error) {
	defer r.s.guard(r.inTx)()
	m, ok := r.s.st.movements[id]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

func (r *MovementRepo) GetDetail(_ context.Context, id int64) (*entity.MovementDetail, error) {
	defer r.s.guard(r.inTx)()
	m, ok := r.s.st.movements[id]
	if !ok {
		return nil, nil
	}
	return r.s.detail(m), nil
}

func (r *MovementRepo) Delete(_ context.Context, id int64) error {
	defer r.s.guard(r.inTx)()
	delete(r.s.st.movements, id)
	return nil
}

func (r *MovementRepo) List(_ context.Context, f repository.MovementFilter) ([]*entity.MovementDetail, error) {
	defer r.s.guard(r.inTx)()
	list := make([]*entity.MovementDetail, 0)
	for _, m := range r.s.st.movements {
		if f.ProductID != nil && m.ProductID != *f.ProductID {
			continue
		}
		if f.VariantID != nil && (m.VariantID == nil || *m.VariantID != *f.VariantID) {
			continue
		}
		if f.Tipo != nil && m.Tipo != *f.Tipo {
			continue
		}
		list = append(list, r.s.detail(m))
	}
	sort.Slice(list, func(i, j int) bool {
		if f.Ascending {
			return list[i].ID < list[j].ID
		}
		return list[i].ID > list[j].ID
	})
	if f.Limit > 0 && len(list) > f.Limit {
		list = list[:f.Limit]
	}
	return list, nil
}

func (s *Store) detail(m entity.InventoryMovement) *entity.MovementDetail {
	d := &entity.MovementDetail{InventoryMovement: m, ProductoNombre: s.st.products[m.ProductID].Nombre}
	if m.VariantID != nil {
		if v, ok := s.st.variants[*m.VariantID]; ok {
			d.VarianteSKU = v.SKU
		}
	}
	if m.UserID != nil {
		if name, ok := s.users[*m.UserID]; ok {
			d.UsuarioNombre = &name
		}
	}
	return d
}
