package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/boutique-api/internal/domain"
	"github.com/jhoicas/boutique-api/internal/domain/entity"
	"github.com/jhoicas/boutique-api/internal/domain/repository"
)

var (
	_ repository.PurchaseRepository = (*PurchaseRepo)(nil)
	_ repository.ReturnRepository   = (*ReturnRepo)(nil)
)

const purchaseSelect = `
	SELECT pu.id, pu.supplier_id, s.nombre, pu.fecha, pu.numero_documento, pu.estado, pu.total, pu.pagado,
	       pu.nota, pu.user_id, pu.created_at
	FROM purchases pu
	JOIN suppliers s ON s.id = pu.supplier_id`

// PurchaseRepo persistencia de compras, sus detalles y pagos. Usar con tx en escrituras.
type PurchaseRepo struct {
	q Querier
}

// NewPurchaseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPurchaseRepository(q Querier) *PurchaseRepo {
	return &PurchaseRepo{q: q}
}

// Create inserta cabecera y detalles.
func (r *PurchaseRepo) Create(ctx context.Context, p *entity.Purchase) error {
	query := `
		INSERT INTO purchases (supplier_id, fecha, numero_documento, estado, total, pagado, nota, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`
	err := r.q.QueryRow(ctx, query,
		p.SupplierID, p.Fecha, p.NumeroDocumento, p.Estado, p.Total, p.Pagado, p.Nota, p.UserID,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert purchase: %w", err)
	}
	for i := range p.Detalles {
		d := &p.Detalles[i]
		d.PurchaseID = p.ID
		err := r.q.QueryRow(ctx, `
			INSERT INTO purchase_details (purchase_id, product_id, variant_id, cantidad, costo_unitario)
			VALUES ($1, $2, $3, $4, $5) RETURNING id`,
			d.PurchaseID, d.ProductID, d.VariantID, d.Cantidad, d.CostoUnitario,
		).Scan(&d.ID)
		if err != nil {
			return lineErr("insert purchase detail", err)
		}
	}
	return nil
}

func (r *PurchaseRepo) GetByID(ctx context.Context, id int64) (*entity.Purchase, error) {
	return r.get(ctx, purchaseSelect+` WHERE pu.id = $1`, id)
}

// GetForUpdate bloquea la cabecera para anular o registrar pagos.
func (r *PurchaseRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Purchase, error) {
	return r.get(ctx, purchaseSelect+` WHERE pu.id = $1 FOR UPDATE OF pu`, id)
}

func (r *PurchaseRepo) get(ctx context.Context, query string, id int64) (*entity.Purchase, error) {
	p, err := scanPurchase(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase: %w", err)
	}
	rows, err := r.q.Query(ctx, `
		SELECT id, purchase_id, product_id, variant_id, cantidad, costo_unitario
		FROM purchase_details WHERE purchase_id = $1 ORDER BY id`, id)
	if err != nil {
		return nil, fmt.Errorf("get purchase details: %w", err)
	}
	defer rows.Close()
	p.Detalles = make([]entity.PurchaseDetail, 0)
	for rows.Next() {
		var d entity.PurchaseDetail
		if err := rows.Scan(&d.ID, &d.PurchaseID, &d.ProductID, &d.VariantID, &d.Cantidad, &d.CostoUnitario); err != nil {
			return nil, fmt.Errorf("scan purchase detail: %w", err)
		}
		p.Detalles = append(p.Detalles, d)
	}
	return p, rows.Err()
}

func (r *PurchaseRepo) SetEstado(ctx context.Context, id int64, estado string) error {
	cmd, err := r.q.Exec(ctx, `UPDATE purchases SET estado = $2 WHERE id = $1`, id, estado)
	if err != nil {
		return fmt.Errorf("set purchase estado: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve cabeceras (sin detalles), más recientes primero.
func (r *PurchaseRepo) List(ctx context.Context, f repository.PurchaseFilter) ([]*entity.Purchase, error) {
	var (
		where []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	if f.SupplierID != nil {
		where = append(where, "pu.supplier_id = "+arg(*f.SupplierID))
	}
	if f.Estado != "" {
		where = append(where, "pu.estado = "+arg(f.Estado))
	}
	if f.From != nil {
		where = append(where, "pu.fecha >= "+arg(*f.From))
	}
	if f.To != nil {
		where = append(where, "pu.fecha <= "+arg(*f.To))
	}
	query := purchaseSelect
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY pu.fecha DESC, pu.id DESC LIMIT " + arg(limitOr(f.Limit, 50, 200)) + " OFFSET " + arg(max(f.Offset, 0))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Purchase, 0)
	for rows.Next() {
		p, err := scanPurchase(rows)
		if err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// AddPayment inserta el pago y acumula el monto en purchases.pagado.
func (r *PurchaseRepo) AddPayment(ctx context.Context, pay *entity.SupplierPayment) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO supplier_payments (purchase_id, monto, metodo, fecha, nota)
		VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`,
		pay.PurchaseID, pay.Monto, pay.Metodo, pay.Fecha, pay.Nota,
	).Scan(&pay.ID, &pay.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	if _, err := r.q.Exec(ctx, `UPDATE purchases SET pagado = pagado + $2 WHERE id = $1`, pay.PurchaseID, pay.Monto); err != nil {
		return fmt.Errorf("update purchase pagado: %w", err)
	}
	return nil
}

func (r *PurchaseRepo) ListPayments(ctx context.Context, purchaseID int64) ([]*entity.SupplierPayment, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, purchase_id, monto, metodo, fecha, nota, created_at
		FROM supplier_payments WHERE purchase_id = $1 ORDER BY fecha, id`, purchaseID)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.SupplierPayment, 0)
	for rows.Next() {
		var p entity.SupplierPayment
		if err := rows.Scan(&p.ID, &p.PurchaseID, &p.Monto, &p.Metodo, &p.Fecha, &p.Nota, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

func scanPurchase(row pgx.Row) (*entity.Purchase, error) {
	var p entity.Purchase
	err := row.Scan(&p.ID, &p.SupplierID, &p.SupplierNombre, &p.Fecha, &p.NumeroDocumento, &p.Estado,
		&p.Total, &p.Pagado, &p.Nota, &p.UserID, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ReturnRepo persistencia de devoluciones a proveedor.
type ReturnRepo struct {
	q Querier
}

// NewReturnRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReturnRepository(q Querier) *ReturnRepo {
	return &ReturnRepo{q: q}
}

func (r *ReturnRepo) Create(ctx context.Context, ret *entity.SupplierReturn) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO supplier_returns (supplier_id, purchase_id, motivo, user_id)
		VALUES ($1, $2, $3, $4) RETURNING id, created_at`,
		ret.SupplierID, ret.PurchaseID, ret.Motivo, ret.UserID,
	).Scan(&ret.ID, &ret.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert return: %w", err)
	}
	for i := range ret.Detalles {
		d := &ret.Detalles[i]
		d.ReturnID = ret.ID
		err := r.q.QueryRow(ctx, `
			INSERT INTO supplier_return_details (return_id, product_id, variant_id, cantidad)
			VALUES ($1, $2, $3, $4) RETURNING id`,
			d.ReturnID, d.ProductID, d.VariantID, d.Cantidad,
		).Scan(&d.ID)
		if err != nil {
			return lineErr("insert return detail", err)
		}
	}
	return nil
}

func (r *ReturnRepo) GetByID(ctx context.Context, id int64) (*entity.SupplierReturn, error) {
	var ret entity.SupplierReturn
	err := r.q.QueryRow(ctx, `
		SELECT id, supplier_id, purchase_id, motivo, user_id, created_at
		FROM supplier_returns WHERE id = $1`, id,
	).Scan(&ret.ID, &ret.SupplierID, &ret.PurchaseID, &ret.Motivo, &ret.UserID, &ret.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get return: %w", err)
	}
	rows, err := r.q.Query(ctx, `
		SELECT id, return_id, product_id, variant_id, cantidad
		FROM supplier_return_details WHERE return_id = $1 ORDER BY id`, id)
	if err != nil {
		return nil, fmt.Errorf("get return details: %w", err)
	}
	defer rows.Close()
	ret.Detalles = make([]entity.ReturnDetail, 0)
	for rows.Next() {
		var d entity.ReturnDetail
		if err := rows.Scan(&d.ID, &d.ReturnID, &d.ProductID, &d.VariantID, &d.Cantidad); err != nil {
			return nil, fmt.Errorf("scan return detail: %w", err)
		}
		ret.Detalles = append(ret.Detalles, d)
	}
	return &ret, rows.Err()
}

func (r *ReturnRepo) List(ctx context.Context, supplierID *int64, limit, offset int) ([]*entity.SupplierReturn, error) {
	query := `SELECT id, supplier_id, purchase_id, motivo, user_id, created_at FROM supplier_returns`
	args := []any{}
	if supplierID != nil {
		args = append(args, *supplierID)
		query += ` WHERE supplier_id = $1`
	}
	args = append(args, limitOr(limit, 50, 200), max(offset, 0))
	query += fmt.Sprintf(` ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d`, len(args)-1, len(args))
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list returns: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.SupplierReturn, 0)
	for rows.Next() {
		var ret entity.SupplierReturn
		if err := rows.Scan(&ret.ID, &ret.SupplierID, &ret.PurchaseID, &ret.Motivo, &ret.UserID, &ret.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan return: %w", err)
		}
		list = append(list, &ret)
	}
	return list, rows.Err()
}
