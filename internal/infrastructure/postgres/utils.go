package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jhoicas/boutique-api/internal/domain"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	return hasCode(err, codeUniqueViolation)
}

// isForeignKeyViolation verifica si un error es una violación de llave foránea (23503).
func isForeignKeyViolation(err error) bool {
	return hasCode(err, codeForeignKeyViolation)
}

func hasCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return err != nil && strings.Contains(err.Error(), code)
}

// writeErr traduce errores de escritura a errores de dominio; op se usa como prefijo del resto.
// La FK se lee como ErrInUse: vale para borrados, las altas usan insertErr.
func writeErr(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case isUniqueViolation(err):
		return domain.ErrDuplicate
	case isForeignKeyViolation(err):
		return domain.ErrInUse
	}
	return wrap(op, err)
}

// insertErr es writeErr para altas y ediciones: ahí una FK rota apunta a un padre inexistente, no a un hijo.
func insertErr(op string, err error) error {
	if isForeignKeyViolation(err) {
		return fmt.Errorf("%w: referencia inexistente", domain.ErrInvalidInput)
	}
	return writeErr(op, err)
}

// lineErr traduce la FK de una línea de detalle a ErrProductNotFound o ErrVariantNotFound.
func lineErr(op string, err error) error {
	var pgErr *pgconn.PgError
	if isForeignKeyViolation(err) && errors.As(err, &pgErr) {
		switch {
		case strings.Contains(pgErr.ConstraintName, "variant_id"):
			return domain.ErrVariantNotFound
		case strings.Contains(pgErr.ConstraintName, "product_id"):
			return domain.ErrProductNotFound
		}
	}
	return wrap(op, err)
}

func wrap(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// limitOr aplica el valor por defecto y el tope a un límite de paginación.
func limitOr(limit, def, max int) int {
	if limit <= 0 {
		return def
	}
	if limit > max {
		return max
	}
	return limit
}

// deleteByID borra una fila por id; table es siempre un literal del paquete.
func deleteByID(ctx context.Context, q Querier, table string, id int64) error {
	cmd, err := q.Exec(ctx, "DELETE FROM "+table+" WHERE id = $1", id)
	if err != nil {
		return writeErr("delete "+table, err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
