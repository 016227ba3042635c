package postgres

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/boutique-api/internal/domain"
)

func TestInsertErr_FKEsReferenciaInexistente(t *testing.T) {
	fk := &pgconn.PgError{Code: codeForeignKeyViolation, ConstraintName: "product_variants_color_id_fkey"}
	err := insertErr("insert variant", fk)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.NotErrorIs(t, err, domain.ErrInUse)

	assert.ErrorIs(t, insertErr("insert product", &pgconn.PgError{Code: codeUniqueViolation}), domain.ErrDuplicate)
	assert.NoError(t, insertErr("insert product", nil))

	other := errors.New("conexión cerrada")
	assert.ErrorIs(t, insertErr("insert product", other), other)
}

func TestWriteErr_FKEnBorradoEsInUse(t *testing.T) {
	fk := &pgconn.PgError{Code: codeForeignKeyViolation, ConstraintName: "product_variants_product_id_fkey"}
	assert.ErrorIs(t, writeErr("delete product", fk), domain.ErrInUse)
}

func TestLineErr(t *testing.T) {
	for _, tc := range []struct {
		constraint string
		want       error
	}{
		{"purchase_details_product_id_fkey", domain.ErrProductNotFound},
		{"purchase_details_variant_id_fkey", domain.ErrVariantNotFound},
		{"supplier_return_details_product_id_fkey", domain.ErrProductNotFound},
		{"supplier_return_details_variant_id_fkey", domain.ErrVariantNotFound},
	} {
		err := lineErr("insert purchase detail", &pgconn.PgError{Code: codeForeignKeyViolation, ConstraintName: tc.constraint})
		assert.ErrorIs(t, err, tc.want, tc.constraint)
	}

	fallo := &pgconn.PgError{Code: "08006"}
	err := lineErr("insert purchase detail", fallo)
	assert.ErrorIs(t, err, fallo)
	assert.NotErrorIs(t, err, domain.ErrProductNotFound)
}

func TestLimitOr(t *testing.T) {
	assert.Equal(t, 200, limitOr(0, 200, 200))
	assert.Equal(t, 200, limitOr(500, 200, 200))
	assert.Equal(t, 50, limitOr(50, 200, 200))
}
