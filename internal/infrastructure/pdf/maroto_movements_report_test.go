package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/boutique-api/internal/application/dto"
	"github.com/jhoicas/boutique-api/internal/application/ports"
)

func strp(s string) *string { return &s }

func sampleRows() []dto.MovementResponse {
	v := int64(55)
	at := time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)
	return []dto.MovementResponse{
		{ID: 1, IDProducto: 7, Tipo: "ingreso", Cantidad: 10, StockAnterior: 2, StockNuevo: 12, Producto: "Blusa lino", Referencia: strp("Compra #1001"), CreatedAt: at},
		{ID: 2, IDProducto: 8, IDVariante: &v, Tipo: "egreso", Cantidad: 3, StockAnterior: 5, StockNuevo: 2, Producto: "Pantalón", VarianteSKU: strp("PA-NE-M"), Color: strp("Negro"), Talla: strp("M"), Usuario: strp("Ana"), CreatedAt: at},
		{ID: 3, IDProducto: 7, Tipo: "ajuste", Cantidad: 100, StockAnterior: 12, StockNuevo: 100, Producto: "Blusa lino", CreatedAt: at},
	}
}

func TestSummarize(t *testing.T) {
	assert.Equal(t, Summary{Ingresos: 10, Egresos: 3, Ajustes: 1}, Summarize(sampleRows()))
}

func TestVariantLabel(t *testing.T) {
	rows := sampleRows()
	assert.Equal(t, "—", variantLabel(rows[0]))
	assert.Equal(t, "PA-NE-M · Negro / M", variantLabel(rows[1]))

	v := int64(9)
	assert.Equal(t, "#9", variantLabel(dto.MovementResponse{IDVariante: &v}))
}

func TestGenerateMovementsPDF(t *testing.T) {
	out, err := NewMarotoMovementsReport().GenerateMovementsPDF(context.Background(), ports.MovementReportMeta{
		StoreName:   "Boutique Lima",
		Filtros:     "producto #7",
		GeneratedAt: time.Now(),
	}, sampleRows())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))

	empty, err := NewMarotoMovementsReport().GenerateMovementsPDF(context.Background(), ports.MovementReportMeta{}, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, empty)
}
