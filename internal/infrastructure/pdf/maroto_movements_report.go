// Package pdf genera el reporte PDF del kardex (movimientos de inventario).
//
// Layout de la página A4 horizontal:
//
//	┌───────────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la tienda        │  KARDEX + fecha de emisión  │
//	│  Filtros aplicados                                                │
//	│  ───────────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Producto | Variante | Tipo | Cant | Antes | Después│
//	│         | Referencia | Usuario                                    │
//	│  ───────────────────────────────────────────────────────────────  │
//	│  RESUMEN: unidades ingresadas / egresadas / ajustes               │
//	└───────────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/boutique-api/internal/application/dto"
	"github.com/jhoicas/boutique-api/internal/application/ports"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 120, Green: 40, Blue: 90}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorIn      = &props.Color{Red: 20, Green: 120, Blue: 60}
	colorOut     = &props.Color{Red: 170, Green: 40, Blue: 40}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoMovementsReport implementa ports.MovementReportGenerator usando Maroto v2.
type MarotoMovementsReport struct{}

// NewMarotoMovementsReport construye el generador.
func NewMarotoMovementsReport() *MarotoMovementsReport { return &MarotoMovementsReport{} }

var _ ports.MovementReportGenerator = (*MarotoMovementsReport)(nil)

// GenerateMovementsPDF genera el PDF y devuelve sus bytes.
func (g *MarotoMovementsReport) GenerateMovementsPDF(
	ctx context.Context,
	meta ports.MovementReportMeta,
	rows []dto.MovementResponse,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Kardex de inventario", true).
		WithAuthor(meta.StoreName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(meta))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	if err := m.RegisterHeader(tableHeaderRow()); err != nil {
		return nil, fmt.Errorf("pdf: cabecera de tabla: %w", err)
	}
	if len(rows) == 0 {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("Sin movimientos para los filtros indicados.", props.Text{
				Size: 9, Align: align.Center, Color: colorGray, Top: 3,
			}),
		)))
	}
	for i, mv := range rows {
		if i%100 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		m.AddRows(detailRow(mv))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(summaryRow(rows))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: tienda + filtros (izq) y título + fecha de emisión (der).
func headerRow(meta ports.MovementReportMeta) core.Row {
	return row.New(18).Add(
		col.New(8).Add(
			text.New(nonEmpty(meta.StoreName, "Boutique"), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Filtros: "+nonEmpty(meta.Filtros, "ninguno"), props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("KARDEX DE INVENTARIO", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New("Emitido: "+meta.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: se repite en cada página.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 1, align.Left),
		h("Producto", 3, align.Left),
		h("Variante", 2, align.Left),
		h("Tipo", 1, align.Center),
		h("Cant.", 1, align.Right),
		h("Antes", 1, align.Right),
		h("Después", 1, align.Right),
		h("Referencia / Usuario", 2, align.Left),
	)
}

// detailRow: una fila por movimiento.
func detailRow(mv dto.MovementResponse) core.Row {
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Size: 7.5, Align: a, Top: 1, Left: 1, Right: 1}))
	}
	tipo := col.New(1).Add(text.New(strings.ToUpper(mv.Tipo), props.Text{
		Size: 7, Style: fontstyle.Bold, Align: align.Center, Top: 1, Color: tipoColor(mv.Tipo),
	}))
	ref := deref(mv.Referencia)
	if u := deref(mv.Usuario); u != "" {
		ref = strings.TrimPrefix(ref+" · "+u, " · ")
	}
	return row.New(6).Add(
		cell(mv.CreatedAt.Format("02/01 15:04"), 1, align.Left),
		cell(mv.Producto, 3, align.Left),
		cell(variantLabel(mv), 2, align.Left),
		tipo,
		cell(strconv.Itoa(mv.Cantidad), 1, align.Right),
		cell(strconv.Itoa(mv.StockAnterior), 1, align.Right),
		cell(strconv.Itoa(mv.StockNuevo), 1, align.Right),
		cell(ref, 2, align.Left),
	)
}

// summaryRow: unidades por tipo. Los ajustes se cuentan como movimientos, no como unidades.
func summaryRow(rows []dto.MovementResponse) core.Row {
	s := Summarize(rows)
	label := func(v string) core.Component {
		return text.New(v, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	value := func(v string) core.Component {
		return text.New(v, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	return row.New(16).Add(
		col.New(6),
		col.New(3).Add(
			label("Unidades ingresadas:"),
			label("Unidades egresadas:"),
			label("Ajustes:"),
		),
		col.New(3).Add(
			value(strconv.Itoa(s.Ingresos)),
			value(strconv.Itoa(s.Egresos)),
			value(strconv.Itoa(s.Ajustes)),
		),
	)
}

// Summary totales del reporte.
type Summary struct {
	Ingresos int // unidades
	Egresos  int // unidades
	Ajustes  int // cantidad de movimientos
}

// Summarize suma las unidades por tipo.
func Summarize(rows []dto.MovementResponse) Summary {
	var s Summary
	for _, mv := range rows {
		switch mv.Tipo {
		case "ingreso":
			s.Ingresos += mv.Cantidad
		case "egreso":
			s.Egresos += mv.Cantidad
		case "ajuste":
			s.Ajustes++
		}
	}
	return s
}

// ── helpers ───────────────────────────────────────────────────────────────────

func tipoColor(tipo string) *props.Color {
	switch tipo {
	case "ingreso":
		return colorIn
	case "egreso":
		return colorOut
	}
	return colorGray
}

// variantLabel "SKU · Color / Talla" o "—" para productos sin variantes.
func variantLabel(mv dto.MovementResponse) string {
	if mv.IDVariante == nil {
		return "—"
	}
	dims := strings.Trim(deref(mv.Color)+" / "+deref(mv.Talla), " /")
	label := deref(mv.VarianteSKU)
	if label == "" {
		label = "#" + strconv.FormatInt(*mv.IDVariante, 10)
	}
	if dims != "" {
		label += " · " + dims
	}
	return label
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
