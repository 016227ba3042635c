package ports

import (
	"context"
	"time"

	"github.com/jhoicas/boutique-api/internal/application/dto"
)

// MovementReportMeta encabezado del reporte de kardex.
type MovementReportMeta struct {
	StoreName   string
	Filtros     string // descripción legible de los filtros aplicados
	GeneratedAt time.Time
}

// MovementReportGenerator define el puerto de salida para el PDF del kardex.
type MovementReportGenerator interface {
	GenerateMovementsPDF(ctx context.Context, meta MovementReportMeta, rows []dto.MovementResponse) ([]byte, error)
}
