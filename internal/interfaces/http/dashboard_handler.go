package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/boutique-api/internal/application/analytics"
)

// DashboardHandler maneja los endpoints del módulo de Dashboard.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve el resumen operativo del día.
// GET /api/dashboard/summary
//
// Respuesta: DashboardSummaryDTO (movimientosHoy por tipo, stockBajo, saldoProveedores,
// mensajesNoLeidos, dateLabel). El umbral de stock bajo viene de la configuración.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(summary)
}
