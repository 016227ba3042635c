package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/boutique-api/internal/application/dto"
	"github.com/jhoicas/boutique-api/internal/application/inventory"
)

// InventoryHandler maneja el kardex: alta, reversa, consulta y reporte de movimientos.
// Las rutas usan autenticación opcional: con token válido el movimiento queda a nombre del usuario.
type InventoryHandler struct {
	uc *inventory.MovementUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.MovementUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// RecordMovement godoc
// @Summary      Registrar movimiento de inventario
// @Description  ingreso suma, egreso resta (sin dejar stock negativo) y ajuste fija el valor.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMovementRequest  true  "idProducto, idVariante (opcional), tipo, cantidad, referencia, nota"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *InventoryHandler) RecordMovement(c *fiber.Ctx) error {
	var req dto.CreateMovementRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	in, err := inventory.ParseMovementRequest(req, GetUserIDPtr(c))
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.RecordMovement(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// DeleteMovement godoc
// @Summary      Eliminar (revertir) movimiento
// @Description  Revierte el efecto de un ingreso o egreso sobre el stock y borra el registro.
// @Description  Los ajustes no se pueden revertir.
// @Tags         inventory
// @Security     Bearer
// @Param        id  path  int  true  "ID del movimiento"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movements/{id} [delete]
func (h *InventoryHandler) DeleteMovement(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	if err := h.uc.DeleteMovement(c.Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetMovement godoc
// @Summary      Obtener movimiento
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del movimiento"
// @Success      200  {object}  dto.MovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movements/{id} [get]
func (h *InventoryHandler) GetMovement(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.GetMovement(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ListMovements godoc
// @Summary      Listar movimientos
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        producto  query  int     false  "ID de producto"
// @Param        variante  query  int     false  "ID de variante"
// @Param        tipo      query  string  false  "ingreso | egreso | ajuste"
// @Param        dir       query  string  false  "asc | desc (por defecto desc)"
// @Success      200  {array}   dto.MovementResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/movements [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	var q dto.MovementListQuery
	if err := c.QueryParser(&q); err != nil {
		return badRequest(c, "INVALID_QUERY", "parámetros inválidos")
	}
	list, err := h.uc.ListMovements(c.Context(), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// MovementReport godoc
// @Summary      Reporte PDF de movimientos (kardex)
// @Tags         inventory
// @Security     Bearer
// @Produce      application/pdf
// @Param        producto  query  int     false  "ID de producto"
// @Param        variante  query  int     false  "ID de variante"
// @Param        tipo      query  string  false  "ingreso | egreso | ajuste"
// @Param        dir       query  string  false  "asc | desc"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/movements/report.pdf [get]
func (h *InventoryHandler) MovementReport(c *fiber.Ctx) error {
	var q dto.MovementListQuery
	if err := c.QueryParser(&q); err != nil {
		return badRequest(c, "INVALID_QUERY", "parámetros inválidos")
	}
	pdf, err := h.uc.MovementReportPDF(c.Context(), q)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="movimientos.pdf"`)
	return c.Send(pdf)
}
