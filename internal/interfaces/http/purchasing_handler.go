package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/boutique-api/internal/application/dto"
	"github.com/jhoicas/boutique-api/internal/application/purchasing"
)

// PurchasingHandler proveedores, compras, pagos y devoluciones (permiso compras).
type PurchasingHandler struct {
	suppliers *purchasing.SupplierUseCase
	purchases *purchasing.PurchaseUseCase
}

// NewPurchasingHandler construye el handler.
func NewPurchasingHandler(suppliers *purchasing.SupplierUseCase, purchases *purchasing.PurchaseUseCase) *PurchasingHandler {
	return &PurchasingHandler{suppliers: suppliers, purchases: purchases}
}

// ListSuppliers godoc
// @Summary      Listar proveedores
// @Tags         purchasing
// @Security     Bearer
// @Produce      json
// @Param        q    query  string  false  "Búsqueda por nombre o RUC"
// @Success      200  {array}  dto.SupplierResponse
// @Router       /api/suppliers [get]
func (h *PurchasingHandler) ListSuppliers(c *fiber.Ctx) error {
	list, err := h.suppliers.List(c.Context(), c.Query("q"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// CreateSupplier godoc
// @Summary      Crear proveedor
// @Tags         purchasing
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SupplierRequest  true  "datos del proveedor"
// @Success      201   {object}  dto.SupplierResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/suppliers [post]
func (h *PurchasingHandler) CreateSupplier(c *fiber.Ctx) error {
	var in dto.SupplierRequest
	if err := bindBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.suppliers.Create(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetSupplier godoc
// @Summary      Obtener proveedor
// @Tags         purchasing
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del proveedor"
// @Success      200  {object}  dto.SupplierResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/suppliers/{id} [get]
func (h *PurchasingHandler) GetSupplier(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.suppliers.Get(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// UpdateSupplier godoc
// @Summary      Editar proveedor
// @Tags         purchasing
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                  true  "ID del proveedor"
// @Param        body  body  dto.SupplierRequest  true  "datos del proveedor"
// @Success      200   {object}  dto.SupplierResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/suppliers/{id} [put]
func (h *PurchasingHandler) UpdateSupplier(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	var in dto.SupplierRequest
	if err := bindBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.suppliers.Update(c.Context(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// DeleteSupplier godoc
// @Summary      Eliminar proveedor
// @Tags         purchasing
// @Security     Bearer
// @Param        id  path  int  true  "ID del proveedor"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/suppliers/{id} [delete]
func (h *PurchasingHandler) DeleteSupplier(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	if err := h.suppliers.Delete(c.Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreatePurchase godoc
// @Summary      Registrar compra
// @Description  Inserta la compra y registra un ingreso por línea en la misma transacción.
// @Tags         purchasing
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePurchaseRequest  true  "proveedor, fecha, detalles"
// @Success      201   {object}  dto.PurchaseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/purchases [post]
func (h *PurchasingHandler) CreatePurchase(c *fiber.Ctx) error {
	var in dto.CreatePurchaseRequest
	if err := bindBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.purchases.CreatePurchase(c.Context(), in, GetUserIDPtr(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListPurchases godoc
// @Summary      Listar compras
// @Tags         purchasing
// @Security     Bearer
// @Produce      json
// @Param        proveedor  query  int     false  "ID del proveedor"
// @Param        estado     query  string  false  "registrada | anulada"
// @Param        desde      query  string  false  "YYYY-MM-DD"
// @Param        hasta      query  string  false  "YYYY-MM-DD"
// @Success      200  {array}   dto.PurchaseResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/purchases [get]
func (h *PurchasingHandler) ListPurchases(c *fiber.Ctx) error {
	var q dto.PurchaseListQuery
	if err := bindQuery(c, &q); err != nil {
		return writeError(c, err)
	}
	list, err := h.purchases.ListPurchases(c.Context(), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// GetPurchase godoc
// @Summary      Obtener compra con detalle y pagos
// @Tags         purchasing
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la compra"
// @Success      200  {object}  dto.PurchaseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/purchases/{id} [get]
func (h *PurchasingHandler) GetPurchase(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.purchases.GetPurchase(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// CancelPurchase godoc
// @Summary      Anular compra
// @Description  Revierte cada línea con un egreso. Falla si el stock ya se consumió o hay pagos.
// @Tags         purchasing
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la compra"
// @Success      200  {object}  dto.PurchaseResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/purchases/{id}/cancel [post]
func (h *PurchasingHandler) CancelPurchase(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.purchases.CancelPurchase(c.Context(), id, GetUserIDPtr(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// RegisterPayment godoc
// @Summary      Registrar pago a proveedor
// @Tags         purchasing
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                 true  "ID de la compra"
// @Param        body  body  dto.PaymentRequest  true  "monto, metodo, fecha, nota"
// @Success      201   {object}  dto.PaymentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/purchases/{id}/payments [post]
func (h *PurchasingHandler) RegisterPayment(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	var in dto.PaymentRequest
	if err := bindBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.purchases.RegisterPayment(c.Context(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// CreateReturn godoc
// @Summary      Registrar devolución a proveedor
// @Tags         purchasing
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateReturnRequest  true  "proveedor, compra (opcional), motivo, detalles"
// @Success      201   {object}  dto.ReturnResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/returns [post]
func (h *PurchasingHandler) CreateReturn(c *fiber.Ctx) error {
	var in dto.CreateReturnRequest
	if err := bindBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.purchases.CreateReturn(c.Context(), in, GetUserIDPtr(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListReturns godoc
// @Summary      Listar devoluciones
// @Tags         purchasing
// @Security     Bearer
// @Produce      json
// @Param        proveedor  query  int  false  "ID del proveedor"
// @Param        limit      query  int  false  "Máximo de filas"
// @Param        offset     query  int  false  "Desplazamiento"
// @Success      200  {array}  dto.ReturnResponse
// @Router       /api/returns [get]
func (h *PurchasingHandler) ListReturns(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := bindQuery(c, &page); err != nil {
		return writeError(c, err)
	}
	page.DefaultPage()
	list, err := h.purchases.ListReturns(c.Context(), int64(c.QueryInt("proveedor")), page.Limit, page.Offset)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// GetReturn godoc
// @Summary      Obtener devolución
// @Tags         purchasing
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la devolución"
// @Success      200  {object}  dto.ReturnResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/returns/{id} [get]
func (h *PurchasingHandler) GetReturn(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.purchases.GetReturn(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
