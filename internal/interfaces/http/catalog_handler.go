package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/boutique-api/internal/application/catalog"
	"github.com/jhoicas/boutique-api/internal/application/dto"
)

// CatalogHandler categorías, colores y tallas del panel (permiso catalogo).
type CatalogHandler struct {
	uc *catalog.CategoryUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *catalog.CategoryUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// ListCategories godoc
// @Summary      Listar categorías
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CategoryResponse
// @Router       /api/categories [get]
func (h *CatalogHandler) ListCategories(c *fiber.Ctx) error {
	list, err := h.uc.ListCategories(c.Context(), false)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// CreateCategory godoc
// @Summary      Crear categoría
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CategoryRequest  true  "nombre, descripcion, activo"
// @Success      201   {object}  dto.CategoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/categories [post]
func (h *CatalogHandler) CreateCategory(c *fiber.Ctx) error {
	var in dto.CategoryRequest
	if err := bindBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.CreateCategory(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetCategory godoc
// @Summary      Obtener categoría
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la categoría"
// @Success      200  {object}  dto.CategoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/categories/{id} [get]
func (h *CatalogHandler) GetCategory(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.GetCategory(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// UpdateCategory godoc
// @Summary      Editar categoría
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                  true  "ID de la categoría"
// @Param        body  body  dto.CategoryRequest  true  "nombre, descripcion, activo"
// @Success      200   {object}  dto.CategoryResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/categories/{id} [put]
func (h *CatalogHandler) UpdateCategory(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	var in dto.CategoryRequest
	if err := bindBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.UpdateCategory(c.Context(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// DeleteCategory godoc
// @Summary      Eliminar categoría
// @Tags         catalog
// @Security     Bearer
// @Param        id  path  int  true  "ID de la categoría"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/categories/{id} [delete]
func (h *CatalogHandler) DeleteCategory(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	if err := h.uc.DeleteCategory(c.Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListColors godoc
// @Summary      Listar colores
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ColorResponse
// @Router       /api/colors [get]
func (h *CatalogHandler) ListColors(c *fiber.Ctx) error {
	list, err := h.uc.ListColors(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// CreateColor godoc
// @Summary      Crear color
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ColorRequest  true  "nombre, hex"
// @Success      201   {object}  dto.ColorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/colors [post]
func (h *CatalogHandler) CreateColor(c *fiber.Ctx) error {
	var in dto.ColorRequest
	if err := bindBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.CreateColor(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateColor godoc
// @Summary      Editar color
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int               true  "ID del color"
// @Param        body  body  dto.ColorRequest  true  "nombre, hex"
// @Success      200   {object}  dto.ColorResponse
// @Router       /api/colors/{id} [put]
func (h *CatalogHandler) UpdateColor(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	var in dto.ColorRequest
	if err := bindBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.UpdateColor(c.Context(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// DeleteColor godoc
// @Summary      Eliminar color
// @Tags         catalog
// @Security     Bearer
// @Param        id  path  int  true  "ID del color"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/colors/{id} [delete]
func (h *CatalogHandler) DeleteColor(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	if err := h.uc.DeleteColor(c.Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListSizes godoc
// @Summary      Listar tallas
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.SizeResponse
// @Router       /api/sizes [get]
func (h *CatalogHandler) ListSizes(c *fiber.Ctx) error {
	list, err := h.uc.ListSizes(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// CreateSize godoc
// @Summary      Crear talla
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SizeRequest  true  "nombre, orden"
// @Success      201   {object}  dto.SizeResponse
// @Router       /api/sizes [post]
func (h *CatalogHandler) CreateSize(c *fiber.Ctx) error {
	var in dto.SizeRequest
	if err := bindBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.CreateSize(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateSize godoc
// @Summary      Editar talla
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int              true  "ID de la talla"
// @Param        body  body  dto.SizeRequest  true  "nombre, orden"
// @Success      200   {object}  dto.SizeResponse
// @Router       /api/sizes/{id} [put]
func (h *CatalogHandler) UpdateSize(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	var in dto.SizeRequest
	if err := bindBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.UpdateSize(c.Context(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// DeleteSize godoc
// @Summary      Eliminar talla
// @Tags         catalog
// @Security     Bearer
// @Param        id  path  int  true  "ID de la talla"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/sizes/{id} [delete]
func (h *CatalogHandler) DeleteSize(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	if err := h.uc.DeleteSize(c.Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
