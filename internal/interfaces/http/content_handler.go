package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/boutique-api/internal/application/content"
	"github.com/jhoicas/boutique-api/internal/application/dto"
)

// ContentHandler CMS de la tienda: banners, páginas, preguntas frecuentes y "nosotros".
// Las rutas /api/content requieren el permiso contenido.
type ContentHandler struct {
	uc *content.ContentUseCase
}

// NewContentHandler construye el handler.
func NewContentHandler(uc *content.ContentUseCase) *ContentHandler {
	return &ContentHandler{uc: uc}
}

// ListBanners godoc
// @Summary      Listar banners
// @Tags         content
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.BannerResponse
// @Router       /api/content/banners [get]
func (h *ContentHandler) ListBanners(c *fiber.Ctx) error {
	list, err := h.uc.ListBanners(c.Context(), false)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// CreateBanner godoc
// @Summary      Crear banner
// @Tags         content
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BannerRequest  true  "titulo, imagenUrl, enlace, orden"
// @Success      201   {object}  dto.BannerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/content/banners [post]
func (h *ContentHandler) CreateBanner(c *fiber.Ctx) error {
	var in dto.BannerRequest
	if err := bindBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.CreateBanner(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateBanner godoc
// @Summary      Editar banner
// @Tags         content
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                true  "ID del banner"
// @Param        body  body  dto.BannerRequest  true  "datos del banner"
// @Success      200   {object}  dto.BannerResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/content/banners/{id} [put]
func (h *ContentHandler) UpdateBanner(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	var in dto.BannerRequest
	if err := bindBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.UpdateBanner(c.Context(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// DeleteBanner godoc
// @Summary      Eliminar banner
// @Tags         content
// @Security     Bearer
// @Param        id  path  int  true  "ID del banner"
// @Success      204
// @Router       /api/content/banners/{id} [delete]
func (h *ContentHandler) DeleteBanner(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	if err := h.uc.DeleteBanner(c.Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListPages godoc
// @Summary      Listar páginas
// @Tags         content
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.PageContentResponse
// @Router       /api/content/pages [get]
func (h *ContentHandler) ListPages(c *fiber.Ctx) error {
	list, err := h.uc.ListPages(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// CreatePage godoc
// @Summary      Crear página
// @Description  Sin slug se genera a partir del título.
// @Tags         content
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PageContentRequest  true  "slug, titulo, contenido, publicada"
// @Success      201   {object}  dto.PageContentResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/content/pages [post]
func (h *ContentHandler) CreatePage(c *fiber.Ctx) error {
	var in dto.PageContentRequest
	if err := bindBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.CreatePage(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdatePage godoc
// @Summary      Editar página
// @Tags         content
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                     true  "ID de la página"
// @Param        body  body  dto.PageContentRequest  true  "slug, titulo, contenido, publicada"
// @Success      200   {object}  dto.PageContentResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/content/pages/{id} [put]
func (h *ContentHandler) UpdatePage(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	var in dto.PageContentRequest
	if err := bindBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.UpdatePage(c.Context(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// DeletePage godoc
// @Summary      Eliminar página
// @Tags         content
// @Security     Bearer
// @Param        id  path  int  true  "ID de la página"
// @Success      204
// @Router       /api/content/pages/{id} [delete]
func (h *ContentHandler) DeletePage(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	if err := h.uc.DeletePage(c.Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListFAQs godoc
// @Summary      Listar preguntas frecuentes
// @Tags         content
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.FAQResponse
// @Router       /api/content/faqs [get]
func (h *ContentHandler) ListFAQs(c *fiber.Ctx) error {
	list, err := h.uc.ListFAQs(c.Context(), false)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// CreateFAQ godoc
// @Summary      Crear pregunta frecuente
// @Tags         content
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.FAQRequest  true  "pregunta, respuesta, orden"
// @Success      201   {object}  dto.FAQResponse
// @Router       /api/content/faqs [post]
func (h *ContentHandler) CreateFAQ(c *fiber.Ctx) error {
	var in dto.FAQRequest
	if err := bindBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.CreateFAQ(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateFAQ godoc
// @Summary      Editar pregunta frecuente
// @Tags         content
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int             true  "ID de la pregunta"
// @Param        body  body  dto.FAQRequest  true  "pregunta, respuesta, orden"
// @Success      200   {object}  dto.FAQResponse
// @Router       /api/content/faqs/{id} [put]
func (h *ContentHandler) UpdateFAQ(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	var in dto.FAQRequest
	if err := bindBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.UpdateFAQ(c.Context(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// DeleteFAQ godoc
// @Summary      Eliminar pregunta frecuente
// @Tags         content
// @Security     Bearer
// @Param        id  path  int  true  "ID de la pregunta"
// @Success      204
// @Router       /api/content/faqs/{id} [delete]
func (h *ContentHandler) DeleteFAQ(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	if err := h.uc.DeleteFAQ(c.Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetAbout godoc
// @Summary      Sección "nosotros"
// @Tags         content
// @Produce      json
// @Success      200  {object}  dto.AboutResponse
// @Router       /api/content/about [get]
func (h *ContentHandler) GetAbout(c *fiber.Ctx) error {
	out, err := h.uc.About(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// SaveAbout godoc
// @Summary      Guardar sección "nosotros"
// @Tags         content
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AboutRequest  true  "titulo, contenido, imagenUrl"
// @Success      200   {object}  dto.AboutResponse
// @Router       /api/content/about [put]
func (h *ContentHandler) SaveAbout(c *fiber.Ctx) error {
	var in dto.AboutRequest
	if err := bindBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.SaveAbout(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
