package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/boutique-api/internal/application/content"
	"github.com/jhoicas/boutique-api/internal/application/dto"
	"github.com/jhoicas/boutique-api/internal/application/storefront"
)

// StorefrontHandler rutas públicas de la tienda (sin sesión).
type StorefrontHandler struct {
	store   *storefront.StorefrontUseCase
	content *content.ContentUseCase
}

// NewStorefrontHandler construye el handler.
func NewStorefrontHandler(store *storefront.StorefrontUseCase, content *content.ContentUseCase) *StorefrontHandler {
	return &StorefrontHandler{store: store, content: content}
}

// ListProducts godoc
// @Summary      Catálogo público
// @Tags         public
// @Produce      json
// @Param        categoria  query  string  false  "Slug de categoría"
// @Param        color      query  int     false  "ID de color"
// @Param        talla      query  int     false  "ID de talla"
// @Param        min        query  string  false  "Precio mínimo"
// @Param        max        query  string  false  "Precio máximo"
// @Param        q          query  string  false  "Búsqueda por nombre"
// @Param        orden      query  string  false  "recientes | precio_asc | precio_desc | nombre"
// @Param        limit      query  int     false  "Máximo de filas"
// @Param        offset     query  int     false  "Desplazamiento"
// @Success      200  {object}  dto.PublicProductListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/public/products [get]
func (h *StorefrontHandler) ListProducts(c *fiber.Ctx) error {
	var q dto.ProductListQuery
	if err := bindQuery(c, &q); err != nil {
		return writeError(c, err)
	}
	out, err := h.store.ListProducts(c.Context(), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetProduct godoc
// @Summary      Ficha pública de producto
// @Tags         public
// @Produce      json
// @Param        slug  path  string  true  "Slug del producto"
// @Success      200   {object}  dto.PublicProductResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/public/products/{slug} [get]
func (h *StorefrontHandler) GetProduct(c *fiber.Ctx) error {
	out, err := h.store.GetProduct(c.Context(), c.Params("slug"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Categories godoc
// @Summary      Categorías activas
// @Tags         public
// @Produce      json
// @Success      200  {array}  dto.CategoryResponse
// @Router       /api/public/categories [get]
func (h *StorefrontHandler) Categories(c *fiber.Ctx) error {
	list, err := h.store.Categories(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// Banners godoc
// @Summary      Banners activos
// @Tags         public
// @Produce      json
// @Success      200  {array}  dto.BannerResponse
// @Router       /api/public/banners [get]
func (h *StorefrontHandler) Banners(c *fiber.Ctx) error {
	list, err := h.content.ListBanners(c.Context(), true)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// FAQs godoc
// @Summary      Preguntas frecuentes activas
// @Tags         public
// @Produce      json
// @Success      200  {array}  dto.FAQResponse
// @Router       /api/public/faqs [get]
func (h *StorefrontHandler) FAQs(c *fiber.Ctx) error {
	list, err := h.content.ListFAQs(c.Context(), true)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// Page godoc
// @Summary      Página publicada
// @Tags         public
// @Produce      json
// @Param        slug  path  string  true  "Slug de la página"
// @Success      200   {object}  dto.PageContentResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/public/pages/{slug} [get]
func (h *StorefrontHandler) Page(c *fiber.Ctx) error {
	out, err := h.content.PublishedPage(c.Context(), c.Params("slug"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// About godoc
// @Summary      Sección "nosotros"
// @Tags         public
// @Produce      json
// @Success      200  {object}  dto.AboutResponse
// @Router       /api/public/about [get]
func (h *StorefrontHandler) About(c *fiber.Ctx) error {
	out, err := h.content.About(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ValidateCart godoc
// @Summary      Validar carrito
// @Description  Comprueba stock y precios vigentes por línea. No reserva ni descuenta stock.
// @Tags         public
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CartValidateRequest  true  "líneas del carrito"
// @Success      200   {object}  dto.CartValidateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/public/cart/validate [post]
func (h *StorefrontHandler) ValidateCart(c *fiber.Ctx) error {
	var in dto.CartValidateRequest
	if err := bindBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.store.ValidateCart(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Feed godoc
// @Summary      Feed de productos (RSS 2.0 con espacio g:)
// @Tags         public
// @Produce      xml
// @Success      200  {string}  string
// @Router       /api/public/feed.xml [get]
func (h *StorefrontHandler) Feed(c *fiber.Ctx) error {
	data, err := h.store.Feed(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
	return c.Send(data)
}
