package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/boutique-api/internal/application/dto"
	"github.com/jhoicas/boutique-api/internal/application/engagement"
)

// EngagementHandler newsletter y formulario de contacto.
type EngagementHandler struct {
	uc *engagement.EngagementUseCase
}

func NewEngagementHandler(uc *engagement.EngagementUseCase) *EngagementHandler {
	return &EngagementHandler{uc: uc}
}

// Subscribe godoc
// @Summary      Suscribirse al newsletter
// @Description  Idempotente por email: repetir la suscripción la reactiva.
// @Tags         public
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SubscribeRequest  true  "email"
// @Success      201   {object}  dto.SubscriberResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/public/newsletter [post]
func (h *EngagementHandler) Subscribe(c *fiber.Ctx) error {
	var in dto.SubscribeRequest
	if err := bindBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Subscribe(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Unsubscribe godoc
// @Summary      Darse de baja del newsletter
// @Tags         public
// @Produce      json
// @Param        token  path  string  true  "Token de baja (UUID)"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/public/newsletter/unsubscribe/{token} [get]
func (h *EngagementHandler) Unsubscribe(c *fiber.Ctx) error {
	if err := h.uc.Unsubscribe(c.Context(), c.Params("token")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"message": "suscripción cancelada"})
}

// SendContact godoc
// @Summary      Enviar mensaje de contacto
// @Tags         public
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ContactRequest  true  "nombre, email, mensaje"
// @Success      201   {object}  dto.ContactResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/public/contact [post]
func (h *EngagementHandler) SendContact(c *fiber.Ctx) error {
	var in dto.ContactRequest
	if err := bindBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.SendContact(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListSubscribers godoc
// @Summary      Listar suscriptores
// @Tags         content
// @Security     Bearer
// @Produce      json
// @Param        activos  query  bool  false  "Solo activos"
// @Param        limit    query  int   false  "Máximo de filas"
// @Param        offset   query  int   false  "Desplazamiento"
// @Success      200  {array}  dto.SubscriberResponse
// @Router       /api/content/subscribers [get]
func (h *EngagementHandler) ListSubscribers(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := bindQuery(c, &page); err != nil {
		return writeError(c, err)
	}
	page.DefaultPage()
	list, err := h.uc.ListSubscribers(c.Context(), c.QueryBool("activos"), page.Limit, page.Offset)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// ListContacts godoc
// @Summary      Listar mensajes de contacto
// @Tags         content
// @Security     Bearer
// @Produce      json
// @Param        noLeidos  query  bool  false  "Solo no leídos"
// @Param        limit     query  int   false  "Máximo de filas"
// @Param        offset    query  int   false  "Desplazamiento"
// @Success      200  {array}  dto.ContactResponse
// @Router       /api/content/messages [get]
func (h *EngagementHandler) ListContacts(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := bindQuery(c, &page); err != nil {
		return writeError(c, err)
	}
	page.DefaultPage()
	list, err := h.uc.ListContacts(c.Context(), c.QueryBool("noLeidos"), page.Limit, page.Offset)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// MarkRead godoc
// @Summary      Marcar mensaje como leído
// @Tags         content
// @Security     Bearer
// @Param        id  path  int  true  "ID del mensaje"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/content/messages/{id}/read [put]
func (h *EngagementHandler) MarkRead(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	if err := h.uc.MarkRead(c.Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
