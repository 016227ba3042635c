package http

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/boutique-api/internal/application/dto"
	"github.com/jhoicas/boutique-api/internal/domain"
)

// errorMapping traduce un error de dominio a status HTTP y código estable para el panel.
type errorMapping struct {
	err    error
	status int
	code   string
}

// El orden importa: los errores del kardex van antes que los genéricos.
var errorMappings = []errorMapping{
	{domain.ErrInvalidMovementType, fiber.StatusBadRequest, "INVALID_MOVEMENT_TYPE"},
	{domain.ErrMissingProduct, fiber.StatusBadRequest, "MISSING_PRODUCT"},
	{domain.ErrInvalidVariant, fiber.StatusBadRequest, "INVALID_VARIANT"},
	{domain.ErrNegativeQuantity, fiber.StatusBadRequest, "NEGATIVE_QUANTITY"},
	{domain.ErrQuantityTooLarge, fiber.StatusBadRequest, "QUANTITY_TOO_LARGE"},
	{domain.ErrStockOverflow, fiber.StatusBadRequest, "STOCK_OVERFLOW"},
	{domain.ErrProductNotFound, fiber.StatusBadRequest, "PRODUCT_NOT_FOUND"},
	{domain.ErrVariantNotFound, fiber.StatusBadRequest, "VARIANT_NOT_FOUND"},
	{domain.ErrInsufficientStock, fiber.StatusBadRequest, "INSUFFICIENT_STOCK"},
	{domain.ErrIrreversibleMovement, fiber.StatusBadRequest, "IRREVERSIBLE_MOVEMENT"},
	{domain.ErrMovementNotFound, fiber.StatusNotFound, "MOVEMENT_NOT_FOUND"},
	{domain.ErrEmptyDetail, fiber.StatusBadRequest, "EMPTY_DETAIL"},
	{domain.ErrOverpayment, fiber.StatusBadRequest, "OVERPAYMENT"},
	{domain.ErrPurchaseCancelled, fiber.StatusConflict, "PURCHASE_CANCELLED"},
	{domain.ErrInvalidInput, fiber.StatusBadRequest, "VALIDATION"},
	{domain.ErrUserNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{domain.ErrEmailAlreadyExists, fiber.StatusConflict, "EMAIL_EXISTS"},
	{domain.ErrDuplicate, fiber.StatusConflict, "DUPLICATE"},
	{domain.ErrInUse, fiber.StatusConflict, "IN_USE"},
	{domain.ErrConflict, fiber.StatusConflict, "CONFLICT"},
	{domain.ErrUnauthorized, fiber.StatusUnauthorized, "UNAUTHORIZED"},
	{domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN"},
}

// writeError responde {code, error} según el error de dominio. Lo no mapeado es 500
// y el detalle solo va al log.
func writeError(c *fiber.Ctx, err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:  "VALIDATION",
			Error: describeValidation(verrs),
		})
	}
	for _, m := range errorMappings {
		if errors.Is(err, m.err) {
			return c.Status(m.status).JSON(dto.ErrorResponse{Code: m.code, Error: err.Error()})
		}
	}
	log.Error().
		Err(err).
		Str("request_id", requestID(c)).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Msg("error no controlado")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Code:  "INTERNAL",
		Error: "error interno del servidor",
	})
}

func badRequest(c *fiber.Ctx, code, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: code, Error: msg})
}

// ErrorHandler reemplaza el handler por defecto de Fiber: 404 de rutas, body demasiado
// grande y errores que escapan de los handlers salen con el mismo formato.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: fiberCode(fe.Code), Error: fe.Message})
	}
	return writeError(c, err)
}

func fiberCode(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case fiber.StatusRequestEntityTooLarge:
		return "BODY_TOO_LARGE"
	case fiber.StatusBadRequest:
		return "BAD_REQUEST"
	}
	return strings.ToUpper(strings.ReplaceAll(utils.StatusMessage(status), " ", "_"))
}
