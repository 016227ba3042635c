package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/boutique-api/internal/application/dto"
)

// permissionChecker es el contrato mínimo que necesita el middleware.
// Lo implementa *auth.AuthUseCase.
type permissionChecker interface {
	HasPermission(ctx context.Context, role, key string) (bool, error)
}

// RequirePermission verifica que el rol del token tenga el permiso key.
// Debe usarse DESPUÉS de AuthMiddleware (necesita LocalRole).
//
// Comportamiento:
//   - 401 si no hay rol en el contexto.
//   - 403 si el rol no tiene el permiso (admin siempre pasa).
//   - 503 si falla la consulta de la matriz.
func RequirePermission(key string, checker permissionChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:  "MISSING_ROLE",
				Error: "el token no incluye rol",
			})
		}

		ok, err := checker.HasPermission(c.Context(), role, key)
		if err != nil {
			log.Error().Err(err).Str("role", role).Str("permission", key).Msg("verificar permiso")
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:  "PERMISSION_CHECK_FAILED",
				Error: "no se pudo verificar el permiso, intente más tarde",
			})
		}
		if !ok {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:  "FORBIDDEN",
				Error: "el rol '" + role + "' no tiene el permiso '" + key + "'",
			})
		}
		return c.Next()
	}
}
