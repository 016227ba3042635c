package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/boutique-api/internal/application/dto"
	"github.com/jhoicas/boutique-api/pkg/jwt"
)

// Locals keys para UserID y Role en Fiber.
const (
	LocalUserID = "user_id"
	LocalRole   = "role"
)

// AuthConfig secreto JWT y nombre de la cookie de sesión.
type AuthConfig struct {
	Secret     string
	CookieName string
}

// AuthMiddleware exige un token válido (Bearer o cookie de sesión) y deja UserID y Role en c.Locals.
func AuthMiddleware(cfg AuthConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, errResp := extractToken(c, cfg.CookieName)
		if errResp != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(errResp)
		}
		userID, role, err := jwt.Parse(cfg.Secret, token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Error: "token inválido o expirado"})
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalRole, role)
		return c.Next()
	}
}

// OptionalAuth resuelve la identidad si hay un token válido. Sin token, o con uno
// inutilizable, la petición sigue como anónima.
func OptionalAuth(cfg AuthConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, errResp := extractToken(c, cfg.CookieName)
		if errResp == nil {
			if userID, role, err := jwt.Parse(cfg.Secret, token); err == nil {
				c.Locals(LocalUserID, userID)
				c.Locals(LocalRole, role)
			}
		}
		return c.Next()
	}
}

// extractToken prioriza el header Authorization; si no viene, usa la cookie.
func extractToken(c *fiber.Ctx, cookieName string) (string, *dto.ErrorResponse) {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		if cookieName != "" {
			if v := strings.TrimSpace(c.Cookies(cookieName)); v != "" {
				return v, nil
			}
		}
		return "", &dto.ErrorResponse{Code: "MISSING_TOKEN", Error: "Authorization header o cookie de sesión requerido"}
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", &dto.ErrorResponse{Code: "INVALID_TOKEN", Error: "formato: Bearer <token>"}
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", &dto.ErrorResponse{Code: "MISSING_TOKEN", Error: "token vacío"}
	}
	return token, nil
}

// GetUserID devuelve el UserID del contexto, 0 si la petición es anónima.
func GetUserID(c *fiber.Ctx) int64 {
	id, _ := c.Locals(LocalUserID).(int64)
	return id
}

// GetUserIDPtr igual que GetUserID pero nil para anónimo; es lo que guardan los movimientos.
func GetUserIDPtr(c *fiber.Ctx) *int64 {
	id := GetUserID(c)
	if id <= 0 {
		return nil
	}
	return &id
}

// GetRole devuelve el nombre del rol del token.
func GetRole(c *fiber.Ctx) string {
	role, _ := c.Locals(LocalRole).(string)
	return role
}
