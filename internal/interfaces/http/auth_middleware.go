package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/nexus-inventory/internal/application/auth"
	"github.com/jhoicas/nexus-inventory/internal/application/dto"
	"github.com/jhoicas/nexus-inventory/internal/application/session"
	"github.com/jhoicas/nexus-inventory/internal/domain/entity"
	"github.com/jhoicas/nexus-inventory/internal/domain/policy"
)

// Locals keys para la sesión y el token resueltos en Fiber.
const (
	LocalSession = "session"
	LocalToken   = "token"
)

// SessionResolver reconstruye la sesión a partir del token firmado. Lo implementa *auth.AuthUseCase.
type SessionResolver interface {
	Resolve(token string) (session.Session, auth.Token, error)
}

// AuthMiddleware valida el Bearer Token y guarda la sesión y el token en c.Locals.
// Un token inválido, expirado o revocado equivale a no tener sesión (401).
func AuthMiddleware(resolver SessionResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		sess, tok, err := resolver.Resolve(tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalSession, sess)
		c.Locals(LocalToken, tok)
		return c.Next()
	}
}

// RequireAction devuelve 403 si el rol de la sesión no permite la acción.
// Debe usarse DESPUÉS de AuthMiddleware.
func RequireAction(action policy.Action) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := GetSession(c)
		if !sess.IsAuthenticated {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sesión requerida"})
		}
		if !sess.Allows(action) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "el rol " + string(sess.Role()) + " no permite " + string(action),
			})
		}
		return c.Next()
	}
}

// GetSession devuelve la sesión del contexto; vacía si no pasó por AuthMiddleware.
func GetSession(c *fiber.Ctx) session.Session {
	s, _ := c.Locals(LocalSession).(session.Session)
	return s
}

// GetToken devuelve el token resuelto por AuthMiddleware.
func GetToken(c *fiber.Ctx) auth.Token {
	t, _ := c.Locals(LocalToken).(auth.Token)
	return t
}

// GetRole devuelve el rol de la sesión o "".
func GetRole(c *fiber.Ctx) entity.Role {
	return GetSession(c).Role()
}
