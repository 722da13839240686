package http

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Concesionaria-api/internal/application/dto"
	"github.com/jhoicas/Concesionaria-api/internal/domain"
	"github.com/jhoicas/Concesionaria-api/pkg/jwt"
)

// Locals keys para el usuario autenticado en Fiber.
const (
	LocalUserID    = "user_id"
	LocalUserEmail = "user_email"
)

// Mensajes del middleware de autenticación.
const (
	MsgNoAutorizado  = "No autorizado"
	MsgTokenInvalido = "Token inválido"
)

// AuthMiddleware valida el Bearer Token JWT y deja id y email del usuario en c.Locals.
// Sin token responde 401; con un token que no verifica (firma, formato o expiración) responde 403.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, email, err := BearerIdentity(jwtSecret, c.Get(fiber.HeaderAuthorization))
		switch {
		case errors.Is(err, domain.ErrUnauthorized):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: MsgNoAutorizado})
		case err != nil:
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: MsgTokenInvalido})
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalUserEmail, email)
		return c.Next()
	}
}

// BearerIdentity extrae y verifica el token de la cabecera Authorization.
// Devuelve domain.ErrUnauthorized si no hay token y domain.ErrForbidden si el token
// no es Bearer o no verifica.
func BearerIdentity(jwtSecret, header string) (userID, email string, err error) {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || strings.TrimSpace(parts[1]) == "" {
		return "", "", domain.ErrUnauthorized
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", "", fmt.Errorf("%w: esquema %q", domain.ErrForbidden, parts[0])
	}
	userID, email, err = jwt.Parse(jwtSecret, strings.TrimSpace(parts[1]))
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", domain.ErrForbidden, err)
	}
	return userID, email, nil
}

// GetUserID devuelve el id del usuario del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserID).(string)
	return s
}

// GetUserEmail devuelve el email del usuario del contexto (después del middleware de auth).
func GetUserEmail(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserEmail).(string)
	return s
}
