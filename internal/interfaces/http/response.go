package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Concesionaria-api/internal/application/dto"
	"github.com/jhoicas/Concesionaria-api/internal/domain"
)

// Mensajes de error de entrada.
const (
	MsgCuerpoInvalido = "Cuerpo de la solicitud inválido"
	MsgIDInvalido     = "ID inválido"
)

// resource describe cómo traduce un recurso los errores de dominio a HTTP.
type resource struct {
	notFound        string // mensaje del 404
	duplicateStatus int    // 400 o 409 según el recurso
}

// fail escribe la respuesta para err. Los errores que no son de dominio se devuelven a
// Fiber para que los resuelva el ErrorHandler (500).
func (r resource) fail(c *fiber.Ctx, err error) error {
	var ve *domain.ValidationError
	switch {
	case errors.Is(err, domain.ErrInvalidID):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: MsgIDInvalido})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: r.notFound})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(r.duplicateStatus).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
	case errors.Is(err, domain.ErrMissingCredentials):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_CREDENTIALS", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_CREDENTIALS", Message: err.Error()})
	case errors.As(err, &ve):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: ve.Message})
	default:
		return err
	}
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: MsgCuerpoInvalido})
}
