package http

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Concesionaria-api/internal/application/dto"
	"github.com/jhoicas/Concesionaria-api/pkg/logger"
)

// Mensajes genéricos.
const (
	MsgEndpointNoEncontrado = "Endpoint no encontrado"
	MsgErrorInterno         = "Error interno del servidor"
)

var (
	corsMethods = strings.Join([]string{fiber.MethodGet, fiber.MethodPost, fiber.MethodPut, fiber.MethodDelete, fiber.MethodOptions}, ",")
	corsHeaders = strings.Join([]string{fiber.HeaderContentType, fiber.HeaderAuthorization}, ",")
)

// CORS permite cualquier origen. Los preflight OPTIONS terminan aquí con 200.
func CORS() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderAccessControlAllowOrigin, "*")
		c.Set(fiber.HeaderAccessControlAllowMethods, corsMethods)
		c.Set(fiber.HeaderAccessControlAllowHeaders, corsHeaders)
		if c.Method() == fiber.MethodOptions {
			return c.SendStatus(fiber.StatusOK)
		}
		return c.Next()
	}
}

// RequestLogger registra cada petición con método, ruta, status, latencia y request_id.
// Los errores de la cadena se resuelven aquí con el ErrorHandler de la app para registrar
// el status final.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		if chainErr := c.Next(); chainErr != nil {
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}
		log.Info().
			Str("request_id", requestID(c)).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("latency", time.Since(start)).
			Msg("request")
		return nil
	}
}

// ErrorHandler responde a los errores no controlados por los handlers. Nunca expone el
// detalle en producción.
func ErrorHandler(log *logger.Logger, exposeDetail bool) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			if fe.Code == fiber.StatusNotFound {
				return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{Message: MsgEndpointNoEncontrado})
			}
			return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: "HTTP_ERROR", Message: fe.Message})
		}

		log.Error().
			Err(err).
			Str("request_id", requestID(c)).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg("error no controlado")

		body := dto.ErrorResponse{Code: "INTERNAL", Message: MsgErrorInterno}
		if exposeDetail {
			body.Error = err.Error()
		}
		return c.Status(fiber.StatusInternalServerError).JSON(body)
	}
}

// NotFound responde a cualquier ruta no registrada. Va al final de la cadena.
func NotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{Message: MsgEndpointNoEncontrado})
}

func requestID(c *fiber.Ctx) string {
	return c.GetRespHeader(fiber.HeaderXRequestID)
}
