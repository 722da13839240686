package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Concesionaria-api/internal/application/dto"
)

const (
	msgBackendActivo   = "API Concesionarias - Backend activo"
	dbConectado        = "Conectado"
	dbDesconectado     = "Desconectado"
	pingTimeout        = 2 * time.Second
	isoMillisUTCLayout = "2006-01-02T15:04:05.000Z"
)

// Pinger comprueba la conexión con la base de datos.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapta una función a Pinger.
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

// StatusHandler sirve la ruta raíz y /health.
type StatusHandler struct {
	db      Pinger
	service string
}

// NewStatusHandler construye el handler. db puede ser nil (se informa "Desconectado").
func NewStatusHandler(db Pinger, service string) *StatusHandler {
	return &StatusHandler{db: db, service: service}
}

// Root godoc
// @Summary      Estado de la API
// @Tags         status
// @Produce      json
// @Success      200  {object}  dto.StatusResponse
// @Router       / [get]
func (h *StatusHandler) Root(c *fiber.Ctx) error {
	database := dbDesconectado
	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.UserContext(), pingTimeout)
		defer cancel()
		if h.db.Ping(ctx) == nil {
			database = dbConectado
		}
	}
	return c.JSON(dto.StatusResponse{
		Message:   msgBackendActivo,
		Database:  database,
		Timestamp: time.Now().UTC().Format(isoMillisUTCLayout),
	})
}

// Health responde siempre 200 mientras el proceso esté vivo.
func (h *StatusHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok", "service": h.service})
}
