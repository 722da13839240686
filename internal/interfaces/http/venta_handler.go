package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Concesionaria-api/internal/application/dto"
	"github.com/jhoicas/Concesionaria-api/internal/application/usecase"
)

// VentaHandler maneja el procesamiento de lotes de ventas (protegido).
type VentaHandler struct {
	uc  *usecase.VentaUseCase
	res resource
}

// NewVentaHandler construye el handler.
func NewVentaHandler(uc *usecase.VentaUseCase) *VentaHandler {
	return &VentaHandler{uc: uc, res: resource{notFound: "Venta no encontrada", duplicateStatus: fiber.StatusBadRequest}}
}

// Procesar godoc
// @Summary      Procesar lote de ventas
// @Description  Categoriza cada venta (A > 1000, B > 500, C resto), la guarda y devuelve totales.
// @Tags         ventas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProcesarVentasRequest  true  "ventas: [{monto}]"
// @Success      200   {object}  dto.ResumenVentasResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/ventas/procesar [post]
func (h *VentaHandler) Procesar(c *fiber.Ctx) error {
	var in dto.ProcesarVentasRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Procesar(c.UserContext(), in)
	if err != nil {
		return h.res.fail(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar ventas registradas
// @Tags         ventas
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.VentaResponse
// @Router       /api/ventas [get]
func (h *VentaHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return h.res.fail(c, err)
	}
	return c.JSON(out)
}
