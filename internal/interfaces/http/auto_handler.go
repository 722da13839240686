package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Concesionaria-api/internal/application/dto"
	"github.com/jhoicas/Concesionaria-api/internal/application/usecase"
)

// AutoHandler maneja las peticiones HTTP para autos (protegido).
type AutoHandler struct {
	uc  *usecase.AutoUseCase
	res resource
}

// NewAutoHandler construye el handler.
func NewAutoHandler(uc *usecase.AutoUseCase) *AutoHandler {
	return &AutoHandler{uc: uc, res: resource{notFound: "Auto no encontrado", duplicateStatus: fiber.StatusBadRequest}}
}

// List godoc
// @Summary      Listar autos
// @Tags         autos
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.AutoResponse
// @Router       /api/autos [get]
func (h *AutoHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return h.res.fail(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener auto por ID
// @Tags         autos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del auto"
// @Success      200  {object}  dto.AutoResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/autos/{id} [get]
func (h *AutoHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.res.fail(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear auto
// @Tags         autos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AutoRequest  true  "Datos del auto"
// @Success      201   {object}  dto.AutoEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/autos [post]
func (h *AutoHandler) Create(c *fiber.Ctx) error {
	var in dto.AutoRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return h.res.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.AutoEnvelope{Message: "Auto creado exitosamente", Data: out})
}

// Update godoc
// @Summary      Actualizar auto (parcial)
// @Tags         autos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string           true  "ID del auto"
// @Param        body  body  dto.AutoRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.AutoEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/autos/{id} [put]
func (h *AutoHandler) Update(c *fiber.Ctx) error {
	var in dto.AutoRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return h.res.fail(c, err)
	}
	return c.JSON(dto.AutoEnvelope{Message: "Auto actualizado exitosamente", Data: out})
}

// Delete godoc
// @Summary      Eliminar auto
// @Tags         autos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del auto"
// @Success      200  {object}  dto.AutoEnvelope
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/autos/{id} [delete]
func (h *AutoHandler) Delete(c *fiber.Ctx) error {
	out, err := h.uc.Delete(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.res.fail(c, err)
	}
	return c.JSON(dto.AutoEnvelope{Message: "Auto eliminado exitosamente", Data: out})
}
