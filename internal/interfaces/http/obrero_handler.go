package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Concesionaria-api/internal/application/dto"
	"github.com/jhoicas/Concesionaria-api/internal/application/usecase"
)

// ObreroHandler maneja las peticiones HTTP para obreros (protegido).
type ObreroHandler struct {
	uc  *usecase.ObreroUseCase
	res resource
}

// NewObreroHandler construye el handler.
func NewObreroHandler(uc *usecase.ObreroUseCase) *ObreroHandler {
	return &ObreroHandler{uc: uc, res: resource{notFound: "Obrero no encontrado", duplicateStatus: fiber.StatusBadRequest}}
}

// List godoc
// @Summary      Listar obreros
// @Tags         obreros
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ObreroResponse
// @Router       /api/obreros [get]
func (h *ObreroHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return h.res.fail(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener obrero por ID
// @Tags         obreros
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del obrero"
// @Success      200  {object}  dto.ObreroResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/obreros/{id} [get]
func (h *ObreroHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.res.fail(c, err)
	}
	return c.JSON(out)
}

// Salario godoc
// @Summary      Salario del obrero
// @Description  horasTrabajadas × 10
// @Tags         obreros
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del obrero"
// @Success      200  {object}  dto.SalarioResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/obreros/{id}/salario [get]
func (h *ObreroHandler) Salario(c *fiber.Ctx) error {
	out, err := h.uc.Salario(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.res.fail(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear obrero
// @Tags         obreros
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ObreroRequest  true  "Datos del obrero"
// @Success      201   {object}  dto.ObreroResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/obreros [post]
func (h *ObreroHandler) Create(c *fiber.Ctx) error {
	var in dto.ObreroRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return h.res.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar obrero (parcial)
// @Tags         obreros
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string             true  "ID del obrero"
// @Param        body  body  dto.ObreroRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.ObreroResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/obreros/{id} [put]
func (h *ObreroHandler) Update(c *fiber.Ctx) error {
	var in dto.ObreroRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return h.res.fail(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar obrero
// @Tags         obreros
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del obrero"
// @Success      200  {object}  dto.ObreroResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/obreros/{id} [delete]
func (h *ObreroHandler) Delete(c *fiber.Ctx) error {
	out, err := h.uc.Delete(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.res.fail(c, err)
	}
	return c.JSON(out)
}
