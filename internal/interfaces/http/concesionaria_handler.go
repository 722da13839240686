package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Concesionaria-api/internal/application/dto"
	"github.com/jhoicas/Concesionaria-api/internal/application/usecase"
)

// ConcesionariaHandler maneja las peticiones HTTP para concesionarias (protegido).
type ConcesionariaHandler struct {
	uc  *usecase.ConcesionariaUseCase
	res resource
}

// NewConcesionariaHandler construye el handler.
func NewConcesionariaHandler(uc *usecase.ConcesionariaUseCase) *ConcesionariaHandler {
	return &ConcesionariaHandler{uc: uc, res: resource{notFound: "Concesionaria no encontrada", duplicateStatus: fiber.StatusBadRequest}}
}

// List godoc
// @Summary      Listar concesionarias
// @Tags         concesionarias
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ConcesionariaResponse
// @Router       /api/concesionarias [get]
func (h *ConcesionariaHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return h.res.fail(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener concesionaria por ID
// @Tags         concesionarias
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la concesionaria"
// @Success      200  {object}  dto.ConcesionariaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/concesionarias/{id} [get]
func (h *ConcesionariaHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.res.fail(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear concesionaria
// @Tags         concesionarias
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ConcesionariaRequest  true  "Datos de la concesionaria"
// @Success      201   {object}  dto.ConcesionariaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/concesionarias [post]
func (h *ConcesionariaHandler) Create(c *fiber.Ctx) error {
	var in dto.ConcesionariaRequest
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
// @Summary      Actualizar concesionaria (parcial)
// @Tags         concesionarias
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID de la concesionaria"
// @Param        body  body  dto.ConcesionariaRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.ConcesionariaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/concesionarias/{id} [put]
func (h *ConcesionariaHandler) Update(c *fiber.Ctx) error {
	var in dto.ConcesionariaRequest
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
// @Summary      Eliminar concesionaria
// @Tags         concesionarias
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la concesionaria"
// @Success      200  {object}  dto.ConcesionariaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/concesionarias/{id} [delete]
func (h *ConcesionariaHandler) Delete(c *fiber.Ctx) error {
	out, err := h.uc.Delete(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.res.fail(c, err)
	}
	return c.JSON(out)
}
