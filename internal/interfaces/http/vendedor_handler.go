package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Concesionaria-api/internal/application/dto"
	"github.com/jhoicas/Concesionaria-api/internal/application/usecase"
)

// VendedorHandler maneja las peticiones HTTP para vendedores (protegido).
// Los duplicados responden 409.
type VendedorHandler struct {
	uc  *usecase.VendedorUseCase
	res resource
}

// NewVendedorHandler construye el handler.
func NewVendedorHandler(uc *usecase.VendedorUseCase) *VendedorHandler {
	return &VendedorHandler{uc: uc, res: resource{notFound: "Vendedor no encontrado", duplicateStatus: fiber.StatusConflict}}
}

// List godoc
// @Summary      Listar vendedores
// @Tags         vendedores
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.VendedorResponse
// @Router       /api/vendedores [get]
func (h *VendedorHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return h.res.fail(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener vendedor por ID
// @Tags         vendedores
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del vendedor"
// @Success      200  {object}  dto.VendedorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/vendedores/{id} [get]
func (h *VendedorHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.res.fail(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear vendedor
// @Tags         vendedores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.VendedorRequest  true  "Datos del vendedor"
// @Success      201   {object}  dto.VendedorResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/vendedores [post]
func (h *VendedorHandler) Create(c *fiber.Ctx) error {
	var in dto.VendedorRequest
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
// @Summary      Actualizar vendedor (parcial)
// @Tags         vendedores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "ID del vendedor"
// @Param        body  body  dto.VendedorRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.VendedorResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/vendedores/{id} [put]
func (h *VendedorHandler) Update(c *fiber.Ctx) error {
	var in dto.VendedorRequest
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
// @Summary      Eliminar vendedor
// @Tags         vendedores
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del vendedor"
// @Success      200  {object}  dto.VendedorEnvelope
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/vendedores/{id} [delete]
func (h *VendedorHandler) Delete(c *fiber.Ctx) error {
	out, err := h.uc.Delete(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.res.fail(c, err)
	}
	return c.JSON(dto.VendedorEnvelope{Message: "Vendedor eliminado exitosamente", Data: out})
}
