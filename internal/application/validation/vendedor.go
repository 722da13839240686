package validation

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/Concesionaria-api/internal/application/dto"
	"github.com/jhoicas/Concesionaria-api/internal/domain/entity"
	"github.com/jhoicas/Concesionaria-api/internal/domain/repository"
)

// Mensajes de Vendedor.
const (
	MsgVendedorRequeridos      = "Nombre, Email, Teléfono, Comisión y Código Empleado son requeridos"
	MsgVendedorEmail           = "El email no es válido"
	MsgVendedorTelefono        = "El teléfono debe contener solo números y tener entre 7 y 15 dígitos"
	MsgVendedorComision        = "La comisión debe ser un número entre 0 y 100"
	MsgVendedorEmailDuplicado  = "El email ya está registrado"
	MsgVendedorCodigoDuplicado = "El código de empleado ya está registrado"
)

var ruleComision = fmt.Sprintf("gte=%d,lte=%d", entity.ComisionMin, entity.ComisionMax)

// Vendedor valida un vendedor completo. La comisión es un porcentaje en [0, 100].
func Vendedor(ctx context.Context, checker repository.UniqueChecker, in dto.VendedorRequest, excludeID string) (*entity.Vendedor, error) {
	if blank(in.Name, in.Email, in.Telefono.Ptr(), in.CodigoEmpleado) || in.Comision == nil || strings.TrimSpace(string(*in.Comision)) == "" {
		return nil, missing("", MsgVendedorRequeridos)
	}
	email := strings.ToLower(text(in.Email))
	if !IsEmail(email) {
		return nil, invalid(entity.VendedorFieldEmail, MsgVendedorEmail)
	}
	telefono := text(in.Telefono.Ptr())
	if validate.Var(telefono, ruleTelefono) != nil {
		return nil, invalid("telefono", MsgVendedorTelefono)
	}
	comision, err := in.Comision.Float64()
	if err != nil {
		return nil, invalid("comision", MsgVendedorComision)
	}
	if validate.Var(comision, ruleComision) != nil {
		return nil, outOfRange("comision", MsgVendedorComision)
	}

	v := &entity.Vendedor{
		Name:           text(in.Name),
		Email:          email,
		Telefono:       telefono,
		Comision:       comision,
		CodigoEmpleado: strings.ToUpper(text(in.CodigoEmpleado)),
	}
	if err := unique(ctx, checker, entity.VendedorFieldEmail, v.Email, excludeID, MsgVendedorEmailDuplicado); err != nil {
		return nil, err
	}
	if err := unique(ctx, checker, entity.VendedorFieldCodigoEmpleado, v.CodigoEmpleado, excludeID, MsgVendedorCodigoDuplicado); err != nil {
		return nil, err
	}
	return v, nil
}
