package validation

import (
	"context"
	"strings"

	"github.com/jhoicas/Concesionaria-api/internal/application/dto"
	"github.com/jhoicas/Concesionaria-api/internal/domain/entity"
	"github.com/jhoicas/Concesionaria-api/internal/domain/repository"
)

// Mensajes de Cliente.
const (
	MsgClienteRequeridos = "Nombre, Email, Teléfono, Dirección y Ciudad son requeridos"
	MsgClienteEmail      = "El email no tiene un formato válido"
	MsgClienteDuplicado  = "El email ya está registrado"
)

// Cliente valida un cliente completo.
func Cliente(ctx context.Context, checker repository.UniqueChecker, in dto.ClienteRequest, excludeID string) (*entity.Cliente, error) {
	if blank(in.Nombre, in.Email, in.Telefono.Ptr(), in.Direccion, in.Ciudad) {
		return nil, missing("", MsgClienteRequeridos)
	}
	email := strings.ToLower(text(in.Email))
	if !IsEmail(email) {
		return nil, invalid(entity.ClienteFieldEmail, MsgClienteEmail)
	}

	c := &entity.Cliente{
		Nombre:    text(in.Nombre),
		Email:     email,
		Telefono:  text(in.Telefono.Ptr()),
		Direccion: text(in.Direccion),
		Ciudad:    text(in.Ciudad),
	}
	if err := unique(ctx, checker, entity.ClienteFieldEmail, c.Email, excludeID, MsgClienteDuplicado); err != nil {
		return nil, err
	}
	return c, nil
}
