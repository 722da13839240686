package validation

import (
	"context"

	"github.com/jhoicas/Concesionaria-api/internal/application/dto"
	"github.com/jhoicas/Concesionaria-api/internal/domain/entity"
	"github.com/jhoicas/Concesionaria-api/internal/domain/repository"
)

// Mensajes de Concesionaria.
const (
	MsgConcesionariaRequeridos = "Nombre, Dirección, Teléfono, Ciudad y Gerente son requeridos"
	MsgConcesionariaDuplicada  = "Ya existe una concesionaria con ese nombre"
)

// Concesionaria valida una concesionaria completa. El nombre es único sin distinguir mayúsculas.
func Concesionaria(ctx context.Context, checker repository.UniqueChecker, in dto.ConcesionariaRequest, excludeID string) (*entity.Concesionaria, error) {
	if blank(in.Nombre, in.Direccion, in.Telefono.Ptr(), in.Ciudad, in.Gerente) {
		return nil, missing("", MsgConcesionariaRequeridos)
	}
	c := &entity.Concesionaria{
		Nombre:    text(in.Nombre),
		Direccion: text(in.Direccion),
		Telefono:  text(in.Telefono.Ptr()),
		Ciudad:    text(in.Ciudad),
		Gerente:   text(in.Gerente),
	}
	if err := unique(ctx, checker, entity.ConcesionariaFieldNombre, c.Nombre, excludeID, MsgConcesionariaDuplicada); err != nil {
		return nil, err
	}
	return c, nil
}
