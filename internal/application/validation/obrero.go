package validation

import (
	"github.com/jhoicas/Concesionaria-api/internal/application/dto"
	"github.com/jhoicas/Concesionaria-api/internal/domain/entity"
)

// Mensajes de Obrero.
const (
	MsgObreroRequeridos = "Nombre y horas trabajadas (número) son requeridos"
	MsgObreroHoras      = "Las horas trabajadas no pueden ser negativas"
)

// Obrero valida un obrero completo. No tiene campos únicos.
func Obrero(in dto.ObreroRequest) (*entity.Obrero, error) {
	if blank(in.NombreCompleto) || in.HorasTrabajadas == nil {
		return nil, missing("", MsgObreroRequeridos)
	}
	if validate.Var(*in.HorasTrabajadas, ruleHoras) != nil {
		return nil, outOfRange("horasTrabajadas", MsgObreroHoras)
	}
	return &entity.Obrero{
		NombreCompleto:  text(in.NombreCompleto),
		HorasTrabajadas: *in.HorasTrabajadas,
	}, nil
}
