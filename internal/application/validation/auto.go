package validation

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/jhoicas/Concesionaria-api/internal/application/dto"
	"github.com/jhoicas/Concesionaria-api/internal/domain/entity"
	"github.com/jhoicas/Concesionaria-api/internal/domain/repository"
)

// Mensajes de Auto.
const (
	MsgAutoRequeridos = "Marca, Modelo, Año, Color y Número de Serie son requeridos"
	MsgAutoDuplicado  = "El número de serie ya existe"
)

// MaxYear año máximo admitido para un auto: el año en curso + 1.
func MaxYear(now time.Time) int {
	return now.Year() + 1
}

// MsgAutoAnio mensaje de año fuera de rango para el instante now.
func MsgAutoAnio(now time.Time) string {
	return fmt.Sprintf("Año debe ser un número válido entre %d y %d", entity.AutoMinYear, MaxYear(now))
}

// Auto valida un auto completo. excludeID es el id propio en una actualización.
func Auto(ctx context.Context, checker repository.UniqueChecker, in dto.AutoRequest, excludeID string, now time.Time) (*entity.Auto, error) {
	year := in.Year()
	if blank(in.Marca, in.Modelo, in.Color, in.NumeroSerie) || year == nil || strings.TrimSpace(string(*year)) == "" {
		return nil, missing("", MsgAutoRequeridos)
	}

	// 2022, 2022.0 y "2022" son el mismo año; "abc" o 2020.5 no son un año.
	anio, err := year.Float64()
	if err != nil || anio != math.Trunc(anio) {
		return nil, invalid("anio", MsgAutoAnio(now))
	}
	rule := fmt.Sprintf("gte=%d,lte=%d", entity.AutoMinYear, MaxYear(now))
	if validate.Var(anio, rule) != nil {
		return nil, outOfRange("anio", MsgAutoAnio(now))
	}

	a := &entity.Auto{
		Marca:       text(in.Marca),
		Modelo:      text(in.Modelo),
		Anio:        int(anio),
		Color:       text(in.Color),
		NumeroSerie: strings.ToUpper(text(in.NumeroSerie)),
	}
	if err := unique(ctx, checker, entity.AutoFieldNumeroSerie, a.NumeroSerie, excludeID, MsgAutoDuplicado); err != nil {
		return nil, err
	}
	return a, nil
}
