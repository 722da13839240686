package entity

import "github.com/shopspring/decimal"

// ObreroCollection nombre de la colección de obreros.
const ObreroCollection = "obreros"

// TarifaHora pago por hora trabajada.
var TarifaHora = decimal.NewFromInt(10)

// Obrero representa un trabajador pagado por horas.
type Obrero struct {
	ID              string  `bson:"-"`
	NombreCompleto  string  `bson:"nombreCompleto"`
	HorasTrabajadas float64 `bson:"horasTrabajadas"`
	Timestamps      `bson:",inline"`
}

func (o *Obrero) GetID() string   { return o.ID }
func (o *Obrero) SetID(id string) { o.ID = id }

// Salario horas trabajadas por la tarifa horaria.
func (o *Obrero) Salario() decimal.Decimal {
	return decimal.NewFromFloat(o.HorasTrabajadas).Mul(TarifaHora)
}
