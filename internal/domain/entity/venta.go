package entity

import "github.com/shopspring/decimal"

// VentaCollection nombre de la colección de ventas.
const VentaCollection = "ventas"

// Categorías de venta según el monto.
const (
	CategoriaA = "A" // monto > 1000
	CategoriaB = "B" // 500 < monto <= 1000
	CategoriaC = "C" // resto
)

var (
	umbralA = decimal.NewFromInt(1000)
	umbralB = decimal.NewFromInt(500)
)

// Venta es una venta procesada y categorizada.
type Venta struct {
	ID         string          `bson:"-"`
	Monto      decimal.Decimal `bson:"monto"`
	Categoria  string          `bson:"categoria"`
	Timestamps `bson:",inline"`
}

func (v *Venta) GetID() string   { return v.ID }
func (v *Venta) SetID(id string) { v.ID = id }

// Categorizar devuelve la categoría que corresponde a un monto.
func Categorizar(monto decimal.Decimal) string {
	switch {
	case monto.GreaterThan(umbralA):
		return CategoriaA
	case monto.GreaterThan(umbralB):
		return CategoriaB
	default:
		return CategoriaC
	}
}
