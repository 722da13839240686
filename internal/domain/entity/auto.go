package entity

// Colección y campos únicos de Auto.
const (
	AutoCollection       = "autos"
	AutoFieldNumeroSerie = "numeroSerie"
)

// Año mínimo admitido para un auto; el máximo es el año en curso + 1.
const AutoMinYear = 1900

// Auto representa un vehículo del inventario de la concesionaria.
type Auto struct {
	ID          string `bson:"-"`
	Marca       string `bson:"marca"`
	Modelo      string `bson:"modelo"`
	Anio        int    `bson:"anio"`
	Color       string `bson:"color"`
	NumeroSerie string `bson:"numeroSerie"` // siempre en mayúsculas
	Timestamps  `bson:",inline"`
}

func (a *Auto) GetID() string   { return a.ID }
func (a *Auto) SetID(id string) { a.ID = id }
