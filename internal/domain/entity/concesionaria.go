package entity

// Colección y campos únicos de Concesionaria.
const (
	ConcesionariaCollection  = "concesionarias"
	ConcesionariaFieldNombre = "nombre"
)

// Concesionaria representa una sucursal. No está vinculada a Vendedor ni a Auto.
type Concesionaria struct {
	ID         string `bson:"-"`
	Nombre     string `bson:"nombre"`
	Direccion  string `bson:"direccion"`
	Telefono   string `bson:"telefono"`
	Ciudad     string `bson:"ciudad"`
	Gerente    string `bson:"gerente"`
	Timestamps `bson:",inline"`
}

func (c *Concesionaria) GetID() string   { return c.ID }
func (c *Concesionaria) SetID(id string) { c.ID = id }
