package entity

// Colección y campos únicos de Cliente.
const (
	ClienteCollection = "clientes"
	ClienteFieldEmail = "email"
)

// Cliente representa un cliente de la concesionaria.
type Cliente struct {
	ID         string `bson:"-"`
	Nombre     string `bson:"nombre"`
	Email      string `bson:"email"` // en minúsculas, único
	Telefono   string `bson:"telefono"`
	Direccion  string `bson:"direccion"`
	Ciudad     string `bson:"ciudad"`
	Timestamps `bson:",inline"`
}

func (c *Cliente) GetID() string   { return c.ID }
func (c *Cliente) SetID(id string) { c.ID = id }
