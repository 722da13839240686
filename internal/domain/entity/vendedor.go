package entity

// Colección y campos únicos de Vendedor.
const (
	VendedorCollection          = "vendedores"
	VendedorFieldEmail          = "email"
	VendedorFieldCodigoEmpleado = "codigoEmpleado"
)

// Límites de la comisión (porcentaje).
const (
	ComisionMin = 0
	ComisionMax = 100
)

// Vendedor representa un empleado de ventas.
type Vendedor struct {
	ID             string  `bson:"-"`
	Name           string  `bson:"name"`
	Email          string  `bson:"email"`
	Telefono       string  `bson:"telefono"`
	Comision       float64 `bson:"comision"`
	CodigoEmpleado string  `bson:"codigoEmpleado"`
	Timestamps     `bson:",inline"`
}

func (v *Vendedor) GetID() string   { return v.ID }
func (v *Vendedor) SetID(id string) { v.ID = id }
