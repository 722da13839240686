package dto

import "time"

// VendedorRequest entrada para crear o actualizar un vendedor.
type VendedorRequest struct {
	Name           *string `json:"name"`
	Email          *string `json:"email"`
	Telefono       *Texto  `json:"telefono"`
	Comision       *Numero `json:"comision"`
	CodigoEmpleado *string `json:"codigoEmpleado"`
}

// VendedorResponse salida de un vendedor.
type VendedorResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Telefono       string    `json:"telefono"`
	Comision       float64   `json:"comision"`
	CodigoEmpleado string    `json:"codigoEmpleado"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// VendedorEnvelope respuesta de la eliminación de un vendedor.
type VendedorEnvelope struct {
	Message string            `json:"message"`
	Data    *VendedorResponse `json:"data"`
}
