package dto

import "time"

// ClienteRequest entrada para crear o actualizar un cliente.
type ClienteRequest struct {
	Nombre    *string `json:"nombre"`
	Email     *string `json:"email"`
	Telefono  *Texto  `json:"telefono"`
	Direccion *string `json:"direccion"`
	Ciudad    *string `json:"ciudad"`
}

// ClienteResponse salida de un cliente.
type ClienteResponse struct {
	ID        string    `json:"id"`
	Nombre    string    `json:"nombre"`
	Email     string    `json:"email"`
	Telefono  string    `json:"telefono"`
	Direccion string    `json:"direccion"`
	Ciudad    string    `json:"ciudad"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ClienteEnvelope respuesta con un cliente.
type ClienteEnvelope struct {
	Message string           `json:"message"`
	Cliente *ClienteResponse `json:"cliente"`
}

// ClienteListEnvelope respuesta del listado de clientes.
type ClienteListEnvelope struct {
	Message  string             `json:"message"`
	Clientes []*ClienteResponse `json:"clientes"`
}
