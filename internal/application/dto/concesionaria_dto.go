package dto

import "time"

// ConcesionariaRequest entrada para crear o actualizar una concesionaria.
type ConcesionariaRequest struct {
	Nombre    *string `json:"nombre"`
	Direccion *string `json:"direccion"`
	Telefono  *Texto  `json:"telefono"`
	Ciudad    *string `json:"ciudad"`
	Gerente   *string `json:"gerente"`
}

// ConcesionariaResponse salida de una concesionaria.
type ConcesionariaResponse struct {
	ID        string    `json:"id"`
	Nombre    string    `json:"nombre"`
	Direccion string    `json:"direccion"`
	Telefono  string    `json:"telefono"`
	Ciudad    string    `json:"ciudad"`
	Gerente   string    `json:"gerente"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
