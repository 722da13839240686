package dto

import "time"

// ObreroRequest entrada para crear o actualizar un obrero.
type ObreroRequest struct {
	NombreCompleto  *string  `json:"nombreCompleto"`
	HorasTrabajadas *float64 `json:"horasTrabajadas"`
}

// ObreroResponse salida de un obrero.
type ObreroResponse struct {
	ID              string    `json:"id"`
	NombreCompleto  string    `json:"nombreCompleto"`
	HorasTrabajadas float64   `json:"horasTrabajadas"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// SalarioResponse salario calculado de un obrero.
type SalarioResponse struct {
	ID              string  `json:"id"`
	NombreCompleto  string  `json:"nombreCompleto"`
	HorasTrabajadas float64 `json:"horasTrabajadas"`
	Salario         float64 `json:"salario"`
}
