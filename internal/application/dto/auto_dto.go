package dto

import "time"

// AutoRequest entrada para crear o actualizar un auto. En la actualización solo se aplican
// los campos presentes. El año se acepta como "anio" o "año" (número o texto numérico).
type AutoRequest struct {
	Marca       *string `json:"marca"`
	Modelo      *string `json:"modelo"`
	Anio        *Numero `json:"anio"`
	AnioAlt     *Numero `json:"año"`
	Color       *string `json:"color"`
	NumeroSerie *string `json:"numeroSerie"`
}

// Year devuelve el año enviado, con preferencia por "año".
func (r AutoRequest) Year() *Numero {
	if r.AnioAlt != nil {
		return r.AnioAlt
	}
	return r.Anio
}

// AutoResponse salida de un auto.
type AutoResponse struct {
	ID          string    `json:"id"`
	Marca       string    `json:"marca"`
	Modelo      string    `json:"modelo"`
	Anio        int       `json:"anio"`
	Color       string    `json:"color"`
	NumeroSerie string    `json:"numeroSerie"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// AutoEnvelope respuesta de escritura: mensaje + auto afectado.
type AutoEnvelope struct {
	Message string        `json:"message"`
	Data    *AutoResponse `json:"data"`
}
