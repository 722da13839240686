package dto

import (
	"encoding/json"
	"time"
)

// ProcesarVentasRequest lote de ventas a procesar. Ventas se valida en el caso de uso
// (debe ser un arreglo de objetos con "monto" numérico >= 0).
type ProcesarVentasRequest struct {
	Ventas json.RawMessage `json:"ventas"`
}

// VentaItem elemento del lote.
type VentaItem struct {
	Monto json.RawMessage `json:"monto"`
}

// ResumenVentasResponse conteo y totales por categoría.
type ResumenVentasResponse struct {
	VentasProcesadas int     `json:"ventasProcesadas"`
	A                int     `json:"A"`
	B                int     `json:"B"`
	C                int     `json:"C"`
	T1               float64 `json:"T1"`
	T2               float64 `json:"T2"`
	T3               float64 `json:"T3"`
	TT               float64 `json:"TT"`
}

// VentaResponse salida de una venta almacenada.
type VentaResponse struct {
	ID        string    `json:"id"`
	Monto     float64   `json:"monto"`
	Categoria string    `json:"categoria"`
	CreatedAt time.Time `json:"createdAt"`
}
