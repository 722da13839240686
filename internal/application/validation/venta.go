package validation

import (
	"bytes"
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Concesionaria-api/internal/application/dto"
	"github.com/jhoicas/Concesionaria-api/internal/domain"
)

// Mensajes de Ventas.
const (
	MsgVentasArreglo = "Se requiere un arreglo de ventas"
	MsgVentaMonto    = "Monto de venta inválido"
)

// Montos extrae los montos del lote. Cada elemento debe tener "monto" numérico (no texto) y >= 0.
func Montos(in dto.ProcesarVentasRequest) ([]decimal.Decimal, error) {
	raw := bytes.TrimSpace(in.Ventas)
	if len(raw) == 0 || raw[0] != '[' {
		return nil, domain.NewValidationError(domain.ErrInvalidInput, "ventas", MsgVentasArreglo)
	}
	var items []dto.VentaItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, domain.NewValidationError(domain.ErrInvalidInput, "monto", MsgVentaMonto)
	}

	montos := make([]decimal.Decimal, 0, len(items))
	for _, it := range items {
		m, ok := parseMonto(it.Monto)
		if !ok {
			return nil, domain.NewValidationError(domain.ErrInvalidInput, "monto", MsgVentaMonto)
		}
		montos = append(montos, m)
	}
	return montos, nil
}

func parseMonto(raw json.RawMessage) (decimal.Decimal, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || !(raw[0] == '-' || (raw[0] >= '0' && raw[0] <= '9')) {
		return decimal.Decimal{}, false
	}
	m, err := decimal.NewFromString(string(raw))
	if err != nil || m.IsNegative() {
		return decimal.Decimal{}, false
	}
	return m, true
}
