package dto

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
)

var errNoNumero = errors.New("dto: valor no numérico")

// Numero valor numérico que puede llegar como número JSON o como texto ("2022").
// Se guarda el texto tal cual: decidir si es un número válido le toca a la validación,
// no al parser del cuerpo.
type Numero string

// NumeroDe construye un *Numero a partir de su texto.
func NumeroDe(s string) *Numero {
	n := Numero(s)
	return &n
}

func (n *Numero) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*n = Numero(s)
		return nil
	}
	*n = Numero(b)
	return nil
}

// Float64 interpreta el valor como número finito.
func (n Numero) Float64() (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(string(n)), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errNoNumero
	}
	return f, nil
}

// Texto cadena que también acepta un número JSON: 9987654 se guarda como "9987654".
type Texto string

// TextoDe construye un *Texto.
func TextoDe(s string) *Texto {
	t := Texto(s)
	return &t
}

func (t *Texto) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*t = Texto(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*t = Texto(n)
	return nil
}

// Ptr devuelve el texto como *string; nil si t es nil.
func (t *Texto) Ptr() *string {
	if t == nil {
		return nil
	}
	s := string(*t)
	return &s
}
