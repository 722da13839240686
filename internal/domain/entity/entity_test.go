package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCategorizar(t *testing.T) {
	cases := map[string]string{
		"1000.01": CategoriaA,
		"1000":    CategoriaB,
		"500.01":  CategoriaB,
		"500":     CategoriaC,
		"0":       CategoriaC,
	}
	for monto, want := range cases {
		assert.Equal(t, want, Categorizar(decimal.RequireFromString(monto)), monto)
	}
}

func TestObrero_Salario(t *testing.T) {
	o := &Obrero{HorasTrabajadas: 37.5}
	assert.True(t, o.Salario().Equal(decimal.NewFromInt(375)))
}

func TestTimestamps_Touch(t *testing.T) {
	var ts Timestamps
	t0 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	ts.Touch(t0)
	t1 := t0.Add(time.Hour)
	ts.Touch(t1)
	assert.Equal(t, t0, ts.CreatedAt)
	assert.Equal(t, t1, ts.UpdatedAt)
}
