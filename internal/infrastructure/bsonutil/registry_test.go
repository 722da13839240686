package bsonutil

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

type conMonto struct {
	Monto decimal.Decimal `bson:"monto"`
}

func TestDecimal_SeGuardaComoDecimal128(t *testing.T) {
	raw, err := Marshal(conMonto{Monto: decimal.RequireFromString("1500.75")})
	require.NoError(t, err)

	v := bson.Raw(raw).Lookup("monto")
	assert.Equal(t, bsontype.Decimal128, v.Type)

	var out conMonto
	require.NoError(t, Unmarshal(raw, &out))
	assert.True(t, out.Monto.Equal(decimal.RequireFromString("1500.75")), out.Monto.String())
}

func TestDecimal_DesdeDouble(t *testing.T) {
	raw, err := bson.Marshal(bson.M{"monto": 12.5})
	require.NoError(t, err)

	var out conMonto
	require.NoError(t, Unmarshal(raw, &out))
	assert.True(t, out.Monto.Equal(decimal.RequireFromString("12.5")))
}
