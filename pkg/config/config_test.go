package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	v := viper.New()
	v.Set("JWT_SECRET", "s3cr3t")

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.False(t, cfg.App.IsProduction())
	assert.Equal(t, DriverMongo, cfg.DB.Driver)
	assert.Equal(t, "concesionaria", cfg.DB.Name)
	assert.Equal(t, 10*time.Second, cfg.DB.Timeout)
	assert.Equal(t, "0.0.0.0:3000", cfg.HTTP.Addr())
	assert.Equal(t, "admin@consecionaria.com", cfg.Admin.Email)
	assert.Empty(t, cfg.Admin.Password, "la contraseña del admin nunca tiene valor por defecto")
}

func TestFromViper_SinSecretoFalla(t *testing.T) {
	_, err := fromViper(viper.New())
	assert.ErrorIs(t, err, ErrMissingJWTSecret)
}

func TestFromViper_PortYHTTPPort(t *testing.T) {
	v := viper.New()
	v.Set("JWT_SECRET", "x")
	v.Set("PORT", "4000")
	cfg, err := fromViper(v)
	require.NoError(t, err)
	assert.Equal(t, 4000, cfg.HTTP.Port)

	v.Set("HTTP_PORT", 8081)
	cfg, err = fromViper(v)
	require.NoError(t, err)
	assert.Equal(t, 8081, cfg.HTTP.Port, "HTTP_PORT tiene prioridad sobre PORT")
}

func TestFromViper_MongoURLAlternativa(t *testing.T) {
	v := viper.New()
	v.Set("JWT_SECRET", "x")
	v.Set("DATABASE_URL", "mongodb://db:27017")
	cfg, err := fromViper(v)
	require.NoError(t, err)
	assert.Equal(t, "mongodb://db:27017", cfg.DB.MongoURL)
}

func TestFromViper_DriverDesconocido(t *testing.T) {
	v := viper.New()
	v.Set("JWT_SECRET", "x")
	v.Set("DB_DRIVER", "postgres")
	_, err := fromViper(v)
	assert.Error(t, err)
}
