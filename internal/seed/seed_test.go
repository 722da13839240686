package seed

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Concesionaria-api/internal/application/auth"
	"github.com/jhoicas/Concesionaria-api/internal/domain"
	"github.com/jhoicas/Concesionaria-api/internal/domain/entity"
	"github.com/jhoicas/Concesionaria-api/internal/infrastructure/memory"
	"github.com/jhoicas/Concesionaria-api/pkg/logger"
)

var testAdmin = auth.AdminConfig{Email: "admin@consecionaria.com", Password: "admin123", Name: "Administrador"}

func TestRun_DatosPorDefecto(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewRepositories()
	data, err := Default()
	require.NoError(t, err)

	// Datos previos que deben desaparecer.
	require.NoError(t, repos.Obreros.Insert(ctx, &entity.Obrero{NombreCompleto: "viejo"}))

	res, err := Run(ctx, repos, data, testAdmin, auth.JWTConfig{Secret: "s"}, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, &Result{Autos: 2, Clientes: 2, Vendedores: 2, Concesionarias: 2, Admin: true}, res)

	autos, err := repos.Autos.Find(ctx)
	require.NoError(t, err)
	require.Len(t, autos, 2)
	assert.Equal(t, 2023, autos[0].Anio, "el seed usa la clave \"año\"")

	obreros, err := repos.Obreros.Find(ctx)
	require.NoError(t, err)
	assert.Empty(t, obreros)

	// Volver a ejecutar deja el mismo estado.
	res, err = Run(ctx, repos, data, testAdmin, auth.JWTConfig{Secret: "s"}, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, 2, res.Autos)
	usuarios, err := repos.Usuarios.Find(ctx)
	require.NoError(t, err)
	assert.Len(t, usuarios, 1)
}

func TestRun_SinPasswordNoCreaAdmin(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewRepositories()
	res, err := Run(ctx, repos, &Data{}, auth.AdminConfig{Email: "admin@consecionaria.com"}, auth.JWTConfig{Secret: "s"}, logger.Nop())
	require.NoError(t, err)
	assert.False(t, res.Admin)
}

func TestRun_RegistroInvalido(t *testing.T) {
	data, err := Read(strings.NewReader(`{"clientes":[{"nombre":"x","email":"no-es-email","telefono":"1","direccion":"d","ciudad":"c"}]}`))
	require.NoError(t, err)

	_, err = Run(context.Background(), memory.NewRepositories(), data, testAdmin, auth.JWTConfig{Secret: "s"}, logger.Nop())
	assert.ErrorIs(t, err, domain.ErrInvalidFormat)
	assert.Contains(t, err.Error(), "cliente 0")
}
