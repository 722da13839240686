package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Concesionaria-api/internal/domain/entity"
	"github.com/jhoicas/Concesionaria-api/pkg/config"
	"github.com/jhoicas/Concesionaria-api/pkg/logger"
)

func TestOpen_Memoria(t *testing.T) {
	ctx := context.Background()
	s, err := Open(ctx, config.DBConfig{Driver: config.DriverMemory}, logger.Nop())
	require.NoError(t, err)
	defer func() { assert.NoError(t, s.Close(ctx)) }()

	assert.NoError(t, s.Ping(ctx))
	require.NoError(t, s.Repos.Autos.Insert(ctx, &entity.Auto{NumeroSerie: "X1"}))
	list, err := s.Repos.Autos.Find(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestOpen_DriverDesconocido(t *testing.T) {
	_, err := Open(context.Background(), config.DBConfig{Driver: "postgres"}, logger.Nop())
	assert.Error(t, err)
}
