// Package storage elige el adaptador de persistencia según DB_DRIVER.
package storage

import (
	"context"
	"fmt"

	"github.com/jhoicas/Concesionaria-api/internal/domain/repository"
	"github.com/jhoicas/Concesionaria-api/internal/infrastructure/memory"
	"github.com/jhoicas/Concesionaria-api/internal/infrastructure/mongodb"
	"github.com/jhoicas/Concesionaria-api/pkg/config"
	"github.com/jhoicas/Concesionaria-api/pkg/logger"
)

// Store repositorios abiertos más la conexión que los respalda.
type Store struct {
	Repos  repository.Set
	Driver string
	client *mongodb.Client // nil con el driver en memoria
}

// Open conecta con el driver configurado. Con mongo también crea los índices únicos.
// Quien llama debe invocar Close.
func Open(ctx context.Context, cfg config.DBConfig, log *logger.Logger) (*Store, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		log.Warn().Msg("usando almacenamiento en memoria: los datos se pierden al reiniciar")
		return &Store{Repos: memory.NewRepositories(), Driver: cfg.Driver}, nil
	case config.DriverMongo:
		client, err := mongodb.Connect(ctx, cfg)
		if err != nil {
			return nil, err
		}
		if err := mongodb.EnsureIndexes(ctx, client.Database()); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, err
		}
		log.Info().Str("db", cfg.Name).Msg("conectado a MongoDB")
		return &Store{Repos: mongodb.NewRepositories(client.Database()), Driver: cfg.Driver, client: client}, nil
	default:
		return nil, fmt.Errorf("storage: driver desconocido %q", cfg.Driver)
	}
}

// Ping comprueba la base. En memoria siempre responde.
func (s *Store) Ping(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	return s.client.Ping(ctx)
}

// Close libera la conexión, si la hay.
func (s *Store) Close(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	return s.client.Disconnect(ctx)
}
