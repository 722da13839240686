// seed vacía las colecciones y carga los datos iniciales (autos, clientes, vendedores,
// concesionarias) más el usuario administrador de la configuración.
//
// Uso: go run ./cmd/seed [ruta/datos.json]
// Sin argumento usa los datos incluidos en el binario.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jhoicas/Concesionaria-api/internal/application/auth"
	"github.com/jhoicas/Concesionaria-api/internal/infrastructure/storage"
	"github.com/jhoicas/Concesionaria-api/internal/seed"
	"github.com/jhoicas/Concesionaria-api/pkg/config"
	"github.com/jhoicas/Concesionaria-api/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "seed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("cargar configuración: %w", err)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	data, err := loadData()
	if err != nil {
		return err
	}

	ctx := context.Background()
	store, err := storage.Open(ctx, cfg.DB, log)
	if err != nil {
		return err
	}
	defer store.Close(context.Background())

	res, err := seed.Run(ctx, store.Repos, data,
		auth.AdminConfig{Email: cfg.Admin.Email, Password: cfg.Admin.Password, Name: cfg.Admin.Name},
		auth.JWTConfig{Secret: cfg.JWT.Secret, Issuer: cfg.JWT.Issuer},
		log,
	)
	if err != nil {
		return err
	}
	log.Info().
		Int("autos", res.Autos).
		Int("clientes", res.Clientes).
		Int("vendedores", res.Vendedores).
		Int("concesionarias", res.Concesionarias).
		Bool("admin", res.Admin).
		Msg("base de datos poblada")
	return nil
}

func loadData() (*seed.Data, error) {
	if len(os.Args) < 2 {
		return seed.Default()
	}
	f, err := os.Open(os.Args[1])
	if err != nil {
		return nil, fmt.Errorf("abrir datos: %w", err)
	}
	defer f.Close()
	return seed.Read(f)
}
