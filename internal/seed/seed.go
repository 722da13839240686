// Package seed vacía las colecciones y carga datos iniciales para desarrollo y pruebas.
// Los datos pasan por los mismos casos de uso que la API, así que se validan y normalizan.
package seed

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/Concesionaria-api/internal/application/auth"
	"github.com/jhoicas/Concesionaria-api/internal/application/dto"
	"github.com/jhoicas/Concesionaria-api/internal/application/usecase"
	"github.com/jhoicas/Concesionaria-api/internal/domain/repository"
	"github.com/jhoicas/Concesionaria-api/pkg/logger"
)

//go:embed data.json
var defaultData []byte

// Data conjunto de registros a cargar.
type Data struct {
	Autos          []dto.AutoRequest          `json:"autos"`
	Clientes       []dto.ClienteRequest       `json:"clientes"`
	Vendedores     []dto.VendedorRequest      `json:"vendedores"`
	Concesionarias []dto.ConcesionariaRequest `json:"concesionarias"`
}

// Default devuelve los datos incluidos en el binario.
func Default() (*Data, error) {
	var d Data
	if err := json.Unmarshal(defaultData, &d); err != nil {
		return nil, fmt.Errorf("seed: datos por defecto: %w", err)
	}
	return &d, nil
}

// Read decodifica un archivo de datos con el mismo formato que el embebido.
func Read(r io.Reader) (*Data, error) {
	var d Data
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return nil, fmt.Errorf("seed: leer datos: %w", err)
	}
	return &d, nil
}

// Result cuántos registros se crearon por colección.
type Result struct {
	Autos          int
	Clientes       int
	Vendedores     int
	Concesionarias int
	Admin          bool
}

// Run vacía todas las colecciones, carga data y crea el administrador si admin.Password no
// está vacío. Se detiene en el primer registro inválido.
func Run(ctx context.Context, repos repository.Set, data *Data, admin auth.AdminConfig, jwtCfg auth.JWTConfig, log *logger.Logger) (*Result, error) {
	if err := clearCollections(ctx, repos); err != nil {
		return nil, err
	}

	autos := usecase.NewAutoUseCase(repos.Autos)
	clientes := usecase.NewClienteUseCase(repos.Clientes)
	vendedores := usecase.NewVendedorUseCase(repos.Vendedores)
	concesionarias := usecase.NewConcesionariaUseCase(repos.Concesionarias)

	res := &Result{}
	for i, in := range data.Autos {
		if _, err := autos.Create(ctx, in); err != nil {
			return nil, fmt.Errorf("seed: auto %d: %w", i, err)
		}
		res.Autos++
	}
	for i, in := range data.Clientes {
		if _, err := clientes.Create(ctx, in); err != nil {
			return nil, fmt.Errorf("seed: cliente %d: %w", i, err)
		}
		res.Clientes++
	}
	for i, in := range data.Vendedores {
		if _, err := vendedores.Create(ctx, in); err != nil {
			return nil, fmt.Errorf("seed: vendedor %d: %w", i, err)
		}
		res.Vendedores++
	}
	for i, in := range data.Concesionarias {
		if _, err := concesionarias.Create(ctx, in); err != nil {
			return nil, fmt.Errorf("seed: concesionaria %d: %w", i, err)
		}
		res.Concesionarias++
	}

	if admin.Password == "" {
		log.Warn().Msg("ADMIN_PASSWORD vacío: no se crea el usuario administrador")
		return res, nil
	}
	created, err := auth.NewAuthUseCase(repos.Usuarios, jwtCfg, log).EnsureDefaultAdmin(ctx, admin)
	if err != nil {
		return nil, fmt.Errorf("seed: administrador: %w", err)
	}
	res.Admin = created
	return res, nil
}

func clearCollections(ctx context.Context, repos repository.Set) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, fn := range []func(context.Context) error{
		repos.Autos.DeleteAll,
		repos.Clientes.DeleteAll,
		repos.Vendedores.DeleteAll,
		repos.Concesionarias.DeleteAll,
		repos.Usuarios.DeleteAll,
		repos.Obreros.DeleteAll,
		repos.Ventas.DeleteAll,
	} {
		g.Go(func() error { return fn(gctx) })
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("seed: vaciar colecciones: %w", err)
	}
	return nil
}
