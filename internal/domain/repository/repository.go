package repository

import (
	"context"

	"github.com/jhoicas/Concesionaria-api/internal/domain/entity"
)

// Repository es el puerto genérico de persistencia para una colección de documentos.
//
// FindByID y DeleteByID devuelven (nil, nil) si el documento no existe y domain.ErrInvalidID
// si el id no es un identificador válido para la base. Insert y UpdateByID devuelven un
// *domain.DuplicateKeyError cuando un índice único rechaza la escritura; UpdateByID devuelve
// domain.ErrNotFound si el documento ya no existe.
type Repository[T any] interface {
	Find(ctx context.Context) ([]*T, error)
	FindByID(ctx context.Context, id string) (*T, error)
	// FindOneBy compara sin distinguir mayúsculas; devuelve nil si no hay coincidencia.
	FindOneBy(ctx context.Context, field, value string) (*T, error)
	Insert(ctx context.Context, doc *T) error
	UpdateByID(ctx context.Context, id string, doc *T) error
	DeleteByID(ctx context.Context, id string) (*T, error)
	DeleteAll(ctx context.Context) error
	UniqueChecker
}

// UniqueChecker es lo único que necesitan las reglas de validación de la persistencia.
type UniqueChecker interface {
	// ExistsBy indica si otro documento (distinto de excludeID cuando no está vacío) tiene
	// field igual a value, sin distinguir mayúsculas.
	ExistsBy(ctx context.Context, field, value, excludeID string) (bool, error)
}

// Puertos por entidad (DIP).
type (
	AutoRepository          = Repository[entity.Auto]
	ClienteRepository       = Repository[entity.Cliente]
	VendedorRepository      = Repository[entity.Vendedor]
	ConcesionariaRepository = Repository[entity.Concesionaria]
	UsuarioRepository       = Repository[entity.Usuario]
	ObreroRepository        = Repository[entity.Obrero]
	VentaRepository         = Repository[entity.Venta]
)

// Set agrupa los repositorios de todas las entidades, tal como los construye cada adaptador.
type Set struct {
	Autos          AutoRepository
	Clientes       ClienteRepository
	Vendedores     VendedorRepository
	Concesionarias ConcesionariaRepository
	Usuarios       UsuarioRepository
	Obreros        ObreroRepository
	Ventas         VentaRepository
}
