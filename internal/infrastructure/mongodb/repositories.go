package mongodb

import (
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jhoicas/Concesionaria-api/internal/domain/entity"
	"github.com/jhoicas/Concesionaria-api/internal/domain/repository"
)

var (
	_ repository.AutoRepository          = (*Repository[entity.Auto, *entity.Auto])(nil)
	_ repository.ClienteRepository       = (*Repository[entity.Cliente, *entity.Cliente])(nil)
	_ repository.VendedorRepository      = (*Repository[entity.Vendedor, *entity.Vendedor])(nil)
	_ repository.ConcesionariaRepository = (*Repository[entity.Concesionaria, *entity.Concesionaria])(nil)
	_ repository.UsuarioRepository       = (*Repository[entity.Usuario, *entity.Usuario])(nil)
	_ repository.ObreroRepository        = (*Repository[entity.Obrero, *entity.Obrero])(nil)
	_ repository.VentaRepository         = (*Repository[entity.Venta, *entity.Venta])(nil)
)

// NewRepositories construye los adaptadores de todas las colecciones sobre db.
func NewRepositories(db *mongo.Database) repository.Set {
	return repository.Set{
		Autos:          NewRepository[entity.Auto](db, entity.AutoCollection),
		Clientes:       NewRepository[entity.Cliente](db, entity.ClienteCollection),
		Vendedores:     NewRepository[entity.Vendedor](db, entity.VendedorCollection),
		Concesionarias: NewRepository[entity.Concesionaria](db, entity.ConcesionariaCollection),
		Usuarios:       NewRepository[entity.Usuario](db, entity.UsuarioCollection),
		Obreros:        NewRepository[entity.Obrero](db, entity.ObreroCollection),
		Ventas:         NewRepository[entity.Venta](db, entity.VentaCollection),
	}
}
