package memory

import (
	"github.com/jhoicas/Concesionaria-api/internal/domain/entity"
	"github.com/jhoicas/Concesionaria-api/internal/domain/repository"
)

var (
	_ repository.AutoRepository          = (*Collection[entity.Auto, *entity.Auto])(nil)
	_ repository.ClienteRepository       = (*Collection[entity.Cliente, *entity.Cliente])(nil)
	_ repository.VendedorRepository      = (*Collection[entity.Vendedor, *entity.Vendedor])(nil)
	_ repository.ConcesionariaRepository = (*Collection[entity.Concesionaria, *entity.Concesionaria])(nil)
	_ repository.UsuarioRepository       = (*Collection[entity.Usuario, *entity.Usuario])(nil)
	_ repository.ObreroRepository        = (*Collection[entity.Obrero, *entity.Obrero])(nil)
	_ repository.VentaRepository         = (*Collection[entity.Venta, *entity.Venta])(nil)
)

// NewRepositories construye todos los repositorios en memoria con los mismos índices únicos
// que crea mongodb.EnsureIndexes.
func NewRepositories() repository.Set {
	return repository.Set{
		Autos:          NewCollection[entity.Auto](entity.AutoCollection, entity.AutoFieldNumeroSerie),
		Clientes:       NewCollection[entity.Cliente](entity.ClienteCollection, entity.ClienteFieldEmail),
		Vendedores:     NewCollection[entity.Vendedor](entity.VendedorCollection, entity.VendedorFieldEmail, entity.VendedorFieldCodigoEmpleado),
		Concesionarias: NewCollection[entity.Concesionaria](entity.ConcesionariaCollection, entity.ConcesionariaFieldNombre),
		Usuarios:       NewCollection[entity.Usuario](entity.UsuarioCollection, entity.UsuarioFieldEmail),
		Obreros:        NewCollection[entity.Obrero](entity.ObreroCollection),
		Ventas:         NewCollection[entity.Venta](entity.VentaCollection),
	}
}
