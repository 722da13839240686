package memory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Concesionaria-api/internal/domain"
	"github.com/jhoicas/Concesionaria-api/internal/domain/entity"
)

func newClientes() *Collection[entity.Cliente, *entity.Cliente] {
	return NewCollection[entity.Cliente](entity.ClienteCollection, entity.ClienteFieldEmail)
}

func TestCollection_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := newClientes()

	c := &entity.Cliente{Nombre: "Juan", Email: "juan@email.com", Telefono: "0998765432", Direccion: "Av. 1", Ciudad: "Quito"}
	require.NoError(t, repo.Insert(ctx, c))
	require.NotEmpty(t, c.ID)

	got, err := repo.FindByID(ctx, c.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Juan", got.Nombre)
	assert.Equal(t, c.ID, got.ID)

	got.Ciudad = "Cuenca"
	require.NoError(t, repo.UpdateByID(ctx, c.ID, got))

	again, err := repo.FindByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cuenca", again.Ciudad)

	deleted, err := repo.DeleteByID(ctx, c.ID)
	require.NoError(t, err)
	require.NotNil(t, deleted)
	assert.Equal(t, "Cuenca", deleted.Ciudad)

	list, err := repo.Find(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCollection_DevuelveCopias(t *testing.T) {
	ctx := context.Background()
	repo := newClientes()
	c := &entity.Cliente{Nombre: "Ana", Email: "ana@cliente.com"}
	require.NoError(t, repo.Insert(ctx, c))

	c.Nombre = "modificado fuera del repo"
	got, err := repo.FindByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.Nombre)
}

func TestCollection_IDInvalidoYAusente(t *testing.T) {
	ctx := context.Background()
	repo := newClientes()

	_, err := repo.FindByID(ctx, "no-es-un-objectid")
	assert.ErrorIs(t, err, domain.ErrInvalidID)

	_, err = repo.DeleteByID(ctx, "123")
	assert.ErrorIs(t, err, domain.ErrInvalidID)

	got, err := repo.FindByID(ctx, "65f0c1a2b3c4d5e6f7a8b9c0")
	assert.NoError(t, err)
	assert.Nil(t, got)

	deleted, err := repo.DeleteByID(ctx, "65f0c1a2b3c4d5e6f7a8b9c0")
	assert.NoError(t, err)
	assert.Nil(t, deleted)

	err = repo.UpdateByID(ctx, "65f0c1a2b3c4d5e6f7a8b9c0", &entity.Cliente{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCollection_IndiceUnicoSinMayusculas(t *testing.T) {
	ctx := context.Background()
	repo := newClientes()

	first := &entity.Cliente{Email: "juan.perez@email.com"}
	require.NoError(t, repo.Insert(ctx, first))

	err := repo.Insert(ctx, &entity.Cliente{Email: "JUAN.PEREZ@EMAIL.COM"})
	require.Error(t, err)
	var dk *domain.DuplicateKeyError
	require.True(t, errors.As(err, &dk))
	assert.Equal(t, entity.ClienteFieldEmail, dk.Field)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Equal(t, 1, repo.Len())

	// Actualizar con su propio valor no colisiona.
	first.Nombre = "Juan"
	assert.NoError(t, repo.UpdateByID(ctx, first.ID, first))
}

func TestCollection_ExistsByYFindOneBy(t *testing.T) {
	ctx := context.Background()
	repo := newClientes()
	c := &entity.Cliente{Email: "carlos@cliente.com"}
	require.NoError(t, repo.Insert(ctx, c))

	exists, err := repo.ExistsBy(ctx, entity.ClienteFieldEmail, "Carlos@Cliente.com", "")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsBy(ctx, entity.ClienteFieldEmail, "carlos@cliente.com", c.ID)
	require.NoError(t, err)
	assert.False(t, exists, "el propio documento se excluye")

	found, err := repo.FindOneBy(ctx, entity.ClienteFieldEmail, "CARLOS@cliente.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, c.ID, found.ID)
}

func TestCollection_InsercionesConcurrentes(t *testing.T) {
	ctx := context.Background()
	repo := NewCollection[entity.Auto](entity.AutoCollection, entity.AutoFieldNumeroSerie)

	const n = 16
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		ok, dups int
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := repo.Insert(ctx, &entity.Auto{Marca: "Ford", NumeroSerie: "FORD001"})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				ok++
			case errors.Is(err, domain.ErrDuplicate):
				dups++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, ok, "exactamente una inserción debe ganar")
	assert.Equal(t, n-1, dups)
}

func TestCollection_Decimal(t *testing.T) {
	ctx := context.Background()
	repo := NewCollection[entity.Venta](entity.VentaCollection)
	v := &entity.Venta{Monto: decimal.RequireFromString("1200.50"), Categoria: entity.CategoriaA}
	require.NoError(t, repo.Insert(ctx, v))

	got, err := repo.FindByID(ctx, v.ID)
	require.NoError(t, err)
	assert.True(t, got.Monto.Equal(v.Monto))
}

func TestCollection_DeleteAll(t *testing.T) {
	ctx := context.Background()
	repo := newClientes()
	require.NoError(t, repo.Insert(ctx, &entity.Cliente{Email: "a@b.co"}))
	require.NoError(t, repo.DeleteAll(ctx))
	assert.Zero(t, repo.Len())
}

func TestCollection_ContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := newClientes().Find(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
