package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Concesionaria-api/internal/application/dto"
	"github.com/jhoicas/Concesionaria-api/internal/application/validation"
	"github.com/jhoicas/Concesionaria-api/internal/domain"
	"github.com/jhoicas/Concesionaria-api/internal/domain/entity"
	"github.com/jhoicas/Concesionaria-api/internal/domain/repository"
	"github.com/jhoicas/Concesionaria-api/internal/infrastructure/memory"
)

const missingID = "65f0c1a2b3c4d5e6f7a8b9c0"

func fixedClock(t time.Time) func() time.Time { return func() time.Time { return t } }

func str(s string) *string { return &s }

func num(s string) *dto.Numero { return dto.NumeroDe(s) }

func tel(s string) *dto.Texto { return dto.TextoDe(s) }

func newAutoUseCase(now time.Time) *AutoUseCase {
	uc := NewAutoUseCase(memory.NewRepositories().Autos)
	uc.now = fixedClock(now)
	return uc
}

func mustang() dto.AutoRequest {
	return dto.AutoRequest{
		Marca:       str("Ford"),
		Modelo:      str("Mustang"),
		Anio:        num("2020"),
		Color:       str("Rojo"),
		NumeroSerie: str("ford001"),
	}
}

func TestAutoUseCase_CreateYActualizacionParcial(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	uc := newAutoUseCase(created)

	a, err := uc.Create(ctx, mustang())
	require.NoError(t, err)
	assert.Equal(t, "FORD001", a.NumeroSerie)
	assert.Equal(t, created, a.CreatedAt)

	uc.now = fixedClock(created.Add(time.Hour))
	updated, err := uc.Update(ctx, a.ID, dto.AutoRequest{Color: str("Negro")})
	require.NoError(t, err)
	assert.Equal(t, "Negro", updated.Color)
	assert.Equal(t, "Mustang", updated.Modelo, "los campos ausentes se conservan")
	assert.Equal(t, 2020, updated.Anio)
	assert.Equal(t, created, updated.CreatedAt)
	assert.Equal(t, created.Add(time.Hour), updated.UpdatedAt)

	got, err := uc.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Negro", got.Color)
}

func TestAutoUseCase_AnioLimite(t *testing.T) {
	ctx := context.Background()
	uc := newAutoUseCase(time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC))

	in := mustang()
	in.Anio = num("2027")
	_, err := uc.Create(ctx, in)
	require.NoError(t, err)

	in = mustang()
	in.NumeroSerie = str("FORD002")
	in.Anio = num("2028")
	_, err = uc.Create(ctx, in)
	assert.ErrorIs(t, err, domain.ErrOutOfRange)
	assert.EqualError(t, err, "Año debe ser un número válido entre 1900 y 2027")
}

func TestAutoUseCase_Duplicados(t *testing.T) {
	ctx := context.Background()
	uc := newAutoUseCase(time.Now())

	first, err := uc.Create(ctx, mustang())
	require.NoError(t, err)

	in := mustang()
	in.NumeroSerie = str("Ford001")
	_, err = uc.Create(ctx, in)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.EqualError(t, err, validation.MsgAutoDuplicado)

	second := mustang()
	second.NumeroSerie = str("FORD002")
	other, err := uc.Create(ctx, second)
	require.NoError(t, err)

	// Actualizar con su propio número de serie es válido; con el de otro, no.
	_, err = uc.Update(ctx, first.ID, dto.AutoRequest{NumeroSerie: str("ford001")})
	assert.NoError(t, err)
	_, err = uc.Update(ctx, other.ID, dto.AutoRequest{NumeroSerie: str("FORD001")})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestAutoUseCase_NoEncontradoEIDInvalido(t *testing.T) {
	ctx := context.Background()
	uc := newAutoUseCase(time.Now())

	_, err := uc.GetByID(ctx, missingID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = uc.Update(ctx, missingID, mustang())
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = uc.Delete(ctx, missingID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.GetByID(ctx, "abc")
	assert.ErrorIs(t, err, domain.ErrInvalidID)
}

func TestAutoUseCase_DeleteDevuelveSnapshot(t *testing.T) {
	ctx := context.Background()
	uc := newAutoUseCase(time.Now())
	a, err := uc.Create(ctx, mustang())
	require.NoError(t, err)

	deleted, err := uc.Delete(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mustang", deleted.Modelo)

	list, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCreate_CampoRequeridoEnBlancoNoGuarda(t *testing.T) {
	ctx := context.Background()
	blank := str("   ")

	tests := []struct {
		name   string
		create func(repos repository.Set) error
		count  func(repos repository.Set) (int, error)
	}{
		{
			name: "auto sin color",
			create: func(repos repository.Set) error {
				in := mustang()
				in.Color = blank
				_, err := NewAutoUseCase(repos.Autos).Create(ctx, in)
				return err
			},
			count: func(repos repository.Set) (int, error) {
				list, err := NewAutoUseCase(repos.Autos).List(ctx)
				return len(list), err
			},
		},
		{
			name: "auto sin año",
			create: func(repos repository.Set) error {
				in := mustang()
				in.Anio = num("  ")
				_, err := NewAutoUseCase(repos.Autos).Create(ctx, in)
				return err
			},
			count: func(repos repository.Set) (int, error) {
				list, err := NewAutoUseCase(repos.Autos).List(ctx)
				return len(list), err
			},
		},
		{
			name: "cliente sin ciudad",
			create: func(repos repository.Set) error {
				_, err := NewClienteUseCase(repos.Clientes).Create(ctx, dto.ClienteRequest{
					Nombre: str("Juan"), Email: str("juan@email.com"), Telefono: tel("0998765432"),
					Direccion: str("Av. 1"), Ciudad: blank,
				})
				return err
			},
			count: func(repos repository.Set) (int, error) {
				list, err := NewClienteUseCase(repos.Clientes).List(ctx)
				return len(list), err
			},
		},
		{
			name: "vendedor sin teléfono",
			create: func(repos repository.Set) error {
				_, err := NewVendedorUseCase(repos.Vendedores).Create(ctx, dto.VendedorRequest{
					Name: str("Carlos"), Email: str("carlos@concesionaria.com"), Telefono: tel("   "),
					Comision: num("5"), CodigoEmpleado: str("EMP001"),
				})
				return err
			},
			count: func(repos repository.Set) (int, error) {
				list, err := NewVendedorUseCase(repos.Vendedores).List(ctx)
				return len(list), err
			},
		},
		{
			name: "concesionaria sin gerente",
			create: func(repos repository.Set) error {
				_, err := NewConcesionariaUseCase(repos.Concesionarias).Create(ctx, dto.ConcesionariaRequest{
					Nombre: str("AutoMax"), Direccion: str("Av. Principal 123"), Telefono: tel("022345678"),
					Ciudad: str("Quito"), Gerente: blank,
				})
				return err
			},
			count: func(repos repository.Set) (int, error) {
				list, err := NewConcesionariaUseCase(repos.Concesionarias).List(ctx)
				return len(list), err
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repos := memory.NewRepositories()
			err := tc.create(repos)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrMissingFields)

			n, err := tc.count(repos)
			require.NoError(t, err)
			assert.Zero(t, n, "no debe guardarse ningún registro")
		})
	}
}

func TestClienteUseCase_EmailDuplicado(t *testing.T) {
	ctx := context.Background()
	uc := NewClienteUseCase(memory.NewRepositories().Clientes)
	in := dto.ClienteRequest{
		Nombre:    str("Juan Pérez"),
		Email:     str("juan.perez@email.com"),
		Telefono:  tel("0998765432"),
		Direccion: str("Av. Amazonas N34"),
		Ciudad:    str("Quito"),
	}
	c, err := uc.Create(ctx, in)
	require.NoError(t, err)

	in.Email = str("JUAN.PEREZ@email.com")
	_, err = uc.Create(ctx, in)
	assert.EqualError(t, err, validation.MsgClienteDuplicado)

	_, err = uc.Update(ctx, c.ID, dto.ClienteRequest{Email: str("no-es-email")})
	assert.ErrorIs(t, err, domain.ErrInvalidFormat)

	_, err = uc.Update(ctx, c.ID, dto.ClienteRequest{Nombre: str("  ")})
	assert.ErrorIs(t, err, domain.ErrMissingFields)
}

func TestVendedorUseCase_ActualizarComision(t *testing.T) {
	ctx := context.Background()
	uc := NewVendedorUseCase(memory.NewRepositories().Vendedores)
	v, err := uc.Create(ctx, dto.VendedorRequest{
		Name:           str("Carlos Ruiz"),
		Email:          str("carlos@concesionaria.com"),
		Telefono:       tel("0991234567"),
		Comision:       num("5"),
		CodigoEmpleado: str("emp001"),
	})
	require.NoError(t, err)
	assert.Equal(t, "EMP001", v.CodigoEmpleado)

	updated, err := uc.Update(ctx, v.ID, dto.VendedorRequest{Comision: num("7.5")})
	require.NoError(t, err)
	assert.Equal(t, 7.5, updated.Comision)
	assert.Equal(t, "carlos@concesionaria.com", updated.Email)

	_, err = uc.Update(ctx, v.ID, dto.VendedorRequest{Comision: num("150")})
	assert.EqualError(t, err, validation.MsgVendedorComision)
}

func TestConcesionariaUseCase_CRUD(t *testing.T) {
	ctx := context.Background()
	uc := NewConcesionariaUseCase(memory.NewRepositories().Concesionarias)
	c, err := uc.Create(ctx, dto.ConcesionariaRequest{
		Nombre:    str("AutoMax"),
		Direccion: str("Av. Principal 123"),
		Telefono:  tel("022345678"),
		Ciudad:    str("Quito"),
		Gerente:   str("María López"),
	})
	require.NoError(t, err)

	updated, err := uc.Update(ctx, c.ID, dto.ConcesionariaRequest{Gerente: str("Luis")})
	require.NoError(t, err)
	assert.Equal(t, "Luis", updated.Gerente)
	assert.Equal(t, "AutoMax", updated.Nombre)

	_, err = uc.Create(ctx, dto.ConcesionariaRequest{
		Nombre: str("automax"), Direccion: str("x"), Telefono: tel("1"), Ciudad: str("y"), Gerente: str("z"),
	})
	assert.EqualError(t, err, validation.MsgConcesionariaDuplicada)

	_, err = uc.Delete(ctx, c.ID)
	require.NoError(t, err)
	_, err = uc.GetByID(ctx, c.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestObreroUseCase_Salario(t *testing.T) {
	ctx := context.Background()
	uc := NewObreroUseCase(memory.NewRepositories().Obreros)
	horas := 40.0
	o, err := uc.Create(ctx, dto.ObreroRequest{NombreCompleto: str("Pedro Gómez"), HorasTrabajadas: &horas})
	require.NoError(t, err)

	s, err := uc.Salario(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, 400.0, s.Salario)
	assert.Equal(t, "Pedro Gómez", s.NombreCompleto)

	negativas := -3.0
	_, err = uc.Update(ctx, o.ID, dto.ObreroRequest{HorasTrabajadas: &negativas})
	assert.ErrorIs(t, err, domain.ErrOutOfRange)

	_, err = uc.Salario(ctx, missingID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestVentaUseCase_Procesar(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewRepositories()
	uc := NewVentaUseCase(repos.Ventas)

	res, err := uc.Procesar(ctx, dto.ProcesarVentasRequest{
		Ventas: json.RawMessage(`[{"monto":1500},{"monto":1000},{"monto":600.5},{"monto":500},{"monto":0}]`),
	})
	require.NoError(t, err)
	assert.Equal(t, 5, res.VentasProcesadas)
	assert.Equal(t, 1, res.A)
	assert.Equal(t, 2, res.B)
	assert.Equal(t, 2, res.C)
	assert.Equal(t, 1500.0, res.T1)
	assert.Equal(t, 1600.5, res.T2)
	assert.Equal(t, 500.0, res.T3)
	assert.Equal(t, 3600.5, res.TT)

	list, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 5)
}

func TestVentaUseCase_LoteInvalidoNoGuarda(t *testing.T) {
	ctx := context.Background()
	uc := NewVentaUseCase(memory.NewRepositories().Ventas)

	_, err := uc.Procesar(ctx, dto.ProcesarVentasRequest{Ventas: json.RawMessage(`[{"monto":100},{"monto":-1}]`)})
	assert.EqualError(t, err, validation.MsgVentaMonto)

	list, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

var errDiscoLleno = errors.New("disco lleno")

// ventasQueFallan rechaza la inserción de las ventas con el monto indicado.
type ventasQueFallan struct {
	repository.VentaRepository
	monto string
}

func (r ventasQueFallan) Insert(ctx context.Context, v *entity.Venta) error {
	if v.Monto.String() == r.monto {
		return errDiscoLleno
	}
	return r.VentaRepository.Insert(ctx, v)
}

func TestVentaUseCase_FalloDeEscrituraDevuelveError(t *testing.T) {
	ctx := context.Background()
	repo := ventasQueFallan{VentaRepository: memory.NewRepositories().Ventas, monto: "666"}
	uc := NewVentaUseCase(repo)

	res, err := uc.Procesar(ctx, dto.ProcesarVentasRequest{
		Ventas: json.RawMessage(`[{"monto":100},{"monto":666},{"monto":1200}]`),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, errDiscoLleno)
	assert.Nil(t, res)

	list, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Less(t, len(list), 3, "la venta rechazada nunca queda guardada")
}
