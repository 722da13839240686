package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Concesionaria-api/internal/application/dto"
	"github.com/jhoicas/Concesionaria-api/internal/domain"
	"github.com/jhoicas/Concesionaria-api/internal/domain/entity"
	"github.com/jhoicas/Concesionaria-api/internal/infrastructure/memory"
	"github.com/jhoicas/Concesionaria-api/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

var testAdmin = AdminConfig{Email: "Admin@Consecionaria.com", Password: "admin123", Name: "Administrador"}

func newTestUseCase(t *testing.T) *AuthUseCase {
	t.Helper()
	uc := NewAuthUseCase(memory.NewRepositories().Usuarios, JWTConfig{Secret: testSecret, Issuer: "test"}, nil)
	created, err := uc.EnsureDefaultAdmin(context.Background(), testAdmin)
	require.NoError(t, err)
	require.True(t, created)
	return uc
}

func TestLogin_Exitoso(t *testing.T) {
	uc := newTestUseCase(t)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Email: "admin@consecionaria.com", Password: "admin123"})
	require.NoError(t, err)
	assert.Equal(t, MsgLoginExitoso, out.Message)
	assert.Equal(t, "admin@consecionaria.com", out.User.Email)
	assert.Equal(t, "Administrador", out.User.Nombre)

	userID, email, err := jwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, userID)
	assert.Equal(t, "admin@consecionaria.com", email)
}

func TestLogin_Errores(t *testing.T) {
	uc := newTestUseCase(t)
	ctx := context.Background()

	_, err := uc.Login(ctx, dto.LoginRequest{Email: "admin@consecionaria.com"})
	assert.ErrorIs(t, err, domain.ErrMissingCredentials)
	assert.EqualError(t, err, MsgCredencialesFaltantes)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "admin@consecionaria.com", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.EqualError(t, err, MsgCredencialesInvalidas)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "nadie@consecionaria.com", Password: "admin123"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.EqualError(t, err, MsgCredencialesInvalidas, "usuario inexistente y contraseña incorrecta no se distinguen")
}

func TestEnsureDefaultAdmin_Idempotente(t *testing.T) {
	repo := memory.NewRepositories().Usuarios
	uc := NewAuthUseCase(repo, JWTConfig{Secret: testSecret}, nil)
	ctx := context.Background()

	created, err := uc.EnsureDefaultAdmin(ctx, testAdmin)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = uc.EnsureDefaultAdmin(ctx, testAdmin)
	require.NoError(t, err)
	assert.False(t, created)

	all, err := repo.Find(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.NotEqual(t, "admin123", all[0].PasswordHash, "la contraseña se guarda hasheada")
}

func TestRegisterYProfile(t *testing.T) {
	uc := newTestUseCase(t)
	ctx := context.Background()

	nombre, email, password := "Ana", "ana@correo.com", "secreto"
	u, err := uc.Register(ctx, dto.RegisterRequest{Nombre: &nombre, Email: &email, Password: &password})
	require.NoError(t, err)
	require.NotNil(t, u.CreatedAt)

	_, err = uc.Register(ctx, dto.RegisterRequest{Nombre: &nombre, Email: &email, Password: &password})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	p, err := uc.Profile(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "ana@correo.com", p.Email)

	_, err = uc.Profile(ctx, "65f0c1a2b3c4d5e6f7a8b9c0")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	out, err := uc.Login(ctx, dto.LoginRequest{Email: "ANA@correo.com", Password: "secreto"})
	require.NoError(t, err)
	assert.Equal(t, u.ID, out.User.ID)
}

func TestEnsureDefaultAdmin_EmailExistenteConOtrasMayusculas(t *testing.T) {
	repo := memory.NewRepositories().Usuarios
	ctx := context.Background()
	// El admin ya existe con otras mayúsculas en el email.
	require.NoError(t, repo.Insert(ctx, &entity.Usuario{Nombre: "x", Email: "ADMIN@consecionaria.com"}))

	uc := NewAuthUseCase(repo, JWTConfig{Secret: testSecret}, nil)
	created, err := uc.EnsureDefaultAdmin(ctx, testAdmin)
	require.NoError(t, err)
	assert.False(t, created)
}
