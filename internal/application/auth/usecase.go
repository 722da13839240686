package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Concesionaria-api/internal/application/dto"
	"github.com/jhoicas/Concesionaria-api/internal/application/validation"
	"github.com/jhoicas/Concesionaria-api/internal/domain"
	"github.com/jhoicas/Concesionaria-api/internal/domain/entity"
	"github.com/jhoicas/Concesionaria-api/internal/domain/repository"
	"github.com/jhoicas/Concesionaria-api/pkg/jwt"
	"github.com/jhoicas/Concesionaria-api/pkg/logger"
)

// TokenTTL vigencia de los tokens emitidos por Login.
const TokenTTL = 24 * time.Hour

// Mensajes de autenticación.
const (
	MsgLoginExitoso          = "Login exitoso"
	MsgCredencialesFaltantes = "Email y contraseña son requeridos"
	MsgCredencialesInvalidas = "Credenciales inválidas"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret string
	Issuer string
}

// AdminConfig credenciales del administrador inicial.
type AdminConfig struct {
	Email    string
	Password string
	Name     string
}

// AuthUseCase casos de uso de autenticación: login, registro, perfil y admin inicial.
type AuthUseCase struct {
	users  repository.UsuarioRepository
	jwtCfg JWTConfig
	log    *logger.Logger
	now    func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(users repository.UsuarioRepository, jwtCfg JWTConfig, log *logger.Logger) *AuthUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &AuthUseCase{users: users, jwtCfg: jwtCfg, log: log, now: time.Now}
}

// Login verifica email/password y emite un JWT de 24 h. Usuario inexistente y contraseña
// incorrecta devuelven el mismo error; el motivo solo queda en el log.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Password == "" {
		return nil, domain.NewValidationError(domain.ErrMissingCredentials, "", MsgCredencialesFaltantes)
	}
	invalid := domain.NewValidationError(domain.ErrInvalidCredentials, "", MsgCredencialesInvalidas)

	user, err := uc.users.FindOneBy(ctx, entity.UsuarioFieldEmail, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		uc.log.Warn().Str("email", email).Msg("login: usuario no encontrado")
		return nil, invalid
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		uc.log.Warn().Str("email", email).Str("user_id", user.ID).Msg("login: contraseña incorrecta")
		return nil, invalid
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, uc.jwtCfg.Issuer, TokenTTL)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Message: MsgLoginExitoso,
		Token:   token,
		User:    toUserResponse(user, false),
	}, nil
}

// Register crea un usuario: valida, hashea el password con bcrypt y persiste.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	user, password, err := validation.Usuario(ctx, uc.users, in)
	if err != nil {
		return nil, err
	}
	if err := uc.create(ctx, user, password); err != nil {
		return nil, err
	}
	out := toUserResponse(user, true)
	return &out, nil
}

// Profile devuelve el usuario autenticado.
func (uc *AuthUseCase) Profile(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := uc.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidID) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	out := toUserResponse(user, false)
	return &out, nil
}

// EnsureDefaultAdmin crea el administrador si no existe ningún usuario con ese email.
// Devuelve true si lo creó. Llamarlo varias veces no duplica el usuario.
func (uc *AuthUseCase) EnsureDefaultAdmin(ctx context.Context, admin AdminConfig) (bool, error) {
	email := strings.ToLower(strings.TrimSpace(admin.Email))
	existing, err := uc.users.FindOneBy(ctx, entity.UsuarioFieldEmail, email)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}
	user := &entity.Usuario{Nombre: admin.Name, Email: email}
	if err := uc.create(ctx, user, admin.Password); err != nil {
		// Otra instancia lo creó entre la búsqueda y la inserción.
		if errors.Is(err, domain.ErrDuplicate) {
			return false, nil
		}
		return false, err
	}
	uc.log.Info().Str("email", email).Msg("usuario administrador creado")
	return true, nil
}

func (uc *AuthUseCase) create(ctx context.Context, user *entity.Usuario, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	user.Touch(uc.now())
	if err := uc.users.Insert(ctx, user); err != nil {
		return validation.TranslateDuplicate(err)
	}
	return nil
}

func toUserResponse(u *entity.Usuario, withCreatedAt bool) dto.UserResponse {
	out := dto.UserResponse{ID: u.ID, Email: u.Email, Nombre: u.Nombre}
	if withCreatedAt {
		created := u.CreatedAt
		out.CreatedAt = &created
	}
	return out
}
