package validation

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jhoicas/Concesionaria-api/internal/application/dto"
	"github.com/jhoicas/Concesionaria-api/internal/domain/entity"
	"github.com/jhoicas/Concesionaria-api/internal/domain/repository"
)

// Mensajes de Usuario.
const (
	MsgUsuarioRequeridos = "Nombre, Email y Contraseña son requeridos"
	MsgUsuarioEmail      = "El email no tiene un formato válido"
	MsgUsuarioDuplicado  = "El email ya está registrado"
)

// MsgUsuarioPassword mensaje de contraseña demasiado corta.
var MsgUsuarioPassword = fmt.Sprintf("La contraseña debe tener al menos %d caracteres", entity.UsuarioPasswordMinLen)

// Usuario valida un registro. Devuelve el usuario sin hash y la contraseña en texto plano;
// el hash lo calcula el caso de uso.
func Usuario(ctx context.Context, checker repository.UniqueChecker, in dto.RegisterRequest) (*entity.Usuario, string, error) {
	// La contraseña no se recorta: los espacios cuentan.
	if blank(in.Nombre, in.Email) || in.Password == nil || *in.Password == "" {
		return nil, "", missing("", MsgUsuarioRequeridos)
	}
	email := strings.ToLower(text(in.Email))
	if !IsEmail(email) {
		return nil, "", invalid(entity.UsuarioFieldEmail, MsgUsuarioEmail)
	}
	if utf8.RuneCountInString(*in.Password) < entity.UsuarioPasswordMinLen {
		return nil, "", outOfRange("password", MsgUsuarioPassword)
	}
	u := &entity.Usuario{Nombre: text(in.Nombre), Email: email}
	if err := unique(ctx, checker, entity.UsuarioFieldEmail, u.Email, "", MsgUsuarioDuplicado); err != nil {
		return nil, "", err
	}
	return u, *in.Password, nil
}
