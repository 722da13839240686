// Package validation aplica las reglas de entrada de cada entidad: campos requeridos,
// formato, rango y unicidad, en ese orden. Cada función devuelve la entidad normalizada
// lista para persistir o un *domain.ValidationError con el mensaje para el cliente.
package validation

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/Concesionaria-api/internal/domain"
	"github.com/jhoicas/Concesionaria-api/internal/domain/entity"
	"github.com/jhoicas/Concesionaria-api/internal/domain/repository"
)

// Reglas expresadas como tags de validator.
const (
	tagCorreo    = "correo"
	ruleCorreo   = "required,correo"
	ruleTelefono = "number,min=7,max=15"
	ruleHoras    = "gte=0"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var validate = validator.New()

func init() {
	// "correo" es más laxo que el tag "email" del paquete: basta con algo@algo.algo sin espacios.
	_ = validate.RegisterValidation(tagCorreo, func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})
}

// IsEmail indica si s tiene forma de correo electrónico.
func IsEmail(s string) bool {
	return validate.Var(s, ruleCorreo) == nil
}

func missing(field, msg string) error {
	return domain.NewValidationError(domain.ErrMissingFields, field, msg)
}

func invalid(field, msg string) error {
	return domain.NewValidationError(domain.ErrInvalidFormat, field, msg)
}

func outOfRange(field, msg string) error {
	return domain.NewValidationError(domain.ErrOutOfRange, field, msg)
}

func duplicate(field, msg string) error {
	return domain.NewValidationError(domain.ErrDuplicate, field, msg)
}

// text devuelve el valor recortado; "" si es nil.
func text(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

// blank indica si alguno de los valores está vacío tras recortar espacios.
func blank(values ...*string) bool {
	for _, v := range values {
		if text(v) == "" {
			return true
		}
	}
	return false
}

// unique consulta al repositorio y devuelve el error de duplicado si value ya está tomado.
func unique(ctx context.Context, checker repository.UniqueChecker, field, value, excludeID, msg string) error {
	taken, err := checker.ExistsBy(ctx, field, value, excludeID)
	if err != nil {
		return fmt.Errorf("verificar %s: %w", field, err)
	}
	if taken {
		return duplicate(field, msg)
	}
	return nil
}

// duplicateMessages mensaje por colección y campo para los duplicados que detecta el índice.
var duplicateMessages = map[string]map[string]string{
	entity.AutoCollection:    {entity.AutoFieldNumeroSerie: MsgAutoDuplicado},
	entity.ClienteCollection: {entity.ClienteFieldEmail: MsgClienteDuplicado},
	entity.VendedorCollection: {
		entity.VendedorFieldEmail:          MsgVendedorEmailDuplicado,
		entity.VendedorFieldCodigoEmpleado: MsgVendedorCodigoDuplicado,
	},
	entity.ConcesionariaCollection: {entity.ConcesionariaFieldNombre: MsgConcesionariaDuplicada},
	entity.UsuarioCollection:       {entity.UsuarioFieldEmail: MsgUsuarioDuplicado},
}

// TranslateDuplicate convierte un *domain.DuplicateKeyError del almacenamiento en el mismo
// error de validación que produce la verificación previa. Otros errores pasan sin cambios.
func TranslateDuplicate(err error) error {
	var dk *domain.DuplicateKeyError
	if !errors.As(err, &dk) {
		return err
	}
	if msg, ok := duplicateMessages[dk.Collection][dk.Field]; ok {
		return duplicate(dk.Field, msg)
	}
	return err
}
