package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidID          = errors.New("identificador inválido")
	ErrMissingFields      = errors.New("campos requeridos")
	ErrInvalidFormat      = errors.New("formato inválido")
	ErrOutOfRange         = errors.New("valor fuera de rango")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrMissingCredentials = errors.New("credenciales requeridas")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
)

// ValidationError es un fallo de validación con el mensaje que se muestra al cliente.
// Kind es uno de los sentinelas de arriba y permite errors.Is(err, ErrDuplicate), etc.
type ValidationError struct {
	Kind    error
	Field   string
	Message string
}

// NewValidationError construye un ValidationError.
func NewValidationError(kind error, field, message string) *ValidationError {
	return &ValidationError{Kind: kind, Field: field, Message: message}
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return e.Kind }

// DuplicateKeyError lo devuelven los adaptadores de persistencia cuando un índice único
// rechaza una escritura.
type DuplicateKeyError struct {
	Collection string
	Field      string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("%s: valor duplicado en %s", e.Collection, e.Field)
}

func (e *DuplicateKeyError) Unwrap() error { return ErrDuplicate }
