package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError_IsKind(t *testing.T) {
	err := fmt.Errorf("crear auto: %w", NewValidationError(ErrDuplicate, "numeroSerie", "El número de serie ya existe"))

	assert.True(t, errors.Is(err, ErrDuplicate))
	assert.False(t, errors.Is(err, ErrMissingFields))

	var ve *ValidationError
	assert.True(t, errors.As(err, &ve))
	assert.Equal(t, "numeroSerie", ve.Field)
	assert.Equal(t, "El número de serie ya existe", ve.Error())
}

func TestDuplicateKeyError_UnwrapsDuplicate(t *testing.T) {
	err := &DuplicateKeyError{Collection: "clientes", Field: "email"}
	assert.ErrorIs(t, err, ErrDuplicate)
	assert.Contains(t, err.Error(), "email")
}
