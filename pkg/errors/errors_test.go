package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Сущностные ошибки должны попадать под общую проверку errors.Is,
// иначе ErrorResponse перестанет отдавать 404.
func TestEntityErrorsUnwrapToNotFound(t *testing.T) {
	for _, err := range []error{ErrEquipmentNotFound, ErrTeamNotFound, ErrRequestNotFound} {
		assert.ErrorIs(t, err, ErrNotFound, err.Error())
	}
}

func TestHttpErrorUnwrap(t *testing.T) {
	httpErr := NewHttpError(http.StatusNotFound, "Equipment not found", ErrEquipmentNotFound, nil)
	assert.ErrorIs(t, httpErr, ErrNotFound)

	var target *HttpError
	assert.True(t, errors.As(httpErr, &target))
	assert.Equal(t, http.StatusNotFound, target.Code)
}
