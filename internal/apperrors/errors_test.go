package apperrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lautarocloudy/api-cuenta-corrientes/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestAppError_IsStoreUnavailable(t *testing.T) {
	cause := errors.New("connection refused")
	err := fmt.Errorf("listing invoices: %w", apperrors.NewAppError(500, "query failed", cause))

	assert.ErrorIs(t, err, apperrors.ErrStoreUnavailable)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, apperrors.ErrNotFound)
}

func TestAppError_ClientCodeIsNotStoreFailure(t *testing.T) {
	err := apperrors.NewAppError(400, "bad input", apperrors.ErrValidation)

	assert.NotErrorIs(t, err, apperrors.ErrStoreUnavailable)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Equal(t, "bad input: validation error", err.Error())
}

func TestAppError_NilCause(t *testing.T) {
	err := apperrors.NewAppError(503, "pool exhausted", nil)

	assert.Equal(t, "pool exhausted", err.Error())
	assert.ErrorIs(t, err, apperrors.ErrStoreUnavailable)
}
