package errors_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	apperror "gosalon/internal/errors"
)

func TestMapToHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		status   int
		category string
	}{
		{"validation", apperror.NewValidationError("x"), http.StatusBadRequest, "VALIDATION_ERROR"},
		{"not found", apperror.NewNotFoundError("x"), http.StatusNotFound, "NOT_FOUND"},
		{"conflict", apperror.NewConflictError("x"), http.StatusConflict, "CONFLICT"},
		{"slot taken", apperror.NewSlotTakenError("x"), http.StatusConflict, "SLOT_TAKEN"},
		{"expired", apperror.NewExpiredError("x"), http.StatusBadRequest, "EXPIRED"},
		{"invalid code", apperror.NewInvalidCodeError("x"), http.StatusBadRequest, "INVALID_CODE"},
		{"mismatch", apperror.NewMismatchError("x"), http.StatusBadRequest, "PASSWORD_MISMATCH"},
		{"incorrect password", apperror.NewIncorrectPasswordError("x"), http.StatusUnauthorized, "INCORRECT_PASSWORD"},
		{"inactive", apperror.NewInactiveOrDeletedError("x"), http.StatusForbidden, "ACCOUNT_INACTIVE"},
		{"locked", apperror.NewLockedError("x"), http.StatusLocked, "ACCOUNT_LOCKED"},
		{"unauthorized", apperror.NewUnauthorizedError("x"), http.StatusUnauthorized, "UNAUTHORIZED"},
		{"forbidden", apperror.NewForbiddenError("x"), http.StatusForbidden, "FORBIDDEN"},
		{"internal", apperror.NewInternalError("x", errors.New("boom")), http.StatusInternalServerError, "INTERNAL_ERROR"},
		{"untyped", errors.New("boom"), http.StatusInternalServerError, "UNKNOWN_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, category, _ := apperror.MapToHTTPStatus(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.category, category)
		})
	}
}

func TestNewDBError_WrapsDriverError(t *testing.T) {
	driverErr := errors.New("connection refused")
	err := apperror.NewDBError("Falha ao buscar cuenta", driverErr)

	assert.ErrorIs(t, err, driverErr)
	assert.Contains(t, err.Error(), "connection refused")

	var internal *apperror.InternalError
	assert.True(t, errors.As(err, &internal))
}
