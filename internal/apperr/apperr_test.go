package apperr

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name   string
		err    *AppError
		code   ErrorCode
		status int
		msg    string
	}{
		{"not found", NewNotFound("User not found"), ErrCodeNotFound, http.StatusNotFound, "User not found"},
		{"invalid input", NewInvalidInput("Missing user id"), ErrCodeInvalidInput, http.StatusBadRequest, "Missing user id"},
		{"too large", NewPayloadTooLarge("Request body too large"), ErrCodeTooLarge, http.StatusRequestEntityTooLarge, "Request body too large"},
		{"method", NewMethodNotAllowed(), ErrCodeMethodNotAllowed, http.StatusMethodNotAllowed, "Method not allowed"},
		{"internal", NewInternal("Failed to create user", errors.New("duplicate entry")), ErrCodeInternal, http.StatusInternalServerError, "Failed to create user: duplicate entry"},
		{"unavailable", NewUnavailable("Database unavailable", errors.New("dial tcp")), ErrCodeUnavailable, http.StatusServiceUnavailable, "Database unavailable: dial tcp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.status, tt.err.Status)
			assert.Equal(t, tt.msg, tt.err.PublicMessage())
		})
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewInternal("Failed to delete user", cause)

	assert.ErrorIs(t, err, cause)

	var target *AppError
	assert.True(t, errors.As(error(err), &target))
	assert.Equal(t, ErrCodeInternal, target.Code)
}
