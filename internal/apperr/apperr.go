// Package apperr defines the typed errors returned by services. Only the HTTP
// layer converts them into status codes.
package apperr

import (
	"fmt"
	"net/http"
)

// ErrorCode represents different types of application errors
type ErrorCode string

const (
	ErrCodeNotFound         ErrorCode = "NOT_FOUND"
	ErrCodeInvalidInput     ErrorCode = "INVALID_INPUT"
	ErrCodeMethodNotAllowed ErrorCode = "METHOD_NOT_ALLOWED"
	ErrCodeTooLarge         ErrorCode = "PAYLOAD_TOO_LARGE"
	ErrCodeUnavailable      ErrorCode = "UNAVAILABLE"
	ErrCodeInternal         ErrorCode = "INTERNAL_ERROR"
)

// AppError represents an application error with code and HTTP status
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
	Status  int
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// PublicMessage is the text written to the client. For wrapped errors the
// underlying message is surfaced, matching the storage-error contract.
func (e *AppError) PublicMessage() string {
	return e.Error()
}

// NewNotFound creates a new "not found" error with the given message
func NewNotFound(message string) *AppError {
	return &AppError{
		Code:    ErrCodeNotFound,
		Message: message,
		Status:  http.StatusNotFound,
	}
}

// NewInvalidInput creates a new "invalid input" error
func NewInvalidInput(message string) *AppError {
	return &AppError{
		Code:    ErrCodeInvalidInput,
		Message: message,
		Status:  http.StatusBadRequest,
	}
}

func NewMethodNotAllowed() *AppError {
	return &AppError{
		Code:    ErrCodeMethodNotAllowed,
		Message: "Method not allowed",
		Status:  http.StatusMethodNotAllowed,
	}
}

func NewPayloadTooLarge(message string) *AppError {
	return &AppError{
		Code:    ErrCodeTooLarge,
		Message: message,
		Status:  http.StatusRequestEntityTooLarge,
	}
}

// NewUnavailable is used by the health check when the database cannot be reached.
func NewUnavailable(message string, err error) *AppError {
	return Wrap(err, ErrCodeUnavailable, message, http.StatusServiceUnavailable)
}

// NewInternal creates a new "internal server" error
func NewInternal(message string, err error) *AppError {
	return Wrap(err, ErrCodeInternal, message, http.StatusInternalServerError)
}

// Wrap wraps an existing error with an AppError
func Wrap(err error, code ErrorCode, message string, status int) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
		Status:  status,
	}
}
