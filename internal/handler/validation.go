package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"ofppt/internal/apperr"
)

const maxBodyBytes = 1 << 20

var validate = validator.New()

// validateRequest checks the struct tags of a request DTO. Only presence is
// checked; a failed "required" rule is reported as a missing field.
func validateRequest(req any) *apperr.AppError {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, fe := range validationErrors {
			if fe.Tag() == "required" {
				return apperr.NewInvalidInput("Missing required fields")
			}
		}
		return apperr.NewInvalidInput(validationErrors[0].Field() + " is invalid")
	}
	return apperr.NewInvalidInput(err.Error())
}

// decodeBody reads a JSON body into dst. An empty body leaves dst zeroed.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) *apperr.AppError {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return apperr.NewPayloadTooLarge("Request body too large")
	}
	return apperr.NewInvalidInput("Invalid request body")
}

// userID extracts the id query parameter. present is false when it is absent;
// anything but a positive integer is rejected.
func userID(r *http.Request) (id int64, present bool, appErr *apperr.AppError) {
	q := r.URL.Query()
	if !q.Has("id") {
		return 0, false, nil
	}
	id, err := strconv.ParseInt(q.Get("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, true, apperr.NewInvalidInput("Invalid user id")
	}
	return id, true, nil
}
