package handler

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"ofppt/internal/apperr"
	"ofppt/internal/dto"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Int("status", status).Msg("failed to encode response")
	}
}

func writeErrorResponse(w http.ResponseWriter, r *http.Request, appErr *apperr.AppError) {
	writeJSON(w, r, appErr.Status, dto.ErrorResponse{Error: appErr.PublicMessage()})
}

func notFoundHandler(w http.ResponseWriter, r *http.Request) {
	writeErrorResponse(w, r, apperr.NewNotFound("Not found"))
}

func methodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	writeErrorResponse(w, r, apperr.NewMethodNotAllowed())
}
