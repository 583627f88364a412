package handler

import (
	"net/http"

	"github.com/rs/zerolog"

	"ofppt/internal/apperr"
	"ofppt/internal/dto"
)

// HealthHandler reports whether the database answers a ping.
func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.provider.Ping(r.Context()); err != nil {
		zerolog.Ctx(r.Context()).Warn().Err(err).Msg("health check failed")
		writeErrorResponse(w, r, apperr.NewUnavailable("Database unavailable", err))
		return
	}
	writeJSON(w, r, http.StatusOK, dto.HealthResponse{Status: "ok"})
}
