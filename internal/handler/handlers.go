package handler

import (
	"context"
	"database/sql"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"ofppt/internal/metrics"
	"ofppt/internal/service"
	"ofppt/pkg/database"
)

// ConnProvider hands one database connection to each request.
type ConnProvider interface {
	Conn(ctx context.Context) (*sql.Conn, error)
	Dialect() database.Dialect
	Ping(ctx context.Context) error
}

// Handler holds the dependencies shared by all requests.
type Handler struct {
	provider ConnProvider
	hasher   service.PasswordHasher
	log      zerolog.Logger
	metrics  *metrics.Metrics
}

// NewHandler creates a Handler. A nil m gets a fresh metrics registry.
func NewHandler(provider ConnProvider, hasher service.PasswordHasher, log zerolog.Logger, m *metrics.Metrics) *Handler {
	if m == nil {
		m = metrics.New()
	}
	return &Handler{
		provider: provider,
		hasher:   hasher,
		log:      log,
		metrics:  m,
	}
}

// Routes builds the router. apiPath is the single CRUD endpoint.
func (h *Handler) Routes(apiPath string) http.Handler {
	r := mux.NewRouter()

	r.HandleFunc(apiPath, h.UsersHandler)
	r.HandleFunc("/healthz", h.HealthHandler).Methods(http.MethodGet)
	r.Handle("/metrics", h.metrics.Handler()).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(notFoundHandler)
	r.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowedHandler)

	return h.requestLogger(methodGuard(r))
}
