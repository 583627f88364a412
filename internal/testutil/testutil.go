package testutil

import (
	"context"
	"database/sql"
	"testing"

	"ofppt/config"
	"ofppt/pkg/database"
)

// OpenInMemoryDB opens a shared-cache in-memory SQLite database with the auth table.
// name must be unique per test so databases do not leak between tests.
func OpenInMemoryDB(t *testing.T, name string) *sql.DB {
	t.Helper()
	cfg := config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   "file:" + name + "?mode=memory&cache=shared",
	}
	d, err := database.Open(context.Background(), cfg)
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })

	if err := database.Bootstrap(context.Background(), d, cfg.Driver); err != nil {
		t.Fatalf("bootstrap test db: %v", err)
	}
	return d
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}
