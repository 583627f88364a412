package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	unsetForTest(t, "APP_PORT", "API_PATH", "DB_DRIVER", "DB_HOST", "DB_PORT", "DB_NAME",
		"DB_CONN_MAX_IDLE_TIME", "DB_BOOTSTRAP", "BCRYPT_COST", "LOG_LEVEL")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "/crud_auth", cfg.Server.APIPath)
	assert.Equal(t, DriverMySQL, cfg.Database.Driver)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "3306", cfg.Database.Port)
	assert.Equal(t, "ofppt_db", cfg.Database.Name)
	assert.Equal(t, 15*time.Minute, cfg.Database.ConnMaxIdleTime)
	assert.False(t, cfg.Database.Bootstrap)
	assert.Equal(t, 10, cfg.Security.BcryptCost)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, ":8080", cfg.Addr())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("API_PATH", "users")
	t.Setenv("DB_DRIVER", "Postgres")
	t.Setenv("DB_BOOTSTRAP", "true")
	t.Setenv("BCRYPT_COST", "4")
	t.Setenv("DB_MAX_OPEN_CONNS", "7")
	t.Setenv("DB_CONN_MAX_IDLE_TIME", "30s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, "/users", cfg.Server.APIPath)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.True(t, cfg.Database.Bootstrap)
	assert.Equal(t, 4, cfg.Security.BcryptCost)
	assert.Equal(t, 7, cfg.Database.MaxOpenConns)
	assert.Equal(t, 30*time.Second, cfg.Database.ConnMaxIdleTime)
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "oracle")
	_, err := Load()
	assert.ErrorContains(t, err, "unsupported DB_DRIVER")
}

func TestLoad_RejectsBadBcryptCost(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite3")
	t.Setenv("BCRYPT_COST", "99")
	_, err := Load()
	assert.ErrorContains(t, err, "BCRYPT_COST")
}

func TestLoad_RejectsBadIdleTime(t *testing.T) {
	t.Setenv("DB_CONN_MAX_IDLE_TIME", "soon")
	_, err := Load()
	assert.ErrorContains(t, err, "DB_CONN_MAX_IDLE_TIME")
}

func TestString_MasksPassword(t *testing.T) {
	cfg := &Config{
		Server:   ServerConfig{Port: "8080", Env: "test"},
		Database: DatabaseConfig{Driver: DriverMySQL, User: "root", Password: "hunter2", Host: "db", Port: "3306", Name: "ofppt_db"},
	}
	s := cfg.String()
	assert.NotContains(t, s, "hunter2")
	assert.Contains(t, s, "mysql://root@db:3306/ofppt_db")
}

// unsetForTest clears the given variables for the duration of the test.
func unsetForTest(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}
