package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"ofppt/config"
	"ofppt/internal/auth"
	"ofppt/internal/handler"
	"ofppt/internal/logger"
	"ofppt/internal/metrics"
	"ofppt/pkg/database"
)

func main() {
	// .env is optional
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Format)
	if envErr != nil {
		log.Debug().Msg(".env file not found, using environment variables")
	}

	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}

func run(cfg *config.Config, log zerolog.Logger) error {
	log.Info().Stringer("config", cfg).Msg("configuration loaded")
	log.Info().
		Str("driver", cfg.Database.Driver).
		Str("host", cfg.Database.Host).
		Str("database", cfg.Database.Name).
		Msg("connecting to database")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := database.Open(ctx, cfg.Database)
	cancel()
	if err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}
	defer func() {
		log.Info().Msg("closing database connection")
		if err := db.Close(); err != nil {
			log.Error().Err(err).Msg("error closing database")
		}
	}()

	if cfg.Database.Bootstrap {
		if err := database.Bootstrap(context.Background(), db, cfg.Database.Driver); err != nil {
			return err
		}
		log.Info().Msg("auth table ready")
	}

	h := handler.NewHandler(
		database.NewProvider(db, cfg.Database.Driver),
		auth.NewHasher(cfg.Security.BcryptCost),
		log,
		metrics.New(),
	)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      h.Routes(cfg.Server.APIPath),
		WriteTimeout: 30 * time.Second,
		ReadTimeout:  10 * time.Second,
		IdleTimeout:  time.Minute,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	serverErrors := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Str("path", cfg.Server.APIPath).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- err
		}
	}()

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info().Msg("server stopped")
	return nil
}
