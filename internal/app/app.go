// Package app wires config, logging, the pagination service and the HTTP server.
package app

import (
	"context"
	"fmt"

	"github.com/maxviazov/pagewindow/internal/config"
	"github.com/maxviazov/pagewindow/internal/httpserver"
	"github.com/maxviazov/pagewindow/internal/logger"
	"github.com/maxviazov/pagewindow/internal/service"
	"github.com/rs/zerolog"
)

// Limits maps the pagination config section onto service limits.
func Limits(cfg config.PaginationConfig) service.Limits {
	return service.Limits{
		DefaultPageSize:   cfg.DefaultPageSize,
		DefaultWindowSize: cfg.DefaultWindowSize,
		MaxPageSize:       cfg.MaxPageSize,
		MaxActions:        cfg.MaxActions,
	}
}

// NewService builds the pagination service from a loaded config.
func NewService(cfg *config.Config, log zerolog.Logger) service.PaginationService {
	return service.NewPaginationService(Limits(cfg.Pagination), log)
}

// Serve loads the config at path and runs the HTTP server until ctx is done.
func Serve(ctx context.Context, path string) error {
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("config loading failed: %w", err)
	}

	appLogger, err := logger.New(&cfg.Logger)
	if err != nil {
		return fmt.Errorf("logger initialization failed: %w", err)
	}
	appLogger.Info().
		Int("default_page_size", cfg.Pagination.DefaultPageSize).
		Int("default_window_size", cfg.Pagination.DefaultWindowSize).
		Int("max_page_size", cfg.Pagination.MaxPageSize).
		Msg("config loaded")

	svc := NewService(cfg, appLogger)
	if err := svc.Ping(ctx); err != nil {
		return err
	}

	return httpserver.New(cfg, svc, appLogger).Run(ctx)
}
