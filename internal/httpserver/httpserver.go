package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/maxviazov/pagewindow/internal/config"
	"github.com/maxviazov/pagewindow/internal/handler"
	"github.com/maxviazov/pagewindow/internal/service"
	"github.com/rs/zerolog"
)

// HTTPServer wires the gin engine to a net/http server.
type HTTPServer struct {
	addr            string
	shutdownTimeout time.Duration
	engine          *gin.Engine
	log             zerolog.Logger
}

// New builds the engine with recovery, request logging and every public route.
func New(cfg *config.Config, svc service.PaginationService, logger zerolog.Logger) *HTTPServer {
	if cfg.App.Env == "prod" || cfg.App.Env == "staging" {
		gin.SetMode(gin.ReleaseMode)
	}
	l := logger.With().Str("component", "http").Logger()

	engine := gin.New()
	engine.Use(gin.Recovery(), RequestLogger(l))
	handler.Register(engine, svc)

	return &HTTPServer{
		addr:            net.JoinHostPort(cfg.App.Host, strconv.Itoa(cfg.App.Port)),
		shutdownTimeout: cfg.App.ShutdownTimeout,
		engine:          engine,
		log:             l,
	}
}

// Handler exposes the engine, mostly for tests.
func (srv *HTTPServer) Handler() http.Handler { return srv.engine }

// Run serves until ctx is done, then shuts down gracefully.
// ListenAndServe failures are returned to the caller.
func (srv *HTTPServer) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              srv.addr,
		Handler:           srv.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		srv.log.Info().Str("addr", srv.addr).Msg("HTTP server started")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("listen on %s: %w", srv.addr, err)
	case <-ctx.Done():
		srv.log.Info().Msg("shutdown requested, draining connections")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), srv.shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		srv.log.Error().Err(err).Msg("server shutdown error")
		return err
	}
	srv.log.Info().Msg("HTTP server stopped")
	return nil
}
