// Package server hosts the status API the admin console talks to: liveness,
// poller readiness, the current board state and a settings reload hook.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"cubs-led-scoreboard/internal/logging"
	"cubs-led-scoreboard/internal/metrics"
)

const (
	readTimeout  = 10 * time.Second
	writeTimeout = 10 * time.Second
	idleTimeout  = 60 * time.Second
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second

// Server wraps the status HTTP server with context-driven shutdown.
type Server struct {
	srv    *http.Server
	logger *slog.Logger
}

// New builds the status server on the given port.
func New(port string, handler *Handler, metricsHandler http.Handler, logger *slog.Logger, recorder *metrics.Recorder) *Server {
	router := NewRouter(handler, metricsHandler)
	wrapped := LoggingMiddleware(logger, recorder, router)
	return &Server{
		srv: &http.Server{
			Addr:         ":" + port,
			Handler:      wrapped,
			ReadTimeout:  readTimeout,
			WriteTimeout: writeTimeout,
			IdleTimeout:  idleTimeout,
		},
		logger: logger,
	}
}

// Addr reports the listen address.
func (s *Server) Addr() string { return s.srv.Addr }

// Handler exposes the composed handler for in-process tests.
func (s *Server) Handler() http.Handler { return s.srv.Handler }

// Run serves until the context is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		logging.Info(s.logger, "status server listening", slog.String("addr", s.srv.Addr))
		errCh <- s.srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "status server shutdown failed", err)
		return err
	}
	logging.Info(s.logger, "status server stopped")
	return ctx.Err()
}
