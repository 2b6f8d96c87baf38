// Package server runs the HTTP server with graceful shutdown on
// SIGTERM/SIGINT/SIGQUIT.
package server

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/avstanoeva/movienotes/internal/config"
	"github.com/avstanoeva/movienotes/internal/logger"
)

type Server struct {
	httpServer *http.Server
	logger     *logger.Logger
}

// NewServer wires the given handler into an http.Server configured from
// cfg. RequestTimeout, when set, bounds read and write per request.
func NewServer(handler http.Handler, cfg config.Server, log *logger.Logger) *Server {
	log.Info().Str("address", cfg.HTTPAddress).Msg("creating new server")

	srv := &http.Server{
		Addr:    cfg.HTTPAddress,
		Handler: handler,
	}
	if cfg.RequestTimeout > 0 {
		srv.ReadTimeout = cfg.RequestTimeout
		srv.WriteTimeout = cfg.RequestTimeout
	}

	return &Server{
		httpServer: srv,
		logger:     log,
	}
}

// Run serves until a stop signal arrives, then shuts down gracefully with
// a short drain window.
func (s *Server) Run() error {
	idleConnectionsClosed := make(chan struct{})
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			s.logger.Err(err).Msg("HTTP server shutdown")
		}
		close(idleConnectionsClosed)
	}()

	s.logger.Info().Msg("launching HTTP server")
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	<-idleConnectionsClosed
	s.logger.Info().Msg("server shut down gracefully")

	return nil
}
