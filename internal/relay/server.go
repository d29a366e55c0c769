// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Session Foundation

package relay

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/session-foundation/configsync/internal/config"
	"github.com/session-foundation/configsync/internal/logger"
)

// Server runs the dev relay's HTTP listener and handles graceful shutdown.
type Server struct {
	httpServer *http.Server
	logger     *logger.Logger
}

// NewServer builds a relay server from its config: handlers, routes and
// the listener settings.
func NewServer(cfg config.RelayConfig, log *logger.Logger) *Server {
	log.Info().Msg("creating new relay server...")

	handler := NewHandler(cfg, log)

	return &Server{
		httpServer: &http.Server{
			Addr:              cfg.ListenAddress,
			Handler:           handler.Init(),
			ReadHeaderTimeout: cfg.RequestTimeout,
		},
		logger: log,
	}
}

// RunServer serves until SIGINT/SIGTERM, then shuts down gracefully.
func (s *Server) RunServer() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		s.logger.Info().Str("address", s.httpServer.Addr).Msg("relay server listening")
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Err(err).Msg("relay server ListenAndServe")
			stop()
		}
	}()

	<-ctx.Done()
	s.Shutdown()
}

// Shutdown stops accepting connections and drains in-flight requests.
func (s *Server) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Err(err).Msg("relay server Shutdown")
	}
	s.logger.Info().Msg("relay server stopped")
}
