package server

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/consolekit/brandcfg/internal/config"
	"github.com/consolekit/brandcfg/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

func NewServer(handler http.Handler, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handler, cfg, logger),
		logger:     logger,
	}, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	s.logger.Info().Str("address", s.httpServer.server.Addr).Msg("Launching HTTP server")

	serveDone := make(chan struct{})
	go func() {
		s.httpServer.RunServer()
		close(serveDone)
	}()

	select {
	case <-ctx.Done():
		s.Shutdown()
		<-serveDone
		s.logger.Info().Msg("server Shutdown gracefully")
	case <-serveDone:
		// ListenAndServe failed before any shutdown was requested,
		// e.g. the port is already bound.
		s.logger.Error().Msg("HTTP server stopped unexpectedly")
	}
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}
