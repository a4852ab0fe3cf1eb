package server

import (
	"context"
	"net"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-scripture-lens/internal/config"
	"github.com/MKhiriev/go-scripture-lens/internal/handler"
	"github.com/MKhiriev/go-scripture-lens/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		logger:     logger,
	}, nil
}

// RunServer blocks until SIGTERM, SIGINT or SIGQUIT is received.
func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	l, err := net.Listen("tcp", s.httpServer.server.Addr)
	if err != nil {
		s.logger.Err(err).Msg("Error running server")
		return
	}

	if err := s.run(ctx, l); err != nil {
		s.logger.Err(err).Msg("Error running server")
	}
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}

// run serves on l until ctx is done, then shuts down gracefully.
func (s *server) run(ctx context.Context, l net.Listener) error {
	serveErr := make(chan error, 1)

	s.logger.Info().Msg("Launching HTTP server")
	go func() {
		serveErr <- s.httpServer.Serve(l)
	}()

	select {
	case <-ctx.Done():
		s.Shutdown()
		<-serveErr
	case err := <-serveErr:
		if err != nil {
			return err
		}
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
