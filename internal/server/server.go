package server

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/MKhiriev/go-policy-desk/internal/config"
	"github.com/MKhiriev/go-policy-desk/internal/handler"
	"github.com/MKhiriev/go-policy-desk/internal/logger"
)

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer

	// resources are closed after both transports stop, in order.
	resources []io.Closer

	shutdownOnce sync.Once
	logger       *logger.Logger
}

// NewServer builds a transport for every configured address. resources
// (storages, the change feed) are released by Shutdown once no request can
// reach them any more.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger, resources ...io.Closer) (Server, error) {
	logger.Info().Msg("creating new server...")
	s := &server{resources: resources, logger: logger}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		s.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
		s.httpServer.server.RegisterOnShutdown(handlers.HTTP.StopStreams)
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		s.gRPCServer = newGRPCServer(handlers.GRPC, cfg, logger)
	}

	if s.httpServer == nil && s.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}
	return s, nil
}

func (s *server) Run(ctx context.Context) error {
	failed := make(chan error, 2)

	if s.httpServer != nil {
		s.logger.Info().Str("address", s.httpServer.server.Addr).Msg("launching HTTP server")
		go func() { failed <- s.httpServer.RunServer() }()
	}
	if s.gRPCServer != nil {
		s.logger.Info().Str("address", s.gRPCServer.address).Msg("launching gRPC server")
		go func() { failed <- s.gRPCServer.RunServer() }()
	}

	var runErr error
	select {
	case <-ctx.Done():
		s.logger.Info().Msg("stop signal received")
	case err := <-failed:
		// a transport only returns early when it could not serve
		if err == nil {
			err = io.ErrUnexpectedEOF
		}
		runErr = fmt.Errorf("%w: %w", errTransportFailed, err)
		s.logger.Err(err).Str("func", "*server.Run").Msg("transport failed, shutting down")
	}

	s.Shutdown()
	if runErr == nil {
		s.logger.Info().Msg("server shut down gracefully")
	}
	return runErr
}

// Shutdown flips gRPC health first so balancers stop routing here, then
// drains HTTP requests and change streams, stops gRPC and finally closes
// the resources.
func (s *server) Shutdown() {
	s.shutdownOnce.Do(func() {
		if s.gRPCServer != nil {
			s.gRPCServer.drain()
		}
		if s.httpServer != nil {
			s.httpServer.Shutdown()
		}
		if s.gRPCServer != nil {
			s.gRPCServer.stop()
		}

		for _, r := range s.resources {
			if err := r.Close(); err != nil {
				s.logger.Err(err).Str("func", "*server.Shutdown").Msg("error releasing resource")
			}
		}
	})
}
