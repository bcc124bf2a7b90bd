package server

import (
	"net"

	"github.com/MKhiriev/go-policy-desk/internal/config"
	myGRPC "github.com/MKhiriev/go-policy-desk/internal/handler/grpc"
	"github.com/MKhiriev/go-policy-desk/internal/logger"

	"google.golang.org/grpc"
)

// grpcServer serves the health endpoint of the policy desk.
type grpcServer struct {
	handler *myGRPC.Handler
	address string

	server *grpc.Server

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	server := grpc.NewServer()
	handler.Register(server)

	return &grpcServer{
		handler: handler,
		address: cfg.GRPCAddress,
		server:  server,
		logger:  logger,
	}
}

// RunServer blocks until the server stops. It returns nil after a graceful
// stop.
func (g *grpcServer) RunServer() error {
	listener, err := net.Listen("tcp", g.address)
	if err != nil {
		g.logger.Err(err).Str("func", "*grpcServer.RunServer").Str("address", g.address).Msg("gRPC listen failed")
		return err
	}

	if err = g.server.Serve(listener); err != nil {
		g.logger.Err(err).Str("func", "*grpcServer.RunServer").Msg("gRPC serve failed")
		return err
	}
	return nil
}

// drain reports NOT_SERVING while the listener stays open.
func (g *grpcServer) drain() {
	g.handler.Shutdown()
}

func (g *grpcServer) stop() {
	g.logger.Info().Msg("gRPC server stopping")
	g.server.GracefulStop()
}

func (g *grpcServer) Shutdown() {
	g.drain()
	g.stop()
}
