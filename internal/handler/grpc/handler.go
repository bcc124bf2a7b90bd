package grpc

import (
	"context"

	"github.com/MKhiriev/go-policy-desk/internal/logger"
	"github.com/MKhiriev/go-policy-desk/internal/service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the health-checked service name of the policy desk API.
const ServiceName = "policydesk.v1.PolicyDesk"

// Handler is the root gRPC transport handler. It serves the standard
// grpc.health.v1 service for the policy desk.
type Handler struct {
	// services provides access to all application business operations.
	services *service.Services

	health *health.Server

	// logger is used for request-scoped and diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler]. Both the overall status and
// [ServiceName] start as SERVING.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	h := &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
	h.health.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register attaches the health service to server.
func (h *Handler) Register(server *grpc.Server) {
	healthpb.RegisterHealthServer(server, h.health)
}

// Check reports the serving status of service; "" is the whole server.
func (h *Handler) Check(ctx context.Context, service string) (healthpb.HealthCheckResponse_ServingStatus, error) {
	resp, err := h.health.Check(ctx, &healthpb.HealthCheckRequest{Service: service})
	if err != nil {
		return healthpb.HealthCheckResponse_UNKNOWN, err
	}
	return resp.GetStatus(), nil
}

// Shutdown flips every status to NOT_SERVING so that load balancers drain
// the instance before the listener closes.
func (h *Handler) Shutdown() {
	h.logger.Info().Msg("gRPC health set to NOT_SERVING")
	h.health.Shutdown()
}
