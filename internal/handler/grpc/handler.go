package grpc

import (
	"context"

	"github.com/MKhiriev/animal-catalog/internal/logger"
	"github.com/MKhiriev/animal-catalog/internal/service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the name under which the catalog reports its health, next
// to the empty name that stands for the whole server.
const ServiceName = "animal-catalog"

// Handler is the root gRPC transport handler.
//
// It exposes the standard grpc.health.v1 service. The serving status starts
// as NOT_SERVING and is refreshed by [Handler.CheckHealth], which the health check
// worker calls periodically.
type Handler struct {
	// services provides access to the health check of the storage backend.
	services *service.Services

	// health keeps the serving status reported to gRPC health clients.
	health *health.Server

	// logger is used for diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler] with the provided service container and
// logger, and returns the initialized instance.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	h := &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
	h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)

	return h
}

// Register attaches the health service to server.
func (h *Handler) Register(server *grpc.Server) {
	healthpb.RegisterHealthServer(server, h.health)
}

// CheckHealth checks the storage backend and updates the serving status
// accordingly. The error of the check is returned unchanged.
func (h *Handler) CheckHealth(ctx context.Context) error {
	if err := h.services.HealthService.Check(ctx); err != nil {
		h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)
		return err
	}

	h.setStatus(healthpb.HealthCheckResponse_SERVING)
	return nil
}

// Shutdown flips every status to NOT_SERVING and ignores later updates, so
// clients stop routing traffic while the server drains.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
}
