// Package handler groups the transport handlers built from one set of
// services.
package handler

import (
	"github.com/MKhiriev/animal-catalog/internal/config"
	"github.com/MKhiriev/animal-catalog/internal/handler/grpc"
	"github.com/MKhiriev/animal-catalog/internal/handler/http"
	"github.com/MKhiriev/animal-catalog/internal/logger"
	"github.com/MKhiriev/animal-catalog/internal/service"
)

// Handlers holds one handler per enabled transport. A nil field means the
// transport has no listen address.
type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers builds the REST handler when cfg.HTTPAddress is set and the
// health handler when cfg.GRPCAddress is set.
func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	logger.Info().
		Bool("http", handlers.HTTP != nil).
		Bool("grpc", handlers.GRPC != nil).
		Msg("handlers created")

	return handlers, nil
}
