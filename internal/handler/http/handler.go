package http

import (
	"time"

	"github.com/MKhiriev/animal-catalog/internal/config"
	"github.com/MKhiriev/animal-catalog/internal/logger"
	"github.com/MKhiriev/animal-catalog/internal/service"
)

type Handler struct {
	services *service.Services

	allowedOrigins   []string
	protectAllWrites bool
	requestTimeout   time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:         services,
		allowedOrigins:   cfg.AllowedOrigins,
		protectAllWrites: cfg.ProtectAllWrites,
		requestTimeout:   cfg.RequestTimeout,
		logger:           logger,
	}
}
