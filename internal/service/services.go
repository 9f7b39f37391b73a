package service

import (
	"fmt"

	"github.com/MKhiriev/animal-catalog/internal/config"
	"github.com/MKhiriev/animal-catalog/internal/logger"
	"github.com/MKhiriev/animal-catalog/internal/store"
)

type Services struct {
	AuthService   AuthService
	TokenService  TokenService
	OriginGate    OriginGate
	AnimalService AnimalService
	HealthService HealthService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	verifier, err := NewStaticCredentialVerifier(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating credential verifier: %w", err)
	}

	tokens := NewTokenService(cfg.App, logger)

	return &Services{
		AuthService:   NewAuthService(verifier, tokens, logger),
		TokenService:  tokens,
		OriginGate:    NewOriginGate(cfg.Server.AllowedOrigins),
		AnimalService: NewAnimalService(storages.AnimalRepository, logger),
		HealthService: NewHealthService(storages.AnimalRepository),
	}, nil
}
