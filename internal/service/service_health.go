package service

import (
	"context"

	"github.com/MKhiriev/animal-catalog/internal/store"
)

type healthService struct {
	animalRepository store.AnimalRepository
}

// NewHealthService returns a [HealthService] that pings the animal store.
func NewHealthService(animalRepository store.AnimalRepository) HealthService {
	return &healthService{animalRepository: animalRepository}
}

func (h *healthService) Check(ctx context.Context) error {
	return h.animalRepository.Ping(ctx)
}
