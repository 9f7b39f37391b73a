package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/animal-catalog/internal/logger"
	"github.com/MKhiriev/animal-catalog/internal/store"
	"github.com/MKhiriev/animal-catalog/models"
)

type animalService struct {
	animalRepository store.AnimalRepository

	logger *logger.Logger
}

// NewAnimalService builds the catalog service. The returned service is
// wrapped with [AnimalValidationService], so request data reaches the
// repository only after validation succeeded.
func NewAnimalService(animalRepository store.AnimalRepository, logger *logger.Logger) AnimalService {
	service := &animalService{
		animalRepository: animalRepository,
		logger:           logger,
	}

	return NewAnimalValidationService().Wrap(service)
}

func (a *animalService) ListAll(ctx context.Context) ([]models.Animal, error) {
	animals, err := a.animalRepository.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing animals: %w", err)
	}

	return animals, nil
}

func (a *animalService) ListByCategory(ctx context.Context, category string) ([]models.Animal, error) {
	animals, err := a.animalRepository.ListByCategory(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("error listing animals of category %q: %w", category, err)
	}

	return animals, nil
}

func (a *animalService) Count(ctx context.Context) (int64, error) {
	count, err := a.animalRepository.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("error counting animals: %w", err)
	}

	return count, nil
}

func (a *animalService) Create(ctx context.Context, animal models.Animal) (int64, error) {
	id, err := a.animalRepository.Create(ctx, animal)
	if err != nil {
		return 0, fmt.Errorf("error creating animal %q: %w", animal.Name, err)
	}

	logger.FromContext(ctx).Info().Int64("animal_id", id).Str("animal_name", animal.Name).Msg("animal created")
	return id, nil
}

// Update applies the provided fields to the animal with the given id.
// Zero affected rows means the id does not exist.
func (a *animalService) Update(ctx context.Context, id int64, fields models.AnimalFields) error {
	affected, err := a.animalRepository.Update(ctx, id, fields)
	if err != nil {
		return fmt.Errorf("error updating animal %d: %w", id, err)
	}
	if affected == 0 {
		return ErrAnimalNotFound
	}

	logger.FromContext(ctx).Info().Int64("animal_id", id).Msg("animal updated")
	return nil
}

func (a *animalService) Delete(ctx context.Context, id int64) error {
	affected, err := a.animalRepository.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("error deleting animal %d: %w", id, err)
	}
	if affected == 0 {
		return ErrAnimalNotFound
	}

	logger.FromContext(ctx).Info().Int64("animal_id", id).Msg("animal deleted")
	return nil
}
