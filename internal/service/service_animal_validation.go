package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/animal-catalog/internal/validators"
	"github.com/MKhiriev/animal-catalog/models"
)

type AnimalValidationService struct {
	inner     AnimalService
	validator validators.Validator
}

func NewAnimalValidationService() AnimalServiceWrapper {
	return &AnimalValidationService{
		validator: validators.NewAnimalValidator(),
	}
}

func (v *AnimalValidationService) ListAll(ctx context.Context) ([]models.Animal, error) {
	return v.inner.ListAll(ctx)
}

func (v *AnimalValidationService) ListByCategory(ctx context.Context, category string) ([]models.Animal, error) {
	return v.inner.ListByCategory(ctx, category)
}

func (v *AnimalValidationService) Count(ctx context.Context) (int64, error) {
	return v.inner.Count(ctx)
}

func (v *AnimalValidationService) Create(ctx context.Context, animal models.Animal) (int64, error) {
	if err := v.validator.Validate(ctx, animal); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Create(ctx, animal)
}

func (v *AnimalValidationService) Update(ctx context.Context, id int64, fields models.AnimalFields) error {
	if err := v.validateID(ctx, id); err != nil {
		return err
	}
	if err := v.validator.Validate(ctx, fields); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Update(ctx, id, fields)
}

func (v *AnimalValidationService) Delete(ctx context.Context, id int64) error {
	if err := v.validateID(ctx, id); err != nil {
		return err
	}

	return v.inner.Delete(ctx, id)
}

// validateID reports a non-positive id as ErrAnimalNotFound: no row can
// carry it, so the store is not consulted.
func (v *AnimalValidationService) validateID(ctx context.Context, id int64) error {
	err := v.validator.Validate(ctx, id, validators.FieldID)
	if errors.Is(err, validators.ErrInvalidAnimalID) {
		return fmt.Errorf("%w: %w", ErrAnimalNotFound, err)
	}

	return err
}

func (v *AnimalValidationService) Wrap(wrapper AnimalService) AnimalService {
	v.inner = wrapper
	return v
}
