package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/animal-catalog/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldID targets the store-generated identifier of an animal.
	FieldID = "id"

	// FieldName targets animal_name, the only required column.
	FieldName = "animal_name"

	// FieldLengths checks that text columns fit their VARCHAR limits.
	FieldLengths = "lengths"

	// FieldAnyPresent requires at least one field of an update to be set.
	FieldAnyPresent = "any_present"
)

// Column limits of the animalweb table.
const (
	maxNameLength    = 255
	maxShortLength   = 255
	maxAggLength     = 64
	maxPictureLength = 1024
)

// AnimalValidator implements the Validator interface for models.Animal
// (create) and models.AnimalFields (partial update).
type AnimalValidator struct {
}

// NewAnimalValidator constructs a new AnimalValidator and returns it as the
// Validator interface.
func NewAnimalValidator() Validator {
	return &AnimalValidator{}
}

// Validate dispatches validation on the dynamic type of obj. Both value and
// pointer forms are accepted.
//
// Default fields:
//   - models.Animal: FieldName, FieldLengths
//   - models.AnimalFields: FieldAnyPresent, FieldName, FieldLengths
//   - int64 (an animal id): FieldID
func (v *AnimalValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Animal:
		return v.validateAnimal(ctx, value, fields...)
	case *models.Animal:
		return v.validateAnimal(ctx, *value, fields...)

	case models.AnimalFields:
		return v.validateAnimalFields(ctx, value, fields...)
	case *models.AnimalFields:
		return v.validateAnimalFields(ctx, *value, fields...)

	case int64:
		if value <= 0 {
			return ErrInvalidAnimalID
		}
		return nil

	default:
		return ErrUnsupportedType
	}
}

func (v *AnimalValidator) validateAnimal(_ context.Context, animal models.Animal, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldLengths}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if animal.ID <= 0 {
				return ErrInvalidAnimalID
			}
		case FieldName:
			if strings.TrimSpace(animal.Name) == "" {
				return ErrEmptyAnimalName
			}
		case FieldLengths:
			if err := checkLengths(animal); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateAnimalFields validates the body of a partial update. A nil name is
// fine (column untouched), an explicit empty one is not.
func (v *AnimalValidator) validateAnimalFields(_ context.Context, update models.AnimalFields, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAnyPresent, FieldName, FieldLengths}
	}

	for _, f := range fields {
		switch f {
		case FieldAnyPresent:
			if update.IsEmpty() {
				return ErrNoFieldsToUpdate
			}
		case FieldName:
			if update.Name != nil && strings.TrimSpace(*update.Name) == "" {
				return ErrEmptyAnimalName
			}
		case FieldLengths:
			if err := checkLengths(update.ToAnimal()); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func checkLengths(animal models.Animal) error {
	if utf8.RuneCountInString(animal.Name) > maxNameLength {
		return fmt.Errorf("%w: %s", ErrFieldTooLong, FieldName)
	}

	short := map[string]*string{
		"animal_habitat": animal.Habitat,
		"animal_diet":    animal.Diet,
		"animal_cat":     animal.Category,
	}
	for name, value := range short {
		if value != nil && utf8.RuneCountInString(*value) > maxShortLength {
			return fmt.Errorf("%w: %s", ErrFieldTooLong, name)
		}
	}

	if animal.AggressionLevel != nil && utf8.RuneCountInString(string(*animal.AggressionLevel)) > maxAggLength {
		return fmt.Errorf("%w: %s", ErrFieldTooLong, "animal_agg")
	}

	if animal.PictureRef != nil && utf8.RuneCountInString(*animal.PictureRef) > maxPictureLength {
		return fmt.Errorf("%w: %s", ErrFieldTooLong, "animal_pic")
	}

	return nil
}
