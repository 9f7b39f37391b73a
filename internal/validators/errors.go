package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyAnimalName  = errors.New("animal_name is required")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")
	ErrInvalidAnimalID  = errors.New("invalid animal id")
	ErrFieldTooLong     = errors.New("field value is too long")
)
