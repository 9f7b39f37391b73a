package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/animal-catalog/models"
)

// AnimalRepository persists catalog entries in the animalweb table.
//
// Update and Delete report the number of affected rows; zero means no row
// has the given id and is not an error.
type AnimalRepository interface {
	ListAll(ctx context.Context) ([]models.Animal, error)
	ListByCategory(ctx context.Context, category string) ([]models.Animal, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, animal models.Animal) (int64, error)
	Update(ctx context.Context, id int64, fields models.AnimalFields) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
	Ping(ctx context.Context) error
}

// ErrorClassificator decides whether a driver error is worth retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
