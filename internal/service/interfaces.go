package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/animal-catalog/models"
)

// CredentialVerifier checks a username/password pair against the known
// identities. The static implementation knows exactly one.
type CredentialVerifier interface {
	Verify(ctx context.Context, username, password string) (models.Identity, error)
}

// TokenService issues bearer tokens and verifies Authorization header values.
type TokenService interface {
	Issue(ctx context.Context, identity models.Identity) (models.Token, error)
	Verify(ctx context.Context, authorizationHeader string) (models.Claims, error)
}

// AuthService exchanges credentials for a token.
type AuthService interface {
	Login(ctx context.Context, credentials models.Credentials) (models.Token, error)
}

// OriginGate decides whether a cross-origin request may proceed.
type OriginGate interface {
	Allow(origin string) bool
}

// AnimalService is the catalog use-case layer. Update and Delete turn a zero
// affected-row count into ErrAnimalNotFound.
type AnimalService interface {
	ListAll(ctx context.Context) ([]models.Animal, error)
	ListByCategory(ctx context.Context, category string) ([]models.Animal, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, animal models.Animal) (int64, error)
	Update(ctx context.Context, id int64, fields models.AnimalFields) error
	Delete(ctx context.Context, id int64) error
}

// HealthService reports whether the storage backend is reachable.
type HealthService interface {
	Check(ctx context.Context) error
}

// AnimalServiceWrapper defines middleware composition for AnimalService.
// Implementations wrap an existing AnimalService to add behavior such as
// validation.
type AnimalServiceWrapper interface {
	Wrap(AnimalService) AnimalService // returns a decorated AnimalService applying additional behavior
}
