// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the animal catalog HTTP API.
//
// [CatalogAdapter] hides the REST routes behind typed methods. Non-2xx
// responses are mapped to the sentinel errors in errors.go, so callers can
// branch with [errors.Is] (e.g. [ErrUnauthorized] for 401, [ErrNotFound]
// for 404) while still seeing the server's message text.
package adapter

import (
	"context"

	"github.com/MKhiriev/animal-catalog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// CatalogAdapter talks to a running animal catalog server.
type CatalogAdapter interface {
	// SetToken stores the bearer token attached to protected requests.
	SetToken(token string)

	// Token returns the stored bearer token or an empty string.
	Token() string

	// Ping calls GET / and returns the server's status message.
	Ping(ctx context.Context) (string, error)

	// Login exchanges credentials for a bearer token and stores it via
	// SetToken.
	Login(ctx context.Context, creds models.Credentials) (string, error)

	// ListAll returns every animal in the catalog.
	ListAll(ctx context.Context) ([]models.Animal, error)

	// ListByCategory returns the animals whose category equals category.
	ListByCategory(ctx context.Context, category string) ([]models.Animal, error)

	// Count returns the number of animals in the catalog.
	Count(ctx context.Context) (int64, error)

	// Add creates an animal and returns the server's confirmation.
	Add(ctx context.Context, fields models.AnimalFields) (models.CreatedResponse, error)

	// Update changes the provided fields of the animal with the given id.
	Update(ctx context.Context, id int64, fields models.AnimalFields) (string, error)

	// Delete removes the animal with the given id.
	Delete(ctx context.Context, id int64) (string, error)
}
