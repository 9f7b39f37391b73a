// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrInvalidJSON is logged when a request body cannot be decoded into the
// expected model.
var ErrInvalidJSON = errors.New("invalid JSON was passed")

// Response texts returned to API clients. The wording is part of the public
// contract consumed by the web front end and must not change.
const (
	msgAPIRunning = "Animal API is running!"

	msgInvalidJSON        = "Invalid JSON was passed"
	msgInvalidCredentials = "Invalid credentials"
	msgLoginFailed        = "Login failed"

	msgMissingAuthHeader = "Missing Authorization header"
	msgInvalidAuthFormat = "Invalid Authorization format"
	msgInvalidToken      = "Invalid/Expired token"
	msgOriginNotAllowed  = "Not allowed by CORS"

	msgListAllFailed    = "Server error for allanimals!"
	msgCategoryFailed   = "Failed to fetch animals by category"
	msgCountFailed      = "Failed to fetch animal count"
	msgNameRequired     = "animal_name is required."
	msgNoFieldsToUpdate = "At least one field is required to update an animal."
	msgInvalidAnimal    = "Invalid animal data provided."
	msgUpdateFailed     = "Update failed"
	msgDeleteFailed     = "Delete failed"

	msgAnimalAdded    = "Animal %s added successfully."
	msgAddFailed      = "Server error - could not add animal %s"
	msgAnimalNotFound = "No animal found with id %s"
	msgAnimalUpdated  = "Animal with id %s updated successfully."
	msgAnimalDeleted  = "Animal with id %s deleted successfully."
)
