// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MessageResponse is the generic success (and legacy failure) body.
type MessageResponse struct {
	Message string `json:"message"`
}

// CreatedResponse is returned by POST /addanimal.
type CreatedResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// ErrorResponse is the body of authorization and origin failures.
type ErrorResponse struct {
	Error string `json:"error"`
}

// TokenResponse is returned by POST /login.
type TokenResponse struct {
	Token string `json:"token"`
}

// CountResponse is returned by GET /api/animals/count.
type CountResponse struct {
	Count int64 `json:"count"`
}
