// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Identity is the principal that may obtain a bearer token.
// The service knows exactly one identity for its whole lifetime.
type Identity struct {
	// ID is embedded into issued tokens as the "userId" claim.
	ID int64 `json:"id"`

	// Username is the login name.
	Username string `json:"username"`

	// Password is never serialized.
	Password string `json:"-"`
}

// Credentials is the body of POST /login.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
