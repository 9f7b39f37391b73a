// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the JWT claim set carried by a bearer token.
//
// It embeds [jwt.RegisteredClaims] for the standard claims (iss, sub, iat,
// exp) and adds the identity fields the handlers need.
type Claims struct {
	// UserID is the ID of the authenticated identity.
	UserID int64 `json:"userId"`

	// Username is the login name of the authenticated identity.
	Username string `json:"username"`

	jwt.RegisteredClaims
}

// IssuedAtTime returns the "iat" claim or the zero time if absent.
func (c Claims) IssuedAtTime() time.Time {
	if c.IssuedAt == nil {
		return time.Time{}
	}
	return c.IssuedAt.Time
}

// ExpiresAtTime returns the "exp" claim or the zero time if absent.
func (c Claims) ExpiresAtTime() time.Time {
	if c.ExpiresAt == nil {
		return time.Time{}
	}
	return c.ExpiresAt.Time
}

// Token is an issued bearer token.
type Token struct {
	// Claims are the claims signed into the token.
	Claims Claims `json:"-"`

	// SignedString is the compact JWS representation
	// (base64url header.payload.signature).
	SignedString string `json:"token"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
