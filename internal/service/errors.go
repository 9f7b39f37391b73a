package service

import "errors"

var (
	// ErrInvalidDataProvided wraps every validation failure of request data.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrAnimalNotFound is returned when no row has the requested id.
	ErrAnimalNotFound = errors.New("animal not found")
)

// Authorization errors.
var (
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrMissingToken          = errors.New("missing authorization header")
	ErrMalformedHeader       = errors.New("invalid authorization format")
	ErrInvalidOrExpiredToken = errors.New("invalid or expired token")
	ErrTokenCreationFailed   = errors.New("token creation failed")

	// ErrOriginNotAllowed is returned for a cross-origin request whose Origin
	// is not in the allowlist.
	ErrOriginNotAllowed = errors.New("not allowed by CORS")

	// ErrInvalidPasswordHash is returned at startup when the configured
	// bcrypt hash cannot be parsed.
	ErrInvalidPasswordHash = errors.New("invalid admin password hash")
)
