package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/animal-catalog/internal/config"
	"github.com/MKhiriev/animal-catalog/internal/logger"
	"github.com/MKhiriev/animal-catalog/internal/utils"
	"github.com/MKhiriev/animal-catalog/models"
	"github.com/golang-jwt/jwt/v5"
)

// tokenService issues and verifies HS256 bearer tokens. It keeps no state
// besides its read-only settings, so it is safe for concurrent use.
type tokenService struct {
	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// now is the clock; replaced in tests.
	now func() time.Time

	logger *logger.Logger
}

// NewTokenService constructs a [TokenService] from the token settings of cfg.
func NewTokenService(cfg config.App, logger *logger.Logger) TokenService {
	return &tokenService{
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		now:           time.Now,
		logger:        logger,
	}
}

// Issue signs a token for identity that expires tokenDuration from now.
func (t *tokenService) Issue(ctx context.Context, identity models.Identity) (models.Token, error) {
	token, err := utils.GenerateJWTToken(t.tokenIssuer, identity, t.tokenDuration, t.tokenSignKey, t.now())
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*tokenService.Issue").Msg("error generating token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// Verify checks a raw Authorization header value and returns the decoded
// claims. Every failure maps to one of ErrMissingToken, ErrMalformedHeader or
// ErrInvalidOrExpiredToken.
func (t *tokenService) Verify(ctx context.Context, authorizationHeader string) (models.Claims, error) {
	log := logger.FromContext(ctx)

	tokenString, err := utils.ParseBearerToken(authorizationHeader)
	switch {
	case errors.Is(err, utils.ErrEmptyAuthorizationHeader):
		return models.Claims{}, ErrMissingToken
	case err != nil:
		return models.Claims{}, ErrMalformedHeader
	}

	claims, err := utils.ValidateAndParseJWTToken(tokenString, t.tokenSignKey, t.tokenIssuer, t.now)
	if err != nil {
		log.Debug().Err(err).Bool("expired", errors.Is(err, jwt.ErrTokenExpired)).Msg("token rejected")
		return models.Claims{}, ErrInvalidOrExpiredToken
	}

	return claims, nil
}
