package service

import (
	"context"

	"github.com/MKhiriev/animal-catalog/internal/logger"
	"github.com/MKhiriev/animal-catalog/models"
)

// authService exchanges verified credentials for a bearer token.
type authService struct {
	verifier CredentialVerifier
	tokens   TokenService

	logger *logger.Logger
}

// NewAuthService constructs an [AuthService] on top of a verifier and a
// token service.
func NewAuthService(verifier CredentialVerifier, tokens TokenService, logger *logger.Logger) AuthService {
	return &authService{
		verifier: verifier,
		tokens:   tokens,
		logger:   logger,
	}
}

// Login returns a fresh token for valid credentials, ErrInvalidCredentials
// otherwise.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.Token, error) {
	identity, err := a.verifier.Verify(ctx, credentials.Username, credentials.Password)
	if err != nil {
		return models.Token{}, err
	}

	token, err := a.tokens.Issue(ctx, identity)
	if err != nil {
		return models.Token{}, err
	}

	logger.FromContext(ctx).Info().Int64("user_id", identity.ID).Msg("token issued")
	return token, nil
}
