package service

import (
	"context"
	"crypto/subtle"
	"fmt"

	"github.com/MKhiriev/animal-catalog/internal/config"
	"github.com/MKhiriev/animal-catalog/internal/logger"
	"github.com/MKhiriev/animal-catalog/models"
	"golang.org/x/crypto/bcrypt"
)

// staticCredentialVerifier knows a single identity for the whole process
// lifetime. The password is compared in constant time, or through bcrypt
// when a hash is configured.
type staticCredentialVerifier struct {
	identity     models.Identity
	passwordHash []byte

	logger *logger.Logger
}

// NewStaticCredentialVerifier builds a [CredentialVerifier] for the admin
// identity of cfg. A non-empty AdminPasswordHash must be a valid bcrypt hash
// and takes precedence over AdminPassword.
func NewStaticCredentialVerifier(cfg config.App, logger *logger.Logger) (CredentialVerifier, error) {
	v := &staticCredentialVerifier{
		identity: models.Identity{
			ID:       cfg.AdminID,
			Username: cfg.AdminUsername,
			Password: cfg.AdminPassword,
		},
		logger: logger,
	}

	if cfg.AdminPasswordHash != "" {
		if _, err := bcrypt.Cost([]byte(cfg.AdminPasswordHash)); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidPasswordHash, err)
		}
		v.passwordHash = []byte(cfg.AdminPasswordHash)
		v.identity.Password = ""
	}

	return v, nil
}

// Verify returns the known identity, without its password, when username and
// password match exactly. Any mismatch yields ErrInvalidCredentials.
func (v *staticCredentialVerifier) Verify(ctx context.Context, username, password string) (models.Identity, error) {
	usernameOK := subtle.ConstantTimeCompare([]byte(username), []byte(v.identity.Username)) == 1

	var passwordOK bool
	if v.passwordHash != nil {
		passwordOK = bcrypt.CompareHashAndPassword(v.passwordHash, []byte(password)) == nil
	} else {
		passwordOK = subtle.ConstantTimeCompare([]byte(password), []byte(v.identity.Password)) == 1
	}

	if !usernameOK || !passwordOK {
		logger.FromContext(ctx).Warn().Str("username", username).Msg("invalid credentials")
		return models.Identity{}, ErrInvalidCredentials
	}

	return models.Identity{ID: v.identity.ID, Username: v.identity.Username}, nil
}
