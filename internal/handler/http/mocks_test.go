package http

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/animal-catalog/internal/logger"
	"github.com/MKhiriev/animal-catalog/internal/service"
	"github.com/MKhiriev/animal-catalog/models"
)

// ---- Mock: AuthService ----

type mockAuthService struct {
	loginFn func(ctx context.Context, credentials models.Credentials) (models.Token, error)
}

func (m *mockAuthService) Login(ctx context.Context, credentials models.Credentials) (models.Token, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, credentials)
	}
	return models.Token{SignedString: "test-token"}, nil
}

// ---- Mock: TokenService ----

type mockTokenService struct {
	issueFn  func(ctx context.Context, identity models.Identity) (models.Token, error)
	verifyFn func(ctx context.Context, header string) (models.Claims, error)
}

func (m *mockTokenService) Issue(ctx context.Context, identity models.Identity) (models.Token, error) {
	if m.issueFn != nil {
		return m.issueFn(ctx, identity)
	}
	return models.Token{}, nil
}

func (m *mockTokenService) Verify(ctx context.Context, header string) (models.Claims, error) {
	if m.verifyFn != nil {
		return m.verifyFn(ctx, header)
	}
	if header != "Bearer valid-token" {
		if header == "" {
			return models.Claims{}, service.ErrMissingToken
		}
		return models.Claims{}, service.ErrInvalidOrExpiredToken
	}
	return models.Claims{UserID: 1, Username: "admin"}, nil
}

// ---- Mock: OriginGate ----

type mockOriginGate struct {
	allowed map[string]bool
}

func (m *mockOriginGate) Allow(origin string) bool {
	return origin == "" || m.allowed[origin]
}

// ---- Mock: AnimalService ----

type mockAnimalService struct {
	listAllFn        func(ctx context.Context) ([]models.Animal, error)
	listByCategoryFn func(ctx context.Context, category string) ([]models.Animal, error)
	countFn          func(ctx context.Context) (int64, error)
	createFn         func(ctx context.Context, animal models.Animal) (int64, error)
	updateFn         func(ctx context.Context, id int64, fields models.AnimalFields) error
	deleteFn         func(ctx context.Context, id int64) error
}

func (m *mockAnimalService) ListAll(ctx context.Context) ([]models.Animal, error) {
	if m.listAllFn != nil {
		return m.listAllFn(ctx)
	}
	return nil, nil
}
func (m *mockAnimalService) ListByCategory(ctx context.Context, category string) ([]models.Animal, error) {
	if m.listByCategoryFn != nil {
		return m.listByCategoryFn(ctx, category)
	}
	return nil, nil
}
func (m *mockAnimalService) Count(ctx context.Context) (int64, error) {
	if m.countFn != nil {
		return m.countFn(ctx)
	}
	return 0, nil
}
func (m *mockAnimalService) Create(ctx context.Context, animal models.Animal) (int64, error) {
	if m.createFn != nil {
		return m.createFn(ctx, animal)
	}
	return 1, nil
}
func (m *mockAnimalService) Update(ctx context.Context, id int64, fields models.AnimalFields) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, fields)
	}
	return nil
}
func (m *mockAnimalService) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

// ---- Helpers ----

const allowedTestOrigin = "http://localhost:3000"

type testHandlerOption func(h *Handler)

func withAnimalService(svc service.AnimalService) testHandlerOption {
	return func(h *Handler) { h.services.AnimalService = svc }
}

func withAuthService(svc service.AuthService) testHandlerOption {
	return func(h *Handler) { h.services.AuthService = svc }
}

func withTokenService(svc service.TokenService) testHandlerOption {
	return func(h *Handler) { h.services.TokenService = svc }
}

func withProtectAllWrites() testHandlerOption {
	return func(h *Handler) { h.protectAllWrites = true }
}

func withRequestTimeout(d time.Duration) testHandlerOption {
	return func(h *Handler) { h.requestTimeout = d }
}

// newTestHandler builds a Handler with default mocks and a nop logger.
func newTestHandler(t *testing.T, opts ...testHandlerOption) *Handler {
	t.Helper()

	h := &Handler{
		services: &service.Services{
			AuthService:   &mockAuthService{},
			TokenService:  &mockTokenService{},
			OriginGate:    &mockOriginGate{allowed: map[string]bool{allowedTestOrigin: true}},
			AnimalService: &mockAnimalService{},
		},
		allowedOrigins: []string{allowedTestOrigin},
		logger:         logger.Nop(),
	}
	for _, opt := range opts {
		opt(h)
	}

	return h
}
