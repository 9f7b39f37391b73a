package service

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/animal-catalog/internal/validators"
	"github.com/MKhiriev/animal-catalog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mocks
// ─────────────────────────────────────────────

type mockInnerService struct {
	listAllFn        func(ctx context.Context) ([]models.Animal, error)
	listByCategoryFn func(ctx context.Context, category string) ([]models.Animal, error)
	countFn          func(ctx context.Context) (int64, error)
	createFn         func(ctx context.Context, animal models.Animal) (int64, error)
	updateFn         func(ctx context.Context, id int64, fields models.AnimalFields) error
	deleteFn         func(ctx context.Context, id int64) error
}

func (m *mockInnerService) ListAll(ctx context.Context) ([]models.Animal, error) {
	if m.listAllFn != nil {
		return m.listAllFn(ctx)
	}
	return nil, nil
}
func (m *mockInnerService) ListByCategory(ctx context.Context, category string) ([]models.Animal, error) {
	if m.listByCategoryFn != nil {
		return m.listByCategoryFn(ctx, category)
	}
	return nil, nil
}
func (m *mockInnerService) Count(ctx context.Context) (int64, error) {
	if m.countFn != nil {
		return m.countFn(ctx)
	}
	return 0, nil
}
func (m *mockInnerService) Create(ctx context.Context, animal models.Animal) (int64, error) {
	if m.createFn != nil {
		return m.createFn(ctx, animal)
	}
	return 0, nil
}
func (m *mockInnerService) Update(ctx context.Context, id int64, fields models.AnimalFields) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, fields)
	}
	return nil
}
func (m *mockInnerService) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func newValidationService(inner AnimalService) AnimalService {
	return NewAnimalValidationService().Wrap(inner)
}

// ─────────────────────────────────────────────
// Tests
// ─────────────────────────────────────────────

func TestAnimalValidationService_Wrap(t *testing.T) {
	inner := &mockInnerService{}
	wrapped := newValidationService(inner)

	v, ok := wrapped.(*AnimalValidationService)
	require.True(t, ok)
	assert.Same(t, inner, v.inner)
}

func TestAnimalValidationService_Create(t *testing.T) {
	long := strings.Repeat("x", 256)

	tests := []struct {
		name        string
		animal      models.Animal
		wantErr     error
		innerCalled bool
	}{
		{name: "valid", animal: models.Animal{Name: "Lion"}, innerCalled: true},
		{name: "empty name", animal: models.Animal{}, wantErr: validators.ErrEmptyAnimalName},
		{name: "name too long", animal: models.Animal{Name: long}, wantErr: validators.ErrFieldTooLong},
		{name: "category too long", animal: models.Animal{Name: "Lion", Category: &long}, wantErr: validators.ErrFieldTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			inner := &mockInnerService{
				createFn: func(_ context.Context, _ models.Animal) (int64, error) {
					called = true
					return 1, nil
				},
			}

			_, err := newValidationService(inner).Create(context.Background(), tt.animal)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, ErrInvalidDataProvided)
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.innerCalled, called)
		})
	}
}

func TestAnimalValidationService_Update(t *testing.T) {
	tests := []struct {
		name        string
		id          int64
		fields      models.AnimalFields
		wantErr     error
		innerCalled bool
	}{
		{name: "valid partial", id: 1, fields: models.AnimalFields{Habitat: strPtr("Savannah")}, innerCalled: true},
		{name: "empty body", id: 1, fields: models.AnimalFields{}, wantErr: ErrInvalidDataProvided},
		{name: "empty name", id: 1, fields: models.AnimalFields{Name: strPtr(" ")}, wantErr: ErrInvalidDataProvided},
		{name: "zero id", id: 0, fields: models.AnimalFields{Name: strPtr("Lion")}, wantErr: ErrAnimalNotFound},
		{name: "negative id", id: -4, fields: models.AnimalFields{Name: strPtr("Lion")}, wantErr: ErrAnimalNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			inner := &mockInnerService{
				updateFn: func(_ context.Context, id int64, _ models.AnimalFields) error {
					called = true
					assert.Equal(t, tt.id, id)
					return nil
				},
			}

			err := newValidationService(inner).Update(context.Background(), tt.id, tt.fields)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.innerCalled, called)
		})
	}
}

func TestAnimalValidationService_Delete(t *testing.T) {
	called := false
	inner := &mockInnerService{
		deleteFn: func(_ context.Context, _ int64) error {
			called = true
			return ErrAnimalNotFound
		},
	}
	svc := newValidationService(inner)

	require.ErrorIs(t, svc.Delete(context.Background(), 0), ErrAnimalNotFound)
	assert.False(t, called)

	require.ErrorIs(t, svc.Delete(context.Background(), 9), ErrAnimalNotFound)
	assert.True(t, called)
}

func TestAnimalValidationService_ReadsPassThrough(t *testing.T) {
	inner := &mockInnerService{
		listAllFn: func(context.Context) ([]models.Animal, error) {
			return []models.Animal{{ID: 1, Name: "Lion"}}, nil
		},
		listByCategoryFn: func(_ context.Context, category string) ([]models.Animal, error) {
			return []models.Animal{{ID: 2, Name: "Eagle", Category: &category}}, nil
		},
		countFn: func(context.Context) (int64, error) { return 2, nil },
	}
	svc := newValidationService(inner)
	ctx := context.Background()

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	birds, err := svc.ListByCategory(ctx, "Bird")
	require.NoError(t, err)
	require.Len(t, birds, 1)
	assert.Equal(t, "Bird", *birds[0].Category)

	count, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
