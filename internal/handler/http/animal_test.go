package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/animal-catalog/internal/logger"
	"github.com/MKhiriev/animal-catalog/internal/service"
	"github.com/MKhiriev/animal-catalog/internal/store"
	"github.com/MKhiriev/animal-catalog/internal/validators"
	"github.com/MKhiriev/animal-catalog/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

// ---- Reads ----

func TestListAllAnimals(t *testing.T) {
	agg := models.AggressionLevel("5")
	svc := &mockAnimalService{
		listAllFn: func(context.Context) ([]models.Animal, error) {
			return []models.Animal{
				{ID: 1, Name: "Lion", Category: strPtr("Mammal"), AggressionLevel: &agg},
				{ID: 2, Name: "Eagle"},
			}, nil
		},
	}
	router := newTestHandler(t, withAnimalService(svc)).Init()

	rr := serve(t, router, httptest.NewRequest(http.MethodGet, "/allanimals", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[
		{"id":1,"animal_name":"Lion","animal_char":null,"animal_desc":null,"animal_habitat":null,"animal_diet":null,"animal_agg":5,"animal_cat":"Mammal","animal_pic":null},
		{"id":2,"animal_name":"Eagle","animal_char":null,"animal_desc":null,"animal_habitat":null,"animal_diet":null,"animal_agg":null,"animal_cat":null,"animal_pic":null}
	]`, rr.Body.String())
}

func TestListAllAnimals_NonJSONNumberLevelsStayStrings(t *testing.T) {
	labels := []string{"+3", ".5", "NaN", "Inf", "007", "0x10", "1."}
	svc := &mockAnimalService{
		listAllFn: func(context.Context) ([]models.Animal, error) {
			animals := make([]models.Animal, 0, len(labels))
			for i, label := range labels {
				level := models.AggressionLevel(label)
				animals = append(animals, models.Animal{ID: int64(i + 1), Name: "Lion", AggressionLevel: &level})
			}
			return animals, nil
		},
	}
	router := newTestHandler(t, withAnimalService(svc)).Init()

	rr := serve(t, router, httptest.NewRequest(http.MethodGet, "/allanimals", nil))

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var got []map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	require.Len(t, got, len(labels))
	for i, label := range labels {
		assert.Equal(t, label, got[i]["animal_agg"])
	}
}

func TestWriteJSON_LogsWriteFailure(t *testing.T) {
	var buf bytes.Buffer
	l := &logger.Logger{Logger: zerolog.New(&buf)}
	req := httptest.NewRequest(http.MethodGet, "/allanimals", nil)
	req = req.WithContext(l.WithContext(req.Context()))
	rr := httptest.NewRecorder()

	writeJSON(rr, req, map[string]any{"bad": make(chan int)}, http.StatusOK)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), "log: %s", buf.String())
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "error writing response", entry["message"])
	assert.Contains(t, entry["error"], "error writing data to JSON")
}

func TestListAllAnimals_EmptyIsArray(t *testing.T) {
	router := newTestHandler(t).Init()

	rr := serve(t, router, httptest.NewRequest(http.MethodGet, "/allanimals", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestListAllAnimals_StoreError(t *testing.T) {
	svc := &mockAnimalService{
		listAllFn: func(context.Context) ([]models.Animal, error) {
			return nil, fmt.Errorf("list: %w", store.ErrExecutingQuery)
		},
	}
	router := newTestHandler(t, withAnimalService(svc)).Init()

	rr := serve(t, router, httptest.NewRequest(http.MethodGet, "/allanimals", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"message":"Server error for allanimals!"}`, rr.Body.String())
}

func TestListAnimalsByCategory(t *testing.T) {
	tests := []struct {
		name         string
		path         string
		wantCategory string
	}{
		{name: "plain", path: "/animals/category/Mammal", wantCategory: "Mammal"},
		{name: "escaped space", path: "/animals/category/Big%20Cats", wantCategory: "Big Cats"},
		{name: "escaped slash", path: "/animals/category/Sea%2FFresh", wantCategory: "Sea/Fresh"},
		{name: "quote is data", path: "/animals/category/x'%20OR%20'1'='1", wantCategory: "x' OR '1'='1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotCategory string
			svc := &mockAnimalService{
				listByCategoryFn: func(_ context.Context, category string) ([]models.Animal, error) {
					gotCategory = category
					return []models.Animal{}, nil
				},
			}
			router := newTestHandler(t, withAnimalService(svc)).Init()

			rr := serve(t, router, httptest.NewRequest(http.MethodGet, tt.path, nil))

			require.Equal(t, http.StatusOK, rr.Code)
			assert.JSONEq(t, `[]`, rr.Body.String())
			assert.Equal(t, tt.wantCategory, gotCategory)
		})
	}
}

func TestListAnimalsByCategory_StoreErrorIsNotEchoed(t *testing.T) {
	svc := &mockAnimalService{
		listByCategoryFn: func(context.Context, string) ([]models.Animal, error) {
			return nil, errors.New("dial tcp 10.0.0.5:3306: connection refused")
		},
	}
	router := newTestHandler(t, withAnimalService(svc)).Init()

	rr := serve(t, router, httptest.NewRequest(http.MethodGet, "/animals/category/Mammal", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotContains(t, rr.Body.String(), "10.0.0.5")
	assert.JSONEq(t, `{"message":"Failed to fetch animals by category"}`, rr.Body.String())
}

func TestCountAnimals(t *testing.T) {
	svc := &mockAnimalService{countFn: func(context.Context) (int64, error) { return 12, nil }}
	router := newTestHandler(t, withAnimalService(svc)).Init()

	rr := serve(t, router, httptest.NewRequest(http.MethodGet, "/api/animals/count", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"count":12}`, rr.Body.String())
}

func TestCountAnimals_StoreError(t *testing.T) {
	svc := &mockAnimalService{countFn: func(context.Context) (int64, error) { return 0, store.ErrScanningRow }}
	router := newTestHandler(t, withAnimalService(svc)).Init()

	rr := serve(t, router, httptest.NewRequest(http.MethodGet, "/api/animals/count", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"message":"Failed to fetch animal count"}`, rr.Body.String())
}

// ---- Create ----

func TestAddAnimal(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		createErr  error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "created",
			body:       `{"animal_name":"Lion","animal_cat":"Mammal","animal_agg":4}`,
			wantStatus: http.StatusCreated,
			wantBody:   `{"message":"Animal Lion added successfully.","id":7}`,
		},
		{
			name:       "empty name",
			body:       `{"animal_name":""}`,
			createErr:  fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrEmptyAnimalName),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"message":"animal_name is required."}`,
		},
		{
			name:       "too long",
			body:       `{"animal_name":"Lion"}`,
			createErr:  fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrFieldTooLong),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"message":"Invalid animal data provided."}`,
		},
		{
			name:       "store failure",
			body:       `{"animal_name":"Lion"}`,
			createErr:  fmt.Errorf("create: %w", store.ErrExecutingStatement),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"message":"Server error - could not add animal Lion"}`,
		},
		{
			name:       "malformed JSON",
			body:       `{"animal_name":"Lion"`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"message":"Invalid JSON was passed"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got models.Animal
			svc := &mockAnimalService{
				createFn: func(_ context.Context, animal models.Animal) (int64, error) {
					got = animal
					return 7, tt.createErr
				},
			}
			router := newTestHandler(t, withAnimalService(svc)).Init()

			req := httptest.NewRequest(http.MethodPost, "/addanimal", strings.NewReader(tt.body))
			req.Header.Set("Authorization", "Bearer valid-token")
			rr := serve(t, router, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.JSONEq(t, tt.wantBody, rr.Body.String())

			if tt.wantStatus == http.StatusCreated {
				assert.Equal(t, "Lion", got.Name)
				require.NotNil(t, got.Category)
				assert.Equal(t, "Mammal", *got.Category)
				require.NotNil(t, got.AggressionLevel)
				assert.Equal(t, "4", got.AggressionLevel.String())
				assert.Nil(t, got.Habitat)
			}
		})
	}
}

func TestAddAnimal_IgnoresClientID(t *testing.T) {
	var got models.Animal
	svc := &mockAnimalService{
		createFn: func(_ context.Context, animal models.Animal) (int64, error) {
			got = animal
			return 1, nil
		},
	}
	router := newTestHandler(t, withAnimalService(svc)).Init()

	req := httptest.NewRequest(http.MethodPost, "/addanimal", strings.NewReader(`{"id":99,"animal_name":"Lion"}`))
	req.Header.Set("Authorization", "Bearer valid-token")
	rr := serve(t, router, req)

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Zero(t, got.ID)
}

func TestAddAnimal_UnauthorizedNeverReachesService(t *testing.T) {
	called := false
	svc := &mockAnimalService{
		createFn: func(context.Context, models.Animal) (int64, error) {
			called = true
			return 1, nil
		},
	}
	router := newTestHandler(t, withAnimalService(svc)).Init()

	req := httptest.NewRequest(http.MethodPost, "/addanimal", strings.NewReader(`{"animal_name":"Lion"}`))
	req.Header.Set("Authorization", "Bearer expired")
	rr := serve(t, router, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.JSONEq(t, `{"error":"Invalid/Expired token"}`, rr.Body.String())
	assert.False(t, called)
}

// ---- Update ----

func TestUpdateAnimal(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		body       string
		updateErr  error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "updated",
			path:       "/updateanimal/3",
			body:       `{"animal_diet":"Carnivore"}`,
			wantStatus: http.StatusOK,
			wantBody:   `{"message":"Animal with id 3 updated successfully."}`,
		},
		{
			name:       "not found",
			path:       "/updateanimal/999",
			body:       `{"animal_name":"Tiger"}`,
			updateErr:  service.ErrAnimalNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   `{"message":"No animal found with id 999"}`,
		},
		{
			name:       "non integer id",
			path:       "/updateanimal/abc",
			body:       `{"animal_name":"Tiger"}`,
			wantStatus: http.StatusNotFound,
			wantBody:   `{"message":"No animal found with id abc"}`,
		},
		{
			name:       "empty body",
			path:       "/updateanimal/3",
			body:       `{}`,
			updateErr:  fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrNoFieldsToUpdate),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"message":"At least one field is required to update an animal."}`,
		},
		{
			name:       "empty name",
			path:       "/updateanimal/3",
			body:       `{"animal_name":""}`,
			updateErr:  fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrEmptyAnimalName),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"message":"animal_name is required."}`,
		},
		{
			name:       "malformed JSON",
			path:       "/updateanimal/3",
			body:       `[`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"message":"Invalid JSON was passed"}`,
		},
		{
			name:       "store failure",
			path:       "/updateanimal/3",
			body:       `{"animal_name":"Tiger"}`,
			updateErr:  store.ErrExecutingStatement,
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"message":"Update failed"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockAnimalService{
				updateFn: func(context.Context, int64, models.AnimalFields) error { return tt.updateErr },
			}
			router := newTestHandler(t, withAnimalService(svc)).Init()

			rr := serve(t, router, httptest.NewRequest(http.MethodPut, tt.path, strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.JSONEq(t, tt.wantBody, rr.Body.String())
		})
	}
}

func TestUpdateAnimal_PassesOnlyPresentFields(t *testing.T) {
	var gotID int64
	var gotFields models.AnimalFields
	svc := &mockAnimalService{
		updateFn: func(_ context.Context, id int64, fields models.AnimalFields) error {
			gotID, gotFields = id, fields
			return nil
		},
	}
	router := newTestHandler(t, withAnimalService(svc)).Init()

	rr := serve(t, router, httptest.NewRequest(http.MethodPut, "/updateanimal/8", strings.NewReader(`{"animal_habitat":"Savannah"}`)))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, int64(8), gotID)
	assert.Equal(t, models.AnimalFields{Habitat: strPtr("Savannah")}, gotFields)
}

// ---- Delete ----

func TestDeleteAnimal(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		deleteErr  error
		wantStatus int
		wantBody   string
	}{
		{name: "deleted", path: "/deleteanimal/5", wantStatus: http.StatusOK, wantBody: `{"message":"Animal with id 5 deleted successfully."}`},
		{name: "not found", path: "/deleteanimal/5", deleteErr: service.ErrAnimalNotFound, wantStatus: http.StatusNotFound, wantBody: `{"message":"No animal found with id 5"}`},
		{name: "non integer id", path: "/deleteanimal/1.5", wantStatus: http.StatusNotFound, wantBody: `{"message":"No animal found with id 1.5"}`},
		{name: "store failure", path: "/deleteanimal/5", deleteErr: errors.New("deadlock"), wantStatus: http.StatusInternalServerError, wantBody: `{"message":"Delete failed"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockAnimalService{
				deleteFn: func(context.Context, int64) error { return tt.deleteErr },
			}
			router := newTestHandler(t, withAnimalService(svc)).Init()

			rr := serve(t, router, httptest.NewRequest(http.MethodDelete, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.JSONEq(t, tt.wantBody, rr.Body.String())
		})
	}
}
