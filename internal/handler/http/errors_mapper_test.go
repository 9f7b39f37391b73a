package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/animal-catalog/internal/service"
	"github.com/MKhiriev/animal-catalog/internal/store"
	"github.com/MKhiriev/animal-catalog/internal/validators"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "validation", err: fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrEmptyAnimalName), want: http.StatusBadRequest},
		{name: "bad json", err: ErrInvalidJSON, want: http.StatusBadRequest},
		{name: "credentials", err: service.ErrInvalidCredentials, want: http.StatusUnauthorized},
		{name: "token", err: fmt.Errorf("verify: %w", service.ErrInvalidOrExpiredToken), want: http.StatusUnauthorized},
		{name: "origin", err: service.ErrOriginNotAllowed, want: http.StatusForbidden},
		{name: "not found", err: service.ErrAnimalNotFound, want: http.StatusNotFound},
		{name: "store", err: fmt.Errorf("list: %w", store.ErrScanningRows), want: http.StatusInternalServerError},
		{name: "unknown", err: errors.New("surprise"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}
