package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/animal-catalog/internal/service"
	"github.com/MKhiriev/animal-catalog/internal/store"
	"github.com/MKhiriev/animal-catalog/internal/validators"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:                 http.StatusBadRequest,
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	validators.ErrEmptyAnimalName:  http.StatusBadRequest,
	validators.ErrNoFieldsToUpdate: http.StatusBadRequest,
	validators.ErrFieldTooLong:     http.StatusBadRequest,

	service.ErrInvalidCredentials:    http.StatusUnauthorized,
	service.ErrMissingToken:          http.StatusUnauthorized,
	service.ErrMalformedHeader:       http.StatusUnauthorized,
	service.ErrInvalidOrExpiredToken: http.StatusUnauthorized,

	service.ErrOriginNotAllowed: http.StatusForbidden,
	service.ErrAnimalNotFound:   http.StatusNotFound,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrReadingResult:      http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
