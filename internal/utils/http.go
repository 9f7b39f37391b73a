package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/animal-catalog/models"
)

// WriteJSON marshals data and writes it with the given status and an
// "application/json" content type. A value that cannot be marshaled produces
// a plain-text 500 and a wrapped error.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteMessage writes a {"message": ...} body.
func WriteMessage(w http.ResponseWriter, message string, statusCode int) error {
	_, err := WriteJSON(w, models.MessageResponse{Message: message}, statusCode)
	return err
}

// WriteError writes an {"error": ...} body, the shape used for
// authorization and origin failures.
func WriteError(w http.ResponseWriter, message string, statusCode int) error {
	_, err := WriteJSON(w, models.ErrorResponse{Error: message}, statusCode)
	return err
}

// maxJSONBodyBytes caps request bodies read by [ReadJSON].
const maxJSONBodyBytes = 1 << 20

// ReadJSON decodes the request body into dst. Bodies larger than 1 MiB and
// trailing data after the first JSON value are rejected.
func ReadJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBodyBytes))
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("error decoding JSON body: %w", err)
	}
	if decoder.More() {
		return errors.New("error decoding JSON body: unexpected data after JSON value")
	}

	return nil
}
