// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/MKhiriev/animal-catalog/internal/logger"
	"github.com/MKhiriev/animal-catalog/internal/service"
	"github.com/MKhiriev/animal-catalog/internal/utils"
	"github.com/MKhiriev/animal-catalog/internal/validators"
	"github.com/MKhiriev/animal-catalog/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) root(w http.ResponseWriter, _ *http.Request) {
	utils.WriteMessage(w, msgAPIRunning, http.StatusOK)
}

func (h *Handler) listAllAnimals(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	animals, err := h.services.AnimalService.ListAll(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listAllAnimals").Msg("error listing animals")
		utils.WriteMessage(w, msgListAllFailed, statusFromError(err))
		return
	}

	writeAnimals(w, r, animals)
}

func (h *Handler) listAnimalsByCategory(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	category := chi.URLParam(r, "category")
	// chi routes on RawPath when the path carries escaped characters
	if r.URL.RawPath != "" {
		if unescaped, err := url.PathUnescape(category); err == nil {
			category = unescaped
		}
	}

	animals, err := h.services.AnimalService.ListByCategory(r.Context(), category)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listAnimalsByCategory").Str("category", category).Msg("error listing animals by category")
		utils.WriteMessage(w, msgCategoryFailed, statusFromError(err))
		return
	}

	writeAnimals(w, r, animals)
}

func (h *Handler) countAnimals(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	count, err := h.services.AnimalService.Count(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.countAnimals").Msg("error counting animals")
		utils.WriteMessage(w, msgCountFailed, statusFromError(err))
		return
	}

	writeJSON(w, r, models.CountResponse{Count: count}, http.StatusOK)
}

func (h *Handler) addAnimal(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var fields models.AnimalFields
	if err := utils.ReadJSON(w, r, &fields); err != nil {
		log.Err(err).Str("func", "*Handler.addAnimal").Msg("Invalid JSON was passed")
		utils.WriteMessage(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}
	animal := fields.ToAnimal()

	id, err := h.services.AnimalService.Create(r.Context(), animal)
	if err != nil {
		log.Err(err).Str("func", "*Handler.addAnimal").Str("animal_name", animal.Name).Msg("error adding animal")

		message := fmt.Sprintf(msgAddFailed, animal.Name)
		if errors.Is(err, service.ErrInvalidDataProvided) {
			message = validationMessage(err)
		}
		utils.WriteMessage(w, message, statusFromError(err))
		return
	}

	if claims, ok := utils.GetClaimsFromContext(r.Context()); ok {
		log.Info().Int64("animal_id", id).Str("added_by", claims.Username).Send()
	}

	writeJSON(w, r, models.CreatedResponse{
		Message: fmt.Sprintf(msgAnimalAdded, animal.Name),
		ID:      id,
	}, http.StatusCreated)
}

func (h *Handler) updateAnimal(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	rawID := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateAnimal").Str("id", rawID).Msg("animal id is not an integer")
		utils.WriteMessage(w, fmt.Sprintf(msgAnimalNotFound, rawID), http.StatusNotFound)
		return
	}

	var fields models.AnimalFields
	if err = utils.ReadJSON(w, r, &fields); err != nil {
		log.Err(err).Str("func", "*Handler.updateAnimal").Msg("Invalid JSON was passed")
		utils.WriteMessage(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	err = h.services.AnimalService.Update(r.Context(), id, fields)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateAnimal").Int64("id", id).Msg("error updating animal")

		var message string
		switch {
		case errors.Is(err, service.ErrAnimalNotFound):
			message = fmt.Sprintf(msgAnimalNotFound, rawID)
		case errors.Is(err, service.ErrInvalidDataProvided):
			message = validationMessage(err)
		default:
			message = msgUpdateFailed
		}
		utils.WriteMessage(w, message, statusFromError(err))
		return
	}

	utils.WriteMessage(w, fmt.Sprintf(msgAnimalUpdated, rawID), http.StatusOK)
}

func (h *Handler) deleteAnimal(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	rawID := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		log.Err(err).Str("func", "*Handler.deleteAnimal").Str("id", rawID).Msg("animal id is not an integer")
		utils.WriteMessage(w, fmt.Sprintf(msgAnimalNotFound, rawID), http.StatusNotFound)
		return
	}

	err = h.services.AnimalService.Delete(r.Context(), id)
	if err != nil {
		log.Err(err).Str("func", "*Handler.deleteAnimal").Int64("id", id).Msg("error deleting animal")

		message := msgDeleteFailed
		if errors.Is(err, service.ErrAnimalNotFound) {
			message = fmt.Sprintf(msgAnimalNotFound, rawID)
		}
		utils.WriteMessage(w, message, statusFromError(err))
		return
	}

	utils.WriteMessage(w, fmt.Sprintf(msgAnimalDeleted, rawID), http.StatusOK)
}

// writeAnimals always writes a JSON array, "[]" for no rows.
func writeAnimals(w http.ResponseWriter, r *http.Request, animals []models.Animal) {
	if animals == nil {
		animals = []models.Animal{}
	}
	writeJSON(w, r, animals, http.StatusOK)
}

// writeJSON writes v with utils.WriteJSON and logs a failed write. On a
// marshal failure the client has already received a plain-text 500.
func writeJSON(w http.ResponseWriter, r *http.Request, v any, statusCode int) {
	if _, err := utils.WriteJSON(w, v, statusCode); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "writeJSON").Int("status", statusCode).Msg("error writing response")
	}
}

func validationMessage(err error) string {
	switch {
	case errors.Is(err, validators.ErrEmptyAnimalName):
		return msgNameRequired
	case errors.Is(err, validators.ErrNoFieldsToUpdate):
		return msgNoFieldsToUpdate
	default:
		return msgInvalidAnimal
	}
}
