package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/animal-catalog/internal/logger"
	"github.com/MKhiriev/animal-catalog/internal/service"
	"github.com/MKhiriev/animal-catalog/internal/utils"
	"github.com/MKhiriev/animal-catalog/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := utils.ReadJSON(w, r, &credentials); err != nil {
		log.Err(err).Str("func", "*Handler.login").Msg("Invalid JSON was passed")
		utils.WriteError(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	token, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			log.Err(err).Str("username", credentials.Username).Msg("login rejected")
			utils.WriteError(w, msgInvalidCredentials, http.StatusUnauthorized)
			return
		default:
			log.Err(err).Str("func", "*Handler.login").Msg("unexpected error occurred during login")
			utils.WriteError(w, msgLoginFailed, http.StatusInternalServerError)
			return
		}
	}

	writeJSON(w, r, models.TokenResponse{Token: token.SignedString}, http.StatusOK)
}
