package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/animal-catalog/internal/logger"
	"github.com/MKhiriev/animal-catalog/internal/service"
	"github.com/MKhiriev/animal-catalog/internal/utils"
)

// auth is an HTTP middleware that enforces bearer token authentication.
//
// It passes the raw "Authorization" header to [service.TokenService.Verify]
// and, on success, stores the verified claims in the request context under
// [utils.ClaimsCtxKey] before delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized and a JSON
// {"error": ...} body in the following cases:
//   - The header is absent ([service.ErrMissingToken]).
//   - The header is not "Bearer <token>" ([service.ErrMalformedHeader]).
//   - The token signature, algorithm, issuer or expiry check failed
//     ([service.ErrInvalidOrExpiredToken]).
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		ctx := r.Context()

		claims, err := h.services.TokenService.Verify(ctx, r.Header.Get("Authorization"))
		if err != nil {
			log.Err(err).Str("func", "*Handler.auth").Msg("request is not authorized")
			utils.WriteError(w, authErrorMessage(err), http.StatusUnauthorized)
			return
		}

		log.Debug().Int64("user_id", claims.UserID).Msg("request authorized")
		next.ServeHTTP(w, r.WithContext(utils.WithClaims(ctx, claims)))
	})
}

func authErrorMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrMissingToken):
		return msgMissingAuthHeader
	case errors.Is(err, service.ErrMalformedHeader):
		return msgInvalidAuthFormat
	default:
		return msgInvalidToken
	}
}
