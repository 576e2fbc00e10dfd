// Package http implements the HTTP transport layer of the showcase server.
// It provides middleware, route handlers, and request/response plumbing for
// the REST API. Authentication, logging, and tracing are handled here before
// requests reach the service layer.
package http

import (
	"net/http"

	"github.com/gongmyung/app-showcase/internal/logger"
	"github.com/gongmyung/app-showcase/internal/utils"
)

// auth guards mutating routes: it extracts the bearer token from the
// "Authorization" header and verifies it against the admin session key.
// Every rejection answers 401.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		if err = h.services.AuthService.VerifyToken(r.Context(), tokenString); err != nil {
			log.Err(err).Msg("token rejected")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
