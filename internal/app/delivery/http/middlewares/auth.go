package middlewares

import (
	"context"
	"net/http"
	"strings"

	"agenda-service/internal/app/models"
	"agenda-service/internal/pkg/constvars"
	"agenda-service/internal/pkg/exceptions"
	"agenda-service/internal/pkg/utils"
)

// Authenticate validates the bearer token, loads the session it points to
// and rejects sessions that belong to another business than the one in the
// URL.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		sessionID, err := utils.ParseJWT(token, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		session, err := m.SessionService.GetSession(r.Context(), sessionID)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(err))
			return
		}

		if business, ok := r.Context().Value(constvars.CONTEXT_BUSINESS_KEY).(*models.Business); ok {
			if session.BusinessID != business.ID {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrRoleNotAllowed(nil))
				return
			}
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_DATA_KEY, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin must run after Authenticate.
func (m *Middlewares) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
		if !ok || !session.IsAdmin() {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrRoleNotAllowed(nil))
			return
		}
		next.ServeHTTP(w, r)
	})
}
