package middlewares

import (
	"context"
	"net/http"
	"strings"

	"agenda-service/internal/pkg/constvars"
	"agenda-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
)

// BusinessResolver turns the slug segment into the tenant for the whole
// request. Everything nested below the slug can assume the business exists
// and is active.
func (m *Middlewares) BusinessResolver(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		slug := strings.ToLower(chi.URLParam(r, constvars.URLParamBusinessSlug))

		business, err := m.BusinessUsecase.ResolveBySlug(r.Context(), slug)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_BUSINESS_KEY, business)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
