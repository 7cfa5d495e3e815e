package middlewares

import (
	"context"
	"net/http"

	h "matchdash/internal/helpers"
	"matchdash/internal/models"
)

// ClientIP resolves the caller address once and stores it in the context.
func ClientIP(trustedProxies []string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), models.ClientIPKey{}, h.GetClientIP(r, trustedProxies))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
