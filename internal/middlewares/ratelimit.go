package middlewares

import (
	"net/http"
	"strconv"

	"matchdash/internal/cache"
	apierrors "matchdash/internal/errors"
	h "matchdash/internal/helpers"

	"go.uber.org/zap"
)

// RateLimit limits requests per client IP and minute. Without a cache the
// limiter is disabled.
func RateLimit(c cache.ICache, trustedProxies []string, requestsPerMinute int) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if c == nil {
				next.ServeHTTP(w, r)
				return
			}

			clientIP := h.GetClientIP(r, trustedProxies)
			retryAfter, err := c.GetRateLimit(clientIP, requestsPerMinute)
			if err != nil {
				h.GetLogger(r.Context()).Error("Failed to check rate limit", zap.Error(err))
				next.ServeHTTP(w, r)
				return
			}

			if retryAfter > 0 {
				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
				h.RespondWithError(w, http.StatusTooManyRequests, apierrors.ErrTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
