package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"matchdash/internal/helpers"
	"matchdash/internal/models"
	"matchdash/internal/tests"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const authTestJWTSecret = "test-secret-key-for-authenticator"

func TestAuthenticate(t *testing.T) {
	admin := models.AdminIdentity{ID: 3, Username: "ops", Name: "Operations"}

	newHandler := func(claims *models.UserClaims) http.Handler {
		return Authenticate(authTestJWTSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if c, err := helpers.GetUserClaims(r.Context()); err == nil {
				*claims = c
			}
			w.WriteHeader(http.StatusOK)
		}))
	}

	t.Run("should let excluded routes through", func(t *testing.T) {
		for _, target := range []struct{ method, path string }{
			{http.MethodPost, "/api/auth/login"},
			{http.MethodPost, "/api/auth/verify"},
			{http.MethodGet, "/api/health"},
		} {
			var claims models.UserClaims
			recorder := httptest.NewRecorder()
			newHandler(&claims).ServeHTTP(recorder, httptest.NewRequest(target.method, target.path, nil))
			assert.Equal(t, http.StatusOK, recorder.Code, target.path)
		}
	})

	t.Run("should return FORBIDDEN without a token", func(t *testing.T) {
		var claims models.UserClaims
		recorder := httptest.NewRecorder()
		newHandler(&claims).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/dashboard/kpis", nil))

		tests.AssertJSONResponse(t, recorder, http.StatusForbidden,
			models.Error{Status: http.StatusForbidden, Error: "FORBIDDEN"})
	})

	t.Run("should return FORBIDDEN with a token signed by another secret", func(t *testing.T) {
		token, err := helpers.NewAccessToken("another-secret-key-value", admin, 60)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/users/1", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		var claims models.UserClaims
		recorder := httptest.NewRecorder()
		newHandler(&claims).ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})

	t.Run("should require the bearer scheme", func(t *testing.T) {
		token, err := helpers.NewAccessToken(authTestJWTSecret, admin, 60)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/countries", nil)
		req.Header.Set("Authorization", token)
		var claims models.UserClaims
		recorder := httptest.NewRecorder()
		newHandler(&claims).ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})

	t.Run("should store the claims of a valid token", func(t *testing.T) {
		token, err := helpers.NewAccessToken(authTestJWTSecret, admin, 60)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/dashboard/kpis", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		var claims models.UserClaims
		recorder := httptest.NewRecorder()
		newHandler(&claims).ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, uint64(3), claims.AdminID)
		assert.Equal(t, "ops", claims.Username)
	})
}
