package middlewares

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"matchdash/internal/models"
	"matchdash/internal/tests"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	var received models.AuthLoginBody
	handler := Validate[models.AuthLoginBody](http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received, _ = r.Context().Value(models.BodyKey{}).(models.AuthLoginBody)
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("should store a valid body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"username":"ops","password":"s3cret"}`))
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, models.AuthLoginBody{Username: "ops", Password: "s3cret"}, received)
	})

	for name, body := range map[string]string{
		"malformed json":    `{"username":`,
		"missing password":  `{"username":"ops"}`,
		"password too long": `{"username":"ops","password":"` + strings.Repeat("a", 73) + `"}`,
	} {
		t.Run("should reject "+name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, req)

			tests.AssertJSONResponse(t, recorder, http.StatusBadRequest,
				models.Error{Status: http.StatusBadRequest, Error: "INVALID_BODY"})
		})
	}
}

func TestValidateQuery(t *testing.T) {
	var received models.TopFavoritedQueryParams
	handler := ValidateQuery[models.TopFavoritedQueryParams](http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received, _ = r.Context().Value(models.QueryKey{}).(models.TopFavoritedQueryParams)
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("should decode numbers from the query string", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/?gender=Female&limit=5", nil))

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, models.TopFavoritedQueryParams{Gender: "Female", Limit: 5}, received)
	})

	for name, query := range map[string]string{
		"unknown gender":     "/?gender=robot",
		"limit not a number": "/?gender=male&limit=ten",
		"limit too large":    "/?gender=male&limit=101",
	} {
		t.Run("should reject "+name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, query, nil))

			tests.AssertJSONResponse(t, recorder, http.StatusBadRequest,
				models.Error{Status: http.StatusBadRequest, Error: "INVALID_QUERY"})
		})
	}
}
