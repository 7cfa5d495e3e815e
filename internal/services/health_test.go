package services

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"matchdash/internal/models"
	"matchdash/internal/tests"
)

func TestHealth(t *testing.T) {
	db := tests.NewSQLiteDB(t)

	rec := httptest.NewRecorder()
	HealthService{DB: db}.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	tests.AssertJSONResponse(t, rec, http.StatusOK, models.HealthResponse{Status: "ok", Database: "connected"})

	tests.CloseDB(t, db)

	rec = httptest.NewRecorder()
	HealthService{DB: db}.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	tests.AssertJSONResponse(t, rec, http.StatusServiceUnavailable,
		models.Error{Status: http.StatusServiceUnavailable, Error: "DATABASE_UNAVAILABLE"})
}
