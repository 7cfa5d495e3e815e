package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apierrors "matchdash/internal/errors"
	"matchdash/internal/models"
	"matchdash/internal/tests"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type item struct {
	ID uint64 `json:"id"`
}

func TestGetOneHandler(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/{id0}", GetOneHandler(func(_ context.Context, _ *zap.Logger, _ models.UserClaims, ids []uint64) (item, error) {
		if ids[0] == 404 {
			return item{}, apierrors.NewAPIError(http.StatusNotFound, apierrors.ErrUserNotFound)
		}
		if ids[0] == 500 {
			return item{}, &apierrors.AggregationError{Counter: "totalUsers", Err: errors.New("pq: password authentication failed")}
		}
		return item{ID: ids[0]}, nil
	}))

	cases := []struct {
		name   string
		path   string
		status int
		body   any
	}{
		{"success", "/7", http.StatusOK, item{ID: 7}},
		{"api error keeps its code", "/404", http.StatusNotFound,
			models.Error{Status: http.StatusNotFound, Error: apierrors.ErrUserNotFound}},
		{"aggregation error is opaque", "/500", http.StatusInternalServerError,
			models.Error{Status: http.StatusInternalServerError, Error: apierrors.ErrInternalServer}},
		{"invalid id", "/seven", http.StatusBadRequest,
			models.Error{Status: http.StatusBadRequest, Error: apierrors.ErrInvalidID}},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			r.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, tt.path, nil))
			tests.AssertJSONResponse(t, recorder, tt.status, tt.body)
		})
	}
}

func TestGetListHandler(t *testing.T) {
	t.Run("nil list is rendered as an empty array", func(t *testing.T) {
		handler := GetListHandler(func(_ context.Context, _ *zap.Logger, _ models.UserClaims, _ []uint64) ([]item, error) {
			return nil, nil
		})

		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))
		tests.AssertJSONResponse(t, recorder, http.StatusOK, []item{})
	})

	t.Run("unexpected errors are opaque", func(t *testing.T) {
		handler := GetListHandler(func(_ context.Context, _ *zap.Logger, _ models.UserClaims, _ []uint64) ([]item, error) {
			return nil, errors.New("dial tcp 10.0.0.5:5432: connect: connection refused")
		})

		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))
		tests.AssertJSONResponse(t, recorder, http.StatusInternalServerError,
			models.Error{Status: http.StatusInternalServerError, Error: apierrors.ErrInternalServer})
	})
}

func TestQueryAndBodyHandlersRequireValidation(t *testing.T) {
	query := GetListWithQueryHandler(func(_ context.Context, _ *zap.Logger, _ models.UserClaims, _ []uint64, _ models.UserQueryParams) ([]item, error) {
		return nil, nil
	})
	recorder := httptest.NewRecorder()
	query.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	create := CreateHandler(func(_ context.Context, _ *zap.Logger, _ models.UserClaims, _ []uint64, _ models.AuthLoginBody) (item, error) {
		return item{}, nil
	})
	recorder = httptest.NewRecorder()
	create.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/", nil))
	tests.AssertJSONResponse(t, recorder, http.StatusBadRequest,
		models.Error{Status: http.StatusBadRequest, Error: apierrors.ErrInvalidBody})
}
