package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"matchdash/internal/activity"
	apierrors "matchdash/internal/errors"
	"matchdash/internal/models"
	"matchdash/internal/tests"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingActivityLogger struct {
	MockActivityLogger
	criteria map[string][]string
	days     int
}

func (r *recordingActivityLogger) Search(criteria map[string][]string) ([]map[string]any, error) {
	r.criteria = criteria
	return []map[string]any{{"action": activity.AdminLoginFailed, "username": "ops"}}, nil
}

func (r *recordingActivityLogger) CountByDay(criteria map[string][]string, days int) ([]models.TimeSeriesPoint, error) {
	r.criteria = criteria
	r.days = days
	return []models.TimeSeriesPoint{{Date: "2026-10-19", Count: 4}}, nil
}

func TestSearchActivity(t *testing.T) {
	recorder := &recordingActivityLogger{}
	service := ActivityService{ActivityLogger: recorder}

	entries, err := service.SearchActivity(context.Background(), zap.NewNop(), models.UserClaims{}, nil,
		models.ActivitySearchParams{Action: activity.AdminLoginFailed, Username: "ops"})
	require.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, map[string][]string{
		"object_type": {activity.ObjectTypeAdmin},
		"action":      {activity.AdminLoginFailed},
		"username":    {"ops"},
	}, recorder.criteria)
}

func TestCountActivityByDay(t *testing.T) {
	recorder := &recordingActivityLogger{}
	service := ActivityService{ActivityLogger: recorder}

	points, err := service.CountActivityByDay(context.Background(), zap.NewNop(), models.UserClaims{}, nil,
		models.ActivityDailyParams{})
	require.NoError(t, err)
	assert.Equal(t, []models.TimeSeriesPoint{{Date: "2026-10-19", Count: 4}}, points)
	assert.Equal(t, 30, recorder.days)
	assert.Equal(t, map[string][]string{"object_type": {activity.ObjectTypeAdmin}}, recorder.criteria)
}

func TestActivityRoutes(t *testing.T) {
	router := ActivityService{ActivityLogger: &recordingActivityLogger{}}.Routes()

	t.Run("unknown action is rejected", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/?action=FILE_DELETED", nil))

		tests.AssertJSONResponse(t, rec, http.StatusBadRequest,
			models.Error{Status: http.StatusBadRequest, Error: apierrors.ErrInvalidQuery})
	})

	t.Run("daily window must be supported", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/daily?days=12", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("daily counts", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/daily?days=7", nil))

		tests.AssertJSONResponse(t, rec, http.StatusOK,
			[]models.TimeSeriesPoint{{Date: "2026-10-19", Count: 4}})
	})
}

func TestNopActivityLoggerReturnsEmptyList(t *testing.T) {
	router := ActivityService{ActivityLogger: activity.NopLogger{}}.Routes()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	tests.AssertJSONResponse(t, rec, http.StatusOK, []map[string]any{})
}
