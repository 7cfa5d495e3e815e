package services

import (
	"context"

	"matchdash/internal/activity"
	"matchdash/internal/configuration"
	"matchdash/internal/handlers"
	m "matchdash/internal/middlewares"
	"matchdash/internal/models"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ActivityService exposes the admin login audit trail.
type ActivityService struct {
	ActivityLogger activity.IActivityLogger
}

func (s ActivityService) Routes() chi.Router {
	r := chi.NewRouter()
	r.With(m.ValidateQuery[models.ActivitySearchParams]).
		Get("/", handlers.GetListWithQueryHandler(s.SearchActivity))
	r.With(m.ValidateQuery[models.ActivityDailyParams]).
		Get("/daily", handlers.GetListWithQueryHandler(s.CountActivityByDay))
	return r
}

func loginCriteria(action string, username string) map[string][]string {
	criteria := map[string][]string{
		"object_type": {activity.ObjectTypeAdmin},
	}
	if action != "" {
		criteria["action"] = []string{action}
	}
	if username != "" {
		criteria["username"] = []string{username}
	}
	return criteria
}

func (s ActivityService) SearchActivity(
	_ context.Context,
	logger *zap.Logger,
	_ models.UserClaims,
	_ []uint64,
	queryParams models.ActivitySearchParams,
) ([]map[string]any, error) {
	entries, err := s.ActivityLogger.Search(loginCriteria(queryParams.Action, queryParams.Username))
	if err != nil {
		logger.Error("Failed to search activity", zap.Error(err))
		return nil, err
	}
	return entries, nil
}

func (s ActivityService) CountActivityByDay(
	_ context.Context,
	logger *zap.Logger,
	_ models.UserClaims,
	_ []uint64,
	queryParams models.ActivityDailyParams,
) ([]models.TimeSeriesPoint, error) {
	days := queryParams.Days
	if days == 0 {
		days = configuration.DefaultActivityDays
	}

	points, err := s.ActivityLogger.CountByDay(loginCriteria(queryParams.Action, ""), days)
	if err != nil {
		logger.Error("Failed to count activity", zap.Error(err))
		return nil, err
	}
	return points, nil
}
