package activity

import (
	"strconv"
	"time"

	"matchdash/internal/models"
)

const (
	AdminLoginSucceeded = "ADMIN_LOGIN_SUCCEEDED"
	AdminLoginFailed    = "ADMIN_LOGIN_FAILED"
	AdminLoginLocked    = "ADMIN_LOGIN_LOCKED"
)

const ObjectTypeAdmin = "admin"

func NewLogFilter(fields map[string]string) models.LogFilter {
	return models.LogFilter{
		Fields:    fields,
		Timestamp: strconv.FormatInt(time.Now().UnixNano(), 10),
	}
}

// NopLogger drops every activity. It is used when no activity backend is configured.
type NopLogger struct{}

func (NopLogger) Search(_ map[string][]string) ([]map[string]any, error) {
	return []map[string]any{}, nil
}

func (NopLogger) Send(_ models.Activity) error { return nil }

func (NopLogger) CountByDay(_ map[string][]string, _ int) ([]models.TimeSeriesPoint, error) {
	return []models.TimeSeriesPoint{}, nil
}

func (NopLogger) Close() error { return nil }
