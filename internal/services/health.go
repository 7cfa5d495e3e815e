package services

import (
	"context"

	apierrors "matchdash/internal/errors"
	"matchdash/internal/handlers"
	"matchdash/internal/models"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type HealthService struct {
	DB *gorm.DB
}

func (s HealthService) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", handlers.GetOneHandler(s.GetHealth))
	return r
}

func (s HealthService) GetHealth(
	ctx context.Context,
	logger *zap.Logger,
	_ models.UserClaims,
	_ []uint64,
) (models.HealthResponse, error) {
	sqlDB, err := s.DB.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		logger.Error("Database health check failed", zap.Error(err))
		return models.HealthResponse{}, apierrors.NewAPIError(503, "DATABASE_UNAVAILABLE")
	}

	return models.HealthResponse{Status: "ok", Database: "connected"}, nil
}
