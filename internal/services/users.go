package services

import (
	"context"
	"time"

	"matchdash/internal/handlers"
	"matchdash/internal/models"
	"matchdash/internal/sql"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type UserService struct {
	DB  *gorm.DB
	Now func() time.Time
}

func (s UserService) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/{id0}", handlers.GetOneHandler(s.GetUserDetails))
	return r
}

func (s UserService) GetUserDetails(
	ctx context.Context,
	logger *zap.Logger,
	_ models.UserClaims,
	ids []uint64,
) (models.UserDetails, error) {
	user, err := sql.GetUserByID(ctx, s.DB, ids[0])
	if err != nil {
		return models.UserDetails{}, err
	}

	now := time.Now()
	if s.Now != nil {
		now = s.Now()
	}

	subscription, err := sql.GetActiveSubscription(ctx, s.DB, user.ID, now.UTC())
	if err != nil {
		logger.Error("Failed to load user subscription", zap.Uint64("user_id", user.ID), zap.Error(err))
		return models.UserDetails{}, err
	}

	stats, err := sql.GetUserRequestStats(ctx, s.DB, user.ID)
	if err != nil {
		logger.Error("Failed to load user request stats", zap.Uint64("user_id", user.ID), zap.Error(err))
		return models.UserDetails{}, err
	}

	return models.UserDetails{User: user, Subscription: subscription, Stats: stats}, nil
}
