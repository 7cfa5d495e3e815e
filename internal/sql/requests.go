package sql

import (
	"context"

	"matchdash/internal/models"

	"gorm.io/gorm"
)

// CountMatches counts accepted requests. It is platform wide: requests have
// no country of their own.
func CountMatches(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64

	err := db.WithContext(ctx).
		Model(&models.Request{}).
		Where("accepted_at IS NOT NULL").
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func GetUserRequestStats(ctx context.Context, db *gorm.DB, userID uint64) (models.UserRequestStats, error) {
	var stats models.UserRequestStats
	requests := func() *gorm.DB {
		return db.WithContext(ctx).Model(&models.Request{})
	}

	if err := requests().Where("sender_id = ?", userID).Count(&stats.SentRequests).Error; err != nil {
		return models.UserRequestStats{}, err
	}

	if err := requests().Where("receiver_id = ?", userID).Count(&stats.ReceivedRequests).Error; err != nil {
		return models.UserRequestStats{}, err
	}

	err := requests().
		Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Where("accepted_at IS NOT NULL").
		Count(&stats.AcceptedMatches).Error
	if err != nil {
		return models.UserRequestStats{}, err
	}

	return stats, nil
}
