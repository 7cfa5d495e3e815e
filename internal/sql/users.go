package sql

import (
	"context"
	"errors"
	"sort"
	"time"

	apierrors "matchdash/internal/errors"
	"matchdash/internal/models"

	"gorm.io/gorm"
)

// UserFilter adds the counter specific conditions to a users query.
type UserFilter func(*gorm.DB) *gorm.DB

func CountUsers(ctx context.Context, db *gorm.DB, country string, filter UserFilter) (int64, error) {
	var count int64

	query := db.WithContext(ctx).Model(&models.User{}).Scopes(InCountry(country))
	if filter != nil {
		query = filter(query)
	}

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func CountActivePremium(ctx context.Context, db *gorm.DB, country string, now time.Time) (int64, error) {
	var count int64

	err := db.WithContext(ctx).
		Model(&models.Subscription{}).
		Joins("JOIN users ON users.id = subscriptions.user_id").
		Where("subscriptions.is_active = ? AND subscriptions.expiry > ?", true, now).
		Where("users.deleted_at IS NULL").
		Scopes(InCountry(country)).
		Distinct("subscriptions.user_id").
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func ListTopActiveUsers(ctx context.Context, db *gorm.DB, limit int) ([]models.TopUserRow, error) {
	rows := make([]models.TopUserRow, 0, limit)

	err := db.WithContext(ctx).
		Model(&models.User{}).
		Select("id, first_name, last_name, code_name, email, last_online, country, gender, status").
		Where("deactivated = ?", false).
		Order("last_online IS NULL, last_online DESC, id ASC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func ListVerificationQueue(ctx context.Context, db *gorm.DB, limit int) ([]models.VerificationQueueRow, error) {
	rows := make([]models.VerificationQueueRow, 0, limit)

	err := db.WithContext(ctx).
		Model(&models.User{}).
		Select("id, first_name, last_name, code_name, email, created_at, country, gender").
		Where("status = ?", models.UserStatusPending).
		Order("created_at DESC, id ASC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

type dayStamp struct {
	At time.Time
}

// CountUsersByDay counts users per calendar day of column in loc, for rows
// where column is at or after start. Days without rows are omitted and the
// oldest day comes first. Each user carries one value of column, so the count
// is also the number of distinct users.
func CountUsersByDay(
	ctx context.Context,
	db *gorm.DB,
	column string,
	start time.Time,
	loc *time.Location,
) ([]models.TimeSeriesPoint, error) {
	var stamps []dayStamp

	err := db.WithContext(ctx).
		Model(&models.User{}).
		Select(column+" AS at").
		Where(column+" >= ?", start).
		Scan(&stamps).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64)
	for _, stamp := range stamps {
		counts[stamp.At.In(loc).Format(time.DateOnly)]++
	}

	points := make([]models.TimeSeriesPoint, 0, len(counts))
	for date, count := range counts {
		points = append(points, models.TimeSeriesPoint{Date: date, Count: count})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date < points[j].Date })

	return points, nil
}

func CountApprovedByCountryGender(ctx context.Context, db *gorm.DB, limit int) ([]models.CountryGenderCount, error) {
	rows := make([]models.CountryGenderCount, 0, limit)

	err := db.WithContext(ctx).
		Model(&models.User{}).
		Select("country, gender, COUNT(*) AS count").
		Where("status = ?", models.UserStatusApproved).
		Group("country, gender").
		Order("count DESC, country ASC, gender ASC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func CountUsersByCountry(ctx context.Context, db *gorm.DB) ([]models.CountryCount, error) {
	rows := []models.CountryCount{}

	err := db.WithContext(ctx).
		Model(&models.User{}).
		Select("country, COUNT(*) AS user_count").
		Where("country IS NOT NULL AND country <> ?", "").
		Group("country").
		Order("user_count DESC, country ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func ListTopFavorited(
	ctx context.Context,
	db *gorm.DB,
	gender models.Gender,
	limit int,
) ([]models.FavoritedUserRow, error) {
	rows := make([]models.FavoritedUserRow, 0, limit)
	columns := "users.id, users.first_name, users.last_name, users.code_name, users.country, users.gender"

	err := db.WithContext(ctx).
		Model(&models.User{}).
		Select(columns+", COUNT(favorites.id) AS favorite_count").
		Joins("JOIN favorites ON favorites.favorite_user_id = users.id").
		Where("users.gender = ?", gender).
		Group(columns).
		Order("favorite_count DESC, users.id ASC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func GetUserByID(ctx context.Context, db *gorm.DB, id uint64) (models.User, error) {
	var user models.User

	if err := db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, apierrors.NewAPIError(404, apierrors.ErrUserNotFound)
		}
		return models.User{}, err
	}

	return user, nil
}

// GetActiveSubscription returns the active subscription expiring last, or nil.
func GetActiveSubscription(
	ctx context.Context,
	db *gorm.DB,
	userID uint64,
	now time.Time,
) (*models.ActiveSubscription, error) {
	var subscriptions []models.Subscription

	err := db.WithContext(ctx).
		Where("user_id = ? AND is_active = ? AND expiry > ?", userID, true, now).
		Order("expiry DESC").
		Limit(1).
		Find(&subscriptions).Error
	if err != nil {
		return nil, err
	}

	if len(subscriptions) == 0 {
		return nil, nil
	}

	return &models.ActiveSubscription{
		PlanType: subscriptions[0].PlanType,
		IsActive: subscriptions[0].IsActive,
		Expiry:   subscriptions[0].Expiry,
	}, nil
}
