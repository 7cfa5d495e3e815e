package services

import (
	"testing"
	"time"

	"matchdash/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var fixedNow = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func daysAgo(days int, hour int) time.Time {
	d := fixedNow.AddDate(0, 0, -days)
	return time.Date(d.Year(), d.Month(), d.Day(), hour, 0, 0, 0, time.UTC)
}

func timePtr(t time.Time) *time.Time {
	return &t
}

// seedPlatform writes a small platform:
//
//	1 Asha   female IN approved  signed up today, online today
//	2 Ravi   male   IN approved  signed up 10 days ago, online 5 days ago
//	3 Mira   female US pending   signed up today, never online
//	4 Tom    male   US approved  deactivated, signed up and online 40 days ago
//	5 Lena   female IN approved  soft deleted
//	6 Nora   female US approved  signed up 100 days ago, online yesterday
func seedPlatform(t *testing.T, db *gorm.DB) {
	t.Helper()

	users := []models.User{
		{ID: 1, FirstName: "Asha", CodeName: "A1", Email: "asha@example.com", Country: "IN",
			Gender: models.GenderFemale, Status: models.UserStatusApproved,
			CreatedAt: daysAgo(0, 8), LastOnline: timePtr(daysAgo(0, 10))},
		{ID: 2, FirstName: "Ravi", CodeName: "R2", Email: "ravi@example.com", Country: "IN",
			Gender: models.GenderMale, Status: models.UserStatusApproved,
			CreatedAt: daysAgo(10, 12), LastOnline: timePtr(daysAgo(5, 12))},
		{ID: 3, FirstName: "Mira", CodeName: "M3", Email: "mira@example.com", Country: "US",
			Gender: models.GenderFemale, Status: models.UserStatusPending,
			CreatedAt: daysAgo(0, 9)},
		{ID: 4, FirstName: "Tom", CodeName: "T4", Email: "tom@example.com", Country: "US",
			Gender: models.GenderMale, Status: models.UserStatusApproved, Deactivated: true,
			CreatedAt: daysAgo(40, 12), LastOnline: timePtr(daysAgo(40, 12))},
		{ID: 5, FirstName: "Lena", CodeName: "L5", Email: "lena@example.com", Country: "IN",
			Gender: models.GenderFemale, Status: models.UserStatusApproved,
			CreatedAt: daysAgo(2, 12), LastOnline: timePtr(daysAgo(0, 11))},
		{ID: 6, FirstName: "Nora", CodeName: "N6", Email: "nora@example.com", Country: "US",
			Gender: models.GenderFemale, Status: models.UserStatusApproved,
			CreatedAt: daysAgo(100, 12), LastOnline: timePtr(daysAgo(1, 12))},
	}
	require.NoError(t, db.Create(&users).Error)
	require.NoError(t, db.Delete(&models.User{ID: 5}).Error)

	subscriptions := []models.Subscription{
		{UserID: 1, PlanType: "gold", IsActive: true, Expiry: fixedNow.AddDate(0, 0, 10), CreatedAt: daysAgo(20, 12)},
		{UserID: 1, PlanType: "silver", IsActive: true, Expiry: fixedNow.AddDate(0, 0, 3), CreatedAt: daysAgo(20, 12)},
		{UserID: 2, PlanType: "gold", IsActive: true, Expiry: fixedNow.AddDate(0, 0, -1), CreatedAt: daysAgo(20, 12)},
		{UserID: 5, PlanType: "gold", IsActive: true, Expiry: fixedNow.AddDate(0, 0, 10), CreatedAt: daysAgo(20, 12)},
		{UserID: 6, PlanType: "gold", IsActive: false, Expiry: fixedNow.AddDate(0, 0, 10), CreatedAt: daysAgo(20, 12)},
	}
	require.NoError(t, db.Create(&subscriptions).Error)

	requests := []models.Request{
		{ID: 1, SenderID: 1, ReceiverID: 2, AcceptedAt: timePtr(daysAgo(3, 12)), CreatedAt: daysAgo(4, 12)},
		{ID: 2, SenderID: 2, ReceiverID: 6, CreatedAt: daysAgo(4, 12)},
		{ID: 3, SenderID: 3, ReceiverID: 1, AcceptedAt: timePtr(daysAgo(1, 12)), CreatedAt: daysAgo(2, 12)},
		{ID: 4, SenderID: 6, ReceiverID: 1, AcceptedAt: timePtr(daysAgo(1, 12)), CreatedAt: daysAgo(2, 12)},
	}
	require.NoError(t, db.Create(&requests).Error)
	require.NoError(t, db.Delete(&models.Request{ID: 4}).Error)

	favorites := []models.Favorite{
		{UserID: 2, FavoriteUserID: 1, CreatedAt: daysAgo(1, 12)},
		{UserID: 6, FavoriteUserID: 1, CreatedAt: daysAgo(1, 12)},
		{UserID: 2, FavoriteUserID: 6, CreatedAt: daysAgo(1, 12)},
		{UserID: 4, FavoriteUserID: 3, CreatedAt: daysAgo(1, 12)},
	}
	require.NoError(t, db.Create(&favorites).Error)
}
