package models

import "time"

// AdminUser is a dashboard operator account. Password holds a bcrypt hash
// ($2a$, $2b$ or the PHP-style $2y$ prefix) or an argon2id hash.
type AdminUser struct {
	ID        uint64    `gorm:"primaryKey"                        json:"id"`
	Username  string    `gorm:"uniqueIndex;size:64;not null"      json:"username"`
	Password  string    `gorm:"not null"                          json:"-"`
	Name      string    `gorm:"size:128"                          json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AdminIdentity is what a successful credential check yields. It never
// carries hash material.
type AdminIdentity struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

// KPISnapshot holds the dashboard counters computed for one request.
type KPISnapshot struct {
	TotalUsers        int64  `json:"totalUsers"`
	SignupsToday      int64  `json:"signupsToday"`
	Active30d         int64  `json:"active30d"`
	ActivePremium     int64  `json:"activePremium"`
	TotalMatches      int64  `json:"totalMatches"`
	WomenCount        int64  `json:"womenCount"`
	MenCount          int64  `json:"menCount"`
	WomenMenRatio     string `json:"womenMenRatio"`
	VerificationQueue int64  `json:"verificationQueue"`
	DeactivatedUsers  int64  `json:"deactivatedUsers"`
	VerifiedUsers     int64  `json:"verifiedUsers"`
}

// TimeSeriesPoint represents a data point in a time series chart.
type TimeSeriesPoint struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

type TopUserRow struct {
	ID         uint64     `json:"id"`
	FirstName  string     `json:"first_name"`
	LastName   string     `json:"last_name"`
	CodeName   string     `json:"code_name"`
	Email      string     `json:"email"`
	LastOnline *time.Time `json:"last_online"`
	Country    string     `json:"country"`
	Gender     Gender     `json:"gender"`
	Status     string     `json:"status"`
}

type VerificationQueueRow struct {
	ID        uint64    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	CodeName  string    `json:"code_name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	Country   string    `json:"country"`
	Gender    Gender    `json:"gender"`
}

type CountryGenderCount struct {
	Country string `json:"country"`
	Gender  Gender `json:"gender"`
	Count   int64  `json:"count"`
}

type CountryCount struct {
	Country   string `json:"country"`
	UserCount int64  `json:"userCount"`
}

type FavoritedUserRow struct {
	ID            uint64 `json:"id"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	CodeName      string `json:"code_name"`
	Country       string `json:"country"`
	Gender        Gender `json:"gender"`
	FavoriteCount int64  `json:"favorite_count"`
}

type EngagementResponse struct {
	DAU []TimeSeriesPoint `json:"dau"`
	MAU int64             `json:"mau"`
}

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}
