package models

import (
	"time"

	"gorm.io/gorm"
)

type Gender string

const (
	GenderFemale Gender = "female"
	GenderMale   Gender = "male"
	GenderOther  Gender = "other"
)

const (
	UserStatusPending  = "pending"
	UserStatusApproved = "approved"
)

// User is a member of the matchmaking platform. The table is owned by the
// platform; this service only reads it.
type User struct {
	ID          uint64         `gorm:"primaryKey"       json:"id"`
	FirstName   string         `json:"first_name"`
	LastName    string         `json:"last_name"`
	CodeName    string         `json:"code_name"`
	Email       string         `json:"email"`
	Phone       string         `json:"phone"`
	City        string         `json:"city"`
	Country     string         `gorm:"index"            json:"country"`
	Gender      Gender         `gorm:"type:varchar(16)" json:"gender"`
	DateOfBirth *time.Time     `json:"date_of_birth"`
	Status      string         `gorm:"index"            json:"status"`
	Deactivated bool           `gorm:"default:false"    json:"deactivated"`
	CreatedAt   time.Time      `json:"created_at"`
	LastOnline  *time.Time     `json:"last_online"`
	DeletedAt   gorm.DeletedAt `gorm:"index"            json:"-"`
}

// Subscription is a premium plan bought by a user.
type Subscription struct {
	ID        uint64    `gorm:"primaryKey"    json:"id"`
	UserID    uint64    `gorm:"index"         json:"user_id"`
	PlanType  string    `json:"plan_type"`
	IsActive  bool      `gorm:"default:false" json:"is_active"`
	Expiry    time.Time `json:"expiry"`
	CreatedAt time.Time `json:"created_at"`
}

// Request is a match request between two users. An accepted request is a match.
type Request struct {
	ID         uint64         `gorm:"primaryKey" json:"id"`
	SenderID   uint64         `gorm:"index"      json:"sender_id"`
	ReceiverID uint64         `gorm:"index"      json:"receiver_id"`
	AcceptedAt *time.Time     `json:"accepted_at"`
	CreatedAt  time.Time      `json:"created_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index"      json:"-"`
}

// Favorite records that UserID marked FavoriteUserID as a favorite.
type Favorite struct {
	ID             uint64    `gorm:"primaryKey" json:"id"`
	UserID         uint64    `gorm:"index"      json:"user_id"`
	FavoriteUserID uint64    `gorm:"index"      json:"favorite_user_id"`
	CreatedAt      time.Time `json:"created_at"`
}

type UserQueryParams struct {
	Country string `json:"country" validate:"omitempty,max=100"`
}

type TopFavoritedQueryParams struct {
	Gender string `json:"gender" validate:"required,oneof=female male other Female Male Other"`
	Limit  int    `json:"limit"  validate:"omitempty,gte=1,lte=100"`
}

type ActiveSubscription struct {
	PlanType string    `json:"plan_type"`
	IsActive bool      `json:"is_active"`
	Expiry   time.Time `json:"expiry"`
}

type UserRequestStats struct {
	SentRequests     int64 `json:"sentRequests"`
	ReceivedRequests int64 `json:"receivedRequests"`
	AcceptedMatches  int64 `json:"acceptedMatches"`
}

// UserDetails is the profile page payload: the user columns flattened at the
// top level, plus its current subscription and request counters.
type UserDetails struct {
	User
	Subscription *ActiveSubscription `json:"subscription"`
	Stats        UserRequestStats    `json:"stats"`
}
