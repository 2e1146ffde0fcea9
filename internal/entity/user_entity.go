package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	SubscriptionStatusFree    = "free"
	SubscriptionStatusActive  = "active"
	SubscriptionStatusExpired = "expired"
)

type User struct {
	Id                 uuid.UUID
	Email              string
	FullName           string
	PasswordHash       string
	Age                *int
	Credits            int
	SubscriptionStatus string
	CreatedAt          time.Time
	UpdatedAt          *time.Time
	DeletedAt          *time.Time
	IsDeleted          bool
}
