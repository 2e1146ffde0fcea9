package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	Id                 uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email              string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	FullName           string    `gorm:"type:varchar(255);not null"`
	PasswordHash       string    `gorm:"type:varchar(255);not null"`
	Age                *int      `gorm:"type:int"`
	Credits            int       `gorm:"type:int;not null;default:0"`
	SubscriptionStatus string    `gorm:"type:varchar(32);not null;default:'free'"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
	DeletedAt          gorm.DeletedAt `gorm:"index"`
	IsDeleted          bool           `gorm:"default:false"`
}

func (User) TableName() string {
	return "users"
}
