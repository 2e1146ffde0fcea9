package model

import (
	"time"

	"github.com/google/uuid"
)

type CreditPurchase struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index"`
	OrderId   string    `gorm:"type:varchar(64);uniqueIndex;not null"`
	Credits   int       `gorm:"type:int;not null"`
	Amount    int64     `gorm:"type:bigint;not null"`
	Status    string    `gorm:"type:varchar(16);not null;default:'pending'"`
	SnapToken string    `gorm:"type:varchar(255)"`
	CreatedAt time.Time
	UpdatedAt time.Time

	User User `gorm:"foreignKey:UserId"`
}

func (CreditPurchase) TableName() string {
	return "credit_purchases"
}
