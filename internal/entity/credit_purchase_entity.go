package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	PurchaseStatusPending = "pending"
	PurchaseStatusSettled = "settled"
	PurchaseStatusFailed  = "failed"
)

type CreditPurchase struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	OrderId   string
	Credits   int
	Amount    int64
	Status    string
	SnapToken string
	CreatedAt time.Time
	UpdatedAt *time.Time
}
