package dto

import (
	"time"

	"github.com/google/uuid"
)

type PurchaseCreditsRequest struct {
	Credits int `json:"credits" validate:"required,gt=0"`
}

type PurchaseCreditsResponse struct {
	OrderId   string `json:"order_id"`
	SnapToken string `json:"snap_token"`
	Amount    int64  `json:"amount"`
}

type VerifyPurchaseRequest struct {
	OrderId string `json:"order_id" validate:"required"`
}

type VerifyPurchaseResponse struct {
	OrderId string `json:"order_id"`
	Status  string `json:"status"`
	Credits int    `json:"credits"`
}

type PurchaseHistoryResponse struct {
	Id        uuid.UUID `json:"id"`
	OrderId   string    `json:"order_id"`
	Credits   int       `json:"credits"`
	Amount    int64     `json:"amount"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type MidtransWebhookRequest struct {
	OrderId           string `json:"order_id"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	SignatureKey      string `json:"signature_key"`
	TransactionStatus string `json:"transaction_status"`
}

// InsufficientCreditsError carries balance details for 402 responses.
type InsufficientCreditsError struct {
	Required int `json:"required"`
	Balance  int `json:"balance"`
}

func (e *InsufficientCreditsError) Error() string {
	return "insufficient credits"
}
