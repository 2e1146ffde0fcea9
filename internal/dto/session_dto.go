package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateSessionRequest struct {
	Name   string                 `json:"name" validate:"required"`
	Type   string                 `json:"type" validate:"required"`
	Config map[string]interface{} `json:"config,omitempty"`
}

type SessionResponse struct {
	Id        uuid.UUID              `json:"id"`
	Type      string                 `json:"type"`
	Name      string                 `json:"name"`
	Config    map[string]interface{} `json:"config,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt *time.Time             `json:"updated_at"`
}

type UpdateSessionRequest struct {
	Name   *string                `json:"name,omitempty"`
	Config map[string]interface{} `json:"config,omitempty"`
}
