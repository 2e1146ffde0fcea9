package dto

import (
	"time"

	"studysage-be/internal/entity"

	"github.com/google/uuid"
)

type ChatMessageResponse struct {
	Id        uuid.UUID       `json:"id"`
	Role      string          `json:"role"`
	Content   string          `json:"content"`
	Sources   []entity.Source `json:"sources,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

type TurnResponse struct {
	Question string          `json:"question"`
	Answer   string          `json:"answer"`
	Sources  []entity.Source `json:"sources,omitempty"`
}

type AppendMessageRequest struct {
	Role    string          `json:"role" validate:"required,oneof=user assistant"`
	Content string          `json:"content" validate:"required"`
	Sources []entity.Source `json:"sources,omitempty"`
}

type QuickAskRequest struct {
	Question   string     `json:"question" validate:"required"`
	DocumentId *uuid.UUID `json:"document_id,omitempty"`
}

type QuickAskResponse struct {
	Answer  string          `json:"answer"`
	Sources []entity.Source `json:"sources,omitempty"`
	Credits int             `json:"credits"`
}

type AskRequest struct {
	SessionId     uuid.UUID `json:"session_id" validate:"required"`
	Question      string    `json:"question" validate:"required"`
	IncludeGlobal bool      `json:"include_global"`
}

type AskResponse struct {
	SessionId uuid.UUID            `json:"session_id"`
	Sent      *ChatMessageResponse `json:"sent"`
	Reply     *ChatMessageResponse `json:"reply"`
	Credits   int                  `json:"credits"`
}
