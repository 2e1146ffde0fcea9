package entity

import (
	"time"

	"github.com/google/uuid"
)

// Source is a citation attached to an assistant message.
type Source struct {
	Filename string `json:"filename"`
	Page     *int   `json:"page,omitempty"`
}

// ChatMessage is one entry of the append-only, strictly ordered session log.
type ChatMessage struct {
	Id        uuid.UUID
	SessionId uuid.UUID
	Role      string
	Content   string
	Sources   []Source
	CreatedAt time.Time
	DeletedAt *time.Time
	IsDeleted bool
}
