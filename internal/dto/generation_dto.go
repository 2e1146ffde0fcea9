package dto

import "github.com/google/uuid"

// PublishGenerateMaterialMessage is the payload queued for the async
// generation worker.
type PublishGenerateMaterialMessage struct {
	DocumentId uuid.UUID `json:"document_id"`
	UserId     uuid.UUID `json:"user_id"`
	Type       string    `json:"type"`
}
