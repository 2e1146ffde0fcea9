package entity

import (
	"time"

	"github.com/google/uuid"
)

// StudyMaterial is a generated artifact (summary, flashcard set or mindmap)
// tied to one document. Content shape depends on Type:
// summary   -> {"document_name": ..., "summary": ...}
// flashcard -> {"document_name": ..., "flashcards": [{"question","answer"}]}
// mindmap   -> {"document_name": ..., "mindmap": {"title","children":[...]}}
type StudyMaterial struct {
	Id         uuid.UUID
	UserId     uuid.UUID
	DocumentId uuid.UUID
	Type       string
	Content    map[string]interface{}
	CreatedAt  time.Time
	DeletedAt  *time.Time
	IsDeleted  bool
}
