package dto

import (
	"time"

	"github.com/google/uuid"
)

type MaterialResponse struct {
	Id         uuid.UUID              `json:"id"`
	DocumentId uuid.UUID              `json:"document_id"`
	Type       string                 `json:"type"`
	Content    map[string]interface{} `json:"content"`
	CreatedAt  time.Time              `json:"created_at"`
}

// GroupedMaterialsResponse mirrors the study materials screen: one bucket per
// artifact type, each holding the latest artifact per document.
type GroupedMaterialsResponse struct {
	Summaries  []MaterialResponse `json:"summaries"`
	Flashcards []MaterialResponse `json:"flashcards"`
	Mindmaps   []MaterialResponse `json:"mindmaps"`
}

type GenerateMaterialRequest struct {
	Type string `json:"type" validate:"required,oneof=summary flashcard mindmap"`
}

type FlashcardReviewRequest struct {
	Action string `json:"action" validate:"required,oneof=current next previous reveal"`
}

// FlashcardReviewResponse carries one side of the current card. The answer is
// only present while the card is revealed.
type FlashcardReviewResponse struct {
	MaterialId uuid.UUID `json:"material_id"`
	Index      int       `json:"index"`
	Total      int       `json:"total"`
	Question   string    `json:"question"`
	Answer     string    `json:"answer,omitempty"`
	Revealed   bool      `json:"revealed"`
}

type GenerateMaterialResponse struct {
	DocumentId uuid.UUID `json:"document_id"`
	Type       string    `json:"type"`
	Status     string    `json:"status"`
}
