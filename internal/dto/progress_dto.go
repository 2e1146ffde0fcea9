package dto

import "github.com/google/uuid"

type ToggleProgressRequest struct {
	MaterialId uuid.UUID `json:"material_id" validate:"required"`
}

type ProgressEntryResponse struct {
	MaterialId uuid.UUID `json:"material_id"`
	Completed  bool      `json:"completed"`
}

type ProgressSummaryResponse struct {
	Entries         []ProgressEntryResponse `json:"entries"`
	CompletionRatio float64                 `json:"completion_ratio"`
}
