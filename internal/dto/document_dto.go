package dto

import (
	"time"

	"github.com/google/uuid"
)

type DocumentResponse struct {
	Id         uuid.UUID  `json:"id"`
	SessionId  *uuid.UUID `json:"session_id,omitempty"`
	Filename   string     `json:"filename"`
	FileType   string     `json:"file_type"`
	FileSize   int64      `json:"file_size"`
	PageCount  *int       `json:"page_count,omitempty"`
	IsGlobal   bool       `json:"is_global"`
	UploadedAt time.Time  `json:"uploaded_at"`
}
