package entity

import (
	"time"

	"github.com/google/uuid"
)

// Document is uploaded file metadata. SessionId is nil for documents that
// were uploaded outside any session; IsGlobal marks a document visible to
// every session of its owner (opt-in per module).
type Document struct {
	Id         uuid.UUID
	UserId     uuid.UUID
	SessionId  *uuid.UUID
	Filename   string
	FilePath   string
	FileType   string
	FileSize   int64
	PageCount  *int
	IsGlobal   bool
	UploadedAt time.Time
	DeletedAt  *time.Time
	IsDeleted  bool
}
