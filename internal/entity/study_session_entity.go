package entity

import (
	"time"

	"github.com/google/uuid"
)

// StudySession is a typed workspace: documents, a chat log and generated
// study materials hang off it. Type is immutable after creation.
type StudySession struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Type      string
	Name      string
	Config    map[string]interface{}
	CreatedAt time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time
	IsDeleted bool
}
