package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GlobalOnly keeps documents visible in every session of their owner.
type GlobalOnly struct{}

func (s GlobalOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_global = ?", true)
}

// InSessionScope keeps documents attached to the session plus, optionally,
// the owner's global documents.
type InSessionScope struct {
	SessionID     uuid.UUID
	IncludeGlobal bool
}

func (s InSessionScope) Apply(db *gorm.DB) *gorm.DB {
	if s.IncludeGlobal {
		return db.Where("session_id = ? OR is_global = ?", s.SessionID, true)
	}
	return db.Where("session_id = ?", s.SessionID)
}
