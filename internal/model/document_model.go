package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Document struct {
	Id         uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId     uuid.UUID  `gorm:"type:uuid;not null;index"`
	SessionId  *uuid.UUID `gorm:"type:uuid;index"`
	Filename   string     `gorm:"type:varchar(512);not null"`
	FilePath   string     `gorm:"type:varchar(1024);not null"`
	FileType   string     `gorm:"type:varchar(64)"`
	FileSize   int64      `gorm:"type:bigint;not null;default:0"`
	PageCount  *int       `gorm:"type:int"`
	IsGlobal   bool       `gorm:"not null;default:false;index"`
	UploadedAt time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`
	IsDeleted  bool           `gorm:"default:false"`

	Session *StudySession `gorm:"foreignKey:SessionId"`
}

func (Document) TableName() string {
	return "documents"
}
