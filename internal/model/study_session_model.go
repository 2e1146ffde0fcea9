package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type StudySession struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID      `gorm:"type:uuid;not null;index"`
	Type      string         `gorm:"type:varchar(32);not null"`
	Name      string         `gorm:"type:varchar(255);not null"`
	Config    datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
	IsDeleted bool           `gorm:"default:false"`

	User User `gorm:"foreignKey:UserId"`
}

func (StudySession) TableName() string {
	return "study_sessions"
}
