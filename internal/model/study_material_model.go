package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type StudyMaterial struct {
	Id         uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId     uuid.UUID      `gorm:"type:uuid;not null;index"`
	DocumentId uuid.UUID      `gorm:"type:uuid;not null;index"`
	Type       string         `gorm:"type:varchar(32);not null"`
	Content    datatypes.JSON `gorm:"type:jsonb;not null"`
	CreatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`
	IsDeleted  bool           `gorm:"default:false"`

	Document Document `gorm:"foreignKey:DocumentId"`
}

func (StudyMaterial) TableName() string {
	return "study_materials"
}
