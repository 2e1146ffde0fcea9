package model

import (
	"time"

	"github.com/google/uuid"
)

type StudyProgress struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_progress_user_material"`
	MaterialId uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_progress_user_material"`
	Completed  bool      `gorm:"not null;default:false"`
	UpdatedAt  time.Time

	Material StudyMaterial `gorm:"foreignKey:MaterialId"`
}

func (StudyProgress) TableName() string {
	return "study_progress"
}
