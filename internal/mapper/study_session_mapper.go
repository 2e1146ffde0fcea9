package mapper

import (
	"encoding/json"
	"time"

	"studysage-be/internal/entity"
	"studysage-be/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type StudySessionMapper struct{}

func NewStudySessionMapper() *StudySessionMapper {
	return &StudySessionMapper{}
}

func (m *StudySessionMapper) ToEntity(s *model.StudySession) *entity.StudySession {
	if s == nil {
		return nil
	}

	var deletedAt *time.Time
	if s.DeletedAt.Valid {
		t := s.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !s.UpdatedAt.IsZero() {
		t := s.UpdatedAt
		updatedAt = &t
	}

	var config map[string]interface{}
	if len(s.Config) > 0 {
		_ = json.Unmarshal(s.Config, &config)
	}

	return &entity.StudySession{
		Id:        s.Id,
		UserId:    s.UserId,
		Type:      s.Type,
		Name:      s.Name,
		Config:    config,
		CreatedAt: s.CreatedAt,
		UpdatedAt: updatedAt,
		DeletedAt: deletedAt,
		IsDeleted: s.DeletedAt.Valid,
	}
}

func (m *StudySessionMapper) ToModel(s *entity.StudySession) *model.StudySession {
	if s == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if s.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *s.DeletedAt, Valid: true}
	} else if s.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if s.UpdatedAt != nil {
		updatedAt = *s.UpdatedAt
	}

	var config datatypes.JSON
	if s.Config != nil {
		raw, err := json.Marshal(s.Config)
		if err == nil {
			config = datatypes.JSON(raw)
		}
	}

	return &model.StudySession{
		Id:        s.Id,
		UserId:    s.UserId,
		Type:      s.Type,
		Name:      s.Name,
		Config:    config,
		CreatedAt: s.CreatedAt,
		UpdatedAt: updatedAt,
		DeletedAt: deletedAt,
	}
}

func (m *StudySessionMapper) ToEntities(sessions []*model.StudySession) []*entity.StudySession {
	entities := make([]*entity.StudySession, len(sessions))
	for i, s := range sessions {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
