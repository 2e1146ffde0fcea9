package mapper

import (
	"encoding/json"
	"time"

	"studysage-be/internal/entity"
	"studysage-be/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type StudyMaterialMapper struct{}

func NewStudyMaterialMapper() *StudyMaterialMapper {
	return &StudyMaterialMapper{}
}

func (m *StudyMaterialMapper) ToEntity(sm *model.StudyMaterial) *entity.StudyMaterial {
	if sm == nil {
		return nil
	}

	var deletedAt *time.Time
	if sm.DeletedAt.Valid {
		t := sm.DeletedAt.Time
		deletedAt = &t
	}

	var content map[string]interface{}
	if len(sm.Content) > 0 {
		_ = json.Unmarshal(sm.Content, &content)
	}

	return &entity.StudyMaterial{
		Id:         sm.Id,
		UserId:     sm.UserId,
		DocumentId: sm.DocumentId,
		Type:       sm.Type,
		Content:    content,
		CreatedAt:  sm.CreatedAt,
		DeletedAt:  deletedAt,
		IsDeleted:  sm.DeletedAt.Valid,
	}
}

func (m *StudyMaterialMapper) ToModel(sm *entity.StudyMaterial) *model.StudyMaterial {
	if sm == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if sm.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *sm.DeletedAt, Valid: true}
	} else if sm.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var content datatypes.JSON
	if sm.Content != nil {
		raw, err := json.Marshal(sm.Content)
		if err == nil {
			content = datatypes.JSON(raw)
		}
	}

	return &model.StudyMaterial{
		Id:         sm.Id,
		UserId:     sm.UserId,
		DocumentId: sm.DocumentId,
		Type:       sm.Type,
		Content:    content,
		CreatedAt:  sm.CreatedAt,
		DeletedAt:  deletedAt,
	}
}

func (m *StudyMaterialMapper) ToEntities(materials []*model.StudyMaterial) []*entity.StudyMaterial {
	entities := make([]*entity.StudyMaterial, len(materials))
	for i, sm := range materials {
		entities[i] = m.ToEntity(sm)
	}
	return entities
}
