package mapper

import (
	"studysage-be/internal/entity"
	"studysage-be/internal/model"
)

type StudyProgressMapper struct{}

func NewStudyProgressMapper() *StudyProgressMapper {
	return &StudyProgressMapper{}
}

func (m *StudyProgressMapper) ToEntity(p *model.StudyProgress) *entity.StudyProgress {
	if p == nil {
		return nil
	}

	return &entity.StudyProgress{
		Id:         p.Id,
		UserId:     p.UserId,
		MaterialId: p.MaterialId,
		Completed:  p.Completed,
		UpdatedAt:  p.UpdatedAt,
	}
}

func (m *StudyProgressMapper) ToModel(p *entity.StudyProgress) *model.StudyProgress {
	if p == nil {
		return nil
	}

	return &model.StudyProgress{
		Id:         p.Id,
		UserId:     p.UserId,
		MaterialId: p.MaterialId,
		Completed:  p.Completed,
		UpdatedAt:  p.UpdatedAt,
	}
}

func (m *StudyProgressMapper) ToEntities(progress []*model.StudyProgress) []*entity.StudyProgress {
	entities := make([]*entity.StudyProgress, len(progress))
	for i, p := range progress {
		entities[i] = m.ToEntity(p)
	}
	return entities
}
