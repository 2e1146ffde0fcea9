package mapper

import (
	"time"

	"studysage-be/internal/entity"
	"studysage-be/internal/model"

	"gorm.io/gorm"
)

type DocumentMapper struct{}

func NewDocumentMapper() *DocumentMapper {
	return &DocumentMapper{}
}

func (m *DocumentMapper) ToEntity(d *model.Document) *entity.Document {
	if d == nil {
		return nil
	}

	var deletedAt *time.Time
	if d.DeletedAt.Valid {
		t := d.DeletedAt.Time
		deletedAt = &t
	}

	return &entity.Document{
		Id:         d.Id,
		UserId:     d.UserId,
		SessionId:  d.SessionId,
		Filename:   d.Filename,
		FilePath:   d.FilePath,
		FileType:   d.FileType,
		FileSize:   d.FileSize,
		PageCount:  d.PageCount,
		IsGlobal:   d.IsGlobal,
		UploadedAt: d.UploadedAt,
		DeletedAt:  deletedAt,
		IsDeleted:  d.DeletedAt.Valid,
	}
}

func (m *DocumentMapper) ToModel(d *entity.Document) *model.Document {
	if d == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if d.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *d.DeletedAt, Valid: true}
	} else if d.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	return &model.Document{
		Id:         d.Id,
		UserId:     d.UserId,
		SessionId:  d.SessionId,
		Filename:   d.Filename,
		FilePath:   d.FilePath,
		FileType:   d.FileType,
		FileSize:   d.FileSize,
		PageCount:  d.PageCount,
		IsGlobal:   d.IsGlobal,
		UploadedAt: d.UploadedAt,
		DeletedAt:  deletedAt,
	}
}

func (m *DocumentMapper) ToEntities(docs []*model.Document) []*entity.Document {
	entities := make([]*entity.Document, len(docs))
	for i, d := range docs {
		entities[i] = m.ToEntity(d)
	}
	return entities
}
