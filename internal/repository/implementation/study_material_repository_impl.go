package implementation

import (
	"context"
	"errors"

	"studysage-be/internal/entity"
	"studysage-be/internal/mapper"
	"studysage-be/internal/model"
	"studysage-be/internal/repository/contract"
	"studysage-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudyMaterialRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.StudyMaterialMapper
}

func NewStudyMaterialRepository(db *gorm.DB) contract.StudyMaterialRepository {
	return &StudyMaterialRepositoryImpl{
		db:     db,
		mapper: mapper.NewStudyMaterialMapper(),
	}
}

func (r *StudyMaterialRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *StudyMaterialRepositoryImpl) Create(ctx context.Context, material *entity.StudyMaterial) error {
	m := r.mapper.ToModel(material)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*material = *r.mapper.ToEntity(m)
	return nil
}

func (r *StudyMaterialRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.StudyMaterial{}, id).Error
}

func (r *StudyMaterialRepositoryImpl) DeleteAllByDocumentId(ctx context.Context, documentId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("document_id = ?", documentId).Delete(&model.StudyMaterial{}).Error
}

func (r *StudyMaterialRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.StudyMaterial, error) {
	var m model.StudyMaterial
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *StudyMaterialRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.StudyMaterial, error) {
	var models []*model.StudyMaterial
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *StudyMaterialRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.StudyMaterial{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
