package implementation

import (
	"context"
	"errors"
	"time"

	"studysage-be/internal/entity"
	"studysage-be/internal/mapper"
	"studysage-be/internal/model"
	"studysage-be/internal/repository/contract"
	"studysage-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StudyProgressRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.StudyProgressMapper
}

func NewStudyProgressRepository(db *gorm.DB) contract.StudyProgressRepository {
	return &StudyProgressRepositoryImpl{
		db:     db,
		mapper: mapper.NewStudyProgressMapper(),
	}
}

func (r *StudyProgressRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *StudyProgressRepositoryImpl) Upsert(ctx context.Context, progress *entity.StudyProgress) error {
	m := r.mapper.ToModel(progress)
	m.UpdatedAt = time.Now()
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "material_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"completed", "updated_at"}),
	}).Create(m).Error
	if err != nil {
		return err
	}
	*progress = *r.mapper.ToEntity(m)
	return nil
}

func (r *StudyProgressRepositoryImpl) DeleteAllByMaterialIds(ctx context.Context, materialIds []uuid.UUID) error {
	if len(materialIds) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Where("material_id IN ?", materialIds).Delete(&model.StudyProgress{}).Error
}

func (r *StudyProgressRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.StudyProgress, error) {
	var m model.StudyProgress
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *StudyProgressRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.StudyProgress, error) {
	var models []*model.StudyProgress
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
