package implementation

import (
	"context"
	"errors"

	"studysage-be/internal/entity"
	"studysage-be/internal/mapper"
	"studysage-be/internal/model"
	"studysage-be/internal/repository/contract"
	"studysage-be/internal/repository/specification"

	"gorm.io/gorm"
)

type CreditPurchaseRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CreditPurchaseMapper
}

func NewCreditPurchaseRepository(db *gorm.DB) contract.CreditPurchaseRepository {
	return &CreditPurchaseRepositoryImpl{
		db:     db,
		mapper: mapper.NewCreditPurchaseMapper(),
	}
}

func (r *CreditPurchaseRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CreditPurchaseRepositoryImpl) Create(ctx context.Context, purchase *entity.CreditPurchase) error {
	m := r.mapper.ToModel(purchase)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*purchase = *r.mapper.ToEntity(m)
	return nil
}

func (r *CreditPurchaseRepositoryImpl) Update(ctx context.Context, purchase *entity.CreditPurchase) error {
	m := r.mapper.ToModel(purchase)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*purchase = *r.mapper.ToEntity(m)
	return nil
}

func (r *CreditPurchaseRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CreditPurchase, error) {
	var m model.CreditPurchase
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *CreditPurchaseRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CreditPurchase, error) {
	var models []*model.CreditPurchase
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.CreditPurchase, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}
