package mapper

import (
	"time"

	"studysage-be/internal/entity"
	"studysage-be/internal/model"
)

type CreditPurchaseMapper struct{}

func NewCreditPurchaseMapper() *CreditPurchaseMapper {
	return &CreditPurchaseMapper{}
}

func (m *CreditPurchaseMapper) ToEntity(p *model.CreditPurchase) *entity.CreditPurchase {
	if p == nil {
		return nil
	}

	var updatedAt *time.Time
	if !p.UpdatedAt.IsZero() {
		t := p.UpdatedAt
		updatedAt = &t
	}

	return &entity.CreditPurchase{
		Id:        p.Id,
		UserId:    p.UserId,
		OrderId:   p.OrderId,
		Credits:   p.Credits,
		Amount:    p.Amount,
		Status:    p.Status,
		SnapToken: p.SnapToken,
		CreatedAt: p.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *CreditPurchaseMapper) ToModel(p *entity.CreditPurchase) *model.CreditPurchase {
	if p == nil {
		return nil
	}

	var updatedAt time.Time
	if p.UpdatedAt != nil {
		updatedAt = *p.UpdatedAt
	}

	return &model.CreditPurchase{
		Id:        p.Id,
		UserId:    p.UserId,
		OrderId:   p.OrderId,
		Credits:   p.Credits,
		Amount:    p.Amount,
		Status:    p.Status,
		SnapToken: p.SnapToken,
		CreatedAt: p.CreatedAt,
		UpdatedAt: updatedAt,
	}
}
