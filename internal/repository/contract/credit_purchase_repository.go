package contract

import (
	"context"

	"studysage-be/internal/entity"
	"studysage-be/internal/repository/specification"
)

type CreditPurchaseRepository interface {
	Create(ctx context.Context, purchase *entity.CreditPurchase) error
	Update(ctx context.Context, purchase *entity.CreditPurchase) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CreditPurchase, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CreditPurchase, error)
}
