package contract

import (
	"context"

	"studysage-be/internal/entity"
	"studysage-be/internal/repository/specification"

	"github.com/google/uuid"
)

type StudyProgressRepository interface {
	// Upsert writes the completion state for one (user, material) pair,
	// inserting the row if it does not exist yet.
	Upsert(ctx context.Context, progress *entity.StudyProgress) error
	DeleteAllByMaterialIds(ctx context.Context, materialIds []uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.StudyProgress, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.StudyProgress, error)
}
