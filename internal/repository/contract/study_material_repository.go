package contract

import (
	"context"

	"studysage-be/internal/entity"
	"studysage-be/internal/repository/specification"

	"github.com/google/uuid"
)

type StudyMaterialRepository interface {
	Create(ctx context.Context, material *entity.StudyMaterial) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAllByDocumentId(ctx context.Context, documentId uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.StudyMaterial, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.StudyMaterial, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
