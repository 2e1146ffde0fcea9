package service

import (
	"context"
	"fmt"

	"studysage-be/internal/dto"
	"studysage-be/internal/entity"
	"studysage-be/internal/repository/specification"
	"studysage-be/internal/repository/unitofwork"
	"studysage-be/pkg/study/progress"
	"studysage-be/pkg/study/scope"

	"github.com/google/uuid"
)

type IProgressService interface {
	// Toggle flips the completion state of one material for the user and
	// returns the new state.
	Toggle(ctx context.Context, userId uuid.UUID, materialId uuid.UUID) (*dto.ProgressEntryResponse, error)

	// GetForSession returns the user's checklist over the session's
	// materials, with the completion ratio.
	GetForSession(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID, includeGlobal bool) (*dto.ProgressSummaryResponse, error)

	// GetAll returns every progress entry the user has recorded.
	GetAll(ctx context.Context, userId uuid.UUID) ([]*dto.ProgressEntryResponse, error)

	// Ratio computes the completion ratio over an explicit material set.
	Ratio(ctx context.Context, userId uuid.UUID, materialIds []uuid.UUID) (float64, error)
}

type progressService struct {
	uowFactory      unitofwork.RepositoryFactory
	documentService IDocumentService
}

func NewProgressService(
	uowFactory unitofwork.RepositoryFactory,
	documentService IDocumentService,
) IProgressService {
	return &progressService{
		uowFactory:      uowFactory,
		documentService: documentService,
	}
}

func (s *progressService) Toggle(ctx context.Context, userId uuid.UUID, materialId uuid.UUID) (*dto.ProgressEntryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	material, err := uow.StudyMaterialRepository().FindOne(ctx,
		specification.ByID{ID: materialId},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, fmt.Errorf("material not found or access denied")
	}

	current, err := uow.StudyProgressRepository().FindOne(ctx,
		specification.OwnedBy{UserID: userId},
		specification.ByMaterialID{MaterialID: materialId},
	)
	if err != nil {
		return nil, err
	}

	// Absent row reads as not completed, so the first toggle completes.
	entry := &entity.StudyProgress{
		Id:         uuid.New(),
		UserId:     userId,
		MaterialId: materialId,
		Completed:  true,
	}
	if current != nil {
		entry.Id = current.Id
		entry.Completed = !current.Completed
	}

	if err := uow.StudyProgressRepository().Upsert(ctx, entry); err != nil {
		return nil, err
	}

	return &dto.ProgressEntryResponse{
		MaterialId: materialId,
		Completed:  entry.Completed,
	}, nil
}

func (s *progressService) GetAll(ctx context.Context, userId uuid.UUID) ([]*dto.ProgressEntryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	rows, err := uow.StudyProgressRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ProgressEntryResponse, 0, len(rows))
	for _, row := range rows {
		result = append(result, &dto.ProgressEntryResponse{
			MaterialId: row.MaterialId,
			Completed:  row.Completed,
		})
	}
	return result, nil
}

func (s *progressService) Ratio(ctx context.Context, userId uuid.UUID, materialIds []uuid.UUID) (float64, error) {
	if len(materialIds) == 0 {
		return 0, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	rows, err := uow.StudyProgressRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return 0, err
	}

	checklist := progress.New()
	for _, row := range rows {
		if row.Completed {
			checklist.Toggle(row.MaterialId.String())
		}
	}

	keys := make([]string, 0, len(materialIds))
	for _, id := range materialIds {
		keys = append(keys, id.String())
	}
	return progress.CompletionRatio(checklist, keys), nil
}

func (s *progressService) GetForSession(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID, includeGlobal bool) (*dto.ProgressSummaryResponse, error) {
	docs, err := s.documentService.ResolveScope(ctx, userId, sessionId, includeGlobal)
	if err != nil {
		return nil, err
	}

	res := &dto.ProgressSummaryResponse{
		Entries: make([]dto.ProgressEntryResponse, 0),
	}
	if len(docs) == 0 {
		return res, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	pool, err := uow.StudyMaterialRepository().FindAll(ctx,
		specification.ByDocumentIDs{DocumentIDs: scope.IDs(docs)},
	)
	if err != nil {
		return nil, err
	}
	if len(pool) == 0 {
		return res, nil
	}

	rows, err := uow.StudyProgressRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}

	checklist := progress.New()
	for _, row := range rows {
		if row.Completed {
			checklist.Toggle(row.MaterialId.String())
		}
	}

	materialIds := make([]string, 0, len(pool))
	for _, m := range pool {
		materialIds = append(materialIds, m.Id.String())
		res.Entries = append(res.Entries, dto.ProgressEntryResponse{
			MaterialId: m.Id,
			Completed:  checklist.IsComplete(m.Id.String()),
		})
	}

	res.CompletionRatio = progress.CompletionRatio(checklist, materialIds)
	return res, nil
}
