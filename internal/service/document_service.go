package service

import (
	"context"
	"fmt"
	"time"

	"studysage-be/internal/dto"
	"studysage-be/internal/entity"
	"studysage-be/internal/repository/specification"
	"studysage-be/internal/repository/unitofwork"
	"studysage-be/pkg/study/scope"

	"github.com/google/uuid"
)

type UploadDocumentInput struct {
	SessionId *uuid.UUID
	Filename  string
	FilePath  string
	FileType  string
	FileSize  int64
	PageCount *int
	IsGlobal  bool
}

type IDocumentService interface {
	Upload(ctx context.Context, userId uuid.UUID, input *UploadDocumentInput) (*dto.DocumentResponse, error)
	GetAll(ctx context.Context, userId uuid.UUID) ([]*dto.DocumentResponse, error)
	GetForSession(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID, includeGlobal bool) ([]*dto.DocumentResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error

	// ResolveScope returns the documents an AI operation may read for the
	// session, already deduplicated.
	ResolveScope(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID, includeGlobal bool) ([]*entity.Document, error)
}

type documentService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewDocumentService(uowFactory unitofwork.RepositoryFactory) IDocumentService {
	return &documentService{
		uowFactory: uowFactory,
	}
}

func documentToResponse(d *entity.Document) *dto.DocumentResponse {
	return &dto.DocumentResponse{
		Id:         d.Id,
		SessionId:  d.SessionId,
		Filename:   d.Filename,
		FileType:   d.FileType,
		FileSize:   d.FileSize,
		PageCount:  d.PageCount,
		IsGlobal:   d.IsGlobal,
		UploadedAt: d.UploadedAt,
	}
}

func (s *documentService) Upload(ctx context.Context, userId uuid.UUID, input *UploadDocumentInput) (*dto.DocumentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if input.SessionId != nil {
		session, err := uow.StudySessionRepository().FindOne(ctx,
			specification.ByID{ID: *input.SessionId},
			specification.OwnedBy{UserID: userId},
		)
		if err != nil {
			return nil, err
		}
		if session == nil {
			return nil, fmt.Errorf("session not found or access denied")
		}
	}

	doc := entity.Document{
		Id:         uuid.New(),
		UserId:     userId,
		SessionId:  input.SessionId,
		Filename:   input.Filename,
		FilePath:   input.FilePath,
		FileType:   input.FileType,
		FileSize:   input.FileSize,
		PageCount:  input.PageCount,
		IsGlobal:   input.IsGlobal,
		UploadedAt: time.Now(),
	}

	if err := uow.DocumentRepository().Create(ctx, &doc); err != nil {
		return nil, err
	}

	return documentToResponse(&doc), nil
}

func (s *documentService) GetAll(ctx context.Context, userId uuid.UUID) ([]*dto.DocumentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	docs, err := uow.DocumentRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "uploaded_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.DocumentResponse, 0, len(docs))
	for _, d := range docs {
		result = append(result, documentToResponse(d))
	}
	return result, nil
}

func (s *documentService) GetForSession(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID, includeGlobal bool) ([]*dto.DocumentResponse, error) {
	docs, err := s.ResolveScope(ctx, userId, sessionId, includeGlobal)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.DocumentResponse, 0, len(docs))
	for _, d := range docs {
		result = append(result, documentToResponse(d))
	}
	return result, nil
}

func (s *documentService) ResolveScope(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID, includeGlobal bool) ([]*entity.Document, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.StudySessionRepository().FindOne(ctx,
		specification.ByID{ID: sessionId},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, fmt.Errorf("session not found or access denied")
	}

	docs, err := uow.DocumentRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.InSessionScope{SessionID: sessionId, IncludeGlobal: includeGlobal},
		specification.OrderBy{Field: "uploaded_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	// The query already narrows the set; Resolve enforces the dedup and
	// ordering invariants regardless of what the store returned.
	return scope.Resolve(docs, sessionId, includeGlobal), nil
}

// Delete removes the document with its generated materials and any progress
// recorded against them, in one transaction.
func (s *documentService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	doc, err := uow.DocumentRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if doc == nil {
		return fmt.Errorf("document not found or access denied")
	}

	materials, err := uow.StudyMaterialRepository().FindAll(ctx,
		specification.ByDocumentID{DocumentID: id},
	)
	if err != nil {
		return err
	}
	materialIds := make([]uuid.UUID, 0, len(materials))
	for _, m := range materials {
		materialIds = append(materialIds, m.Id)
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.StudyProgressRepository().DeleteAllByMaterialIds(ctx, materialIds); err != nil {
		return err
	}
	if err := uow.StudyMaterialRepository().DeleteAllByDocumentId(ctx, id); err != nil {
		return err
	}
	if err := uow.DocumentRepository().Delete(ctx, id); err != nil {
		return err
	}

	return uow.Commit()
}
