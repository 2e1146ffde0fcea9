package service

import (
	"context"
	"encoding/json"
	"fmt"

	"studysage-be/internal/constant"
	"studysage-be/internal/dto"
	"studysage-be/internal/entity"
	"studysage-be/internal/repository/memory"
	"studysage-be/internal/repository/specification"
	"studysage-be/internal/repository/unitofwork"
	"studysage-be/pkg/store"
	"studysage-be/pkg/study/flashcards"
	"studysage-be/pkg/study/materials"
	"studysage-be/pkg/study/scope"

	"github.com/google/uuid"
)

type IMaterialService interface {
	// GetForSession returns the latest artifact per (document, type) for
	// every document in the session's scope, grouped by type.
	GetForSession(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID, includeGlobal bool) (*dto.GroupedMaterialsResponse, error)

	// GetAll returns every artifact the user owns, newest first.
	GetAll(ctx context.Context, userId uuid.UUID) ([]*dto.MaterialResponse, error)

	// FindLatest returns the newest artifact of one type for one document.
	FindLatest(ctx context.Context, userId uuid.UUID, documentId uuid.UUID, materialType string) (*dto.MaterialResponse, error)

	// RequestGeneration queues an async generation job for the document.
	RequestGeneration(ctx context.Context, userId uuid.UUID, documentId uuid.UUID, materialType string) (*dto.GenerateMaterialResponse, error)

	// Review steps the user's flashcard cursor over one artifact.
	Review(ctx context.Context, userId uuid.UUID, materialId uuid.UUID, action string) (*dto.FlashcardReviewResponse, error)
}

type materialService struct {
	uowFactory       unitofwork.RepositoryFactory
	documentService  IDocumentService
	publisherService IPublisherService
	stateRepo        *memory.ModuleStateRepository
}

func NewMaterialService(
	uowFactory unitofwork.RepositoryFactory,
	documentService IDocumentService,
	publisherService IPublisherService,
	stateRepo *memory.ModuleStateRepository,
) IMaterialService {
	return &materialService{
		uowFactory:       uowFactory,
		documentService:  documentService,
		publisherService: publisherService,
		stateRepo:        stateRepo,
	}
}

func validMaterialType(materialType string) bool {
	switch materialType {
	case constant.MaterialTypeSummary, constant.MaterialTypeFlashcard, constant.MaterialTypeMindmap:
		return true
	}
	return false
}

func materialToResponse(m *entity.StudyMaterial) dto.MaterialResponse {
	return dto.MaterialResponse{
		Id:         m.Id,
		DocumentId: m.DocumentId,
		Type:       m.Type,
		Content:    m.Content,
		CreatedAt:  m.CreatedAt,
	}
}

func (s *materialService) GetForSession(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID, includeGlobal bool) (*dto.GroupedMaterialsResponse, error) {
	docs, err := s.documentService.ResolveScope(ctx, userId, sessionId, includeGlobal)
	if err != nil {
		return nil, err
	}

	res := &dto.GroupedMaterialsResponse{
		Summaries:  make([]dto.MaterialResponse, 0),
		Flashcards: make([]dto.MaterialResponse, 0),
		Mindmaps:   make([]dto.MaterialResponse, 0),
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

	// Only the latest artifact per (document, type) is surfaced.
	for _, doc := range docs {
		if m := materials.Find(pool, doc.Id, constant.MaterialTypeSummary); m != nil {
			res.Summaries = append(res.Summaries, materialToResponse(m))
		}
		if m := materials.Find(pool, doc.Id, constant.MaterialTypeFlashcard); m != nil {
			res.Flashcards = append(res.Flashcards, materialToResponse(m))
		}
		if m := materials.Find(pool, doc.Id, constant.MaterialTypeMindmap); m != nil {
			res.Mindmaps = append(res.Mindmaps, materialToResponse(m))
		}
	}

	return res, nil
}

func (s *materialService) GetAll(ctx context.Context, userId uuid.UUID) ([]*dto.MaterialResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	pool, err := uow.StudyMaterialRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.MaterialResponse, 0, len(pool))
	for _, m := range pool {
		res := materialToResponse(m)
		result = append(result, &res)
	}
	return result, nil
}

func (s *materialService) FindLatest(ctx context.Context, userId uuid.UUID, documentId uuid.UUID, materialType string) (*dto.MaterialResponse, error) {
	if !validMaterialType(materialType) {
		return nil, fmt.Errorf("unknown material type %q", materialType)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	doc, err := uow.DocumentRepository().FindOne(ctx,
		specification.ByID{ID: documentId},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, fmt.Errorf("document not found or access denied")
	}

	pool, err := uow.StudyMaterialRepository().FindAll(ctx,
		specification.ByDocumentID{DocumentID: documentId},
		specification.ByMaterialType{Type: materialType},
	)
	if err != nil {
		return nil, err
	}

	m := materials.Find(pool, documentId, materialType)
	if m == nil {
		return nil, nil
	}
	res := materialToResponse(m)
	return &res, nil
}

func reviewStateKey(userId uuid.UUID, materialId uuid.UUID) string {
	return "review:" + userId.String() + ":" + materialId.String()
}

func (s *materialService) Review(ctx context.Context, userId uuid.UUID, materialId uuid.UUID, action string) (*dto.FlashcardReviewResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	m, err := uow.StudyMaterialRepository().FindOne(ctx,
		specification.ByID{ID: materialId},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, fmt.Errorf("material not found or access denied")
	}
	if m.Type != constant.MaterialTypeFlashcard {
		return nil, fmt.Errorf("material %s is not a flashcard set", materialId)
	}

	raw, err := json.Marshal(m.Content["flashcards"])
	if err != nil {
		return nil, err
	}
	var cards []flashcards.Card
	if err := json.Unmarshal(raw, &cards); err != nil {
		return nil, fmt.Errorf("malformed flashcard content: %w", err)
	}

	nav, err := flashcards.NewNavigator(cards)
	if err != nil {
		return nil, err
	}

	// Restore the cursor from the previous request. A stale index (deck
	// regenerated smaller) just falls back to the first card.
	key := reviewStateKey(userId, materialId)
	if st, ok := s.stateRepo.Get(key); ok {
		if err := nav.Seek(st.CardIndex); err == nil && st.CardRevealed {
			nav.ToggleReveal()
		}
	}

	switch action {
	case "current":
	case "next":
		nav.Next()
	case "previous":
		nav.Previous()
	case "reveal":
		nav.ToggleReveal()
	default:
		return nil, fmt.Errorf("unknown review action %q", action)
	}

	s.stateRepo.Save(&store.ModuleState{
		SessionID:    key,
		UserID:       userId.String(),
		State:        store.StateReady,
		CardIndex:    nav.Index(),
		CardRevealed: nav.Revealed(),
	})

	card := nav.Current()
	res := &dto.FlashcardReviewResponse{
		MaterialId: materialId,
		Index:      nav.Index(),
		Total:      nav.Len(),
		Question:   card.Question,
		Revealed:   nav.Revealed(),
	}
	if nav.Revealed() {
		res.Answer = card.Answer
	}
	return res, nil
}

func (s *materialService) RequestGeneration(ctx context.Context, userId uuid.UUID, documentId uuid.UUID, materialType string) (*dto.GenerateMaterialResponse, error) {
	if !validMaterialType(materialType) {
		return nil, fmt.Errorf("unknown material type %q", materialType)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	doc, err := uow.DocumentRepository().FindOne(ctx,
		specification.ByID{ID: documentId},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, fmt.Errorf("document not found or access denied")
	}

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}
	if user.Credits < constant.AiOperationCreditCost {
		return nil, &dto.InsufficientCreditsError{
			Required: constant.AiOperationCreditCost,
			Balance:  user.Credits,
		}
	}

	payload := dto.PublishGenerateMaterialMessage{
		DocumentId: documentId,
		UserId:     userId,
		Type:       materialType,
	}
	payloadJson, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	if err := s.publisherService.Publish(ctx, payloadJson); err != nil {
		return nil, err
	}

	return &dto.GenerateMaterialResponse{
		DocumentId: documentId,
		Type:       materialType,
		Status:     "queued",
	}, nil
}
