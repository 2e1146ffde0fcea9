package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"studysage-be/internal/constant"
	"studysage-be/internal/dto"
	"studysage-be/internal/entity"
	"studysage-be/internal/repository/memory"
	"studysage-be/internal/repository/specification"
	"studysage-be/internal/repository/unitofwork"
	"studysage-be/pkg/events"
	pkgnats "studysage-be/pkg/nats"
	"studysage-be/pkg/store"
	"studysage-be/pkg/study/module"

	"github.com/google/uuid"
)

type ISessionService interface {
	GetAll(ctx context.Context, userId uuid.UUID) ([]*dto.SessionResponse, error)
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateSessionRequest) (*dto.SessionResponse, error)
	Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.SessionResponse, error)
	Update(ctx context.Context, userId uuid.UUID, id uuid.UUID, req *dto.UpdateSessionRequest) (*dto.SessionResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
}

type sessionService struct {
	uowFactory     unitofwork.RepositoryFactory
	stateRepo      *memory.ModuleStateRepository
	eventPublisher *pkgnats.Publisher
}

func NewSessionService(
	uowFactory unitofwork.RepositoryFactory,
	stateRepo *memory.ModuleStateRepository,
	eventPublisher *pkgnats.Publisher,
) ISessionService {
	return &sessionService{
		uowFactory:     uowFactory,
		stateRepo:      stateRepo,
		eventPublisher: eventPublisher,
	}
}

func sessionToResponse(s *entity.StudySession) *dto.SessionResponse {
	return &dto.SessionResponse{
		Id:        s.Id,
		Type:      s.Type,
		Name:      s.Name,
		Config:    s.Config,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func (s *sessionService) GetAll(ctx context.Context, userId uuid.UUID) ([]*dto.SessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sessions, err := uow.StudySessionRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.SessionResponse, 0, len(sessions))
	for _, session := range sessions {
		result = append(result, sessionToResponse(session))
	}
	return result, nil
}

func (s *sessionService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateSessionRequest) (*dto.SessionResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("session name must not be blank")
	}

	sessionType, err := module.ParseSessionType(req.Type)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	session := entity.StudySession{
		Id:        uuid.New(),
		UserId:    userId,
		Type:      string(sessionType),
		Name:      name,
		Config:    req.Config,
		CreatedAt: time.Now(),
	}

	if err := uow.StudySessionRepository().Create(ctx, &session); err != nil {
		return nil, err
	}

	s.stateRepo.Save(&store.ModuleState{
		SessionID: session.Id.String(),
		UserID:    userId.String(),
		Type:      session.Type,
		State:     store.StateReady,
	})

	// Notification is auxiliary; log but don't fail the request.
	if s.eventPublisher != nil {
		evt := events.New(constant.EventSessionCreated, map[string]interface{}{
			"session_id": session.Id,
			"user_id":    userId,
			"name":       session.Name,
			"type":       session.Type,
		})
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish SESSION_CREATED event: %v\n", err)
		}
	}

	return sessionToResponse(&session), nil
}

func (s *sessionService) Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.SessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.StudySessionRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, fmt.Errorf("session not found or access denied")
	}

	return sessionToResponse(session), nil
}

func (s *sessionService) Update(ctx context.Context, userId uuid.UUID, id uuid.UUID, req *dto.UpdateSessionRequest) (*dto.SessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.StudySessionRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, fmt.Errorf("session not found or access denied")
	}

	// Type is immutable after creation; only name and config can change.
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("session name must not be blank")
		}
		session.Name = name
	}
	if req.Config != nil {
		session.Config = req.Config
	}
	now := time.Now()
	session.UpdatedAt = &now

	if err := uow.StudySessionRepository().Update(ctx, session); err != nil {
		return nil, err
	}

	return sessionToResponse(session), nil
}

// Delete removes the session and everything hanging off it in one
// transaction: the message log, session-scoped documents, their generated
// materials and progress rows. Global documents survive, they belong to the
// user, not the session.
func (s *sessionService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.StudySessionRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if session == nil {
		return fmt.Errorf("session not found or access denied")
	}

	sessionDocs, err := uow.DocumentRepository().FindAll(ctx,
		specification.BySessionID{SessionID: id},
		specification.FilterBy{Field: "is_global", Value: false},
	)
	if err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.ChatMessageRepository().DeleteAllBySessionId(ctx, id); err != nil {
		return err
	}

	for _, doc := range sessionDocs {
		materials, err := uow.StudyMaterialRepository().FindAll(ctx,
			specification.ByDocumentID{DocumentID: doc.Id},
		)
		if err != nil {
			return err
		}
		materialIds := make([]uuid.UUID, 0, len(materials))
		for _, m := range materials {
			materialIds = append(materialIds, m.Id)
		}
		if err := uow.StudyProgressRepository().DeleteAllByMaterialIds(ctx, materialIds); err != nil {
			return err
		}
		if err := uow.StudyMaterialRepository().DeleteAllByDocumentId(ctx, doc.Id); err != nil {
			return err
		}
		if err := uow.DocumentRepository().Delete(ctx, doc.Id); err != nil {
			return err
		}
	}

	if err := uow.StudySessionRepository().Delete(ctx, id); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	s.stateRepo.Delete(id.String())

	if s.eventPublisher != nil {
		evt := events.New(constant.EventSessionDeleted, map[string]interface{}{
			"session_id": id,
			"user_id":    userId,
			"name":       session.Name,
		})
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish SESSION_DELETED event: %v\n", err)
		}
	}

	return nil
}
