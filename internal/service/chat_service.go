package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"studysage-be/internal/constant"
	"studysage-be/internal/dto"
	"studysage-be/internal/entity"
	"studysage-be/internal/pkg/logger"
	"studysage-be/internal/repository/memory"
	"studysage-be/internal/repository/specification"
	"studysage-be/internal/repository/unitofwork"
	"studysage-be/pkg/assistant"
	"studysage-be/pkg/store"
	"studysage-be/pkg/study/module"
	"studysage-be/pkg/study/scope"
	"studysage-be/pkg/study/transcript"

	"github.com/google/uuid"
)

type IChatService interface {
	// GetMessages returns the raw log in insertion order.
	GetMessages(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) ([]*dto.ChatMessageResponse, error)

	// GetTurns returns the log reduced to question/answer turns.
	GetTurns(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) ([]*dto.TurnResponse, error)

	// Ask runs one question through the assistant, grounded on the session's
	// document scope, and appends both sides to the log.
	Ask(ctx context.Context, userId uuid.UUID, req *dto.AskRequest) (*dto.AskResponse, error)

	// Append adds a single message to the log without an assistant round
	// trip. Used by clients that record their own context entries.
	Append(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID, req *dto.AppendMessageRequest) (*dto.ChatMessageResponse, error)

	// QuickAsk answers a question without a session; nothing is persisted.
	QuickAsk(ctx context.Context, userId uuid.UUID, req *dto.QuickAskRequest) (*dto.QuickAskResponse, error)
}

type chatService struct {
	uowFactory      unitofwork.RepositoryFactory
	documentService IDocumentService
	provider        assistant.Provider
	stateRepo       *memory.ModuleStateRepository
	logger          logger.ILogger
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	documentService IDocumentService,
	provider assistant.Provider,
	stateRepo *memory.ModuleStateRepository,
	log logger.ILogger,
) IChatService {
	return &chatService{
		uowFactory:      uowFactory,
		documentService: documentService,
		provider:        provider,
		stateRepo:       stateRepo,
		logger:          log,
	}
}

func messageToResponse(m *entity.ChatMessage) *dto.ChatMessageResponse {
	return &dto.ChatMessageResponse{
		Id:        m.Id,
		Role:      m.Role,
		Content:   m.Content,
		Sources:   m.Sources,
		CreatedAt: m.CreatedAt,
	}
}

func (s *chatService) loadSession(ctx context.Context, uow unitofwork.UnitOfWork, userId, sessionId uuid.UUID) (*entity.StudySession, error) {
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
	return session, nil
}

func (s *chatService) fetchLog(ctx context.Context, uow unitofwork.UnitOfWork, sessionId uuid.UUID) ([]*entity.ChatMessage, error) {
	return uow.ChatMessageRepository().FindAll(ctx,
		specification.BySessionID{SessionID: sessionId},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
}

func (s *chatService) GetMessages(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) ([]*dto.ChatMessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.loadSession(ctx, uow, userId, sessionId); err != nil {
		return nil, err
	}

	messages, err := s.fetchLog(ctx, uow, sessionId)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ChatMessageResponse, 0, len(messages))
	for _, m := range messages {
		result = append(result, messageToResponse(m))
	}
	return result, nil
}

func (s *chatService) GetTurns(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) ([]*dto.TurnResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.loadSession(ctx, uow, userId, sessionId); err != nil {
		return nil, err
	}

	messages, err := s.fetchLog(ctx, uow, sessionId)
	if err != nil {
		return nil, err
	}

	turns := transcript.Reduce(messages)
	result := make([]*dto.TurnResponse, 0, len(turns))
	for i := range turns {
		result = append(result, &dto.TurnResponse{
			Question: turns[i].Question,
			Answer:   turns[i].Answer,
			Sources:  turns[i].Sources,
		})
	}
	return result, nil
}

func (s *chatService) Append(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID, req *dto.AppendMessageRequest) (*dto.ChatMessageResponse, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, fmt.Errorf("message content must not be blank")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.loadSession(ctx, uow, userId, sessionId); err != nil {
		return nil, err
	}

	msg := &entity.ChatMessage{
		Id:        uuid.New(),
		SessionId: sessionId,
		Role:      req.Role,
		Content:   content,
		Sources:   req.Sources,
		CreatedAt: time.Now(),
	}

	if err := uow.ChatMessageRepository().Create(ctx, msg); err != nil {
		return nil, err
	}

	return messageToResponse(msg), nil
}

func (s *chatService) QuickAsk(ctx context.Context, userId uuid.UUID, req *dto.QuickAskRequest) (*dto.QuickAskResponse, error) {
	question := strings.TrimSpace(req.Question)
	if question == "" {
		return nil, fmt.Errorf("question must not be blank")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

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

	var answer *assistant.Answer
	if req.DocumentId != nil {
		doc, err := uow.DocumentRepository().FindOne(ctx,
			specification.ByID{ID: *req.DocumentId},
			specification.OwnedBy{UserID: userId},
		)
		if err != nil {
			return nil, err
		}
		if doc == nil {
			return nil, fmt.Errorf("document not found or access denied")
		}
		answer, err = s.provider.AskWithContext(ctx, question, []string{doc.Id.String()})
		if err != nil {
			return nil, fmt.Errorf("assistant unavailable: %w", err)
		}
	} else {
		text, err := s.provider.Ask(ctx, question)
		if err != nil {
			return nil, fmt.Errorf("assistant unavailable: %w", err)
		}
		answer = &assistant.Answer{Text: text}
	}

	balance, err := uow.UserRepository().AdjustCredits(ctx, userId, -constant.AiOperationCreditCost)
	if err != nil {
		return nil, err
	}

	sources := make([]entity.Source, 0, len(answer.Sources))
	for _, src := range answer.Sources {
		sources = append(sources, entity.Source{Filename: src.Filename, Page: src.Page})
	}

	return &dto.QuickAskResponse{
		Answer:  answer.Text,
		Sources: sources,
		Credits: balance,
	}, nil
}

func (s *chatService) Ask(ctx context.Context, userId uuid.UUID, req *dto.AskRequest) (*dto.AskResponse, error) {
	question := strings.TrimSpace(req.Question)
	if question == "" {
		return nil, fmt.Errorf("question must not be blank")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := s.loadSession(ctx, uow, userId, req.SessionId)
	if err != nil {
		return nil, err
	}

	sessionType, err := module.ParseSessionType(session.Type)
	if err != nil {
		return nil, err
	}
	profile := module.ProfileFor(sessionType)

	includeGlobal := req.IncludeGlobal && profile.GlobalDocsOptIn

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

	docs, err := s.documentService.ResolveScope(ctx, userId, req.SessionId, includeGlobal)
	if err != nil {
		return nil, err
	}

	documentIDs := make([]string, 0, len(docs))
	for _, id := range scope.IDs(docs) {
		documentIDs = append(documentIDs, id.String())
	}

	answer, err := s.provider.AskWithContext(ctx, question, documentIDs)
	if err != nil {
		s.logger.Error("Chat", "Assistant call failed", map[string]interface{}{
			"session_id": req.SessionId,
			"error":      err.Error(),
		})
		return nil, fmt.Errorf("assistant unavailable: %w", err)
	}

	// Deduct only after the assistant answered; a failed call costs nothing.
	balance, err := uow.UserRepository().AdjustCredits(ctx, userId, -constant.AiOperationCreditCost)
	if err != nil {
		return nil, err
	}

	sources := make([]entity.Source, 0, len(answer.Sources))
	for _, src := range answer.Sources {
		sources = append(sources, entity.Source{Filename: src.Filename, Page: src.Page})
	}

	now := time.Now()
	sent := &entity.ChatMessage{
		Id:        uuid.New(),
		SessionId: req.SessionId,
		Role:      constant.ChatMessageRoleUser,
		Content:   question,
		CreatedAt: now,
	}
	reply := &entity.ChatMessage{
		Id:        uuid.New(),
		SessionId: req.SessionId,
		Role:      constant.ChatMessageRoleAssistant,
		Content:   answer.Text,
		Sources:   sources,
		CreatedAt: now.Add(time.Millisecond),
	}

	// Both halves of the turn land together or not at all.
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.ChatMessageRepository().CreateBatch(ctx, []*entity.ChatMessage{sent, reply}); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	if state, ok := s.stateRepo.Get(req.SessionId.String()); ok {
		state.LastPrompt = question
		state.IncludeGlobal = includeGlobal
		s.stateRepo.Save(state)
	} else {
		s.stateRepo.Save(&store.ModuleState{
			SessionID:     req.SessionId.String(),
			UserID:        userId.String(),
			Type:          session.Type,
			State:         store.StateReady,
			IncludeGlobal: includeGlobal,
			LastPrompt:    question,
		})
	}

	s.logger.Info("Chat", "Question answered", map[string]interface{}{
		"session_id": req.SessionId,
		"documents":  len(documentIDs),
		"sources":    len(sources),
	})

	return &dto.AskResponse{
		SessionId: req.SessionId,
		Sent:      messageToResponse(sent),
		Reply:     messageToResponse(reply),
		Credits:   balance,
	}, nil
}
