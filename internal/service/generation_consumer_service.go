package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"studysage-be/internal/constant"
	"studysage-be/internal/dto"
	"studysage-be/internal/entity"
	"studysage-be/internal/repository/specification"
	"studysage-be/internal/repository/unitofwork"
	"studysage-be/pkg/assistant"
	"studysage-be/pkg/events"
	pkgnats "studysage-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IGenerationConsumerService interface {
	Consume(ctx context.Context) error
}

type generationConsumerService struct {
	pubSub         *gochannel.GoChannel
	topicName      string
	uowFactory     unitofwork.RepositoryFactory
	provider       assistant.Provider
	eventPublisher *pkgnats.Publisher
}

func NewGenerationConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	provider assistant.Provider,
	eventPublisher *pkgnats.Publisher,
) IGenerationConsumerService {
	return &generationConsumerService{
		pubSub:         pubSub,
		topicName:      topicName,
		uowFactory:     uowFactory,
		provider:       provider,
		eventPublisher: eventPublisher,
	}
}

func (cs *generationConsumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *generationConsumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishGenerateMaterialMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal generation message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Generating %s for document %s", payload.Type, payload.DocumentId)

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	doc, err := uow.DocumentRepository().FindOne(ctx, specification.ByID{ID: payload.DocumentId})
	if err != nil {
		log.Printf("[ERROR] Failed to get document %s: %v", payload.DocumentId, err)
		msg.Nack() // Nack for retriable errors
		return
	}
	if doc == nil {
		log.Printf("[ERROR] Document not found: %s", payload.DocumentId)
		msg.Ack() // Document deleted meanwhile? Ack.
		return
	}

	content, err := cs.generate(ctx, doc, payload.Type)
	if err != nil {
		log.Printf("[ERROR] Assistant failed for document %s: %v", payload.DocumentId, err)
		cs.publishEvent(ctx, constant.EventMaterialFailed, map[string]interface{}{
			"document_id": payload.DocumentId,
			"user_id":     payload.UserId,
			"type":        payload.Type,
			"filename":    doc.Filename,
		})
		msg.Nack()
		return
	}

	material := &entity.StudyMaterial{
		Id:         uuid.New(),
		UserId:     payload.UserId,
		DocumentId: payload.DocumentId,
		Type:       payload.Type,
		Content:    content,
		CreatedAt:  time.Now(),
	}

	if err := uow.Begin(ctx); err != nil {
		log.Printf("[ERROR] Failed to begin transaction: %v", err)
		msg.Nack()
		return
	}
	defer uow.Rollback()

	if err := uow.StudyMaterialRepository().Create(ctx, material); err != nil {
		log.Printf("[ERROR] Failed to persist material: %v", err)
		msg.Nack()
		return
	}

	if _, err := uow.UserRepository().AdjustCredits(ctx, payload.UserId, -constant.AiOperationCreditCost); err != nil {
		log.Printf("[ERROR] Failed to deduct credits for user %s: %v", payload.UserId, err)
		msg.Nack()
		return
	}

	if err := uow.Commit(); err != nil {
		log.Printf("[ERROR] Failed to commit transaction: %v", err)
		msg.Nack()
		return
	}

	cs.publishEvent(ctx, constant.EventMaterialGenerated, map[string]interface{}{
		"material_id": material.Id,
		"document_id": payload.DocumentId,
		"user_id":     payload.UserId,
		"type":        payload.Type,
		"filename":    doc.Filename,
	})

	log.Printf("[SUCCESS] %s generated for document %s", payload.Type, payload.DocumentId)
	msg.Ack()
}

func (cs *generationConsumerService) generate(ctx context.Context, doc *entity.Document, materialType string) (map[string]interface{}, error) {
	docID := doc.Id.String()

	switch materialType {
	case constant.MaterialTypeSummary:
		summary, err := cs.provider.Summarize(ctx, docID)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{
			"document_name": doc.Filename,
			"summary":       summary,
		}, nil

	case constant.MaterialTypeFlashcard:
		cards, err := cs.provider.GenerateFlashcards(ctx, docID)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{
			"document_name": doc.Filename,
			"flashcards":    cards,
		}, nil

	case constant.MaterialTypeMindmap:
		mindmap, err := cs.provider.GenerateMindmap(ctx, docID)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{
			"document_name": doc.Filename,
			"mindmap":       mindmap,
		}, nil
	}

	return nil, fmt.Errorf("unknown material type %q", materialType)
}

func (cs *generationConsumerService) publishEvent(ctx context.Context, eventType string, data map[string]interface{}) {
	if cs.eventPublisher == nil {
		return
	}
	if err := cs.eventPublisher.Publish(ctx, events.New(eventType, data)); err != nil {
		log.Printf("[WARN] Failed to publish %s event: %v", eventType, err)
	}
}
