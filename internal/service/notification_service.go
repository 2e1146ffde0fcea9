package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"studysage-be/internal/constant"
	"studysage-be/internal/model"
	"studysage-be/internal/pkg/logger"
	"studysage-be/internal/repository"
	"studysage-be/pkg/events"
	pkgnats "studysage-be/pkg/nats"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NotificationDelivery defines how to push real-time updates.
// Typically implemented by the WebSocket Hub.
type NotificationDelivery interface {
	Send(userID uuid.UUID, notification model.Notification)
	Broadcast(notification model.Notification)
}

type NotificationService struct {
	repo       repository.NotificationRepository
	subscriber *pkgnats.Subscriber
	delivery   NotificationDelivery
	logger     logger.ILogger
}

func NewNotificationService(repo repository.NotificationRepository, sub *pkgnats.Subscriber, delivery NotificationDelivery, log logger.ILogger) *NotificationService {
	return &NotificationService{
		repo:       repo,
		subscriber: sub,
		delivery:   delivery,
		logger:     log,
	}
}

// Start begins listening to the event bus.
func (s *NotificationService) Start() {
	err := s.subscriber.Subscribe("events.>", "notif-service-worker", s.handleEvent)
	if err != nil {
		s.logger.Error("NotificationService", "Failed to start notification subscriber", map[string]interface{}{"error": err})
		return
	}
	s.logger.Info("NotificationService", "Notification service started, listening to events.>", nil)
}

// notificationTemplate maps an event code to how it surfaces to the user.
// persist=false events are pushed over the socket only.
type notificationTemplate struct {
	title   string
	body    string
	persist bool
}

var notificationTemplates = map[string]notificationTemplate{
	constant.EventMaterialGenerated: {
		title:   "Study material ready",
		body:    "Your {type} for \"{filename}\" is ready.",
		persist: true,
	},
	constant.EventMaterialFailed: {
		title:   "Generation failed",
		body:    "Could not generate a {type} for \"{filename}\". No credits were charged.",
		persist: true,
	},
	constant.EventCreditsPurchased: {
		title:   "Credits added",
		body:    "{credits} credits were added to your account.",
		persist: true,
	},
	constant.EventSessionCreated: {
		title:   "Session created",
		body:    "Study session is ready.",
		persist: false,
	},
	constant.EventSessionDeleted: {
		title:   "Session deleted",
		body:    "Study session was removed.",
		persist: false,
	},
}

func (s *NotificationService) handleEvent(ctx context.Context, event events.Event) error {
	// NATS subjects carry the stream prefix; the template map keys on the
	// bare event code.
	typeCode := strings.TrimPrefix(event.EventType(), "events.")

	tmpl, ok := notificationTemplates[typeCode]
	if !ok {
		s.logger.Warn("NotificationService", fmt.Sprintf("No template for event code '%s'", typeCode), nil)
		return nil
	}

	userID, ok := recipientFromPayload(event.Payload())
	if !ok {
		s.logger.Warn("NotificationService", fmt.Sprintf("No user_id in payload for event %s", typeCode), nil)
		return nil
	}

	notif := s.buildNotification(userID, typeCode, tmpl, event)

	if tmpl.persist {
		if err := s.repo.CreateNotification(ctx, &notif); err != nil {
			s.logger.Error("NotificationService", fmt.Sprintf("Error saving notification for user %s", userID), map[string]interface{}{"error": err})
			return err // NATS redelivers on error
		}
	}

	if s.delivery != nil {
		s.delivery.Send(userID, notif)
	}
	return nil
}

func recipientFromPayload(payload map[string]interface{}) (uuid.UUID, bool) {
	uidStr, ok := payload["user_id"].(string)
	if !ok {
		return uuid.Nil, false
	}
	uid, err := uuid.Parse(uidStr)
	if err != nil {
		return uuid.Nil, false
	}
	return uid, true
}

func (s *NotificationService) buildNotification(userID uuid.UUID, typeCode string, tmpl notificationTemplate, event events.Event) model.Notification {
	payload := event.Payload()

	body := tmpl.body
	for k, v := range payload {
		placeholder := fmt.Sprintf("{%s}", k)
		body = strings.ReplaceAll(body, placeholder, fmt.Sprintf("%v", v))
	}

	dataJSON, _ := json.Marshal(payload)

	return model.Notification{
		Id:        uuid.New(),
		UserId:    userID,
		Type:      typeCode,
		Title:     tmpl.title,
		Body:      body,
		Data:      datatypes.JSON(dataJSON),
		IsRead:    false,
		CreatedAt: time.Now(),
	}
}

// GetNotifications fetches notifications for a user.
func (s *NotificationService) GetNotifications(ctx context.Context, userID uuid.UUID, limit, offset int) ([]model.Notification, int64, error) {
	return s.repo.GetNotificationsByUserID(ctx, userID, limit, offset)
}

// GetUnreadCount fetches unread count.
func (s *NotificationService) GetUnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.repo.GetUnreadCount(ctx, userID)
}

// MarkAsRead marks a notification as read.
func (s *NotificationService) MarkAsRead(ctx context.Context, id uuid.UUID) error {
	return s.repo.MarkAsRead(ctx, id)
}

// MarkAllAsRead marks all notifications as read for a user.
func (s *NotificationService) MarkAllAsRead(ctx context.Context, userID uuid.UUID) error {
	return s.repo.MarkAllAsRead(ctx, userID)
}
