package bootstrap

import (
	"context"
	"log"
	"time"

	"studysage-be/internal/config"
	"studysage-be/internal/controller"
	"studysage-be/internal/handler"
	"studysage-be/internal/pkg/logger"
	"studysage-be/internal/pkg/mailer"
	"studysage-be/internal/repository/implementation"
	"studysage-be/internal/repository/memory"
	"studysage-be/internal/repository/unitofwork"
	"studysage-be/internal/service"
	"studysage-be/internal/websocket"
	"studysage-be/pkg/assistant/remote"

	pkgnats "studysage-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController     controller.IAuthController
	SessionController  controller.ISessionController
	ChatController     controller.IChatController
	DocumentController controller.IDocumentController
	MaterialController controller.IMaterialController
	ProgressController controller.IProgressController
	PaymentController  controller.IPaymentController

	// Background Services (Exposed for main.go to run)
	GenerationConsumerService service.IGenerationConsumerService

	// WebSockets & Notification
	NotificationHandler *handler.NotificationHandler
	WebSocketHub        *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// NATS
	natsPub, err := pkgnats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pkgnats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/notification.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 3. AI Assistant
	provider := remote.NewRemoteProvider(
		cfg.Assistant.BaseURL,
		cfg.Assistant.Model,
		time.Duration(cfg.Assistant.TimeoutSeconds)*time.Second,
	)
	log.Printf("[INFO] Using assistant at %s (%s)", cfg.Assistant.BaseURL, cfg.Assistant.Model)

	// In-memory session navigation state
	stateRepo := memory.NewModuleStateRepository()

	// 4. Services
	publisherService := service.NewPublisherService(cfg.Keys.MaterialTopic, pubSub)
	generationConsumer := service.NewGenerationConsumerService(
		pubSub,
		cfg.Keys.MaterialTopic,
		uowFactory,
		provider,
		natsPub,
	)

	authService := service.NewAuthService(uowFactory, emailService, cfg.Credits.SignupGrant)
	sessionService := service.NewSessionService(uowFactory, stateRepo, natsPub)
	documentService := service.NewDocumentService(uowFactory)
	chatService := service.NewChatService(uowFactory, documentService, provider, stateRepo, sysLogger)
	materialService := service.NewMaterialService(uowFactory, documentService, publisherService, stateRepo)
	progressService := service.NewProgressService(uowFactory, documentService)
	paymentService := service.NewPaymentService(uowFactory, natsPub)

	// 5. Notification System
	notifRepo := implementation.NewNotificationRepository(db)
	notifService := service.NewNotificationService(notifRepo, natsSub, wsHub, wsLogger)

	if natsSub != nil {
		go notifService.Start()
	}

	notifHandler := handler.NewNotificationHandler(notifService, wsHub, wsLogger)

	// 6. Controllers
	return &Container{
		AuthController: controller.NewAuthController(authService),
		SessionController: controller.NewSessionController(
			sessionService,
			documentService,
			materialService,
			progressService,
		),
		ChatController:     controller.NewChatController(chatService),
		DocumentController: controller.NewDocumentController(documentService, cfg.Storage.UploadDir),
		MaterialController: controller.NewMaterialController(materialService),
		ProgressController: controller.NewProgressController(progressService),
		PaymentController:  controller.NewPaymentController(paymentService),

		GenerationConsumerService: generationConsumer,

		NotificationHandler: notifHandler,
		WebSocketHub:        wsHub,
	}
}
