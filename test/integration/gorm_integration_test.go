package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"studysage-be/internal/constant"
	"studysage-be/internal/entity"
	"studysage-be/internal/repository/specification"
	"studysage-be/internal/repository/unitofwork"
	"studysage-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.StudySessionRepository())
	assert.NotNil(t, uow.DocumentRepository())
	assert.NotNil(t, uow.StudyMaterialRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	t.Run("Check Session Repository", func(t *testing.T) {
		count, err := uow.StudySessionRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Session count: %d", count)
	})

	t.Run("Check Document Repository", func(t *testing.T) {
		count, err := uow.DocumentRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Document count: %d", count)
	})

	t.Run("Check Transactional Session With Document", func(t *testing.T) {
		ctx := context.Background()

		userId := uuid.New()
		user := &entity.User{
			Id:                 userId,
			Email:              "test-integration-" + uuid.New().String() + "@example.com",
			FullName:           "Integration Test User",
			PasswordHash:       "not-a-real-hash",
			Credits:            10,
			SubscriptionStatus: entity.SubscriptionStatusFree,
			CreatedAt:          time.Now(),
		}

		err := uow.UserRepository().Create(ctx, user)
		assert.NoError(t, err)

		// Transaction Test
		err = uow.Begin(ctx)
		assert.NoError(t, err)
		defer uow.Rollback()

		sessionId := uuid.New()
		session := &entity.StudySession{
			Id:        sessionId,
			UserId:    userId,
			Type:      constant.SessionTypeExamPrep,
			Name:      "Integration Session",
			CreatedAt: time.Now(),
		}
		err = uow.StudySessionRepository().Create(ctx, session)
		assert.NoError(t, err)

		doc := &entity.Document{
			Id:         uuid.New(),
			UserId:     userId,
			SessionId:  &sessionId,
			Filename:   "integration.pdf",
			FilePath:   "uploads/integration.pdf",
			FileType:   "pdf",
			FileSize:   1024,
			UploadedAt: time.Now(),
		}
		err = uow.DocumentRepository().Create(ctx, doc)
		assert.NoError(t, err)

		err = uow.Commit()
		assert.NoError(t, err)

		found, err := uow.DocumentRepository().FindOne(ctx,
			specification.ByID{ID: doc.Id},
			specification.OwnedBy{UserID: userId},
		)
		assert.NoError(t, err)
		assert.NotNil(t, found)

		t.Log("Successfully created Session with Document in Transaction")
	})

	t.Run("Check Credit Adjustment Rejects Overdraft", func(t *testing.T) {
		ctx := context.Background()

		userId := uuid.New()
		user := &entity.User{
			Id:                 userId,
			Email:              "test-credits-" + uuid.New().String() + "@example.com",
			FullName:           "Credits Test User",
			PasswordHash:       "not-a-real-hash",
			Credits:            1,
			SubscriptionStatus: entity.SubscriptionStatusFree,
			CreatedAt:          time.Now(),
		}
		err := uow.UserRepository().Create(ctx, user)
		assert.NoError(t, err)

		err = uow.Begin(ctx)
		assert.NoError(t, err)
		defer uow.Rollback()

		balance, err := uow.UserRepository().AdjustCredits(ctx, userId, -1)
		assert.NoError(t, err)
		assert.Equal(t, 0, balance)

		_, err = uow.UserRepository().AdjustCredits(ctx, userId, -1)
		assert.Error(t, err)
	})
}
