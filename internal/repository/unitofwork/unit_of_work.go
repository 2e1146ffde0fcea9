package unitofwork

import (
	"context"

	"studysage-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	StudySessionRepository() contract.StudySessionRepository
	ChatMessageRepository() contract.ChatMessageRepository
	DocumentRepository() contract.DocumentRepository
	StudyMaterialRepository() contract.StudyMaterialRepository
	StudyProgressRepository() contract.StudyProgressRepository
	CreditPurchaseRepository() contract.CreditPurchaseRepository
}
