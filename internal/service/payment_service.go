package service

import (
	"context"
	"crypto/sha512"
	"fmt"
	"os"
	"time"

	"studysage-be/internal/constant"
	"studysage-be/internal/dto"
	"studysage-be/internal/entity"
	"studysage-be/internal/repository/specification"
	"studysage-be/internal/repository/unitofwork"
	"studysage-be/pkg/events"
	pkgnats "studysage-be/pkg/nats"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/coreapi"
	"github.com/midtrans/midtrans-go/snap"
)

type IPaymentService interface {
	// PurchaseCredits opens a pending purchase and returns the Snap token
	// the frontend needs to launch the payment popup.
	PurchaseCredits(ctx context.Context, userId uuid.UUID, req *dto.PurchaseCreditsRequest) (*dto.PurchaseCreditsResponse, error)

	// HandleNotification processes the Midtrans server-to-server webhook.
	HandleNotification(ctx context.Context, req *dto.MidtransWebhookRequest) error

	// VerifyPurchase re-checks the transaction status against Midtrans,
	// settling the purchase if payment went through while the webhook was
	// missed.
	VerifyPurchase(ctx context.Context, userId uuid.UUID, req *dto.VerifyPurchaseRequest) (*dto.VerifyPurchaseResponse, error)

	GetHistory(ctx context.Context, userId uuid.UUID) ([]*dto.PurchaseHistoryResponse, error)
}

type paymentService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pkgnats.Publisher
}

func NewPaymentService(uowFactory unitofwork.RepositoryFactory, eventPublisher *pkgnats.Publisher) IPaymentService {
	return &paymentService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
	}
}

func midtransEnv() midtrans.EnvironmentType {
	if os.Getenv("MIDTRANS_IS_PRODUCTION") == "true" {
		return midtrans.Production
	}
	return midtrans.Sandbox
}

func (s *paymentService) PurchaseCredits(ctx context.Context, userId uuid.UUID, req *dto.PurchaseCreditsRequest) (*dto.PurchaseCreditsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}

	purchaseId := uuid.New()
	orderId := fmt.Sprintf("credits-%s", purchaseId)
	amount := int64(req.Credits) * constant.CreditUnitPriceIDR

	var sClient snap.Client
	sClient.New(os.Getenv("MIDTRANS_SERVER_KEY"), midtransEnv())

	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderId,
			GrossAmt: amount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: user.FullName,
			Email: user.Email,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    "study-credits",
				Price: constant.CreditUnitPriceIDR,
				Qty:   int32(req.Credits),
				Name:  "Study credits",
			},
		},
		EnabledPayments: snap.AllSnapPaymentType,
	}

	snapResp, midErr := sClient.CreateTransaction(snapReq)
	if midErr != nil {
		return nil, fmt.Errorf("midtrans error: %v", midErr.GetMessage())
	}

	purchase := &entity.CreditPurchase{
		Id:        purchaseId,
		UserId:    userId,
		OrderId:   orderId,
		Credits:   req.Credits,
		Amount:    amount,
		Status:    entity.PurchaseStatusPending,
		SnapToken: snapResp.Token,
		CreatedAt: time.Now(),
	}

	if err := uow.CreditPurchaseRepository().Create(ctx, purchase); err != nil {
		return nil, err
	}

	return &dto.PurchaseCreditsResponse{
		OrderId:   orderId,
		SnapToken: snapResp.Token,
		Amount:    amount,
	}, nil
}

func (s *paymentService) HandleNotification(ctx context.Context, req *dto.MidtransWebhookRequest) error {
	serverKey := os.Getenv("MIDTRANS_SERVER_KEY")
	if serverKey == "" {
		return fmt.Errorf("server configuration error")
	}

	// Midtrans signature = SHA512(order_id + status_code + gross_amount + server_key)
	signatureInput := req.OrderId + req.StatusCode + req.GrossAmount + serverKey
	expectedSignature := fmt.Sprintf("%x", sha512.Sum512([]byte(signatureInput)))
	if req.SignatureKey != expectedSignature {
		fmt.Printf("[WEBHOOK ERROR] Signature mismatch for OrderId=%s\n", req.OrderId)
		return fmt.Errorf("invalid signature")
	}

	switch req.TransactionStatus {
	case "capture", "settlement":
		return s.settle(ctx, req.OrderId)
	case "deny", "cancel", "expire":
		return s.markFailed(ctx, req.OrderId)
	default:
		// pending and unknown statuses need no action
		return nil
	}
}

func (s *paymentService) VerifyPurchase(ctx context.Context, userId uuid.UUID, req *dto.VerifyPurchaseRequest) (*dto.VerifyPurchaseResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	purchase, err := uow.CreditPurchaseRepository().FindOne(ctx,
		specification.Filter("order_id", req.OrderId),
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, fmt.Errorf("purchase not found or access denied")
	}

	if purchase.Status == entity.PurchaseStatusPending {
		var cClient coreapi.Client
		cClient.New(os.Getenv("MIDTRANS_SERVER_KEY"), midtransEnv())

		status, midErr := cClient.CheckTransaction(purchase.OrderId)
		if midErr != nil {
			return nil, fmt.Errorf("midtrans error: %v", midErr.GetMessage())
		}

		switch status.TransactionStatus {
		case "capture", "settlement":
			if err := s.settle(ctx, purchase.OrderId); err != nil {
				return nil, err
			}
			purchase.Status = entity.PurchaseStatusSettled
		case "deny", "cancel", "expire":
			if err := s.markFailed(ctx, purchase.OrderId); err != nil {
				return nil, err
			}
			purchase.Status = entity.PurchaseStatusFailed
		}
	}

	return &dto.VerifyPurchaseResponse{
		OrderId: purchase.OrderId,
		Status:  purchase.Status,
		Credits: purchase.Credits,
	}, nil
}

func (s *paymentService) GetHistory(ctx context.Context, userId uuid.UUID) ([]*dto.PurchaseHistoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	purchases, err := uow.CreditPurchaseRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.PurchaseHistoryResponse, 0, len(purchases))
	for _, p := range purchases {
		res = append(res, &dto.PurchaseHistoryResponse{
			Id:        p.Id,
			OrderId:   p.OrderId,
			Credits:   p.Credits,
			Amount:    p.Amount,
			Status:    p.Status,
			CreatedAt: p.CreatedAt,
		})
	}
	return res, nil
}

// settle flips a pending purchase to settled and grants the credits inside
// one transaction. Re-delivered notifications are no-ops.
func (s *paymentService) settle(ctx context.Context, orderId string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	purchase, err := uow.CreditPurchaseRepository().FindOne(ctx, specification.Filter("order_id", orderId))
	if err != nil {
		return err
	}
	if purchase == nil {
		return fmt.Errorf("purchase not found")
	}
	if purchase.Status == entity.PurchaseStatusSettled {
		return nil
	}

	purchase.Status = entity.PurchaseStatusSettled
	if err := uow.CreditPurchaseRepository().Update(ctx, purchase); err != nil {
		return err
	}

	balance, err := uow.UserRepository().AdjustCredits(ctx, purchase.UserId, purchase.Credits)
	if err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	if s.eventPublisher != nil {
		evt := events.New(constant.EventCreditsPurchased, map[string]interface{}{
			"user_id":  purchase.UserId,
			"order_id": purchase.OrderId,
			"credits":  purchase.Credits,
			"balance":  balance,
		})
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish %s event: %v\n", constant.EventCreditsPurchased, err)
		}
	}
	return nil
}

func (s *paymentService) markFailed(ctx context.Context, orderId string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	purchase, err := uow.CreditPurchaseRepository().FindOne(ctx, specification.Filter("order_id", orderId))
	if err != nil {
		return err
	}
	if purchase == nil {
		return fmt.Errorf("purchase not found")
	}
	if purchase.Status != entity.PurchaseStatusPending {
		return nil
	}

	purchase.Status = entity.PurchaseStatusFailed
	return uow.CreditPurchaseRepository().Update(ctx, purchase)
}
