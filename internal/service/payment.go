package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/RentalShop/internal/domain"
	"github.com/stpnv0/RentalShop/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type PaymentService struct {
	paymentRepo ports.PaymentRepo
	userRepo    ports.UserRepo
	notifier    ports.RentalNotifier
	logger      logger.Logger
	now         func() time.Time
}

func NewPaymentService(
	paymentRepo ports.PaymentRepo,
	userRepo ports.UserRepo,
	notifier ports.RentalNotifier,
	logger logger.Logger,
) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		userRepo:    userRepo,
		notifier:    notifier,
		logger:      logger,
		now:         time.Now,
	}
}

// Create records a placeholder payment and confirms the rental in the same
// transaction.
func (s *PaymentService) Create(ctx context.Context, input domain.CreatePaymentInput) (*domain.Payment, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	now := s.now()
	payment, rental, err := s.paymentRepo.CreateForRental(ctx, input.RentalID, func(r *domain.Rental) (*domain.Payment, error) {
		p, err := domain.NewPayment(uuid.New().String(), r, input.ActorID, input.Method, now)
		if err != nil {
			return nil, err
		}
		r.MarkPaid(now)
		return p, nil
	})
	if err != nil {
		return nil, fmt.Errorf("create payment: %w", err)
	}

	s.logger.Info("payment processed",
		logger.String("payment_id", payment.ID),
		logger.String("rental_id", payment.RentalID),
		logger.String("amount", payment.Amount.StringFixed(2)),
		logger.String("transaction_id", payment.TransactionID),
	)

	go s.notifyConfirmed(context.WithoutCancel(ctx), rental)

	return payment, nil
}

func (s *PaymentService) Get(ctx context.Context, paymentID, actorID string) (*domain.Payment, error) {
	payment, err := s.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}

	if !payment.CanView(actorID) {
		return nil, domain.ErrUnauthorized
	}

	return payment, nil
}

func (s *PaymentService) notifyConfirmed(ctx context.Context, rental *domain.Rental) {
	renter, err := s.userRepo.GetByID(ctx, rental.RenterID)
	if err != nil {
		s.logger.Error("failed to get renter for notification",
			logger.String("user_id", rental.RenterID),
			logger.String("error", err.Error()),
		)
		return
	}

	s.notifier.NotifyRentalStatusChanged(ctx, renter, rental)
}
