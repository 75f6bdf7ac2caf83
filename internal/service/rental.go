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

type RentalService struct {
	rentalRepo ports.RentalRepo
	itemRepo   ports.ItemRepo
	userRepo   ports.UserRepo
	notifier   ports.RentalNotifier
	logger     logger.Logger
	now        func() time.Time
}

func NewRentalService(
	rentalRepo ports.RentalRepo,
	itemRepo ports.ItemRepo,
	userRepo ports.UserRepo,
	notifier ports.RentalNotifier,
	logger logger.Logger,
) *RentalService {
	return &RentalService{
		rentalRepo: rentalRepo,
		itemRepo:   itemRepo,
		userRepo:   userRepo,
		notifier:   notifier,
		logger:     logger,
		now:        time.Now,
	}
}

// Create books the item for [StartDate, EndDate). Item lookup, validation,
// overlap check and insert run in a single transaction holding the item lock,
// so concurrent requests for the same item cannot both succeed.
func (s *RentalService) Create(ctx context.Context, input domain.CreateRentalInput) (*domain.Rental, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	now := s.now()
	rental, err := s.rentalRepo.CreateChecked(ctx, input.ItemID, func(item *domain.Item) (*domain.Rental, error) {
		return domain.NewRental(uuid.New().String(), item, input, now)
	})
	if err != nil {
		return nil, fmt.Errorf("create rental: %w", err)
	}

	s.logger.Info("rental created",
		logger.String("rental_id", rental.ID),
		logger.String("item_id", rental.ItemID),
		logger.String("renter_id", rental.RenterID),
		logger.String("range", rental.Range().String()),
		logger.String("total_amount", rental.TotalAmount.StringFixed(2)),
	)

	go s.notifyRequested(context.WithoutCancel(ctx), rental)

	return rental, nil
}

// CheckAvailability reports whether [start, end) is free on the item's calendar.
func (s *RentalService) CheckAvailability(ctx context.Context, itemID string, start, end time.Time) (bool, error) {
	if _, err := s.itemRepo.GetByID(ctx, itemID); err != nil {
		return false, fmt.Errorf("get item: %w", err)
	}

	rng := domain.NewDateRange(start, end)
	if !rng.Valid() {
		return false, domain.ErrInvalidDateRange
	}

	overlap, err := s.rentalRepo.HasOverlap(ctx, itemID, rng)
	if err != nil {
		return false, fmt.Errorf("check overlap: %w", err)
	}

	return !overlap, nil
}

func (s *RentalService) SetStatus(ctx context.Context, input domain.SetRentalStatusInput) (*domain.Rental, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	var previous domain.RentalStatus
	now := s.now()
	rental, err := s.rentalRepo.UpdateStatus(ctx, input.RentalID, func(r *domain.Rental) error {
		previous = r.Status
		return r.TransitionTo(input.ActorID, input.Status, now)
	})
	if err != nil {
		return nil, fmt.Errorf("update rental status: %w", err)
	}

	s.logger.Info("rental status updated",
		logger.String("rental_id", rental.ID),
		logger.String("from", string(previous)),
		logger.String("to", string(rental.Status)),
		logger.String("actor_id", input.ActorID),
	)

	if previous != rental.Status {
		go s.notifyStatusChanged(context.WithoutCancel(ctx), []*domain.Rental{rental})
	}

	return rental, nil
}

func (s *RentalService) Get(ctx context.Context, rentalID, actorID string) (*domain.Rental, error) {
	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, fmt.Errorf("get rental: %w", err)
	}

	if !rental.CanView(actorID) {
		return nil, domain.ErrUnauthorized
	}

	return rental, nil
}

func (s *RentalService) List(ctx context.Context, actorID string, role domain.RentalRole) ([]*domain.Rental, error) {
	switch role {
	case domain.RentalRoleOwner:
		return s.rentalRepo.ListByOwner(ctx, actorID)
	case domain.RentalRoleRenter, "":
		return s.rentalRepo.ListByRenter(ctx, actorID)
	default:
		return nil, fmt.Errorf("%w: role must be renter or owner", domain.ErrValidation)
	}
}

// CancelStale cancels pending rentals whose start date has passed without
// payment or owner confirmation.
func (s *RentalService) CancelStale(ctx context.Context) ([]*domain.Rental, error) {
	cancelled, err := s.rentalRepo.CancelStale(ctx, domain.DateOf(s.now()))
	if err != nil {
		return nil, fmt.Errorf("cancel stale: %w", err)
	}

	if len(cancelled) > 0 {
		s.logger.Info("stale rentals cancelled",
			logger.Int("count", len(cancelled)),
		)

		go s.notifyStatusChanged(context.WithoutCancel(ctx), cancelled)
	}

	return cancelled, nil
}

// CompleteFinished completes confirmed rentals whose end date has passed.
func (s *RentalService) CompleteFinished(ctx context.Context) ([]*domain.Rental, error) {
	completed, err := s.rentalRepo.CompleteFinished(ctx, domain.DateOf(s.now()))
	if err != nil {
		return nil, fmt.Errorf("complete finished: %w", err)
	}

	if len(completed) > 0 {
		s.logger.Info("finished rentals completed",
			logger.Int("count", len(completed)),
		)

		go s.notifyStatusChanged(context.WithoutCancel(ctx), completed)
	}

	return completed, nil
}

func (s *RentalService) notifyRequested(ctx context.Context, rental *domain.Rental) {
	owner, err := s.userRepo.GetByID(ctx, rental.OwnerID)
	if err != nil {
		s.logger.Error("failed to get owner for notification",
			logger.String("user_id", rental.OwnerID),
			logger.String("error", err.Error()),
		)
		return
	}

	s.notifier.NotifyRentalRequested(ctx, owner, rental)
}

func (s *RentalService) notifyStatusChanged(ctx context.Context, rentals []*domain.Rental) {
	for _, r := range rentals {
		renter, err := s.userRepo.GetByID(ctx, r.RenterID)
		if err != nil {
			s.logger.Error("failed to get renter for notification",
				logger.String("user_id", r.RenterID),
				logger.String("error", err.Error()),
			)
			continue
		}

		s.notifier.NotifyRentalStatusChanged(ctx, renter, r)
	}
}
