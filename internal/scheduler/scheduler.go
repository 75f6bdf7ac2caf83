package scheduler

import (
	"context"
	"time"

	"github.com/stpnv0/RentalShop/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type rentalSweeper interface {
	CancelStale(ctx context.Context) ([]*domain.Rental, error)
	CompleteFinished(ctx context.Context) ([]*domain.Rental, error)
}

// Scheduler periodically moves rentals whose dates have passed into their
// final state.
type Scheduler struct {
	rentalService rentalSweeper
	interval      time.Duration
	logger        logger.Logger
}

func New(
	rentalService rentalSweeper,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		rentalService: rentalService,
		interval:      interval,
		logger:        logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	s.sweep(ctx, "cancel stale rentals", s.rentalService.CancelStale)
	s.sweep(ctx, "complete finished rentals", s.rentalService.CompleteFinished)
}

func (s *Scheduler) sweep(ctx context.Context, name string, run func(context.Context) ([]*domain.Rental, error)) {
	rentals, err := run(ctx)
	if err != nil {
		s.logger.Error("sweep failed",
			logger.String("sweep", name),
			logger.String("error", err.Error()),
		)
		return
	}

	for _, r := range rentals {
		s.logger.Debug("rental swept",
			logger.String("sweep", name),
			logger.String("rental_id", r.ID),
			logger.String("item_id", r.ItemID),
			logger.String("status", string(r.Status)),
		)
	}
}
