package ports

import (
	"context"
	"time"

	"github.com/stpnv0/RentalShop/internal/domain"
)

// RentalBuilder validates a booking against the locked item and returns the
// rental to insert.
type RentalBuilder func(item *domain.Item) (*domain.Rental, error)

// RentalMutator changes a locked rental in place.
type RentalMutator func(rental *domain.Rental) error

type RentalRepo interface {
	// CreateChecked locks the item, runs build, rejects overlaps with the
	// item's active rentals and inserts, all in one transaction.
	CreateChecked(ctx context.Context, itemID string, build RentalBuilder) (*domain.Rental, error)
	HasOverlap(ctx context.Context, itemID string, rng domain.DateRange) (bool, error)
	GetByID(ctx context.Context, id string) (*domain.Rental, error)
	UpdateStatus(ctx context.Context, id string, mutate RentalMutator) (*domain.Rental, error)
	ListByRenter(ctx context.Context, renterID string) ([]*domain.Rental, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Rental, error)
	CancelStale(ctx context.Context, today time.Time) ([]*domain.Rental, error)
	CompleteFinished(ctx context.Context, today time.Time) ([]*domain.Rental, error)
}
