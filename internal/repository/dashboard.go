package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/stpnv0/RentalShop/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type DashboardRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewDashboardRepo(db *dbpg.DB) *DashboardRepository {
	return &DashboardRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Stats aggregates a user's activity. Earnings and spending count completed
// rentals only.
func (r *DashboardRepository) Stats(ctx context.Context, userID string) (*domain.DashboardStats, error) {
	query := `SELECT
				(SELECT COUNT(*) FROM items WHERE owner_id = $1),
				(SELECT COUNT(*) FROM rentals WHERE renter_id = $1),
				(SELECT COUNT(*) FROM rentals r JOIN items i ON i.id = r.item_id WHERE i.owner_id = $1),
				(SELECT COALESCE(SUM(r.total_amount), 0) FROM rentals r JOIN items i ON i.id = r.item_id
				  WHERE i.owner_id = $1 AND r.status = $2),
				(SELECT COALESCE(SUM(total_amount), 0) FROM rentals WHERE renter_id = $1 AND status = $2),
				(SELECT COUNT(*) FROM rentals r JOIN items i ON i.id = r.item_id
				  WHERE i.owner_id = $1 AND r.status = $3),
				(SELECT COUNT(*) FROM rentals WHERE renter_id = $1 AND status = $3)`

	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query,
		userID, domain.RentalStatusCompleted, domain.RentalStatusPending,
	)
	if err != nil {
		return nil, fmt.Errorf("get stats: %w", err)
	}

	var s domain.DashboardStats
	if err = row.Scan(
		&s.OwnedItemsCount, &s.RentalsAsRenterCount, &s.RentalsAsOwnerCount,
		&s.TotalEarnings, &s.TotalSpending,
		&s.PendingRentalsAsOwner, &s.PendingRentalsAsRenter,
	); err != nil {
		return nil, fmt.Errorf("scan stats: %w", err)
	}

	return &s, nil
}
