package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/stpnv0/RentalShop/internal/domain"
	"github.com/stpnv0/RentalShop/internal/service/ports"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const rentalSelect = `SELECT r.id, r.item_id, r.renter_id, i.owner_id, i.name,
                             r.start_date, r.end_date, r.total_days, r.total_amount,
                             r.status, r.created_at, r.updated_at
                      FROM rentals r
                      JOIN items i ON i.id = r.item_id`

const rentalReturning = `RETURNING r.id, r.item_id, r.renter_id, i.owner_id, i.name,
                                   r.start_date, r.end_date, r.total_days, r.total_amount,
                                   r.status, r.created_at, r.updated_at`

type RentalRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewRentalRepo(db *dbpg.DB) *RentalRepository {
	return &RentalRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func scanRental(row rowScanner) (*domain.Rental, error) {
	var r domain.Rental
	if err := row.Scan(
		&r.ID, &r.ItemID, &r.RenterID, &r.OwnerID, &r.ItemName,
		&r.StartDate, &r.EndDate, &r.TotalDays, &r.TotalAmount,
		&r.Status, &r.CreatedAt, &r.UpdatedAt,
	); err != nil {
		return nil, err
	}
	r.StartDate = domain.DateOf(r.StartDate)
	r.EndDate = domain.DateOf(r.EndDate)
	return &r, nil
}

func scanRentals(rows *sql.Rows) ([]*domain.Rental, error) {
	defer rows.Close()

	var res []*domain.Rental
	for rows.Next() {
		r, err := scanRental(rows)
		if err != nil {
			return nil, fmt.Errorf("scan rental: %w", err)
		}
		res = append(res, r)
	}

	return res, rows.Err()
}

func (r *RentalRepository) CreateChecked(ctx context.Context, itemID string, build ports.RentalBuilder) (*domain.Rental, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	// Блокируем вещь: все бронирования одной вещи проходят последовательно
	itemQuery := `SELECT id, owner_id, name, description, category, daily_rate, location, is_available, created_at, updated_at
				  FROM items
				  WHERE id = $1
				  FOR UPDATE`
	item, err := scanItem(tx.QueryRowContext(ctx, itemQuery, itemID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("lock item: %w", err)
	}

	rental, err := build(item)
	if err != nil {
		return nil, err
	}

	overlap, err := hasOverlap(ctx, tx, itemID, rental.Range())
	if err != nil {
		return nil, err
	}
	if overlap {
		return nil, domain.ErrDateRangeConflict
	}

	query := `INSERT INTO rentals (id, item_id, renter_id, start_date, end_date, total_days, total_amount, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err = tx.ExecContext(
		ctx, query,
		rental.ID, rental.ItemID, rental.RenterID, rental.StartDate, rental.EndDate,
		rental.TotalDays, rental.TotalAmount, rental.Status, rental.CreatedAt, rental.UpdatedAt,
	)
	if err != nil {
		switch {
		case isExclusionViolation(err):
			return nil, domain.ErrDateRangeConflict
		case isForeignKeyViolation(err):
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("insert rental: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return rental, nil
}

type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func hasOverlap(ctx context.Context, q queryRower, itemID string, rng domain.DateRange) (bool, error) {
	query := `SELECT EXISTS (
				  SELECT 1 FROM rentals
				  WHERE item_id = $1
				    AND status = ANY($2)
				    AND start_date < $4
				    AND end_date > $3
			  )`

	var exists bool
	if err := q.QueryRowContext(
		ctx, query, itemID, pq.Array(domain.ActiveStatuses), rng.Start, rng.End,
	).Scan(&exists); err != nil {
		return false, fmt.Errorf("check overlap: %w", err)
	}

	return exists, nil
}

func (r *RentalRepository) HasOverlap(ctx context.Context, itemID string, rng domain.DateRange) (bool, error) {
	return hasOverlap(ctx, r.db.Master, itemID, rng)
}

func (r *RentalRepository) GetByID(ctx context.Context, id string) (*domain.Rental, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, rentalSelect+` WHERE r.id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("get rental: %w", err)
	}

	rental, err := scanRental(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRentalNotFound
		}
		return nil, fmt.Errorf("scan rental: %w", err)
	}

	return rental, nil
}

func (r *RentalRepository) UpdateStatus(ctx context.Context, id string, mutate ports.RentalMutator) (*domain.Rental, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	rental, err := scanRental(tx.QueryRowContext(ctx, rentalSelect+` WHERE r.id = $1 FOR UPDATE OF r`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRentalNotFound
		}
		return nil, fmt.Errorf("lock rental: %w", err)
	}

	if err = mutate(rental); err != nil {
		return nil, err
	}

	query := `UPDATE rentals SET status = $2, updated_at = $3 WHERE id = $1`
	if _, err = tx.ExecContext(ctx, query, rental.ID, rental.Status, rental.UpdatedAt); err != nil {
		return nil, fmt.Errorf("update rental status: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return rental, nil
}

func (r *RentalRepository) ListByRenter(ctx context.Context, renterID string) ([]*domain.Rental, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, rentalSelect+` WHERE r.renter_id = $1 ORDER BY r.created_at DESC`, renterID)
	if err != nil {
		return nil, fmt.Errorf("list rentals by renter: %w", err)
	}

	return scanRentals(rows)
}

func (r *RentalRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Rental, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, rentalSelect+` WHERE i.owner_id = $1 ORDER BY r.created_at DESC`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list rentals by owner: %w", err)
	}

	return scanRentals(rows)
}

// CancelStale cancels pending rentals that were due to start before today.
func (r *RentalRepository) CancelStale(ctx context.Context, today time.Time) ([]*domain.Rental, error) {
	query := `UPDATE rentals r
			  SET status = $2, updated_at = NOW()
			  FROM items i
			  WHERE r.item_id = i.id
			    AND r.status = $1
			    AND r.start_date < $3
			  ` + rentalReturning

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.RentalStatusPending, domain.RentalStatusCancelled, today,
	)
	if err != nil {
		return nil, fmt.Errorf("cancel stale: %w", err)
	}

	return scanRentals(rows)
}

// CompleteFinished completes confirmed rentals whose last day is behind us.
// EndDate is exclusive, so a rental ending today is already over.
func (r *RentalRepository) CompleteFinished(ctx context.Context, today time.Time) ([]*domain.Rental, error) {
	query := `UPDATE rentals r
			  SET status = $2, updated_at = NOW()
			  FROM items i
			  WHERE r.item_id = i.id
			    AND r.status = $1
			    AND r.end_date <= $3
			  ` + rentalReturning

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.RentalStatusConfirmed, domain.RentalStatusCompleted, today,
	)
	if err != nil {
		return nil, fmt.Errorf("complete finished: %w", err)
	}

	return scanRentals(rows)
}
