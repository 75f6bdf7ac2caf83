package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/stpnv0/RentalShop/internal/domain"
	"github.com/stpnv0/RentalShop/internal/service/ports"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type PaymentRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewPaymentRepo(db *dbpg.DB) *PaymentRepository {
	return &PaymentRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// CreateForRental locks the rental, lets build authorise the payment, then
// stores the payment and the rental's new status together.
func (r *PaymentRepository) CreateForRental(ctx context.Context, rentalID string, build ports.PaymentBuilder) (*domain.Payment, *domain.Rental, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	rental, err := scanRental(tx.QueryRowContext(ctx, rentalSelect+` WHERE r.id = $1 FOR UPDATE OF r`, rentalID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, domain.ErrRentalNotFound
		}
		return nil, nil, fmt.Errorf("lock rental: %w", err)
	}

	payment, err := build(rental)
	if err != nil {
		return nil, nil, err
	}

	var paid bool
	if err = tx.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM payments WHERE rental_id = $1)`, rentalID).Scan(&paid); err != nil {
		return nil, nil, fmt.Errorf("check payment: %w", err)
	}
	if paid {
		return nil, nil, domain.ErrPaymentAlreadyExists
	}

	query := `INSERT INTO payments (id, rental_id, amount, method, transaction_id, status, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err = tx.ExecContext(
		ctx, query,
		payment.ID, payment.RentalID, payment.Amount, payment.Method,
		payment.TransactionID, payment.Status, payment.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, nil, domain.ErrPaymentAlreadyExists
		}
		return nil, nil, fmt.Errorf("insert payment: %w", err)
	}

	if _, err = tx.ExecContext(
		ctx, `UPDATE rentals SET status = $2, updated_at = $3 WHERE id = $1`,
		rental.ID, rental.Status, rental.UpdatedAt,
	); err != nil {
		return nil, nil, fmt.Errorf("update rental status: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("commit: %w", err)
	}

	return payment, rental, nil
}

func (r *PaymentRepository) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	query := `SELECT p.id, p.rental_id, p.amount, p.method, p.transaction_id, p.status, p.created_at,
				     r.renter_id, i.owner_id
			  FROM payments p
			  JOIN rentals r ON r.id = p.rental_id
			  JOIN items i ON i.id = r.item_id
			  WHERE p.id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}

	var p domain.Payment
	if err = row.Scan(
		&p.ID, &p.RentalID, &p.Amount, &p.Method, &p.TransactionID, &p.Status, &p.CreatedAt,
		&p.RenterID, &p.OwnerID,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("scan payment: %w", err)
	}

	return &p, nil
}
