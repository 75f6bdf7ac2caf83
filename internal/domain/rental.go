package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type RentalStatus string

const (
	RentalStatusPending   RentalStatus = "pending"
	RentalStatusConfirmed RentalStatus = "confirmed"
	RentalStatusCompleted RentalStatus = "completed"
	RentalStatusCancelled RentalStatus = "cancelled"
)

// ActiveStatuses hold the item's calendar; rentals in them must never overlap.
var ActiveStatuses = []RentalStatus{RentalStatusPending, RentalStatusConfirmed}

func (s RentalStatus) Active() bool {
	return s == RentalStatusPending || s == RentalStatusConfirmed
}

func (s RentalStatus) Terminal() bool {
	return s == RentalStatusCompleted || s == RentalStatusCancelled
}

// Settable reports whether an owner may request s explicitly.
func (s RentalStatus) Settable() bool {
	switch s {
	case RentalStatusConfirmed, RentalStatusCancelled, RentalStatusCompleted:
		return true
	default:
		return false
	}
}

type Rental struct {
	ID          string          `json:"id"`
	ItemID      string          `json:"item_id"`
	RenterID    string          `json:"renter_id"`
	OwnerID     string          `json:"owner_id"`
	ItemName    string          `json:"item_name"`
	StartDate   time.Time       `json:"start_date"`
	EndDate     time.Time       `json:"end_date"`
	TotalDays   int             `json:"total_days"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Status      RentalStatus    `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type CreateRentalInput struct {
	ItemID    string    `validate:"required,uuid"`
	RenterID  string    `validate:"required,uuid"`
	StartDate time.Time `validate:"required"`
	EndDate   time.Time `validate:"required"`
}

type SetRentalStatusInput struct {
	RentalID string       `validate:"required,uuid"`
	ActorID  string       `validate:"required,uuid"`
	Status   RentalStatus
}

type RentalRole string

const (
	RentalRoleRenter RentalRole = "renter"
	RentalRoleOwner  RentalRole = "owner"
)

func (r *Rental) Range() DateRange {
	return NewDateRange(r.StartDate, r.EndDate)
}

// NewRental validates a booking request against the item it targets and
// prices it. The overlap check needs the item's calendar and is done by the
// caller under the item lock.
func NewRental(id string, item *Item, in CreateRentalInput, now time.Time) (*Rental, error) {
	rng := NewDateRange(in.StartDate, in.EndDate)
	if !rng.Valid() {
		return nil, ErrInvalidDateRange
	}
	if rng.Start.Before(DateOf(now)) {
		return nil, ErrDateInPast
	}
	if item.OwnerID == in.RenterID {
		return nil, ErrSelfRentalForbidden
	}
	if !item.IsAvailable {
		return nil, ErrItemUnavailable
	}

	days := rng.Days()
	amount := item.DailyRate.Mul(decimal.NewFromInt(int64(days)))
	if amount.GreaterThan(MaxAmount) {
		return nil, fmt.Errorf("%w: total amount %s exceeds %s", ErrValidation, amount.StringFixed(2), MaxAmount.StringFixed(2))
	}

	return &Rental{
		ID:          id,
		ItemID:      item.ID,
		RenterID:    in.RenterID,
		OwnerID:     item.OwnerID,
		ItemName:    item.Name,
		StartDate:   rng.Start,
		EndDate:     rng.End,
		TotalDays:   days,
		TotalAmount: amount,
		Status:      RentalStatusPending,
		CreatedAt:   now.UTC(),
		UpdatedAt:   now.UTC(),
	}, nil
}

// TransitionTo applies an owner-requested status change. Any settable status
// may be reached from any non-terminal one, including pending -> completed.
func (r *Rental) TransitionTo(actorID string, target RentalStatus, now time.Time) error {
	if actorID != r.OwnerID {
		return ErrUnauthorized
	}
	if !target.Settable() {
		return ErrInvalidStatus
	}
	if r.Status.Terminal() {
		return ErrInvalidRentalState
	}

	r.Status = target
	r.UpdatedAt = now.UTC()
	return nil
}

// CanView reports whether actorID is a party to the rental.
func (r *Rental) CanView(actorID string) bool {
	return actorID == r.RenterID || actorID == r.OwnerID
}
