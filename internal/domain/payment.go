package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentMethodCard         PaymentMethod = "card"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodCash         PaymentMethod = "cash"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

type Payment struct {
	ID            string          `json:"id"`
	RentalID      string          `json:"rental_id"`
	Amount        decimal.Decimal `json:"amount"`
	Method        PaymentMethod   `json:"method"`
	TransactionID string          `json:"transaction_id"`
	Status        PaymentStatus   `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`

	// Parties of the paid rental, joined for authorization.
	RenterID string `json:"-"`
	OwnerID  string `json:"-"`
}

type CreatePaymentInput struct {
	RentalID string        `validate:"required,uuid"`
	ActorID  string        `validate:"required,uuid"`
	Method   PaymentMethod `validate:"omitempty,oneof=card bank_transfer cash"`
}

// NewPayment records a placeholder payment for the rental. No gateway is
// contacted, so the payment is born completed.
func NewPayment(id string, r *Rental, actorID string, method PaymentMethod, now time.Time) (*Payment, error) {
	if actorID != r.RenterID {
		return nil, ErrUnauthorized
	}
	if !r.Status.Active() {
		return nil, ErrInvalidRentalState
	}
	if method == "" {
		method = PaymentMethodCard
	}

	return &Payment{
		ID:            id,
		RentalID:      r.ID,
		Amount:        r.TotalAmount,
		Method:        method,
		TransactionID: fmt.Sprintf("TXN_%s_%s", now.UTC().Format("20060102150405"), r.ID),
		Status:        PaymentStatusCompleted,
		CreatedAt:     now.UTC(),
		RenterID:      r.RenterID,
		OwnerID:       r.OwnerID,
	}, nil
}

// MarkPaid confirms the rental after a successful payment, whatever pending
// or confirmed state it was in.
func (r *Rental) MarkPaid(now time.Time) {
	r.Status = RentalStatusConfirmed
	r.UpdatedAt = now.UTC()
}

func (p *Payment) CanView(actorID string) bool {
	return actorID == p.RenterID || actorID == p.OwnerID
}
