package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPayment_Success(t *testing.T) {
	r := &Rental{
		ID:          "r1",
		RenterID:    "renter-1",
		OwnerID:     "owner-1",
		TotalAmount: decimal.NewFromInt(80),
		Status:      RentalStatusPending,
	}
	now := time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC)

	p, err := NewPayment("p1", r, "renter-1", "", now)

	require.NoError(t, err)
	assert.Equal(t, PaymentMethodCard, p.Method)
	assert.Equal(t, PaymentStatusCompleted, p.Status)
	assert.True(t, r.TotalAmount.Equal(p.Amount))
	assert.Equal(t, "TXN_20240601103000_r1", p.TransactionID)
	assert.True(t, p.CanView("owner-1"))
	assert.True(t, p.CanView("renter-1"))
	assert.False(t, p.CanView("someone"))
}

func TestNewPayment_Errors(t *testing.T) {
	now := time.Now()

	r := &Rental{ID: "r1", RenterID: "renter-1", OwnerID: "owner-1", Status: RentalStatusPending}
	_, err := NewPayment("p1", r, "owner-1", PaymentMethodCash, now)
	assert.ErrorIs(t, err, ErrUnauthorized)

	for _, s := range []RentalStatus{RentalStatusCompleted, RentalStatusCancelled} {
		r.Status = s
		_, err = NewPayment("p1", r, "renter-1", PaymentMethodCash, now)
		assert.ErrorIs(t, err, ErrInvalidRentalState)
	}
}

func TestRental_MarkPaid(t *testing.T) {
	for _, s := range ActiveStatuses {
		r := &Rental{Status: s}
		r.MarkPaid(time.Now())
		assert.Equal(t, RentalStatusConfirmed, r.Status)
	}
}
