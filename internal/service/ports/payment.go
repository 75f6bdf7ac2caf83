package ports

import (
	"context"

	"github.com/stpnv0/RentalShop/internal/domain"
)

// PaymentBuilder authorises a payment for the locked rental and may update the
// rental's status, which is persisted together with the payment.
type PaymentBuilder func(rental *domain.Rental) (*domain.Payment, error)

type PaymentRepo interface {
	CreateForRental(ctx context.Context, rentalID string, build PaymentBuilder) (*domain.Payment, *domain.Rental, error)
	GetByID(ctx context.Context, id string) (*domain.Payment, error)
}
