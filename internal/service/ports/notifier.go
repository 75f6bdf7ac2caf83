package ports

import (
	"context"

	"github.com/stpnv0/RentalShop/internal/domain"
)

type RentalNotifier interface {
	NotifyRentalRequested(ctx context.Context, owner *domain.User, rental *domain.Rental)
	NotifyRentalStatusChanged(ctx context.Context, renter *domain.User, rental *domain.Rental)
}
