package ports

import (
	"context"

	"github.com/stpnv0/RentalShop/internal/domain"
)

type DashboardRepo interface {
	Stats(ctx context.Context, userID string) (*domain.DashboardStats, error)
}
