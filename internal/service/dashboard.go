package service

import (
	"context"
	"fmt"

	"github.com/stpnv0/RentalShop/internal/domain"
	"github.com/stpnv0/RentalShop/internal/service/ports"
)

type DashboardService struct {
	repo ports.DashboardRepo
}

func NewDashboardService(repo ports.DashboardRepo) *DashboardService {
	return &DashboardService{repo: repo}
}

func (s *DashboardService) Stats(ctx context.Context, userID string) (*domain.DashboardStats, error) {
	stats, err := s.repo.Stats(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}
	return stats, nil
}
