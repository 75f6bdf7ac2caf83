package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/RentalShop/internal/domain"
	"github.com/stpnv0/RentalShop/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type ItemService struct {
	repo   ports.ItemRepo
	cache  ports.ItemCache
	logger logger.Logger
}

func NewItemService(repo ports.ItemRepo, cache ports.ItemCache, logger logger.Logger) *ItemService {
	return &ItemService{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

func (s *ItemService) Create(ctx context.Context, input domain.CreateItemInput) (*domain.Item, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	if !input.DailyRate.IsPositive() || input.DailyRate.GreaterThan(domain.MaxAmount) {
		return nil, fmt.Errorf("%w: daily_rate must be positive and at most %s", domain.ErrValidation, domain.MaxAmount.StringFixed(2))
	}

	now := time.Now().UTC()
	item := &domain.Item{
		ID:          uuid.New().String(),
		OwnerID:     input.OwnerID,
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		DailyRate:   input.DailyRate.Round(2),
		Location:    input.Location,
		IsAvailable: true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}

	return item, nil
}

// Get serves catalog reads and may answer from the cache.
func (s *ItemService) Get(ctx context.Context, id string) (*domain.Item, error) {
	if item, err := s.cache.Get(ctx, id); err == nil {
		return item, nil
	}

	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err = s.cache.Set(ctx, item); err != nil {
		s.logger.Warn("failed to cache item",
			logger.String("item_id", id),
			logger.String("error", err.Error()),
		)
	}

	return item, nil
}

func (s *ItemService) List(ctx context.Context, filter domain.ItemFilter) ([]*domain.Item, error) {
	if err := validateInput(filter); err != nil {
		return nil, err
	}
	return s.repo.List(ctx, filter)
}

func (s *ItemService) Categories(ctx context.Context) ([]string, error) {
	return s.repo.Categories(ctx)
}

// Update changes the listing. Existing rentals keep the amount they were
// priced with.
func (s *ItemService) Update(ctx context.Context, input domain.UpdateItemInput) (*domain.Item, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	if input.DailyRate != nil && (!input.DailyRate.IsPositive() || input.DailyRate.GreaterThan(domain.MaxAmount)) {
		return nil, fmt.Errorf("%w: daily_rate must be positive and at most %s", domain.ErrValidation, domain.MaxAmount.StringFixed(2))
	}

	item, err := s.repo.GetByID(ctx, input.ItemID)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	if item.OwnerID != input.ActorID {
		return nil, domain.ErrUnauthorized
	}

	item.Apply(input)
	item.DailyRate = item.DailyRate.Round(2)
	item.UpdatedAt = time.Now().UTC()

	if err = s.repo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	}
	s.evict(ctx, item.ID)

	return item, nil
}

func (s *ItemService) Delete(ctx context.Context, itemID, actorID string) error {
	item, err := s.repo.GetByID(ctx, itemID)
	if err != nil {
		return fmt.Errorf("get item: %w", err)
	}
	if item.OwnerID != actorID {
		return domain.ErrUnauthorized
	}

	if err = s.repo.Delete(ctx, itemID); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	s.evict(ctx, itemID)

	s.logger.Info("item deleted",
		logger.String("item_id", itemID),
		logger.String("owner_id", actorID),
	)

	return nil
}

func (s *ItemService) evict(ctx context.Context, id string) {
	if err := s.cache.Delete(ctx, id); err != nil {
		s.logger.Warn("failed to evict cached item",
			logger.String("item_id", id),
			logger.String("error", err.Error()),
		)
	}
}
