package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stpnv0/RentalShop/internal/domain"
	"github.com/stpnv0/RentalShop/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var errCacheDown = errors.New("cache down")

func newItemService(t *testing.T) (*ItemService, *mocks.MockItemRepo, *mocks.MockItemCache) {
	repo := mocks.NewMockItemRepo(t)
	cache := mocks.NewMockItemCache(t)
	return NewItemService(repo, cache, newTestLogger(t)), repo, cache
}

func TestItemService_Create_Success(t *testing.T) {
	svc, repo, _ := newItemService(t)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	item, err := svc.Create(context.Background(), domain.CreateItemInput{
		OwnerID:   ownerID,
		Name:      "Tent",
		Category:  "outdoor",
		DailyRate: decimal.RequireFromString("12.345"),
	})

	require.NoError(t, err)
	assert.NotEmpty(t, item.ID)
	assert.True(t, item.IsAvailable)
	assert.Equal(t, "12.35", item.DailyRate.StringFixed(2))
}

func TestItemService_Create_RateOutOfRange(t *testing.T) {
	svc, _, _ := newItemService(t)

	for _, rate := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-5), decimal.RequireFromString("10000000000")} {
		_, err := svc.Create(context.Background(), domain.CreateItemInput{
			OwnerID:   ownerID,
			Name:      "Tent",
			Category:  "outdoor",
			DailyRate: rate,
		})
		assert.ErrorIs(t, err, domain.ErrValidation)
	}
}

func TestItemService_Create_MissingName(t *testing.T) {
	svc, _, _ := newItemService(t)

	_, err := svc.Create(context.Background(), domain.CreateItemInput{
		OwnerID:   ownerID,
		Category:  "outdoor",
		DailyRate: decimal.NewFromInt(1),
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestItemService_Get_CacheHit(t *testing.T) {
	svc, _, cache := newItemService(t)

	cache.EXPECT().Get(mock.Anything, itemID).Return(camera(), nil)

	item, err := svc.Get(context.Background(), itemID)

	require.NoError(t, err)
	assert.Equal(t, "Camera", item.Name)
}

func TestItemService_Get_CacheMissFillsCache(t *testing.T) {
	svc, repo, cache := newItemService(t)
	item := camera()

	cache.EXPECT().Get(mock.Anything, itemID).Return(nil, errCacheDown)
	repo.EXPECT().GetByID(mock.Anything, itemID).Return(item, nil)
	cache.EXPECT().Set(mock.Anything, item).Return(errCacheDown)

	got, err := svc.Get(context.Background(), itemID)

	require.NoError(t, err)
	assert.Equal(t, item, got)
}

func TestItemService_Get_NotFound(t *testing.T) {
	svc, repo, cache := newItemService(t)

	cache.EXPECT().Get(mock.Anything, itemID).Return(nil, errCacheDown)
	repo.EXPECT().GetByID(mock.Anything, itemID).Return(nil, domain.ErrItemNotFound)

	_, err := svc.Get(context.Background(), itemID)

	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestItemService_Update_Success(t *testing.T) {
	svc, repo, cache := newItemService(t)
	rate := decimal.NewFromInt(40)
	unavailable := false

	repo.EXPECT().GetByID(mock.Anything, itemID).Return(camera(), nil)
	repo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)
	cache.EXPECT().Delete(mock.Anything, itemID).Return(nil)

	item, err := svc.Update(context.Background(), domain.UpdateItemInput{
		ItemID:      itemID,
		ActorID:     ownerID,
		DailyRate:   &rate,
		IsAvailable: &unavailable,
	})

	require.NoError(t, err)
	assert.Equal(t, "40.00", item.DailyRate.StringFixed(2))
	assert.False(t, item.IsAvailable)
	assert.Equal(t, "Camera", item.Name)
}

func TestItemService_Update_NotOwner(t *testing.T) {
	svc, repo, _ := newItemService(t)
	name := "Stolen"

	repo.EXPECT().GetByID(mock.Anything, itemID).Return(camera(), nil)

	_, err := svc.Update(context.Background(), domain.UpdateItemInput{ItemID: itemID, ActorID: renterID, Name: &name})

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestItemService_Update_NonPositiveRate(t *testing.T) {
	svc, _, _ := newItemService(t)
	rate := decimal.Zero

	_, err := svc.Update(context.Background(), domain.UpdateItemInput{ItemID: itemID, ActorID: ownerID, DailyRate: &rate})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestItemService_Delete(t *testing.T) {
	svc, repo, cache := newItemService(t)

	repo.EXPECT().GetByID(mock.Anything, itemID).Return(camera(), nil)
	repo.EXPECT().Delete(mock.Anything, itemID).Return(nil)
	cache.EXPECT().Delete(mock.Anything, itemID).Return(errCacheDown)

	err := svc.Delete(context.Background(), itemID, ownerID)

	require.NoError(t, err)
}

func TestItemService_Delete_NotOwner(t *testing.T) {
	svc, repo, _ := newItemService(t)

	repo.EXPECT().GetByID(mock.Anything, itemID).Return(camera(), nil)

	err := svc.Delete(context.Background(), itemID, renterID)

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestItemService_ListAndCategories(t *testing.T) {
	svc, repo, _ := newItemService(t)
	filter := domain.ItemFilter{Category: "photo", Search: "cam"}

	repo.EXPECT().List(mock.Anything, filter).Return([]*domain.Item{camera()}, nil)
	repo.EXPECT().Categories(mock.Anything).Return([]string{"outdoor", "photo"}, nil)

	items, err := svc.List(context.Background(), filter)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	categories, err := svc.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"outdoor", "photo"}, categories)
}

func TestItemService_List_InvalidOwnerID(t *testing.T) {
	svc, _, _ := newItemService(t)

	_, err := svc.List(context.Background(), domain.ItemFilter{OwnerID: "abc"})

	assert.ErrorIs(t, err, domain.ErrValidation)
}
