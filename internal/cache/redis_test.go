package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stpnv0/RentalShop/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*ItemCache, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewItemCache(client, 10*time.Minute), mr
}

func testItem() *domain.Item {
	return &domain.Item{
		ID:          "item-1",
		OwnerID:     "owner-1",
		Name:        "Kayak",
		Category:    "water",
		DailyRate:   decimal.RequireFromString("45.90"),
		IsAvailable: true,
		CreatedAt:   time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt:   time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestItemCache_SetGet(t *testing.T) {
	c, _ := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, testItem()))

	got, err := c.Get(ctx, "item-1")
	require.NoError(t, err)
	assert.Equal(t, "Kayak", got.Name)
	assert.Equal(t, "45.90", got.DailyRate.StringFixed(2))
	assert.True(t, got.IsAvailable)
}

func TestItemCache_Miss(t *testing.T) {
	c, _ := setupTestRedis(t)

	got, err := c.Get(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrCacheMiss)
	assert.Nil(t, got)
}

func TestItemCache_InvalidJSON(t *testing.T) {
	c, mr := setupTestRedis(t)
	require.NoError(t, mr.Set(cacheKey("item-1"), "{not json"))

	_, err := c.Get(context.Background(), "item-1")

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCacheMiss)
}

func TestItemCache_Delete(t *testing.T) {
	c, mr := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, testItem()))
	require.NoError(t, c.Delete(ctx, "item-1"))

	assert.False(t, mr.Exists(cacheKey("item-1")))
	_, err := c.Get(ctx, "item-1")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestItemCache_TTLJitter(t *testing.T) {
	c, mr := setupTestRedis(t)

	require.NoError(t, c.Set(context.Background(), testItem()))

	ttl := mr.TTL(cacheKey("item-1"))
	assert.GreaterOrEqual(t, ttl, 10*time.Minute)
	assert.LessOrEqual(t, ttl, 10*time.Minute+10*time.Minute/4)
}

func TestItemCache_ServerDown(t *testing.T) {
	c, mr := setupTestRedis(t)
	mr.Close()

	_, err := c.Get(context.Background(), "item-1")

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCacheMiss)
}

func TestNop(t *testing.T) {
	var n Nop
	ctx := context.Background()

	require.NoError(t, n.Set(ctx, testItem()))
	_, err := n.Get(ctx, "item-1")
	assert.ErrorIs(t, err, ErrCacheMiss)
	assert.NoError(t, n.Delete(ctx, "item-1"))
}
