package cache

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
	"github.com/stpnv0/RentalShop/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type ItemCache struct {
	client  *redis.Client
	baseTTL time.Duration
}

func NewItemCache(client *redis.Client, baseTTL time.Duration) *ItemCache {
	return &ItemCache{
		client:  client,
		baseTTL: baseTTL,
	}
}

func (c *ItemCache) Get(ctx context.Context, id string) (*domain.Item, error) {
	data, err := c.client.Get(ctx, cacheKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}

	var item domain.Item
	if err = json.Unmarshal(data, &item); err != nil {
		return nil, fmt.Errorf("unmarshal item: %w", err)
	}

	return &item, nil
}

// Set stores the item with a jittered TTL so entries written together do not
// expire together.
func (c *ItemCache) Set(ctx context.Context, item *domain.Item) error {
	data, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("marshal item: %w", err)
	}

	ttl := c.baseTTL + time.Duration(rand.Int63n(int64(c.baseTTL/4)+1))
	if err = c.client.Set(ctx, cacheKey(item.ID), data, ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}

	return nil
}

func (c *ItemCache) Delete(ctx context.Context, id string) error {
	if err := c.client.Del(ctx, cacheKey(id)).Err(); err != nil {
		return fmt.Errorf("redis delete: %w", err)
	}

	return nil
}

func cacheKey(id string) string {
	return fmt.Sprintf("item:%s", id)
}
