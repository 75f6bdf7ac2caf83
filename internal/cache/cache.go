package cache

import (
	"context"
	"errors"

	"github.com/stpnv0/RentalShop/internal/domain"
)

var ErrCacheMiss = errors.New("cache miss")

// Nop is used when no Redis address is configured; every read misses.
type Nop struct{}

func (Nop) Get(context.Context, string) (*domain.Item, error) { return nil, ErrCacheMiss }
func (Nop) Set(context.Context, *domain.Item) error           { return nil }
func (Nop) Delete(context.Context, string) error              { return nil }
