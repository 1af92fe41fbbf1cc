package redisguard

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/bexiiiii/euroline-sub001/internal/domain/cart"
)

const (
	defaultTTL    = 30 * time.Second
	defaultPrefix = "euroline:cart:submitting"
)

// store is the subset of Redis the guard needs.
type store interface {
	SetNX(ctx context.Context, key string, value any, ttl time.Duration) (bool, error)
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
}

// Guard is a cart.Guard shared by every gateway replica, built on SET NX + TTL.
type Guard struct {
	store  store
	prefix string
	ttl    time.Duration
}

// New builds a guard over a go-redis client.
func New(rdb redis.Cmdable, prefix string, ttl time.Duration) (*Guard, error) {
	if rdb == nil {
		return nil, errors.New("redisguard: redis client required")
	}
	return newGuard(cmdableStore{rdb}, prefix, ttl), nil
}

func newGuard(s store, prefix string, ttl time.Duration) *Guard {
	prefix = strings.TrimRight(strings.TrimSpace(prefix), ":")
	if prefix == "" {
		prefix = defaultPrefix
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Guard{store: s, prefix: prefix, ttl: ttl}
}

func (g *Guard) key(k string) string {
	return g.prefix + ":" + k
}

func (g *Guard) Acquire(ctx context.Context, key string) (cart.ReleaseFunc, error) {
	redisKey := g.key(key)
	owner := uuid.NewString()

	ok, err := g.store.SetNX(ctx, redisKey, owner, g.ttl)
	if err != nil {
		return nil, fmt.Errorf("redisguard: setnx: %w", err)
	}
	if !ok {
		return nil, cart.ErrSubmissionInFlight
	}

	return func(ctx context.Context) error {
		value, err := g.store.Get(ctx, redisKey)
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return nil
			}
			return fmt.Errorf("redisguard: read owner: %w", err)
		}
		if value != owner {
			return nil
		}
		if err := g.store.Del(ctx, redisKey); err != nil {
			return fmt.Errorf("redisguard: delete: %w", err)
		}
		return nil
	}, nil
}

type cmdableStore struct {
	rdb redis.Cmdable
}

func (s cmdableStore) SetNX(ctx context.Context, key string, value any, ttl time.Duration) (bool, error) {
	return s.rdb.SetNX(ctx, key, value, ttl).Result()
}

func (s cmdableStore) Get(ctx context.Context, key string) (string, error) {
	return s.rdb.Get(ctx, key).Result()
}

func (s cmdableStore) Del(ctx context.Context, keys ...string) error {
	return s.rdb.Del(ctx, keys...).Err()
}
