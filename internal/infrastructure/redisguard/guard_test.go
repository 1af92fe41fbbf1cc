package redisguard

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bexiiiii/euroline-sub001/internal/domain/cart"
)

type fakeStore struct {
	mu      sync.Mutex
	values  map[string]string
	lastTTL time.Duration
	setErr  error
	deleted []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{values: map[string]string{}}
}

func (f *fakeStore) SetNX(_ context.Context, key string, value any, ttl time.Duration) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.setErr != nil {
		return false, f.setErr
	}
	f.lastTTL = ttl
	if _, ok := f.values[key]; ok {
		return false, nil
	}
	f.values[key] = value.(string)
	return true, nil
}

func (f *fakeStore) Get(_ context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.values[key]
	if !ok {
		return "", redis.Nil
	}
	return v, nil
}

func (f *fakeStore) Del(_ context.Context, keys ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, k := range keys {
		delete(f.values, k)
		f.deleted = append(f.deleted, k)
	}
	return nil
}

func TestGuardAcquireAndRelease(t *testing.T) {
	store := newFakeStore()
	g := newGuard(store, "test:", 5*time.Second)
	ctx := context.Background()

	release, err := g.Acquire(ctx, "u|OEM|BRAND")
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, store.lastTTL)
	assert.Contains(t, store.values, "test:u|OEM|BRAND")

	_, err = g.Acquire(ctx, "u|OEM|BRAND")
	require.ErrorIs(t, err, cart.ErrSubmissionInFlight)

	require.NoError(t, release(ctx))
	assert.Equal(t, []string{"test:u|OEM|BRAND"}, store.deleted)

	_, err = g.Acquire(ctx, "u|OEM|BRAND")
	require.NoError(t, err)
}

func TestGuardReleaseSkipsForeignOwner(t *testing.T) {
	store := newFakeStore()
	g := newGuard(store, "", 0)
	ctx := context.Background()

	release, err := g.Acquire(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, defaultTTL, store.lastTTL)

	// Simulate expiry followed by another replica taking the key.
	store.values[defaultPrefix+":k"] = "someone-else"

	require.NoError(t, release(ctx))
	assert.Empty(t, store.deleted)
}

func TestGuardReleaseAfterExpiry(t *testing.T) {
	store := newFakeStore()
	g := newGuard(store, "", time.Second)
	ctx := context.Background()

	release, err := g.Acquire(ctx, "k")
	require.NoError(t, err)
	delete(store.values, defaultPrefix+":k")

	require.NoError(t, release(ctx))
}

func TestGuardSetNXError(t *testing.T) {
	store := newFakeStore()
	store.setErr = errors.New("connection reset")
	g := newGuard(store, "", 0)

	_, err := g.Acquire(context.Background(), "k")
	require.Error(t, err)
	assert.NotErrorIs(t, err, cart.ErrSubmissionInFlight)
}

func TestNewRequiresClient(t *testing.T) {
	_, err := New(nil, "", 0)
	require.Error(t, err)
}
