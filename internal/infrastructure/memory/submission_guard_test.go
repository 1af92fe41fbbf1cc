package memory

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bexiiiii/euroline-sub001/internal/domain/cart"
)

func TestSubmissionGuardSecondAcquireIsRefused(t *testing.T) {
	g := NewSubmissionGuard(time.Minute)
	ctx := context.Background()

	release, err := g.Acquire(ctx, "u|OEM|BRAND")
	require.NoError(t, err)

	_, err = g.Acquire(ctx, "u|OEM|BRAND")
	require.ErrorIs(t, err, cart.ErrSubmissionInFlight)

	other, err := g.Acquire(ctx, "u|OEM|OTHER")
	require.NoError(t, err)
	require.NoError(t, other(ctx))

	require.NoError(t, release(ctx))
	again, err := g.Acquire(ctx, "u|OEM|BRAND")
	require.NoError(t, err)
	require.NoError(t, again(ctx))
	assert.Zero(t, g.Len())
}

func TestSubmissionGuardExpiredEntryCanBeRetaken(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	g := NewSubmissionGuard(10 * time.Second)
	g.now = func() time.Time { return now }
	ctx := context.Background()

	stale, err := g.Acquire(ctx, "k")
	require.NoError(t, err)

	now = now.Add(11 * time.Second)
	fresh, err := g.Acquire(ctx, "k")
	require.NoError(t, err)

	// The stale holder must not release the new owner's entry.
	require.NoError(t, stale(ctx))
	_, err = g.Acquire(ctx, "k")
	require.ErrorIs(t, err, cart.ErrSubmissionInFlight)

	require.NoError(t, fresh(ctx))
	assert.Zero(t, g.Len())
}

func TestSubmissionGuardSweep(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	g := NewSubmissionGuard(time.Second)
	g.now = func() time.Time { return now }

	_, err := g.Acquire(context.Background(), "a")
	require.NoError(t, err)
	_, err = g.Acquire(context.Background(), "b")
	require.NoError(t, err)
	require.Equal(t, 2, g.Len())

	now = now.Add(2 * time.Second)
	g.Sweep()
	assert.Zero(t, g.Len())
}

func TestSubmissionGuardCanceledContext(t *testing.T) {
	g := NewSubmissionGuard(0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := g.Acquire(ctx, "k")
	require.ErrorIs(t, err, context.Canceled)
}

func TestSubmissionGuardConcurrentAcquireAdmitsOne(t *testing.T) {
	g := NewSubmissionGuard(time.Minute)
	ctx := context.Background()

	var admitted atomic.Int32
	var wg sync.WaitGroup
	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := g.Acquire(ctx, "same"); err == nil {
				admitted.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), admitted.Load())
}
