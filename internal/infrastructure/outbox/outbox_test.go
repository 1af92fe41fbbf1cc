package outbox

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	domoutbox "github.com/bexiiiii/euroline-sub001/internal/domain/outbox"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type testEvent struct{ name string }

func (e testEvent) EventName() string { return e.name }

func TestBusDeliversToEverySubscriber(t *testing.T) {
	bus := NewBus(nil, WithConcurrency(2))

	var got atomic.Int32
	var wg sync.WaitGroup
	wg.Add(4)
	for range 2 {
		bus.Subscribe("cart.item_added", func(_ context.Context, e domoutbox.Event) error {
			defer wg.Done()
			assert.Equal(t, "cart.item_added", e.EventName())
			got.Add(1)
			return nil
		})
	}
	bus.Subscribe("cart.add_failed", func(context.Context, domoutbox.Event) error {
		t.Error("unexpected delivery")
		return nil
	})

	bus.Start(context.Background())
	require.NoError(t, bus.Publish(context.Background(), testEvent{name: "cart.item_added"}))
	require.NoError(t, bus.Publish(context.Background(), testEvent{name: "cart.item_added"}))
	require.NoError(t, bus.Publish(context.Background(), testEvent{name: "nobody.listens"}))

	wg.Wait()
	require.NoError(t, bus.Stop(context.Background()))
	assert.Equal(t, int32(4), got.Load())
}

func TestBusSurvivesHandlerPanicAndError(t *testing.T) {
	bus := NewBus(nil)

	delivered := make(chan struct{}, 1)
	bus.Subscribe("e", func(context.Context, domoutbox.Event) error { panic("boom") })
	bus.Subscribe("e", func(context.Context, domoutbox.Event) error { return errors.New("nope") })
	bus.Subscribe("e", func(context.Context, domoutbox.Event) error {
		delivered <- struct{}{}
		return nil
	})

	bus.Start(context.Background())
	require.NoError(t, bus.Publish(context.Background(), testEvent{name: "e"}))

	select {
	case <-delivered:
	case <-time.After(time.Second):
		t.Fatal("event not delivered")
	}
	require.NoError(t, bus.Stop(context.Background()))
}

func TestBusStopDrainsQueue(t *testing.T) {
	bus := NewBus(nil)

	var got atomic.Int32
	bus.Subscribe("e", func(context.Context, domoutbox.Event) error {
		got.Add(1)
		return nil
	})

	for range 10 {
		require.NoError(t, bus.Publish(context.Background(), testEvent{name: "e"}))
	}
	bus.Start(context.Background())
	require.NoError(t, bus.Stop(context.Background()))

	assert.Equal(t, int32(10), got.Load())
	require.ErrorIs(t, bus.Publish(context.Background(), testEvent{name: "e"}), ErrClosed)
}

func TestBusStopWithoutStart(t *testing.T) {
	bus := NewBus(nil)
	require.NoError(t, bus.Publish(context.Background(), testEvent{name: "e"}))
	require.NoError(t, bus.Stop(context.Background()))
}

func TestBusPublishRespectsContextWhenFull(t *testing.T) {
	bus := NewBus(nil, WithQueueSize(1))
	require.NoError(t, bus.Publish(context.Background(), testEvent{name: "e"}))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	require.ErrorIs(t, bus.Publish(ctx, testEvent{name: "e"}), context.DeadlineExceeded)

	require.NoError(t, bus.Stop(context.Background()))
}

func TestBusIgnoresNilEvent(t *testing.T) {
	bus := NewBus(nil)
	require.NoError(t, bus.Publish(context.Background(), nil))
	require.NoError(t, bus.Stop(context.Background()))
}
