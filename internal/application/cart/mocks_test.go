package cart

import (
	"context"
	"fmt"
	"sync"

	"github.com/stretchr/testify/mock"

	domcart "github.com/bexiiiii/euroline-sub001/internal/domain/cart"
	domoutbox "github.com/bexiiiii/euroline-sub001/internal/domain/outbox"
)

type MockCartPort struct {
	mock.Mock
}

func (m *MockCartPort) AddItem(ctx context.Context, req domcart.AddRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

type MockGuard struct {
	mock.Mock
}

func (m *MockGuard) Acquire(ctx context.Context, key string) (domcart.ReleaseFunc, error) {
	args := m.Called(ctx, key)
	release, _ := args.Get(0).(domcart.ReleaseFunc)
	return release, args.Error(1)
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []domoutbox.Event
}

func (p *recordingPublisher) Publish(_ context.Context, e domoutbox.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return nil
}

func (p *recordingPublisher) namesOrEmpty() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.events) == 0 {
		return nil
	}
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.EventName())
	}
	return out
}

type sequentialIDs struct {
	mu sync.Mutex
	n  int
}

func (g *sequentialIDs) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("evt-%d", g.n)
}
