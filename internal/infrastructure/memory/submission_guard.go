package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bexiiiii/euroline-sub001/internal/domain/cart"
)

const defaultSubmissionTTL = 30 * time.Second

type submission struct {
	owner   string
	expires time.Time
}

// SubmissionGuard is a process-local cart.Guard. Entries expire after ttl so a
// lost release cannot block a part forever.
type SubmissionGuard struct {
	mu      sync.Mutex
	entries map[string]submission
	ttl     time.Duration
	now     func() time.Time
}

func NewSubmissionGuard(ttl time.Duration) *SubmissionGuard {
	if ttl <= 0 {
		ttl = defaultSubmissionTTL
	}
	return &SubmissionGuard{
		entries: make(map[string]submission),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (g *SubmissionGuard) Acquire(ctx context.Context, key string) (cart.ReleaseFunc, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	if held, ok := g.entries[key]; ok && now.Before(held.expires) {
		return nil, cart.ErrSubmissionInFlight
	}

	owner := uuid.NewString()
	g.entries[key] = submission{owner: owner, expires: now.Add(g.ttl)}

	return func(context.Context) error {
		g.mu.Lock()
		defer g.mu.Unlock()
		if held, ok := g.entries[key]; ok && held.owner == owner {
			delete(g.entries, key)
		}
		return nil
	}, nil
}

// Len reports the number of live entries, expired ones included until swept.
func (g *SubmissionGuard) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.entries)
}

// Sweep drops expired entries.
func (g *SubmissionGuard) Sweep() {
	g.mu.Lock()
	defer g.mu.Unlock()
	now := g.now()
	for k, s := range g.entries {
		if !now.Before(s.expires) {
			delete(g.entries, k)
		}
	}
}
