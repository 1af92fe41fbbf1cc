package cart

import "context"

// ReleaseFunc ends a submission started by Guard.Acquire.
type ReleaseFunc func(ctx context.Context) error

// Guard admits at most one in-flight add per submission key. Acquire returns
// ErrSubmissionInFlight when the key is already held.
type Guard interface {
	Acquire(ctx context.Context, key string) (ReleaseFunc, error)
}
