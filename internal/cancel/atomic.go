package cancel

import (
	"context"
	"sync/atomic"
)

// AtomicCanceler uses an atomic.Bool for cancellation signaling.
//
// Each call to Done() performs a single atomic load.
type AtomicCanceler struct {
	done atomic.Bool
}

// NewAtomic creates a new AtomicCanceler.
func NewAtomic() *AtomicCanceler {
	return &AtomicCanceler{}
}

// FromContext returns an AtomicCanceler that is cancelled when ctx is done.
// The returned stop function detaches it from ctx.
func FromContext(ctx context.Context) (*AtomicCanceler, func() bool) {
	a := NewAtomic()
	stop := context.AfterFunc(ctx, a.Cancel)
	return a, stop
}

// Done returns true if cancellation has been triggered.
func (a *AtomicCanceler) Done() bool {
	return a.done.Load()
}

// Cancel triggers cancellation.
//
// Safe to call multiple times; subsequent calls are no-ops.
func (a *AtomicCanceler) Cancel() {
	a.done.Store(true)
}

// Reset clears the cancellation flag.
//
// Not safe to call concurrently with Done() or Cancel().
func (a *AtomicCanceler) Reset() {
	a.done.Store(false)
}
