// Package cancel provides the stop signal checked by the foreground
// polling loop.
//
// Implementations of the Canceler interface:
//   - ContextCanceler: wraps context.Context
//   - AtomicCanceler: a single atomic.Bool
//
// The loop calls Done() on every iteration. New picks the form by Kind:
// the atomic one is the default and FromContext bridges a context onto it.
package cancel

import (
	"context"

	"github.com/pkg/errors"
)

// Canceler provides cancellation signaling to workers.
//
// Implementations must be safe for concurrent use:
//   - Multiple goroutines may call Done() concurrently
//   - Cancel() may be called concurrently with Done()
type Canceler interface {
	// Done returns true if cancellation has been triggered.
	Done() bool

	// Cancel triggers cancellation. Safe to call multiple times.
	Cancel()
}

// Kind names a Canceler implementation.
type Kind string

const (
	KindAtomic  Kind = "atomic"
	KindContext Kind = "context"
)

// New returns a Canceler of the given kind that trips when ctx is done,
// and a release function the caller must run once the loop returns.
// An empty kind selects KindAtomic.
func New(ctx context.Context, kind Kind) (Canceler, func(), error) {
	switch kind {
	case KindAtomic, "":
		a, stop := FromContext(ctx)
		return a, func() { stop() }, nil
	case KindContext:
		c := NewContext(ctx)
		return c, c.Cancel, nil
	}
	return nil, nil, errors.Errorf("cancel: unknown canceler kind %q", kind)
}
