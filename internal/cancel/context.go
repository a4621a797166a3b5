package cancel

import "context"

// ContextCanceler is a stop signal read straight from a context.
//
// Each call to Done() selects on ctx.Done(), so the loop sees the signal
// without a bridge, at the price of a channel select per iteration.
type ContextCanceler struct {
	ctx  context.Context
	stop context.CancelFunc
}

// NewContext returns a ContextCanceler derived from parent. Cancel stops
// only the derived context.
func NewContext(parent context.Context) *ContextCanceler {
	ctx, stop := context.WithCancel(parent)
	return &ContextCanceler{ctx: ctx, stop: stop}
}

// Done returns true once the parent is done or Cancel has been called.
func (c *ContextCanceler) Done() bool {
	select {
	case <-c.ctx.Done():
		return true
	default:
	}
	return false
}

// Cancel releases the derived context. Safe to call multiple times.
func (c *ContextCanceler) Cancel() {
	c.stop()
}

// Context returns the derived context.
func (c *ContextCanceler) Context() context.Context {
	return c.ctx
}
