package tick

import (
	"sync/atomic"
	"time"
	_ "unsafe" // Required for go:linkname
)

// nanotime returns the current monotonic time in nanoseconds.
//
//go:linkname nanotime runtime.nanotime
func nanotime() int64

// AtomicTicker is the default status ticker of the foreground loop. A check
// costs one clock read and one atomic load, so the busy-wait stays close to
// a bare counter poll.
type AtomicTicker struct {
	period int64 // nanoseconds
	last   atomic.Int64
	fired  atomic.Uint64
}

// NewAtomicTicker creates an AtomicTicker. A non-positive interval falls
// back to DefaultInterval.
func NewAtomicTicker(interval time.Duration) *AtomicTicker {
	if interval <= 0 {
		interval = DefaultInterval
	}
	t := &AtomicTicker{period: int64(interval)}
	t.last.Store(nanotime())
	return t
}

// Tick reports whether a period has passed since the last reported tick.
// Only the caller that wins the compare-and-swap sees a given tick.
func (t *AtomicTicker) Tick() bool {
	prev := t.last.Load()
	now := nanotime()
	if now-prev < t.period || !t.last.CompareAndSwap(prev, now) {
		return false
	}
	t.fired.Add(1)
	return true
}

// Fired returns the number of ticks reported so far.
func (t *AtomicTicker) Fired() uint64 {
	return t.fired.Load()
}

// Reset starts a new period from now.
func (t *AtomicTicker) Reset() {
	t.last.Store(nanotime())
}

// Stop is a no-op.
func (t *AtomicTicker) Stop() {}

func (t *AtomicTicker) Interval() time.Duration {
	return time.Duration(t.period)
}
