// Package tick provides the period sources used by the timer and the
// foreground loop.
//
// Implementations of the Ticker interface:
//   - StdTicker: time.Ticker wrapper; its channel drives the timer interrupt goroutine
//   - AtomicTicker: atomic timestamp comparison using runtime.nanotime
//   - BatchTicker: checks the clock only every N calls
//
// AtomicTicker and BatchTicker are meant for the busy-wait loop, where a
// channel select on every iteration would dominate the cost of a poll.
package tick

import (
	"time"

	"github.com/pkg/errors"
)

// Ticker signals when a time interval has elapsed.
//
// All implementations are safe for concurrent use from multiple goroutines,
// though typically only one goroutine polls Tick() in a hot loop.
type Ticker interface {
	// Tick returns true if the interval has elapsed since the last tick.
	// This is a non-blocking check.
	Tick() bool

	// Reset resets the ticker to start a new interval from now.
	Reset()

	// Stop releases any resources held by the ticker.
	// After Stop, the ticker should not be used.
	Stop()
}

// Kind names a Ticker implementation.
type Kind string

const (
	KindStd    Kind = "std"
	KindAtomic Kind = "atomic"
	KindBatch  Kind = "batch"
)

// DefaultInterval is the status report interval of the foreground loop.
const DefaultInterval = time.Second

// DefaultEvery is the batch size used by KindBatch.
const DefaultEvery = 1 << 16

// New creates a Ticker of the given kind. every is only used by KindBatch.
func New(kind Kind, interval time.Duration, every int) (Ticker, error) {
	switch kind {
	case KindStd:
		return NewTicker(interval), nil
	case KindAtomic, "":
		return NewAtomicTicker(interval), nil
	case KindBatch:
		return NewBatch(interval, every), nil
	}
	return nil, errors.Errorf("tick: unknown ticker kind %q", kind)
}
