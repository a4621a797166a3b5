package queue

import (
	"sync/atomic"
)

// RingBuffer is a lock-free SPSC (Single-Producer Single-Consumer) queue.
//
// The timer interrupt goroutine is the only producer and the polling loop
// the only consumer. Runtime guards panic if the SPSC contract is violated,
// which would mean two timers were wired to one handoff.
type RingBuffer[T any] struct {
	buf  []T
	mask uint64

	// head and tail live on separate cache lines: the producer writes head
	// on every tick while the consumer spins reading it.
	_    [56]byte      //nolint:unused
	head atomic.Uint64 // next slot to write; producer-owned
	_    [56]byte      //nolint:unused
	tail atomic.Uint64 // next slot to read; consumer-owned
	_    [56]byte      //nolint:unused

	producing atomic.Bool
	consuming atomic.Bool
}

// NewRingBuffer creates a RingBuffer holding at least size items.
// The capacity is rounded up to a power of two.
func NewRingBuffer[T any](size int) *RingBuffer[T] {
	n := uint64(1)
	for n < uint64(size) {
		n <<= 1
	}
	return &RingBuffer[T]{
		buf:  make([]T, n),
		mask: n - 1,
	}
}

func enter(active *atomic.Bool, op string) {
	if !active.CompareAndSwap(false, true) {
		panic("queue: concurrent " + op + " on SPSC RingBuffer")
	}
}

// Push adds an item to the queue. It never blocks and returns false if
// the queue is full.
//
// SPSC CONTRACT: Only ONE goroutine may call Push().
func (r *RingBuffer[T]) Push(v T) bool {
	enter(&r.producing, "Push")
	defer r.producing.Store(false)

	head := r.head.Load()
	if head-r.tail.Load() >= uint64(len(r.buf)) {
		return false
	}
	r.buf[head&r.mask] = v
	// The store publishes the slot to the consumer.
	r.head.Store(head + 1)
	return true
}

// Pop removes and returns the oldest item. It returns false if the queue
// is empty.
//
// SPSC CONTRACT: Only ONE goroutine may call Pop().
func (r *RingBuffer[T]) Pop() (T, bool) {
	enter(&r.consuming, "Pop")
	defer r.consuming.Store(false)

	tail := r.tail.Load()
	if tail >= r.head.Load() {
		var zero T
		return zero, false
	}
	v := r.buf[tail&r.mask]
	// The store hands the slot back to the producer.
	r.tail.Store(tail + 1)
	return v, true
}

// Len returns the number of queued items. It may be stale by the time it
// returns.
func (r *RingBuffer[T]) Len() int {
	return int(r.head.Load() - r.tail.Load())
}

// Cap returns the capacity of the queue.
func (r *RingBuffer[T]) Cap() int {
	return len(r.buf)
}
