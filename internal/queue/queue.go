// Package queue provides the lock-free queues that can carry timer ticks
// from the interrupt goroutine to the foreground loop.
//
// Implementations of the Queue interface:
//   - RingBuffer: lock-free SPSC ring, the natural fit for one timer and one loop
//   - ChannelQueue: buffered channel
//   - ShardedQueue: go-lock-free-ring MPSC ring, one shard per producer
//
// # RingBuffer Safety (IMPORTANT)
//
// RingBuffer is a Single-Producer Single-Consumer (SPSC) queue.
// It is NOT safe for multiple goroutines to call Push() or Pop() concurrently.
// The implementation includes runtime guards that panic on misuse.
//
// Correct usage:
//   - Exactly ONE goroutine calls Push() (the timer interrupt goroutine)
//   - Exactly ONE goroutine calls Pop() (the polling loop)
package queue

import "github.com/pkg/errors"

// Queue is a single-producer single-consumer queue.
//
// Implementations are non-blocking: Push returns false if full,
// Pop returns false if empty.
type Queue[T any] interface {
	// Push adds an item to the queue.
	// Returns false if the queue is full.
	Push(T) bool

	// Pop removes and returns an item from the queue.
	// Returns false if the queue is empty.
	Pop() (T, bool)
}

// Kind names a Queue implementation.
type Kind string

const (
	KindRing    Kind = "ring"
	KindChannel Kind = "channel"
	KindSharded Kind = "sharded"
)

// DefaultSize is the queue capacity used when none is configured.
const DefaultSize = 64

// New creates a Queue of the given kind and capacity.
func New[T any](kind Kind, size int) (Queue[T], error) {
	if size < 1 {
		size = DefaultSize
	}
	switch kind {
	case KindRing:
		return NewRingBuffer[T](size), nil
	case KindChannel:
		return NewChannel[T](size), nil
	case KindSharded:
		q, err := NewSharded[T](size, 1)
		if err != nil {
			return nil, err
		}
		return q, nil
	}
	return nil, errors.Errorf("queue: unknown queue kind %q", kind)
}
