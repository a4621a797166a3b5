package queue

import (
	ring "github.com/randomizedcoder/go-lock-free-ring"
)

// ShardedQueue adapts go-lock-free-ring's MPSC ShardedRing to the Queue
// interface.
//
// Each producer writes to its own shard; the queue writes as producer 0
// unless created with Producer. Values come back as any and are asserted
// to T on Pop.
type ShardedQueue[T any] struct {
	r        *ring.ShardedRing
	producer uint64
}

// minShardSize is the smallest per-shard capacity the ring keeps values
// in. A one-slot shard accepts writes and then drops them.
const minShardSize = 2

// NewSharded creates a ShardedQueue with the given total capacity split
// across shards. Each shard holds at least minShardSize values.
func NewSharded[T any](size, shards int) (*ShardedQueue[T], error) {
	if shards < 1 {
		shards = 1
	}
	if size < minShardSize*shards {
		size = minShardSize * shards
	}
	r, err := ring.NewShardedRing(uint64(size), uint64(shards))
	if err != nil {
		return nil, err
	}
	return &ShardedQueue[T]{r: r}, nil
}

// Producer returns a view of the queue that pushes as producer id.
// Pop on the view drains all shards.
func (q *ShardedQueue[T]) Producer(id uint64) *ShardedQueue[T] {
	return &ShardedQueue[T]{r: q.r, producer: id}
}

// Push adds an item to the producer's shard.
// Returns false if the shard is full.
func (q *ShardedQueue[T]) Push(v T) bool {
	return q.r.Write(q.producer, v)
}

// Pop removes and returns an item from any shard.
// Returns false if every shard is empty.
func (q *ShardedQueue[T]) Pop() (T, bool) {
	v, ok := q.r.TryRead()
	if !ok {
		var zero T
		return zero, false
	}
	t, ok := v.(T)
	return t, ok
}
