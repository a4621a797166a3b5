package toggle

import (
	"sync/atomic"

	"github.com/randomizedcoder/systick-led/internal/queue"
)

// AtomicCounter is a single atomic word shared by both contexts.
//
// Reset stores zero, so a tick landing between Load and Reset is dropped;
// the toggle is defined on "more than Threshold" and tolerates it.
type AtomicCounter struct {
	n atomic.Uint32
}

func (c *AtomicCounter) Inc() { c.n.Add(1) }

func (c *AtomicCounter) Load() uint32 { return c.n.Load() }

func (c *AtomicCounter) Reset() { c.n.Store(0) }

// QueueCounter hands each tick over a lock-free queue. The interrupt side
// pushes one event per tick; the foreground side drains pending events
// into a count it owns.
//
// When the queue is full the tick is recorded in an atomic overflow count
// and folded in on the next drain, so no tick is lost.
type QueueCounter struct {
	q        queue.Queue[uint32]
	seq      uint32 // interrupt side only
	overflow atomic.Uint32
	count    uint32 // foreground side only
}

func NewQueueCounter(q queue.Queue[uint32]) *QueueCounter {
	return &QueueCounter{q: q}
}

func (c *QueueCounter) Inc() {
	c.seq++
	if !c.q.Push(c.seq) {
		c.overflow.Add(1)
	}
}

// Load drains pending ticks and returns the count.
func (c *QueueCounter) Load() uint32 {
	for {
		if _, ok := c.q.Pop(); !ok {
			break
		}
		c.count++
	}
	c.count += c.overflow.Swap(0)
	return c.count
}

// Reset zeroes the count. Ticks still queued are counted by the next Load.
func (c *QueueCounter) Reset() {
	c.count = 0
}
