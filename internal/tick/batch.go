package tick

import "time"

// BatchTicker reads the clock once every N calls to Tick.
//
// The loop calls Tick once per iteration, millions of times per second,
// so the clock read is spread across a batch. Only the loop goroutine may
// poll it.
type BatchTicker struct {
	interval time.Duration
	every    int
	left     int // calls until the next clock read
	last     time.Time
	fired    uint64
}

// NewBatch creates a BatchTicker. A non-positive interval falls back to
// DefaultInterval; a batch below one reads the clock on every call.
func NewBatch(interval time.Duration, every int) *BatchTicker {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if every < 1 {
		every = 1
	}
	return &BatchTicker{
		interval: interval,
		every:    every,
		left:     every,
		last:     time.Now(),
	}
}

// Tick reports whether the interval has passed. Calls between clock reads
// return false.
func (b *BatchTicker) Tick() bool {
	if b.left--; b.left > 0 {
		return false
	}
	b.left = b.every

	now := time.Now()
	if now.Sub(b.last) < b.interval {
		return false
	}
	b.last = now
	b.fired++
	return true
}

// Fired returns the number of ticks reported so far.
func (b *BatchTicker) Fired() uint64 { return b.fired }

// Reset starts a new batch and a new interval from now.
func (b *BatchTicker) Reset() {
	b.left = b.every
	b.last = time.Now()
}

// Stop is a no-op.
func (b *BatchTicker) Stop() {}

func (b *BatchTicker) Every() int { return b.every }

func (b *BatchTicker) Interval() time.Duration { return b.interval }
