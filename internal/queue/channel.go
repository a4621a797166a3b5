package queue

// ChannelQueue wraps a buffered channel as a Queue.
//
// A send from the timer goroutine never blocks: a full channel makes Push
// report false and the caller keeps the tick elsewhere.
type ChannelQueue[T any] struct {
	ch chan T
}

// NewChannel creates a ChannelQueue with the specified buffer size.
func NewChannel[T any](size int) *ChannelQueue[T] {
	return &ChannelQueue[T]{ch: make(chan T, size)}
}

func (q *ChannelQueue[T]) Push(v T) bool {
	select {
	case q.ch <- v:
		return true
	default:
		return false
	}
}

func (q *ChannelQueue[T]) Pop() (T, bool) {
	select {
	case v := <-q.ch:
		return v, true
	default:
		var zero T
		return zero, false
	}
}

func (q *ChannelQueue[T]) Len() int { return len(q.ch) }

func (q *ChannelQueue[T]) Cap() int { return cap(q.ch) }
