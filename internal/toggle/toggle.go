// Package toggle turns the timer's interrupt stream into a slower visible
// event: the LED is inverted once the tick count passes Threshold.
//
// OnFire runs in the interrupt context and only counts. PollAndToggle runs
// in the foreground loop; it compares, resets and inverts. Because the
// reset happens in the consumer, a slow poll lets the count reach 12, 13
// and so on before the toggle: the period is "more than Threshold ticks",
// not exactly Threshold+1.
package toggle

import "sync/atomic"

// Threshold is the tick count above which the LED is toggled.
const Threshold = 10

// Inverter flips an output pin.
type Inverter interface {
	Invert()
}

// Counter carries ticks from the interrupt context to the foreground loop.
//
// Inc is called only from the interrupt context. Load and Reset are called
// only from the foreground loop.
type Counter interface {
	Inc()
	Load() uint32
	Reset()
}

// Controller counts timer ticks and inverts the pin once more than
// Threshold have accumulated.
type Controller struct {
	counter Counter
	pin     Inverter
	toggles atomic.Uint64
}

// New returns a controller toggling pin. A nil counter selects an
// AtomicCounter.
func New(pin Inverter, counter Counter) *Controller {
	if counter == nil {
		counter = &AtomicCounter{}
	}
	return &Controller{counter: counter, pin: pin}
}

// OnFire counts one tick. It is the timer callback.
func (c *Controller) OnFire() {
	c.counter.Inc()
}

// PollAndToggle resets the count and inverts the pin if more than
// Threshold ticks have been counted. It reports whether it toggled.
func (c *Controller) PollAndToggle() bool {
	if c.counter.Load() > Threshold {
		c.counter.Reset()
		c.pin.Invert()
		c.toggles.Add(1)
		return true
	}
	return false
}

// Count returns the current tick count. Call it from the foreground loop.
func (c *Controller) Count() uint32 {
	return c.counter.Load()
}

// Toggles returns the number of inversions requested so far.
func (c *Controller) Toggles() uint64 {
	return c.toggles.Load()
}
