// Package systick emulates a SysTick-style periodic timer.
//
// The timer counts reload cycles of a selected clock source; every time
// the count elapses it raises an "interrupt": the registered callbacks run
// in slot order on the timer's own goroutine. That goroutine is the
// interrupt context. Callbacks must not block, must not call back into
// the Timer, and are never run concurrently with each other.
package systick

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"

	"github.com/randomizedcoder/systick-led/internal/board"
	"github.com/randomizedcoder/systick-led/internal/tick"
)

// MaxReload is the largest reload value: the reload register is 24 bits.
const MaxReload = 0xFFFFFF

// NumCallbacks is the number of callback slots.
const NumCallbacks = 5

var (
	ErrReload           = errors.New("systick: reload value out of range")
	ErrClockUnavailable = errors.New("systick: clock source not available")
	ErrCallbackIndex    = errors.New("systick: callback index out of range")
	ErrNotInitialized   = errors.New("systick: timer not initialized")
	ErrEnabled          = errors.New("systick: timer is enabled")
)

// ClockSource selects the clock the timer counts.
type ClockSource = board.Clock

const (
	ClockCPU   = board.ClockCPU
	ClockIMO   = board.ClockIMO
	ClockECO   = board.ClockECO
	ClockLF    = board.ClockLF
	ClockTimer = board.ClockTimer
)

// Handler is invoked on every period elapse.
type Handler interface {
	OnFire()
}

// HandlerFunc adapts a plain function to a Handler.
type HandlerFunc func()

func (f HandlerFunc) OnFire() { f() }

// Clocks reports the frequency of a clock source in Hz, 0 if absent.
type Clocks interface {
	ClockHz(board.Clock) uint64
}

// Timer is a periodic timer with indexed callback slots.
type Timer struct {
	clocks Clocks
	logger *slog.Logger

	mu       sync.Mutex
	source   ClockSource
	reload   uint32
	period   time.Duration
	handlers [NumCallbacks]Handler
	stop     chan struct{}
	done     chan struct{}

	// fireMu serializes interrupts so handlers never overlap, whether
	// they come from the goroutine or from Fire.
	fireMu sync.Mutex
	fired  atomic.Uint64
}

// New returns a disabled, uninitialized timer counting the given clocks.
func New(clocks Clocks, logger *slog.Logger) *Timer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Timer{clocks: clocks, logger: logger}
}

// Init selects the clock source and reload value. The interrupt period is
// reload cycles of that clock. An enabled timer must be disabled first.
func (t *Timer) Init(src ClockSource, reload uint32) error {
	if reload == 0 || reload > MaxReload {
		return errors.Wrapf(ErrReload, "%d not in [1, %d]", reload, MaxReload)
	}
	hz := t.clocks.ClockHz(src)
	if hz == 0 {
		return errors.Wrapf(ErrClockUnavailable, "%q", src)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stop != nil {
		return ErrEnabled
	}
	t.source = src
	t.reload = reload
	t.period = time.Duration(uint64(reload) * uint64(time.Second) / hz)
	if t.period <= 0 {
		t.period = time.Nanosecond
	}
	t.logger.Debug("systick: initialized", "clock", src, "hz", hz, "reload", reload, "period", t.period)
	return nil
}

// SetCallback binds h to slot index and returns the handler it replaces.
// A nil h clears the slot.
func (t *Timer) SetCallback(index int, h Handler) (Handler, error) {
	if index < 0 || index >= NumCallbacks {
		return nil, errors.Wrapf(ErrCallbackIndex, "%d", index)
	}
	t.fireMu.Lock()
	defer t.fireMu.Unlock()
	prev := t.handlers[index]
	t.handlers[index] = h
	return prev, nil
}

// Callback returns the handler bound to slot index, or nil.
func (t *Timer) Callback(index int) Handler {
	if index < 0 || index >= NumCallbacks {
		return nil
	}
	t.fireMu.Lock()
	defer t.fireMu.Unlock()
	return t.handlers[index]
}

// Enable arms the timer and its interrupt. Enabling an enabled timer is a
// no-op.
func (t *Timer) Enable() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.reload == 0 {
		return ErrNotInitialized
	}
	if t.stop != nil {
		return nil
	}
	t.stop = make(chan struct{})
	t.done = make(chan struct{})
	go t.run(tick.NewTicker(t.period), t.stop, t.done)
	return nil
}

// Disable stops the interrupt and waits for a running handler to return.
func (t *Timer) Disable() {
	t.mu.Lock()
	stop, done := t.stop, t.done
	t.stop, t.done = nil, nil
	t.mu.Unlock()

	if stop == nil {
		return
	}
	close(stop)
	<-done
}

// Enabled reports whether the interrupt is armed.
func (t *Timer) Enabled() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stop != nil
}

func (t *Timer) run(ticker *tick.StdTicker, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C():
			t.Fire()
		}
	}
}

// Fire raises one interrupt synchronously: every bound handler runs once,
// in slot order. The timer goroutine calls it on each period elapse; tests
// call it to step the timer by hand.
func (t *Timer) Fire() {
	t.fireMu.Lock()
	defer t.fireMu.Unlock()
	t.fired.Add(1)
	for _, h := range t.handlers {
		if h != nil {
			h.OnFire()
		}
	}
}

// Fired returns the number of interrupts raised so far.
func (t *Timer) Fired() uint64 {
	return t.fired.Load()
}

func (t *Timer) Reload() uint32 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.reload
}

func (t *Timer) Period() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.period
}

func (t *Timer) Source() ClockSource {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.source
}
