// Package app runs the LED toggle program: bring the board up, configure
// the LED, start the timer with the toggle controller as its callback,
// then poll forever.
package app

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/randomizedcoder/systick-led/internal/bsp"
	"github.com/randomizedcoder/systick-led/internal/cancel"
	"github.com/randomizedcoder/systick-led/internal/gpio"
	"github.com/randomizedcoder/systick-led/internal/systick"
	"github.com/randomizedcoder/systick-led/internal/tick"
	"github.com/randomizedcoder/systick-led/internal/toggle"
)

const (
	// Reload is the timer reload value in clock cycles.
	Reload = 10_000_000
	// Clock is the clock source the timer counts.
	Clock = systick.ClockCPU
	// CallbackSlot is the timer slot the toggle controller is bound to.
	CallbackSlot = 0
)

// ErrHalted marks a failure the program cannot continue from. The entry
// point must stop; nothing is retried.
var ErrHalted = errors.New("app: halted")

// Timer is the periodic timer the program drives.
type Timer interface {
	Init(src systick.ClockSource, reload uint32) error
	SetCallback(index int, h systick.Handler) (systick.Handler, error)
	Enable() error
	Disable()
}

// Controller is the toggle logic: OnFire from the timer, PollAndToggle
// from the loop.
type Controller interface {
	systick.Handler
	PollAndToggle() bool
	Count() uint32
	Toggles() uint64
}

// Deps is everything Run drives. Tests pass fakes.
type Deps struct {
	Board      bsp.Board
	Pin        gpio.Pin
	PinConfig  gpio.Config
	Timer      Timer
	Controller Controller
	// Stop selects the loop stop signal. Empty means cancel.KindAtomic.
	Stop cancel.Kind
	// Report paces status logs from the loop. Nil disables them.
	Report tick.Ticker
	Logger *slog.Logger
}

// Run executes the program until ctx is done. On hardware ctx is never
// done and Run never returns after a successful bring-up.
//
// A board or pin failure returns an error matching ErrHalted before the
// timer is touched.
func Run(ctx context.Context, d Deps) (err error) {
	log := d.Logger
	if log == nil {
		log = slog.Default()
	}

	if err := d.Board.Init(ctx); err != nil {
		return halt(err, "board %s init", d.Board.Name())
	}
	defer func() { err = multierr.Append(err, d.Board.Close()) }()
	log.Info("board initialized", "board", d.Board.Name())

	if err := d.Pin.Configure(d.PinConfig); err != nil {
		return halt(err, "configure %s", d.Pin.Name())
	}
	defer func() { err = multierr.Append(err, d.Pin.Close()) }()
	log.Info("led configured", "pin", d.Pin.Name(), "drive", d.PinConfig.Drive, "initial", d.PinConfig.Initial)

	if err := d.Timer.Init(Clock, Reload); err != nil {
		return errors.Wrap(err, "app: timer init")
	}
	if _, err := d.Timer.SetCallback(CallbackSlot, d.Controller); err != nil {
		return errors.Wrap(err, "app: timer callback")
	}
	if err := d.Timer.Enable(); err != nil {
		return errors.Wrap(err, "app: timer enable")
	}
	defer d.Timer.Disable()
	log.Info("timer enabled", "clock", Clock, "reload", Reload, "threshold", toggle.Threshold)

	done, release, err := cancel.New(ctx, d.Stop)
	if err != nil {
		return errors.Wrap(err, "app: stop signal")
	}
	defer release()
	poll(done, d.Controller, d.Report, log)

	log.Info("stopped", "toggles", d.Controller.Toggles())
	return nil
}

// poll is the foreground loop. It spins without sleeping.
func poll(done cancel.Canceler, c Controller, report tick.Ticker, log *slog.Logger) {
	if report != nil {
		defer report.Stop()
	}
	for !done.Done() {
		c.PollAndToggle()
		if report != nil && report.Tick() {
			log.Info("status", "count", c.Count(), "toggles", c.Toggles())
		}
	}
}

func halt(err error, format string, args ...any) error {
	return errors.Wrapf(multierr.Combine(ErrHalted, err), format, args...)
}
