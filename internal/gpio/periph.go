package gpio

import (
	"log/slog"

	"github.com/pkg/errors"
	periphgpio "periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
)

// PeriphPin drives a host GPIO line through periph.io. The line is looked
// up by Configure, after the host drivers have been loaded by bsp.Periph.
type PeriphPin struct {
	line   string
	pin    periphgpio.PinIO
	level  periphgpio.Level
	logger *slog.Logger
}

// NewPeriph returns a pin for a GPIO line name, e.g. "GPIO17".
func NewPeriph(line string, logger *slog.Logger) *PeriphPin {
	if logger == nil {
		logger = slog.Default()
	}
	return &PeriphPin{line: line, logger: logger}
}

func (p *PeriphPin) Configure(cfg Config) error {
	if cfg.Direction != Output {
		return errors.Wrapf(ErrNotOutput, "%s", p.line)
	}
	if p.pin == nil {
		if p.pin = gpioreg.ByName(p.line); p.pin == nil {
			return errors.Errorf("gpio: failed to open %s", p.line)
		}
	}
	p.level = periphgpio.Level(cfg.Initial)
	if err := p.pin.Out(p.level); err != nil {
		return errors.Wrapf(err, "gpio: failed to drive %s %s", p.line, cfg.Initial)
	}
	return nil
}

// Invert drives the opposite of the last level written. The output latch
// is tracked locally rather than read back from the line.
func (p *PeriphPin) Invert() {
	if p.pin == nil {
		return
	}
	p.level = !p.level
	if err := p.pin.Out(p.level); err != nil {
		p.logger.Warn("gpio: invert failed", "line", p.line, "err", err)
	}
}

func (p *PeriphPin) Level() Level {
	return Level(p.level)
}

func (p *PeriphPin) Name() string {
	return "periph:" + p.line
}

// Close releases the line.
func (p *PeriphPin) Close() error {
	if p.pin == nil {
		return nil
	}
	return p.pin.Halt()
}
