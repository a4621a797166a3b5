//go:build linux

package gpio

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/stianeikeland/go-rpio/v4"
)

// RPIOPin drives a Raspberry Pi GPIO through go-rpio's memory-mapped
// registers. rpio.Open must have been called (bsp.RPIO does this).
type RPIOPin struct {
	pin rpio.Pin
}

// OpenRPIO returns the pin with the given BCM number.
func OpenRPIO(bcm uint8) *RPIOPin {
	return &RPIOPin{pin: rpio.Pin(bcm)}
}

func (p *RPIOPin) Configure(cfg Config) error {
	if cfg.Direction != Output {
		return errors.Wrapf(ErrNotOutput, "BCM%d", uint8(p.pin))
	}
	p.pin.Output()
	if cfg.Initial == High {
		p.pin.High()
	} else {
		p.pin.Low()
	}
	return nil
}

func (p *RPIOPin) Invert() {
	p.pin.Toggle()
}

func (p *RPIOPin) Level() Level {
	return p.pin.Read() == rpio.High
}

func (p *RPIOPin) Name() string {
	return "rpio:BCM" + strconv.Itoa(int(p.pin))
}

// Close reverts the pin to an input.
func (p *RPIOPin) Close() error {
	p.pin.Input()
	return nil
}
