// Package gpio drives the user LED pin.
//
// A Pin is configured once from a Config descriptor (direction, drive
// mode, initial level) and then only ever inverted. Backends: SimPin for
// hosted runs and tests, PeriphPin for Linux boards through periph.io and
// RPIOPin for a Raspberry Pi through go-rpio.
package gpio

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrNotOutput is returned by Configure on every backend for a non-output
// direction. The LED is the only pin this program drives.
var ErrNotOutput = errors.New("gpio: pin is not configured as output")

// Level is a pin's logic level.
type Level bool

const (
	Low  Level = false
	High Level = true
)

func (l Level) String() string {
	if l {
		return "high"
	}
	return "low"
}

type Direction uint8

const (
	Input Direction = iota
	Output
)

// DriveMode selects the pin's output stage.
type DriveMode uint8

const (
	DriveAnalog DriveMode = iota
	DrivePullUp
	DrivePullDown
	DriveOpenDrainLow
	DriveOpenDrainHigh
	DriveStrong
	DrivePullUpDown
)

var driveModeNames = [...]string{"analog", "pull-up", "pull-down", "open-drain-low", "open-drain-high", "strong", "pull-up-down"}

func (m DriveMode) String() string {
	if int(m) < len(driveModeNames) {
		return driveModeNames[m]
	}
	return fmt.Sprintf("DriveMode(%d)", m)
}

// Config is the pin configuration descriptor.
type Config struct {
	Direction Direction
	Drive     DriveMode
	Initial   Level
}

// LEDConfig returns the configuration of a user LED: a strong-drive output
// that starts switched off.
func LEDConfig(activeLow bool) Config {
	return Config{
		Direction: Output,
		Drive:     DriveStrong,
		Initial:   Level(activeLow),
	}
}

// ID identifies a pin by port and pin number.
type ID struct {
	Port uint8
	Pin  uint8
}

func (id ID) String() string {
	return fmt.Sprintf("P%d.%d", id.Port, id.Pin)
}

// Pin is a single output pin.
type Pin interface {
	Configure(Config) error
	// Invert flips the current output level. It never blocks and reports
	// nothing to the caller.
	Invert()
	Level() Level
	Name() string
	Close() error
}
