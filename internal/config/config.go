// Package config loads the settings of the hosting process: which board
// profile and hardware backend to use, how ticks are handed from the
// timer to the loop, status reporting and logging.
//
// The threshold and the reload value are fixed by the program and are not
// configurable.
package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/randomizedcoder/systick-led/internal/board"
	"github.com/randomizedcoder/systick-led/internal/cancel"
	"github.com/randomizedcoder/systick-led/internal/queue"
	"github.com/randomizedcoder/systick-led/internal/tick"
)

var ErrInvalid = errors.New("config: invalid")

type Backend string

const (
	BackendSim    Backend = "sim"
	BackendPeriph Backend = "periph"
	BackendRPIO   Backend = "rpio"
)

// Handoff selects how ticks reach the foreground loop: "atomic" for a
// shared counter, or a queue kind.
type Handoff string

const (
	HandoffAtomic  Handoff = "atomic"
	HandoffRing    Handoff = Handoff(queue.KindRing)
	HandoffChannel Handoff = Handoff(queue.KindChannel)
	HandoffSharded Handoff = Handoff(queue.KindSharded)
)

type Report struct {
	Ticker   tick.Kind     `yaml:"ticker"`
	Interval time.Duration `yaml:"interval"`
	Every    int           `yaml:"every"`
}

type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type Sim struct {
	// InitStatus is the status the simulated board returns from Init.
	InitStatus uint32 `yaml:"initStatus"`
}

type Config struct {
	Board     string  `yaml:"board"`
	Backend   Backend `yaml:"backend"`
	Handoff   Handoff `yaml:"handoff"`
	QueueSize int     `yaml:"queueSize"`
	// Stop selects the loop stop signal: "atomic" or "context".
	Stop   cancel.Kind `yaml:"stop"`
	Report Report      `yaml:"report"`
	Log       Log     `yaml:"log"`
	Sim       Sim     `yaml:"sim"`
	// Duration stops the program after this long; zero runs forever.
	Duration time.Duration `yaml:"duration"`
}

func Default() Config {
	return Config{
		Board:     board.Default,
		Backend:   BackendSim,
		Handoff:   HandoffAtomic,
		QueueSize: queue.DefaultSize,
		Stop:      cancel.KindAtomic,
		Report: Report{
			Ticker:   tick.KindAtomic,
			Interval: tick.DefaultInterval,
			Every:    tick.DefaultEvery,
		},
		Log: Log{Level: "info", Format: "text"},
	}
}

// Load reads a YAML file over the defaults. An empty path returns the
// defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "config: read")
	}
	return Parse(raw)
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(raw []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, errors.Wrap(err, "config: parse")
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch c.Backend {
	case BackendSim, BackendPeriph, BackendRPIO:
	default:
		return errors.Wrapf(ErrInvalid, "backend %q", c.Backend)
	}
	switch c.Handoff {
	case HandoffAtomic, HandoffRing, HandoffChannel, HandoffSharded:
	default:
		return errors.Wrapf(ErrInvalid, "handoff %q", c.Handoff)
	}
	switch c.Stop {
	case cancel.KindAtomic, cancel.KindContext:
	default:
		return errors.Wrapf(ErrInvalid, "stop %q", c.Stop)
	}
	switch c.Report.Ticker {
	case tick.KindStd, tick.KindAtomic, tick.KindBatch:
	default:
		return errors.Wrapf(ErrInvalid, "report ticker %q", c.Report.Ticker)
	}
	if c.Report.Interval <= 0 {
		return errors.Wrapf(ErrInvalid, "report interval %s", c.Report.Interval)
	}
	if c.Duration < 0 {
		return errors.Wrapf(ErrInvalid, "duration %s", c.Duration)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return errors.Wrapf(ErrInvalid, "log format %q", c.Log.Format)
	}
	if _, err := board.All().Find(c.Board); err != nil {
		return errors.Wrap(ErrInvalid, err.Error())
	}
	return nil
}

func (c Config) LogLevel() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(c.Log.Level))); err != nil {
		return l, errors.Wrapf(ErrInvalid, "log level %q", c.Log.Level)
	}
	return l, nil
}
