package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/randomizedcoder/systick-led/internal/app"
	"github.com/randomizedcoder/systick-led/internal/board"
	"github.com/randomizedcoder/systick-led/internal/bsp"
	"github.com/randomizedcoder/systick-led/internal/cancel"
	"github.com/randomizedcoder/systick-led/internal/config"
	"github.com/randomizedcoder/systick-led/internal/gpio"
	"github.com/randomizedcoder/systick-led/internal/queue"
	"github.com/randomizedcoder/systick-led/internal/systick"
	"github.com/randomizedcoder/systick-led/internal/tick"
	"github.com/randomizedcoder/systick-led/internal/toggle"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the LED toggle program",
	Long:  "Run the LED toggle program until interrupted, or for --duration when set.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd.Flags())
		if err != nil {
			return err
		}
		logger, err := newLogger(cmd.ErrOrStderr(), cfg)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if cfg.Duration > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, cfg.Duration)
			defer cancel()
		}

		deps, err := buildDeps(cfg, logger)
		if err != nil {
			return err
		}
		if err := app.Run(ctx, deps); err != nil {
			if errors.Is(err, app.ErrHalted) {
				logger.Error("halted", "err", err)
			}
			return err
		}
		return nil
	},
}

// addRunFlags registers the flags that override configuration fields.
func addRunFlags(fs *pflag.FlagSet) {
	fs.String("board", "", "board profile name or alias (see 'boards')")
	fs.String("backend", "", "hardware backend: sim, periph or rpio")
	fs.String("handoff", "", "tick handoff: atomic, ring, channel or sharded")
	fs.String("stop", "", "loop stop signal: atomic or context")
	fs.Duration("duration", 0, "stop after this long (0 runs forever)")
	fs.String("log-level", "", "log level: debug, info, warn or error")
	fs.String("log-format", "", "log format: text or json")
	fs.Uint32("sim-init-status", 0, "status code returned by the simulated board")
}

func init() {
	addRunFlags(runCmd.Flags())
}

func loadConfig(fs *pflag.FlagSet) (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, err
	}

	str := func(name string, dst *string) {
		if fs.Changed(name) {
			*dst, _ = fs.GetString(name)
		}
	}
	var backend, handoff, stop string
	str("board", &cfg.Board)
	str("log-level", &cfg.Log.Level)
	str("log-format", &cfg.Log.Format)
	if fs.Changed("backend") {
		backend, _ = fs.GetString("backend")
		cfg.Backend = config.Backend(backend)
	}
	if fs.Changed("handoff") {
		handoff, _ = fs.GetString("handoff")
		cfg.Handoff = config.Handoff(handoff)
	}
	if fs.Changed("stop") {
		stop, _ = fs.GetString("stop")
		cfg.Stop = cancel.Kind(stop)
	}
	if fs.Changed("duration") {
		cfg.Duration, _ = fs.GetDuration("duration")
	}
	if fs.Changed("sim-init-status") {
		cfg.Sim.InitStatus, _ = fs.GetUint32("sim-init-status")
	}
	return cfg, cfg.Validate()
}

func buildDeps(cfg config.Config, logger *slog.Logger) (app.Deps, error) {
	profile, err := board.All().Find(cfg.Board)
	if err != nil {
		return app.Deps{}, err
	}

	var (
		b   bsp.Board
		pin gpio.Pin
	)
	switch cfg.Backend {
	case config.BackendSim:
		b = bsp.NewSim(bsp.Result(cfg.Sim.InitStatus))
		pin = gpio.NewSim(gpio.ID{Port: profile.LED.Port, Pin: profile.LED.Pin})
	case config.BackendPeriph:
		b = bsp.Periph{}
		pin = gpio.NewPeriph(profile.LED.Line, logger)
	case config.BackendRPIO:
		if b, pin, err = openRPIO(profile); err != nil {
			return app.Deps{}, err
		}
	}

	var counter toggle.Counter
	if cfg.Handoff != config.HandoffAtomic {
		q, err := queue.New[uint32](queue.Kind(cfg.Handoff), cfg.QueueSize)
		if err != nil {
			return app.Deps{}, err
		}
		counter = toggle.NewQueueCounter(q)
	}

	report, err := tick.New(cfg.Report.Ticker, cfg.Report.Interval, cfg.Report.Every)
	if err != nil {
		return app.Deps{}, err
	}

	logger.Debug("configured", "board", profile.Name, "backend", cfg.Backend, "handoff", cfg.Handoff)
	return app.Deps{
		Board:      b,
		Pin:        pin,
		PinConfig:  gpio.LEDConfig(profile.LED.ActiveLow),
		Timer:      systick.New(profile, logger),
		Controller: toggle.New(pin, counter),
		Stop:       cfg.Stop,
		Report:     report,
		Logger:     logger,
	}, nil
}
