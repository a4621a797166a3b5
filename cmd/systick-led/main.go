// Command systick-led toggles a board's user LED from a periodic timer
// interrupt.
//
// Usage:
//
//	systick-led run --board cy8ckit-062s2-43012 --backend sim
//	systick-led boards
package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/randomizedcoder/systick-led/internal/config"
)

var (
	configPath string

	rootCmd = &cobra.Command{
		Use:          "systick-led",
		Short:        "Toggle the user LED from a periodic timer interrupt",
		Long:         "Bring the board up, arm a SysTick-style timer and invert the user LED every time more than 10 timer interrupts have been counted.",
		SilenceUsage: true,
		RunE:         runCmd.RunE,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML configuration file")
	addRunFlags(rootCmd.Flags())
	rootCmd.AddCommand(runCmd, boardsCmd)
}

func newLogger(w io.Writer, cfg config.Config) (*slog.Logger, error) {
	level, err := cfg.LogLevel()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
