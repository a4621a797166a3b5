package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/randomizedcoder/systick-led/internal/app"
	"github.com/randomizedcoder/systick-led/internal/board"
)

var boardsCmd = &cobra.Command{
	Use:   "boards",
	Short: "List the known board profiles",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-22s %-22s %12s %10s  %s\n", "BOARD", "ALIASES", "CPU HZ", "PERIOD", "LED")
		fmt.Fprintln(out, "───────────────────────────────────────────────────────────────────────────────")
		for _, p := range board.All() {
			hz := p.ClockHz(app.Clock)
			fmt.Fprintf(out, "%-22s %-22s %12d %9.1fms  P%d.%d %s\n",
				p.Name, strings.Join(p.Aliases, ","), hz,
				float64(app.Reload)*1000/float64(hz),
				p.LED.Port, p.LED.Pin, p.LED.Line)
		}
	},
}
