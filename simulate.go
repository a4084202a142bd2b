package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/decker502/gingerrain/pkg/app"
	"github.com/decker502/gingerrain/pkg/config"
	"github.com/decker502/gingerrain/pkg/embedded"
	"github.com/decker502/gingerrain/pkg/types"
	"github.com/spf13/cobra"
)

var (
	flagFrames    int
	flagAutopilot bool
	flagRestart   bool
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	goodStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	badStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the game loop headless and print statistics",
	Long: `Run the game loop without a window or audio for a fixed number of
frames (60 frames = 1 second) and print spawn and collision statistics.

Examples:
  gingerrain simulate --frames 3600 --seed 42
  gingerrain simulate --autopilot --restart`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagFrames, "frames", 60*config.DefaultTPS, "Number of frames to simulate")
	simulateCmd.Flags().BoolVar(&flagAutopilot, "autopilot", false, "Move the player toward random targets")
	simulateCmd.Flags().BoolVar(&flagRestart, "restart", false, "Restart immediately after each game over")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	report, err := app.Simulate(embedded.FS(), app.SimulateOptions{
		Frames:            flagFrames,
		Seed:              flagSeed,
		Autopilot:         flagAutopilot,
		RestartOnGameOver: flagRestart,
	})
	if err != nil {
		return err
	}
	printReport(cmd.OutOrStdout(), report)
	return nil
}

func printReport(w io.Writer, r *app.SimulationReport) {
	fmt.Fprintln(w, titleStyle.Render("Gingerrain simulation"))
	fmt.Fprintf(w, "%s %d\n", labelStyle.Render("seed:  "), r.Seed)
	fmt.Fprintf(w, "%s %d (%.1f s)\n", labelStyle.Render("frames:"), r.Frames, float64(r.Frames)/config.DefaultTPS)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "  %-16s %8s %10s\n", "Kind", "Spawned", "Collisions")
	fmt.Fprintf(w, "  %-16s %8s %10s\n", "----", "-------", "----------")
	for _, k := range types.AllDropKinds() {
		fmt.Fprintf(w, "  %-16s %8d %10d\n", k, r.Stats.Spawned[k], r.Stats.Collisions[k])
	}
	fmt.Fprintf(w, "  %-16s %8d\n", "expired", r.Stats.Expired)
	fmt.Fprintf(w, "  %-16s %8d\n", "live entities", r.Entities)
	fmt.Fprintln(w)

	if len(r.Rounds) == 0 {
		fmt.Fprintln(w, goodStyle.Render(fmt.Sprintf("Still alive: %s with life %d", r.FinalState, r.FinalLife)))
		return
	}
	fmt.Fprintln(w, badStyle.Render(fmt.Sprintf("Rounds lost: %d (best %d s)", len(r.Rounds), r.BestRound())))
	fmt.Fprintf(w, "%s %s, life %d, restarts %d\n", labelStyle.Render("final:"), r.FinalState, r.FinalLife, r.Stats.Restarts)
}
