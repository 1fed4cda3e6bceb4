// Command behavesim runs the behavioral Monte Carlo enhancement engine
// against a generated base batch and reports the resulting metrics.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Aisprintone/Sparrow-sub006/internal/config"
)

func main() {
	environ, err := config.ParseEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(environ.LogLevel),
	}))
	slog.SetDefault(logger)

	rootCmd := &cobra.Command{
		Use:   "behavesim",
		Short: "Behavioral Monte Carlo enhancement engine",
		Long: `behavesim transforms statistically generated financial trajectories
into behaviorally realistic ones: phase-based expense reduction,
personality-conditioned decision strategies, cognitive bias
distortions, and social support adjustment, all deterministic given a
seed.`,
	}

	rootCmd.AddCommand(
		newRunCmd(environ),
		newRunsCmd(environ),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// parseLevel maps a level name to a slog.Level; unknown names mean info.
func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
