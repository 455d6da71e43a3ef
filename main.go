package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/pthm-cable/herd/config"
	"github.com/pthm-cable/herd/game"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics, hero driven by the autopilot")
	terminal := flag.Bool("tui", false, "Run in the terminal instead of a window")
	ascii := flag.Bool("ascii", false, "Terminal mode: draw ASCII instead of emoji")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn, error")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	snapshotDir := flag.String("snapshot-dir", "", "Directory for bookmark snapshots (empty = <output-dir>/snapshots)")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited)")
	stepsPerUpdate := flag.Int("steps-per-update", 1, "Simulation ticks per update call (1-10)")

	flag.Parse()

	// Set up slog (JSON to stderr so the terminal frontend keeps stdout)
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: parseLevel(*logLevel)}))
	slog.SetDefault(logger)

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	opts := game.Options{
		Seed:           rngSeed,
		LogStats:       *logStats,
		OutputDir:      *outputDir,
		SnapshotDir:    *snapshotDir,
		Headless:       *headless,
		StepsPerUpdate: *stepsPerUpdate,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var err error
	switch {
	case *headless:
		err = runHeadless(ctx, opts, *maxTicks)
	case *terminal:
		err = runTerminal(ctx, opts, *maxTicks, *ascii)
	default:
		err = runWindow(opts, *maxTicks)
	}
	if err != nil {
		slog.Error("run failed", "error", err)
		os.Exit(1)
	}
}

// parseLevel maps a -log-level value to a slog level, defaulting to info.
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
