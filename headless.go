package main

import (
	"context"
	"log/slog"

	"github.com/pthm-cable/herd/game"
)

// runHeadless steps the simulation as fast as possible with the autopilot
// steering the hero.
func runHeadless(ctx context.Context, opts game.Options, maxTicks int) error {
	g, err := game.NewGameWithOptions(opts)
	if err != nil {
		return err
	}
	defer g.Close()

	slog.Info("starting headless simulation",
		"seed", opts.Seed,
		"max_ticks", maxTicks,
		"steps_per_update", g.StepsPerUpdate(),
	)

	for {
		if err := ctx.Err(); err != nil {
			slog.Info("interrupted", "tick", g.Tick(), "score", g.Score())
			return nil
		}

		g.UpdateHeadless()

		if maxTicks > 0 && int(g.Tick()) >= maxTicks {
			slog.Info("max ticks reached", "tick", g.Tick(), "score", g.Score())
			return nil
		}
		if g.AnimalCount() == 0 {
			slog.Info("all animals delivered", "tick", g.Tick(), "score", g.Score())
			return nil
		}
	}
}
