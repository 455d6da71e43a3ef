package game

import (
	"log/slog"

	"github.com/pthm-cable/herd/systems"
	"github.com/pthm-cable/herd/telemetry"
)

// flushTelemetry emits a stats window when one is due.
func (g *Game) flushTelemetry() {
	if !g.collector.ShouldFlush(g.tick) {
		return
	}

	sample := telemetry.HerdSample{
		Restart:         g.restarts,
		Score:           g.score.Score(),
		Animals:         len(g.roster),
		GroupSize:       len(g.group),
		FollowDistances: g.sampleFollowDistances(),
	}

	stats := g.collector.Flush(g.tick, sample)
	perfStats := g.perfCollector.Stats()

	if g.statsCallback != nil {
		g.statsCallback(stats)
	}

	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if err := g.outputManager.WriteTelemetry(stats); err != nil {
		slog.Error("failed to write telemetry", "error", err)
	}
	if err := g.outputManager.WritePerf(perfStats, stats.WindowEndTick); err != nil {
		slog.Error("failed to write perf", "error", err)
	}

	for _, bm := range g.bookmarks.Check(stats) {
		if g.logStats {
			bm.LogBookmark()
		}
		if err := g.outputManager.WriteBookmark(bm); err != nil {
			slog.Error("failed to write bookmark", "error", err)
		}
		if g.snapshotDir != "" {
			g.saveSnapshot(&bm)
		}
	}
}

// Snapshot captures the current herd state.
func (g *Game) Snapshot() *telemetry.Snapshot {
	heroPos, _, hero := g.heroMap.Get(g.hero)
	snap := &telemetry.Snapshot{
		Version:     telemetry.SnapshotVersion,
		RunID:       g.run.ID,
		RNGSeed:     g.seed,
		Restart:     g.restarts,
		FieldWidth:  g.cfg.Field.Width,
		FieldHeight: g.cfg.Field.Height,
		Tick:        g.tick,
		Score:       g.score.Score(),
		Hero: telemetry.HeroState{
			X: heroPos.X, Y: heroPos.Y,
			TargetX: hero.Target.X, TargetY: hero.Target.Y,
		},
		Animals: make([]telemetry.AnimalState, 0, len(g.roster)),
	}
	for _, e := range g.roster {
		pos, _, animal := g.animalMap.Get(e)
		st := telemetry.AnimalState{
			ID:        e.ID(),
			X:         pos.X,
			Y:         pos.Y,
			Following: animal.Following,
		}
		if !animal.Following {
			st.Patrol = animal.Patrol.String()
			st.TargetX, st.TargetY = animal.PatrolTarget.X, animal.PatrolTarget.Y
			st.WaitTicks = animal.WaitTicks
		}
		snap.Animals = append(snap.Animals, st)
	}
	return snap
}

func (g *Game) saveSnapshot(bm *telemetry.Bookmark) {
	snap := g.Snapshot()
	snap.Bookmark = bm
	path, err := telemetry.SaveSnapshot(snap, g.snapshotDir)
	if err != nil {
		slog.Error("failed to save snapshot", "error", err)
		return
	}
	slog.Debug("snapshot saved", "path", path, "bookmark", string(bm.Type))
}

// sampleFollowDistances returns each follower's distance to the hero.
func (g *Game) sampleFollowDistances() []float64 {
	heroPos, _, _ := g.heroMap.Get(g.hero)

	var dists []float64
	query := g.animalFilter.Query()
	for query.Next() {
		pos, _, animal := query.Get()
		if animal.Following {
			dists = append(dists, systems.Distance(*pos, *heroPos))
		}
	}
	return dists
}

// PerfStats returns the rolling per-phase timing summary.
func (g *Game) PerfStats() telemetry.PerfStats {
	return g.perfCollector.Stats()
}
