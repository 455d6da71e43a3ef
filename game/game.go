// Package game runs the herding simulation: one hero, a roster of animals,
// a yard and a score.
package game

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/herd/components"
	"github.com/pthm-cable/herd/config"
	"github.com/pthm-cable/herd/systems"
	"github.com/pthm-cable/herd/telemetry"
)

// Game holds the complete simulation state. It is owned by a single
// goroutine: frontends call Step/Update and the setters from their frame loop.
type Game struct {
	cfg   *config.Config
	world *ecs.World
	rng   *rand.Rand
	seed  int64

	heroMap      *ecs.Map3[components.Position, components.Motion, components.Hero]
	animalMap    *ecs.Map3[components.Position, components.Motion, components.Animal]
	animalFilter *ecs.Filter3[components.Position, components.Motion, components.Animal]

	hero   ecs.Entity
	roster []ecs.Entity // live animals in spawn order
	group  []ecs.Entity // followers in recruitment order, len <= capacity
	yard   components.Yard
	score  ScoreLedger

	animalParams systems.AnimalParams

	// Telemetry
	run           telemetry.RunInfo
	collector     *telemetry.Collector
	perfCollector *telemetry.PerfCollector
	outputManager *telemetry.OutputManager
	bookmarks     *telemetry.BookmarkDetector
	lifetimes     *telemetry.LifetimeTracker
	restarts      int
	grid          *systems.SpatialGrid
	nearby        []ecs.Entity
	snapshotDir   string
	logStats      bool
	statsCallback func(telemetry.WindowStats)
	onCollect     func(ecs.Entity)

	autopilot *Autopilot

	// State
	tick           int32
	paused         bool
	stepsPerUpdate int
}

// Options configures a new Game.
type Options struct {
	Config         *config.Config // nil = config.Cfg()
	Seed           int64
	LogStats       bool
	OutputDir      string
	SnapshotDir    string // "" = <OutputDir>/snapshots, or none without OutputDir
	Headless       bool // headless runs drive the hero with an Autopilot
	StepsPerUpdate int
	Run            telemetry.RunInfo // zero value = fresh run id
}

// NewGame creates a game with default options and the given seed.
func NewGame(cfg *config.Config, seed int64) *Game {
	g, err := NewGameWithOptions(Options{Config: cfg, Seed: seed})
	if err != nil {
		// Only output setup can fail and it is disabled here.
		panic(fmt.Sprintf("game: %v", err))
	}
	return g
}

// NewGameWithOptions creates a game, spawns the hero and the initial animals,
// and opens telemetry output if requested.
func NewGameWithOptions(opts Options) (*Game, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Cfg()
	}

	run := opts.Run
	if run.ID == "" {
		mode := "graphical"
		if opts.Headless {
			mode = "headless"
		}
		run = telemetry.NewRunInfo(opts.Seed, mode)
	}

	steps := opts.StepsPerUpdate
	if steps < 1 {
		steps = 1
	}

	g := &Game{
		cfg:            cfg,
		seed:           opts.Seed,
		run:            run,
		logStats:       opts.LogStats,
		stepsPerUpdate: steps,
		animalParams:   systems.AnimalParamsFromConfig(cfg),
		collector:      telemetry.NewCollector(run.ID, cfg.Derived.StatsWindowTick, cfg.Derived.DT),
		perfCollector:  telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		lifetimes:      telemetry.NewLifetimeTracker(),
		grid:           systems.NewSpatialGrid(cfg.Field.Width, cfg.Field.Height, cfg.Herd.RecruitRadius),
		snapshotDir:    opts.SnapshotDir,
		yard: components.Yard{
			Position: components.Position{X: cfg.Yard.X, Y: cfg.Yard.Y},
			Width:    cfg.Yard.Width,
			Height:   cfg.Yard.Height,
		},
	}
	if opts.Headless {
		g.autopilot = NewAutopilot()
	}

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	g.outputManager = om
	if g.snapshotDir == "" {
		g.snapshotDir = om.SnapshotDir()
	}
	if err := om.WriteConfig(cfg); err != nil {
		om.Close()
		return nil, err
	}
	if err := om.WriteRun(run); err != nil {
		om.Close()
		return nil, err
	}

	g.initWorld()

	slog.Info("simulation started",
		"run_id", run.ID,
		"seed", opts.Seed,
		"animals", len(g.roster),
		"output_dir", om.Dir(),
	)

	return g, nil
}

// initWorld builds a fresh ECS world and populates it.
func (g *Game) initWorld() {
	g.world = ecs.NewWorld()
	g.rng = rand.New(rand.NewSource(g.seed))

	g.heroMap = ecs.NewMap3[components.Position, components.Motion, components.Hero](g.world)
	g.animalMap = ecs.NewMap3[components.Position, components.Motion, components.Animal](g.world)
	g.animalFilter = ecs.NewFilter3[components.Position, components.Motion, components.Animal](g.world)

	g.roster = g.roster[:0]
	g.group = g.group[:0]
	g.tick = 0
	g.score.Reset()
	g.collector.Reset(0)
	g.bookmarks = telemetry.NewBookmarkDetector(g.cfg.Telemetry.BookmarkHistory, g.cfg.Herd.Capacity)
	g.lifetimes.Clear()

	g.spawnHero()
	g.spawnInitialPopulation()
}

// Reset restarts the simulation: new world, new animals, score back to zero.
// The RNG is reseeded so a reset run replays the same spawn.
func (g *Game) Reset() {
	for _, e := range g.roster {
		g.notifyCollect(e)
	}
	g.restarts++
	g.initWorld()
	slog.Info("simulation reset", "run_id", g.run.ID, "restart", g.restarts, "animals", len(g.roster))
}

// Update runs stepsPerUpdate simulation steps unless paused.
func (g *Game) Update() {
	g.perfCollector.RecordFrame()
	if g.paused {
		return
	}
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.Step()
	}
}

// UpdateHeadless lets the autopilot choose a hero target, then updates.
func (g *Game) UpdateHeadless() {
	if g.autopilot != nil {
		g.autopilot.Drive(g)
	}
	g.Update()
}

// SetHeroTarget is the input collaborator's entry point. Coordinates are
// not validated or clamped.
func (g *Game) SetHeroTarget(x, y float64) {
	_, _, hero := g.heroMap.Get(g.hero)
	systems.SetHeroTarget(hero, x, y)
}

// SetStatsCallback registers fn to receive every flushed stats window.
func (g *Game) SetStatsCallback(fn func(telemetry.WindowStats)) {
	g.statsCallback = fn
}

// SetCollectCallback registers fn to be called with each animal entity
// just before it is removed from the world. Renderers use it to release
// per-entity state.
func (g *Game) SetCollectCallback(fn func(ecs.Entity)) {
	g.onCollect = fn
}

func (g *Game) notifyCollect(e ecs.Entity) {
	if g.onCollect != nil {
		g.onCollect(e)
	}
}

// TogglePause pauses or resumes stepping in Update.
func (g *Game) TogglePause() { g.paused = !g.paused }

// Paused reports whether Update is currently a no-op.
func (g *Game) Paused() bool { return g.paused }

// StepsPerUpdate returns the speed multiplier.
func (g *Game) StepsPerUpdate() int { return g.stepsPerUpdate }

// SetStepsPerUpdate sets the speed multiplier, clamped to [1, 10].
func (g *Game) SetStepsPerUpdate(n int) {
	g.stepsPerUpdate = max(1, min(n, 10))
}

// Tick returns the current simulation tick.
func (g *Game) Tick() int32 {
	return g.tick
}

// Restarts returns how many times Reset has run.
func (g *Game) Restarts() int {
	return g.restarts
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score.Score()
}

// GroupSize returns how many animals currently follow the hero.
func (g *Game) GroupSize() int {
	return len(g.group)
}

// AnimalCount returns the number of live animals.
func (g *Game) AnimalCount() int {
	return len(g.roster)
}

// Yard returns the delivery region.
func (g *Game) Yard() components.Yard {
	return g.yard
}

// Config returns the configuration the game was built with.
func (g *Game) Config() *config.Config {
	return g.cfg
}

// RunID returns the identifier of this run.
func (g *Game) RunID() string {
	return g.run.ID
}

// Close flushes telemetry output.
func (g *Game) Close() error {
	if err := g.outputManager.Close(); err != nil {
		return fmt.Errorf("closing output: %w", err)
	}
	return nil
}
