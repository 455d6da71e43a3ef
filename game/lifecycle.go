package game

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/herd/components"
	"github.com/pthm-cable/herd/systems"
)

// spawnHero creates the hero at its configured start, standing still.
func (g *Game) spawnHero() {
	cfg := g.cfg
	pos := components.Position{X: cfg.Hero.StartX, Y: cfg.Hero.StartY}
	motion := components.Motion{Facing: components.FacingRight}
	hero := components.Hero{Target: pos, Speed: cfg.Hero.Speed}
	g.hero = g.heroMap.NewEntity(&pos, &motion, &hero)
}

// spawnInitialPopulation creates between MinCount and MaxCount animals
// (inclusive) at uniform positions in the spawn area.
func (g *Game) spawnInitialPopulation() {
	cfg := g.cfg
	count := cfg.Spawn.MinCount + g.rng.Intn(cfg.Spawn.MaxCount-cfg.Spawn.MinCount+1)

	for i := 0; i < count; i++ {
		x := g.rng.Float64() * cfg.Spawn.AreaWidth
		y := g.rng.Float64() * cfg.Spawn.AreaHeight
		g.SpawnAnimal(x, y)
	}
}

// SpawnAnimal adds a patrolling animal at (x, y) to the end of the roster.
func (g *Game) SpawnAnimal(x, y float64) ecs.Entity {
	pos := components.Position{X: x, Y: y}
	motion := components.Motion{Facing: components.FacingRight}
	animal := systems.NewAnimal(pos, g.cfg.Animal.Speed)

	e := g.animalMap.NewEntity(&pos, &motion, &animal)
	g.roster = append(g.roster, e)
	g.lifetimes.Register(e.ID(), g.tick)
	return e
}
