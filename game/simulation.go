package game

import (
	"log/slog"
	"slices"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/herd/components"
	"github.com/pthm-cable/herd/systems"
	"github.com/pthm-cable/herd/telemetry"
)

// StepResult reports what one tick changed.
type StepResult struct {
	Tick       int32
	Recruited  int
	Delivered  int
	ScoreDelta int
}

// Step advances the simulation by exactly one tick:
//
//  1. the hero moves toward its target
//  2. every animal updates, in roster order
//  3. the rules pass visits the roster in order, recruiting then delivering
//  4. delivered animals leave the world
//
// Rules see the positions produced by this tick's movement.
func (g *Game) Step() StepResult {
	g.perfCollector.StartTick()

	g.perfCollector.StartPhase(telemetry.PhaseHero)
	heroPos := g.stepHero()

	g.perfCollector.StartPhase(telemetry.PhaseAnimals)
	g.stepAnimals(heroPos)

	g.perfCollector.StartPhase(telemetry.PhaseRules)
	res, delivered := g.applyRules(heroPos)

	g.perfCollector.StartPhase(telemetry.PhaseCleanup)
	for _, e := range delivered {
		g.collectAnimal(e)
	}

	g.tick++
	res.Tick = g.tick

	g.perfCollector.StartPhase(telemetry.PhaseTelemetry)
	g.flushTelemetry()

	g.perfCollector.EndTick()
	return res
}

// stepHero moves the hero and returns its new position.
func (g *Game) stepHero() components.Position {
	pos, motion, hero := g.heroMap.Get(g.hero)
	prev := *pos
	next := systems.TickHero(pos, hero)
	*motion = systems.DeriveMotion(prev, next, g.cfg.Motion.Epsilon, motion.Facing)
	g.collector.RecordHeroTravel(systems.Distance(prev, next))
	return next
}

// stepAnimals updates every live animal in roster order. Followers all see
// the hero position from this tick.
func (g *Game) stepAnimals(heroPos components.Position) {
	eps := g.cfg.Motion.Epsilon
	for _, e := range g.roster {
		pos, motion, animal := g.animalMap.Get(e)
		prev := *pos
		next := systems.UpdateAnimal(pos, animal, heroPos, g.animalParams, g.rng)
		*motion = systems.DeriveMotion(prev, next, eps, motion.Facing)
	}
}

// applyRules runs recruitment and delivery over the roster. An animal
// recruited this tick may be delivered in the same visit. Group slots are
// released immediately on delivery, so later animals in the pass can take
// them. World removal is deferred to the caller.
func (g *Game) applyRules(heroPos components.Position) (StepResult, []ecs.Entity) {
	var res StepResult
	var delivered []ecs.Entity

	capacity := g.cfg.Herd.Capacity
	recruitRadius := g.cfg.Herd.RecruitRadius
	deliveryRadius := g.cfg.Yard.DeliveryRadius

	g.grid.Clear()
	for _, e := range g.roster {
		pos, _, animal := g.animalMap.Get(e)
		if !animal.Following {
			g.grid.Insert(e, *pos)
		}
	}
	g.nearby = g.grid.QueryRadiusInto(g.nearby[:0], heroPos, recruitRadius)

	for _, e := range g.roster {
		pos, _, animal := g.animalMap.Get(e)

		if !animal.Following && len(g.group) < capacity && slices.Contains(g.nearby, e) {
			if systems.Recruit(animal) {
				g.group = append(g.group, e)
				res.Recruited++
				g.collector.RecordRecruit()
				g.lifetimes.RecordRecruit(e.ID(), g.tick)
				slog.Debug("animal recruited",
					"tick", g.tick,
					"entity", e.ID(),
					"group_size", len(g.group),
				)
			}
		}

		if animal.Following && systems.Distance(*pos, g.yard.Position) < deliveryRadius {
			g.removeFromGroup(e)
			delivered = append(delivered, e)

			points := g.cfg.Yard.Points
			g.score.AddPoints(points)
			res.Delivered++
			res.ScoreDelta += points
			g.collector.RecordDelivery()
			if lt := g.lifetimes.RecordDelivery(e.ID(), g.tick); lt != nil {
				g.collector.RecordHerdTime(lt.HerdTicks())
			}
			slog.Debug("animal delivered",
				"tick", g.tick,
				"entity", e.ID(),
				"score", g.score.Score(),
			)
		}
	}

	return res, delivered
}

// removeFromGroup drops e from the group, keeping the order of the rest.
func (g *Game) removeFromGroup(e ecs.Entity) {
	if i := slices.Index(g.group, e); i >= 0 {
		g.group = slices.Delete(g.group, i, i+1)
	}
}

// collectAnimal removes a delivered animal from the roster and the world.
func (g *Game) collectAnimal(e ecs.Entity) {
	if i := slices.Index(g.roster, e); i >= 0 {
		g.roster = slices.Delete(g.roster, i, i+1)
	}
	g.notifyCollect(e)
	if g.world.Alive(e) {
		g.world.RemoveEntity(e)
	}
}
