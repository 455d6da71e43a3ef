package game

import (
	"slices"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/herd/components"
)

// EntityView is a read-only copy of what a frontend needs to draw an entity.
type EntityView struct {
	Entity    ecs.Entity
	Position  components.Position
	Motion    components.Motion
	Target    components.Position // hero target, or patrol target for animals
	Following bool
}

// Hero returns the hero's current view.
func (g *Game) Hero() EntityView {
	pos, motion, hero := g.heroMap.Get(g.hero)
	return EntityView{Entity: g.hero, Position: *pos, Motion: *motion, Target: hero.Target}
}

// HeroTarget returns the point the hero is walking toward.
func (g *Game) HeroTarget() components.Position {
	_, _, hero := g.heroMap.Get(g.hero)
	return hero.Target
}

// Animals appends a view of every live animal, in roster order, to buf and
// returns it. Pass buf[:0] to reuse storage between frames.
func (g *Game) Animals(buf []EntityView) []EntityView {
	for _, e := range g.roster {
		pos, motion, animal := g.animalMap.Get(e)
		buf = append(buf, EntityView{
			Entity:    e,
			Position:  *pos,
			Motion:    *motion,
			Target:    animal.PatrolTarget,
			Following: animal.Following,
		})
	}
	return buf
}

// Group returns the followers in recruitment order.
func (g *Game) Group() []ecs.Entity {
	return append([]ecs.Entity(nil), g.group...)
}

// Animal returns the state of a live animal, or false if e has been collected.
func (g *Game) Animal(e ecs.Entity) (components.Position, components.Animal, bool) {
	if !slices.Contains(g.roster, e) {
		return components.Position{}, components.Animal{}, false
	}
	pos, _, animal := g.animalMap.Get(e)
	return *pos, *animal, true
}

// MoveAnimal places an animal at (x, y). Used by scenario tests and tools.
func (g *Game) MoveAnimal(e ecs.Entity, x, y float64) {
	pos, _, _ := g.animalMap.Get(e)
	pos.X, pos.Y = x, y
}

// PlaceHero puts the hero at (x, y) with its target on the same spot.
func (g *Game) PlaceHero(x, y float64) {
	pos, _, hero := g.heroMap.Get(g.hero)
	pos.X, pos.Y = x, y
	hero.Target = *pos
}

// Roster returns the live animals in spawn order.
func (g *Game) Roster() []ecs.Entity {
	return append([]ecs.Entity(nil), g.roster...)
}
