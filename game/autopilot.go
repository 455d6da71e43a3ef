package game

import (
	"math"

	"github.com/pthm-cable/herd/components"
	"github.com/pthm-cable/herd/systems"
)

// Autopilot steers the hero in headless runs. It walks to the nearest
// patrolling animal until the group is full or nobody is left to recruit,
// then walks to the yard.
type Autopilot struct {
	target components.Position
	toYard bool
}

// NewAutopilot returns an idle autopilot.
func NewAutopilot() *Autopilot {
	return &Autopilot{}
}

// Drive picks a target for this frame and hands it to the game.
func (a *Autopilot) Drive(g *Game) {
	a.target, a.toYard = a.choose(g)
	g.SetHeroTarget(a.target.X, a.target.Y)
}

// Target returns the last target chosen and whether it was the yard.
func (a *Autopilot) Target() (components.Position, bool) {
	return a.target, a.toYard
}

func (a *Autopilot) choose(g *Game) (components.Position, bool) {
	heroPos := g.Hero().Position
	yard := g.Yard().Position

	if g.GroupSize() >= g.cfg.Herd.Capacity {
		return yard, true
	}

	best := math.Inf(1)
	var nearest components.Position
	found := false
	for _, e := range g.roster {
		pos, _, animal := g.animalMap.Get(e)
		if animal.Following {
			continue
		}
		if d := systems.Distance(heroPos, *pos); d < best {
			best = d
			nearest = *pos
			found = true
		}
	}

	if !found {
		if g.GroupSize() == 0 {
			return heroPos, false
		}
		return yard, true
	}
	return nearest, false
}
