package systems

import "github.com/pthm-cable/herd/components"

// SetHeroTarget overwrites the hero's target. Callers clamp if they care;
// out-of-field targets are accepted.
func SetHeroTarget(hero *components.Hero, x, y float64) {
	hero.Target = components.Position{X: x, Y: y}
}

// TickHero advances the hero one tick toward its target and returns the
// updated position. Within Speed of the target the hero snaps onto it and
// stays there until the target changes.
func TickHero(pos *components.Position, hero *components.Hero) components.Position {
	*pos, _ = SeekAndSnap(*pos, hero.Target, hero.Speed)
	return *pos
}
