package systems

import (
	"math/rand"

	"github.com/pthm-cable/herd/components"
	"github.com/pthm-cable/herd/config"
)

// AnimalParams holds the tuning shared by every animal.
type AnimalParams struct {
	Bounds       config.Rect // patrol targets are sampled here
	Speed        float64
	FollowSpeed  float64
	FollowBuffer float64
	PatrolBuffer float64
	ArriveRadius float64
	WaitMin      int // inclusive
	WaitMax      int // exclusive
}

// AnimalParamsFromConfig builds AnimalParams from the loaded config.
func AnimalParamsFromConfig(cfg *config.Config) AnimalParams {
	return AnimalParams{
		Bounds:       cfg.Derived.PatrolBounds,
		Speed:        cfg.Animal.Speed,
		FollowSpeed:  cfg.Derived.FollowSpeed,
		FollowBuffer: cfg.Animal.FollowBuffer,
		PatrolBuffer: cfg.Animal.PatrolBuffer,
		ArriveRadius: cfg.Animal.ArriveRadius,
		WaitMin:      cfg.Animal.WaitMinTicks,
		WaitMax:      cfg.Animal.WaitMaxTicks,
	}
}

// NewAnimal returns the initial state for an animal spawned at pos.
// The patrol target is the spawn point itself, so the first update
// arrives immediately and starts a wait.
func NewAnimal(pos components.Position, speed float64) components.Animal {
	return components.Animal{
		Patrol:       components.PatrolMoving,
		PatrolTarget: pos,
		Speed:        speed,
	}
}

// UpdateAnimal advances one animal by one tick and returns its new position.
//
// Following animals seek the hero at FollowSpeed and stop FollowBuffer short.
// Patrolling animals alternate between seeking PatrolTarget and waiting a
// random number of ticks before picking the next target.
func UpdateAnimal(pos *components.Position, animal *components.Animal, heroPos components.Position, p AnimalParams, rng *rand.Rand) components.Position {
	if animal.Following {
		*pos, _ = MoveToward(*pos, heroPos, p.FollowSpeed, p.FollowBuffer)
		return *pos
	}

	switch animal.Patrol {
	case components.PatrolWaiting:
		animal.WaitTicks--
		if animal.WaitTicks <= 0 {
			animal.WaitTicks = 0
			animal.PatrolTarget = SamplePatrolTarget(rng, p.Bounds)
			animal.Patrol = components.PatrolMoving
		}
	case components.PatrolMoving:
		if Distance(*pos, animal.PatrolTarget) < p.ArriveRadius {
			animal.Patrol = components.PatrolWaiting
			animal.WaitTicks = SampleWaitTicks(rng, p.WaitMin, p.WaitMax)
			break
		}
		*pos, _ = MoveToward(*pos, animal.PatrolTarget, animal.Speed, p.PatrolBuffer)
	}

	return *pos
}

// Recruit switches an animal to following. It returns false if the animal
// was already following; the transition happens at most once.
func Recruit(animal *components.Animal) bool {
	if animal.Following {
		return false
	}
	animal.Following = true
	animal.WaitTicks = 0
	return true
}

// SampleWaitTicks returns a wait duration uniformly in [min, max).
func SampleWaitTicks(rng *rand.Rand, min, max int) int32 {
	return int32(min + rng.Intn(max-min))
}

// SamplePatrolTarget returns a point uniformly inside bounds.
func SamplePatrolTarget(rng *rand.Rand, bounds config.Rect) components.Position {
	return components.Position{
		X: bounds.MinX + rng.Float64()*(bounds.MaxX-bounds.MinX),
		Y: bounds.MinY + rng.Float64()*(bounds.MaxY-bounds.MinY),
	}
}
