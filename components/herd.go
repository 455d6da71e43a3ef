// Package components defines ECS components for the simulation.
package components

// Hero holds the player-controlled herder's steering state.
type Hero struct {
	Target Position
	Speed  float64
}

// PatrolState is the sub-state of a patrolling animal.
type PatrolState uint8

const (
	PatrolMoving PatrolState = iota
	PatrolWaiting
)

// String returns the state name for logs.
func (s PatrolState) String() string {
	if s == PatrolWaiting {
		return "waiting"
	}
	return "moving"
}

// Animal holds the behavior state of a herdable animal.
// Following flips to true at most once and is never cleared.
type Animal struct {
	Following    bool
	Patrol       PatrolState
	PatrolTarget Position
	WaitTicks    int32 // remaining ticks while Patrol == PatrolWaiting
	Speed        float64
}

// Yard is the static delivery region. Delivery distance is measured
// from the anchor (Position), not the centre of the footprint.
type Yard struct {
	Position      Position
	Width, Height float64
}
