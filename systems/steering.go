package systems

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/herd/components"
)

// MoveToward advances cur by exactly speed units toward target when the
// distance exceeds stopBuffer. Inside the buffer the position is held.
func MoveToward(cur, target components.Position, speed, stopBuffer float64) (components.Position, bool) {
	dir, dist := Direction(cur, target)
	if dist <= stopBuffer {
		return cur, false
	}
	return position(r2.Add(vec(cur), r2.Scale(speed, dir))), true
}

// SeekAndSnap is MoveToward with the stop buffer equal to speed, except that
// once within one tick's travel the position lands exactly on target. This
// keeps the hero from oscillating around the clicked point.
func SeekAndSnap(cur, target components.Position, speed float64) (components.Position, bool) {
	next, moved := MoveToward(cur, target, speed, speed)
	if !moved {
		return target, cur != target
	}
	return next, true
}

// DeriveMotion computes the render-side motion signal from a position delta.
// Facing only changes when the horizontal delta exceeds epsilon.
func DeriveMotion(prev, next components.Position, epsilon float64, last components.Facing) components.Motion {
	dx := next.X - prev.X
	dy := next.Y - prev.Y

	facing := last
	if math.Abs(dx) > epsilon {
		if dx > 0 {
			facing = components.FacingRight
		} else {
			facing = components.FacingLeft
		}
	}

	return components.Motion{
		Moved:  math.Abs(dx) > epsilon || math.Abs(dy) > epsilon,
		Facing: facing,
	}
}
