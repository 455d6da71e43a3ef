// Package systems provides the per-tick simulation systems.
package systems

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/herd/components"
)

// vec converts a Position to a gonum vector.
func vec(p components.Position) r2.Vec {
	return r2.Vec{X: p.X, Y: p.Y}
}

// position converts a gonum vector back to a Position.
func position(v r2.Vec) components.Position {
	return components.Position{X: v.X, Y: v.Y}
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b components.Position) float64 {
	return r2.Norm(r2.Sub(vec(b), vec(a)))
}

// Direction returns the unit vector from -> to and the distance between them.
// The vector is zero when the points coincide.
func Direction(from, to components.Position) (r2.Vec, float64) {
	d := r2.Sub(vec(to), vec(from))
	dist := r2.Norm(d)
	if dist == 0 {
		return r2.Vec{}, 0
	}
	return r2.Scale(1/dist, d), dist
}
