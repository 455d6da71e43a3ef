package components

// Position represents an entity's field position.
type Position struct {
	X, Y float64
}

// Facing is the horizontal direction an entity last moved in.
type Facing uint8

const (
	FacingLeft Facing = iota // sprites are drawn facing left
	FacingRight
)

// Motion is derived each tick from the position delta.
// Renderers read it to choose idle/walk frames and flip sprites;
// simulation rules never consult it.
type Motion struct {
	Moved  bool
	Facing Facing
}
