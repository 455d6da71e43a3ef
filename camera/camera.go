// Package camera maps between field coordinates and a frontend's viewport.
package camera

// Camera fits the field into a viewport. With uniform scaling the field is
// letterboxed and centered; without it each axis stretches independently,
// which suits terminal cells that are taller than they are wide.
type Camera struct {
	// Field dimensions in world units
	WorldW, WorldH float64

	// Viewport dimensions (pixels or cells)
	ViewportW, ViewportH float64

	// Uniform keeps the field's aspect ratio
	Uniform bool

	scaleX, scaleY   float64
	offsetX, offsetY float64
}

// New creates a letterboxing camera.
func New(viewportW, viewportH, worldW, worldH float64) *Camera {
	c := &Camera{WorldW: worldW, WorldH: worldH, Uniform: true}
	c.Resize(viewportW, viewportH)
	return c
}

// NewStretched creates a camera that fills the viewport on both axes.
func NewStretched(viewportW, viewportH, worldW, worldH float64) *Camera {
	c := &Camera{WorldW: worldW, WorldH: worldH}
	c.Resize(viewportW, viewportH)
	return c
}

// Resize updates viewport dimensions and recomputes the mapping.
func (c *Camera) Resize(viewportW, viewportH float64) {
	c.ViewportW = viewportW
	c.ViewportH = viewportH

	c.scaleX = viewportW / c.WorldW
	c.scaleY = viewportH / c.WorldH
	c.offsetX, c.offsetY = 0, 0

	if c.Uniform {
		s := min(c.scaleX, c.scaleY)
		c.scaleX, c.scaleY = s, s
		c.offsetX = (viewportW - c.WorldW*s) / 2
		c.offsetY = (viewportH - c.WorldH*s) / 2
	}
}

// Scale returns the horizontal and vertical world-to-viewport factors.
func (c *Camera) Scale() (sx, sy float64) {
	return c.scaleX, c.scaleY
}

// WorldToScreen converts field coordinates to viewport coordinates.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy float64) {
	return c.offsetX + wx*c.scaleX, c.offsetY + wy*c.scaleY
}

// ScreenToWorld converts viewport coordinates to field coordinates.
// Points in the letterbox map outside the field; callers pass them on as is.
func (c *Camera) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	return (sx - c.offsetX) / c.scaleX, (sy - c.offsetY) / c.scaleY
}

// FieldRect returns the viewport rectangle the field occupies.
func (c *Camera) FieldRect() (x, y, w, h float64) {
	return c.offsetX, c.offsetY, c.WorldW * c.scaleX, c.WorldH * c.scaleY
}

// IsVisible reports whether a circle at (wx, wy) overlaps the viewport.
func (c *Camera) IsVisible(wx, wy, radius float64) bool {
	sx, sy := c.WorldToScreen(wx, wy)
	rx, ry := radius*c.scaleX, radius*c.scaleY
	return sx+rx >= 0 && sx-rx <= c.ViewportW && sy+ry >= 0 && sy-ry <= c.ViewportH
}
