package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/herd/camera"
	"github.com/pthm-cable/herd/components"
)

var (
	fieldColor     = rl.Color{R: 0x22, G: 0x8B, B: 0x22, A: 255}
	letterboxColor = rl.Color{R: 12, G: 20, B: 12, A: 255}
	yardColor      = rl.Color{R: 0xFF, G: 0xFF, B: 0x00, A: 255}
)

// DrawField clears the window and paints the field and the yard. The yard
// rectangle extends right and down from its anchor.
func DrawField(cam *camera.Camera, yard components.Yard) {
	rl.ClearBackground(letterboxColor)

	x, y, w, h := cam.FieldRect()
	rl.DrawRectangleRec(rl.Rectangle{X: float32(x), Y: float32(y), Width: float32(w), Height: float32(h)}, fieldColor)

	yx, yy := cam.WorldToScreen(yard.Position.X, yard.Position.Y)
	sx, sy := cam.Scale()
	yw, yh := yard.Width*sx, yard.Height*sy

	// Clip to the field so the part of the yard past the edge stays hidden.
	rl.BeginScissorMode(int32(x), int32(y), int32(w), int32(h))
	rl.DrawRectangleRec(rl.Rectangle{X: float32(yx), Y: float32(yy), Width: float32(yw), Height: float32(yh)}, yardColor)
	rl.EndScissorMode()
}
