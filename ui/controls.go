package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// ControlsAction reports what the user did with the controls panel this frame.
type ControlsAction struct {
	TogglePause bool
	Restart     bool
	Speed       int
}

// ControlsPanel renders pause, restart and speed controls with raygui.
type ControlsPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
	overlays *OverlayRegistry
}

// NewControlsPanel creates a new controls panel anchored at (x, y).
func NewControlsPanel(x, y, width int32, overlays *OverlayRegistry) *ControlsPanel {
	return &ControlsPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
		overlays: overlays,
	}
}

// SetPosition moves the panel, e.g. after a window resize.
func (c *ControlsPanel) SetPosition(x, y int32) {
	c.x = x
	c.y = y
}

// height returns the panel height for the current overlay count.
func (c *ControlsPanel) height() int32 {
	th := c.renderer.Theme
	return th.Padding*2 + 30 + 8 + 20 + 8 + th.LineHeight + int32(len(c.overlays.All()))*22
}

// Contains reports whether a screen point falls on the panel. Clicks there
// must not move the hero.
func (c *ControlsPanel) Contains(x, y float32) bool {
	return rl.CheckCollisionPointRec(rl.Vector2{X: x, Y: y}, c.bounds())
}

func (c *ControlsPanel) bounds() rl.Rectangle {
	return rl.Rectangle{X: float32(c.x), Y: float32(c.y), Width: float32(c.width), Height: float32(c.height())}
}

// Draw renders the panel and returns the user's actions.
func (c *ControlsPanel) Draw(paused bool, speed int) ControlsAction {
	th := c.renderer.Theme
	action := ControlsAction{Speed: speed}

	c.renderer.DrawPanel(c.x, c.y, c.width, c.height())

	px := float32(c.x + th.Padding)
	py := float32(c.y + th.Padding)
	inner := float32(c.width - th.Padding*2)
	half := (inner - 8) / 2

	pauseLabel := "Pause"
	if paused {
		pauseLabel = "Resume"
	}
	if gui.Button(rl.Rectangle{X: px, Y: py, Width: half, Height: 30}, pauseLabel) {
		action.TogglePause = true
	}
	if gui.Button(rl.Rectangle{X: px + half + 8, Y: py, Width: half, Height: 30}, "Restart") {
		action.Restart = true
	}
	py += 38

	newSpeed := gui.SliderBar(
		rl.Rectangle{X: px + 40, Y: py, Width: inner - 80, Height: 20},
		"Speed", fmt.Sprintf("%dx", speed),
		float32(speed), 1, 10,
	)
	action.Speed = int(newSpeed + 0.5)
	py += 28

	y := c.renderer.DrawSectionHeader(int32(px), int32(py), "Overlays")
	for _, desc := range c.overlays.All() {
		label := fmt.Sprintf("%s [%s]", desc.Name, desc.KeyLabel)
		enabled := c.overlays.IsEnabled(desc.ID)
		if gui.CheckBox(rl.Rectangle{X: px, Y: float32(y), Width: 16, Height: 16}, label, enabled) != enabled {
			c.overlays.Toggle(desc.ID)
		}
		y += 22
	}

	return action
}
