package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Score     int
	Animals   int
	GroupSize int
	Capacity  int
	Tick      int32
	Speed     int
	FPS       int32
	Paused    bool
}

// HUD renders the main heads-up display.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{
		renderer: NewRenderer(),
	}
}

// ScoreText is the score line shown at the top of the screen.
func ScoreText(score int) string {
	return fmt.Sprintf("Score: %d", score)
}

// Draw renders the score at the top left with status rows under it.
func (h *HUD) Draw(data HUDData) {
	th := h.renderer.Theme
	rl.DrawText(ScoreText(data.Score), 10, 10, th.ScoreFontSize, th.ScoreColor)

	y := int32(42)
	y = h.renderer.DrawLabelValue(10, y, "Animals", fmt.Sprint(data.Animals))
	y = h.renderer.DrawLabelValue(10, y, "Group", fmt.Sprintf("%d/%d", data.GroupSize, data.Capacity))
	y = h.renderer.DrawLabelValue(10, y, "Tick", fmt.Sprint(data.Tick))
	y = h.renderer.DrawLabelValue(10, y, "Speed", fmt.Sprintf("%dx  %d fps", data.Speed, data.FPS))

	if data.Paused {
		rl.DrawText("PAUSED", 10, y+4, th.FontSize+4, th.SectionHeader)
	}
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-20, h.renderer.Theme.FontSize, rl.Gray)
}
