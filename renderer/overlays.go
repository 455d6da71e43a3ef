package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/herd/camera"
	"github.com/pthm-cable/herd/components"
	"github.com/pthm-cable/herd/game"
)

// OverlayFlags selects which debug overlays to draw.
type OverlayFlags struct {
	Radii       bool
	Targets     bool
	FollowLines bool
}

var (
	recruitRadiusColor  = rl.Color{R: 255, G: 255, B: 255, A: 90}
	deliveryRadiusColor = rl.Color{R: 255, G: 140, B: 0, A: 140}
	heroTargetColor     = rl.Color{R: 255, G: 80, B: 80, A: 200}
	patrolTargetColor   = rl.Color{R: 200, G: 200, B: 255, A: 120}
	followLineColor     = rl.Color{R: 255, G: 255, B: 255, A: 70}
)

// DrawOverlays renders the enabled overlays on top of the herd. It uses the
// views from the last Draw call.
func (h *HerdRenderer) DrawOverlays(g *game.Game, cam *camera.Camera, flags OverlayFlags) {
	hero := g.Hero()
	heroScreen := screenVec(cam, hero.Position)
	scale, _ := cam.Scale()

	if flags.Radii {
		cfg := g.Config()
		rl.DrawCircleLinesV(heroScreen, float32(cfg.Herd.RecruitRadius*scale), recruitRadiusColor)
		yard := screenVec(cam, g.Yard().Position)
		rl.DrawCircleLinesV(yard, float32(cfg.Yard.DeliveryRadius*scale), deliveryRadiusColor)
	}

	if flags.FollowLines {
		for _, a := range h.views {
			if a.Following {
				rl.DrawLineV(screenVec(cam, a.Position), heroScreen, followLineColor)
			}
		}
	}

	if flags.Targets {
		if hero.Target != hero.Position {
			drawCross(screenVec(cam, hero.Target), 6, heroTargetColor)
		}
		for _, a := range h.views {
			if !a.Following {
				drawCross(screenVec(cam, a.Target), 4, patrolTargetColor)
			}
		}
	}
}

func screenVec(cam *camera.Camera, p components.Position) rl.Vector2 {
	x, y := cam.WorldToScreen(p.X, p.Y)
	return rl.Vector2{X: float32(x), Y: float32(y)}
}

func drawCross(c rl.Vector2, size float32, color rl.Color) {
	rl.DrawLineV(rl.Vector2{X: c.X - size, Y: c.Y - size}, rl.Vector2{X: c.X + size, Y: c.Y + size}, color)
	rl.DrawLineV(rl.Vector2{X: c.X - size, Y: c.Y + size}, rl.Vector2{X: c.X + size, Y: c.Y - size}, color)
}
