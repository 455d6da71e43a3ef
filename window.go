package main

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/herd/camera"
	"github.com/pthm-cable/herd/config"
	"github.com/pthm-cable/herd/game"
	"github.com/pthm-cable/herd/renderer"
	"github.com/pthm-cable/herd/ui"
)

const controlsLegend = "Click: move hero | Space: pause | < >: speed | R: restart | V T L: overlays"

// window bundles the raylib frontend state.
type window struct {
	game     *game.Game
	cam      *camera.Camera
	herd     *renderer.HerdRenderer
	hud      *ui.HUD
	overlays *ui.OverlayRegistry
	controls *ui.ControlsPanel
}

// runWindow opens a raylib window and plays until it is closed.
func runWindow(opts game.Options, maxTicks int) error {
	cfg := config.Cfg()

	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Herd")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	g, err := game.NewGameWithOptions(opts)
	if err != nil {
		return err
	}
	defer g.Close()

	w := &window{
		game:     g,
		cam:      camera.New(float64(cfg.Screen.Width), float64(cfg.Screen.Height), cfg.Field.Width, cfg.Field.Height),
		herd:     renderer.NewHerdRenderer(&cfg.Assets),
		hud:      ui.NewHUD(),
		overlays: ui.NewOverlayRegistry(),
	}
	w.controls = ui.NewControlsPanel(int32(cfg.Screen.Width)-190, 10, 180, w.overlays)
	g.SetCollectCallback(w.herd.Forget)

	w.herd.Init()
	defer w.herd.Unload()

	for !rl.WindowShouldClose() {
		w.handleInput()

		before := g.Tick()
		g.Update()
		if g.Tick() != before {
			w.herd.Advance(g)
		}

		w.draw()

		if maxTicks > 0 && int(g.Tick()) >= maxTicks {
			break
		}
	}
	return nil
}

// handleInput processes keyboard and mouse input.
func (w *window) handleInput() {
	w.handleResize()

	if rl.IsKeyPressed(rl.KeySpace) {
		w.game.TogglePause()
	}
	if rl.IsKeyPressed(rl.KeyR) {
		w.game.Reset()
	}

	// Steps-per-update control with < > keys (comma and period)
	if rl.IsKeyPressed(rl.KeyComma) {
		w.game.SetStepsPerUpdate(w.game.StepsPerUpdate() - 1)
	}
	if rl.IsKeyPressed(rl.KeyPeriod) {
		w.game.SetStepsPerUpdate(w.game.StepsPerUpdate() + 1)
	}

	if key := rl.GetKeyPressed(); key != 0 {
		w.overlays.HandleKeyPress(key)
	}

	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		m := rl.GetMousePosition()
		if !w.controls.Contains(m.X, m.Y) {
			x, y := w.cam.ScreenToWorld(float64(m.X), float64(m.Y))
			w.game.SetHeroTarget(x, y)
		}
	}
}

// handleResize refits the camera and moves the controls panel.
func (w *window) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	sw, sh := rl.GetScreenWidth(), rl.GetScreenHeight()
	w.cam.Resize(float64(sw), float64(sh))
	w.controls.SetPosition(int32(sw)-190, 10)
}

// draw renders the frame.
func (w *window) draw() {
	g := w.game

	rl.BeginDrawing()

	renderer.DrawField(w.cam, g.Yard())
	w.herd.Draw(g, w.cam)
	w.herd.DrawOverlays(g, w.cam, renderer.OverlayFlags{
		Radii:       w.overlays.IsEnabled(ui.OverlayRadii),
		Targets:     w.overlays.IsEnabled(ui.OverlayTargets),
		FollowLines: w.overlays.IsEnabled(ui.OverlayFollowLines),
	})

	w.hud.Draw(ui.HUDData{
		Score:     g.Score(),
		Animals:   g.AnimalCount(),
		GroupSize: g.GroupSize(),
		Capacity:  g.Config().Herd.Capacity,
		Tick:      g.Tick(),
		Speed:     g.StepsPerUpdate(),
		FPS:       rl.GetFPS(),
		Paused:    g.Paused(),
	})
	w.hud.DrawControls(int32(rl.GetScreenHeight()), controlsLegend)

	action := w.controls.Draw(g.Paused(), g.StepsPerUpdate())

	rl.EndDrawing()

	if action.TogglePause {
		g.TogglePause()
	}
	if action.Restart {
		g.Reset()
	}
	if action.Speed != g.StepsPerUpdate() {
		g.SetStepsPerUpdate(action.Speed)
	}
}
