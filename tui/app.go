package tui

import (
	"context"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/herd/camera"
	"github.com/pthm-cable/herd/game"
)

// Options configures the terminal frontend.
type Options struct {
	ASCII    bool // use ASCIIGlyphs instead of emoji
	MaxTicks int  // stop after this many ticks, 0 = unlimited
}

// App owns the screen and the game for one terminal session. All methods
// run on the goroutine that called Run.
type App struct {
	screen   tcell.Screen
	game     *game.Game
	cam      *camera.Camera
	glyphs   Glyphs
	maxTicks int

	views       []game.EntityView
	prevButtons tcell.ButtonMask
}

// NewApp prepares an App for an initialized screen.
func NewApp(screen tcell.Screen, g *game.Game, opts Options) *App {
	glyphs := EmojiGlyphs
	if opts.ASCII {
		glyphs = ASCIIGlyphs
	}
	w, h := screen.Size()
	return &App{
		screen:   screen,
		game:     g,
		cam:      fieldCamera(w, h, g),
		glyphs:   glyphs,
		maxTicks: opts.MaxTicks,
	}
}

// Run drives the game at the configured tick rate until the user quits,
// ctx is cancelled, or MaxTicks is reached.
func (a *App) Run(ctx context.Context) error {
	a.screen.EnableMouse()
	defer a.screen.DisableMouse()

	done := make(chan struct{})
	defer close(done)
	eventCh := make(chan tcell.Event, 32)
	go a.readEvents(done, eventCh)

	tps := a.game.Config().Telemetry.TicksPerSecond
	ticker := time.NewTicker(time.Second / time.Duration(tps))
	defer ticker.Stop()

	a.draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-eventCh:
			if !ok {
				return nil
			}
			if !a.HandleEvent(ev) {
				slog.Info("terminal session ended", "tick", a.game.Tick(), "score", a.game.Score())
				return nil
			}
			a.draw()
		case <-ticker.C:
			a.game.Update()
			if a.maxTicks > 0 && int(a.game.Tick()) >= a.maxTicks {
				slog.Info("max ticks reached", "tick", a.game.Tick())
				return nil
			}
			a.draw()
		}
	}
}

// readEvents forwards screen events to out until the screen is finalized or
// done is closed. out is closed when the screen stops delivering events.
func (a *App) readEvents(done <-chan struct{}, out chan<- tcell.Event) {
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			close(out)
			return
		}
		select {
		case out <- ev:
		case <-done:
			return
		}
	}
}

// HandleEvent applies one input event. It returns false when the user quits.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, h := ev.Size()
		a.cam = fieldCamera(w, h, a.game)
		a.screen.Sync()
	case *tcell.EventMouse:
		buttons := ev.Buttons()
		pressed := buttons&tcell.Button1 != 0 && a.prevButtons&tcell.Button1 == 0
		a.prevButtons = buttons
		if pressed {
			col, row := ev.Position()
			x, y := cellToWorld(a.cam, col, row)
			a.game.SetHeroTarget(x, y)
		}
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return false
			case 'r', 'R':
				a.game.Reset()
			case ' ':
				a.game.TogglePause()
			case '+', '=':
				a.game.SetStepsPerUpdate(a.game.StepsPerUpdate() + 1)
			case '-', '_':
				a.game.SetStepsPerUpdate(a.game.StepsPerUpdate() - 1)
			}
		}
	}
	return true
}
