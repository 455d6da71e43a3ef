package main

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/herd/game"
	"github.com/pthm-cable/herd/tui"
)

// runTerminal plays the game in the terminal.
func runTerminal(ctx context.Context, opts game.Options, maxTicks int, ascii bool) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()

	g, err := game.NewGameWithOptions(opts)
	if err != nil {
		return err
	}
	defer g.Close()

	app := tui.NewApp(screen, g, tui.Options{ASCII: ascii, MaxTicks: maxTicks})
	if err := app.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
