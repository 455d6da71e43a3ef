// Package tui is a terminal frontend for the herding game built on tcell.
package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/pthm-cable/herd/camera"
	"github.com/pthm-cable/herd/game"
)

// Glyphs are the strings drawn for each entity. Wide glyphs take two cells.
type Glyphs struct {
	Hero     string
	Animal   string
	Follower string
}

// EmojiGlyphs suit terminals with emoji fonts.
var EmojiGlyphs = Glyphs{Hero: "🧑", Animal: "🐑", Follower: "🐏"}

// ASCIIGlyphs work everywhere.
var ASCIIGlyphs = Glyphs{Hero: "@", Animal: "o", Follower: "O"}

var (
	fieldStyle  = tcell.StyleDefault.Background(tcell.NewRGBColor(0x22, 0x8B, 0x22)).Foreground(tcell.ColorWhite)
	yardStyle   = tcell.StyleDefault.Background(tcell.ColorYellow).Foreground(tcell.ColorBlack)
	heroStyle   = fieldStyle.Foreground(tcell.ColorRed).Bold(true)
	hudStyle    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// hudRows is the number of rows above the field; footerRows sit below it.
const (
	hudRows    = 1
	footerRows = 1
)

// fieldCamera maps the field onto the rows between the HUD and the footer.
func fieldCamera(screenW, screenH int, g *game.Game) *camera.Camera {
	cfg := g.Config()
	rows := max(screenH-hudRows-footerRows, 1)
	return camera.NewStretched(float64(screenW), float64(rows), cfg.Field.Width, cfg.Field.Height)
}

// worldToCell returns the cell that contains a field point.
func worldToCell(cam *camera.Camera, x, y float64) (int, int) {
	sx, sy := cam.WorldToScreen(x, y)
	return int(sx), int(sy) + hudRows
}

// cellToWorld returns the field point at the center of a cell.
func cellToWorld(cam *camera.Camera, col, row int) (float64, float64) {
	return cam.ScreenToWorld(float64(col)+0.5, float64(row-hudRows)+0.5)
}

// draw renders one frame.
func (a *App) draw() {
	scr := a.screen
	scr.Clear()
	w, h := scr.Size()

	// Field background
	for row := hudRows; row < h-footerRows; row++ {
		for col := 0; col < w; col++ {
			scr.SetContent(col, row, ' ', nil, fieldStyle)
		}
	}

	// Yard extends right and down from its anchor, clipped to the field
	yard := a.game.Yard()
	x0, y0 := worldToCell(a.cam, yard.Position.X, yard.Position.Y)
	x1, y1 := worldToCell(a.cam, yard.Position.X+yard.Width, yard.Position.Y+yard.Height)
	for row := max(y0, hudRows); row < min(max(y1, y0+1), h-footerRows); row++ {
		for col := max(x0, 0); col < min(max(x1, x0+1), w); col++ {
			scr.SetContent(col, row, ' ', nil, yardStyle)
		}
	}

	a.views = a.game.Animals(a.views[:0])
	for _, v := range a.views {
		glyph := a.glyphs.Animal
		if v.Following {
			glyph = a.glyphs.Follower
		}
		col, row := worldToCell(a.cam, v.Position.X, v.Position.Y)
		a.putGlyph(col, row, glyph, a.styleAt(col, row))
	}

	hero := a.game.Hero()
	col, row := worldToCell(a.cam, hero.Position.X, hero.Position.Y)
	a.putGlyph(col, row, a.glyphs.Hero, heroStyle)

	putText(scr, 0, 0, fmt.Sprintf("Score: %d", a.game.Score()), hudStyle)

	status := fmt.Sprintf("animals %d  group %d/%d  speed %dx",
		a.game.AnimalCount(), a.game.GroupSize(), a.game.Config().Herd.Capacity, a.game.StepsPerUpdate())
	if a.game.Paused() {
		status += "  PAUSED"
	}
	status += "  | click: move  space: pause  +/-: speed  r: restart  q: quit"
	putText(scr, 0, h-1, status, statusStyle)

	scr.Show()
}

// styleAt keeps the yard color under entities standing in it.
func (a *App) styleAt(col, row int) tcell.Style {
	_, _, style, _ := a.screen.GetContent(col, row)
	return style.Foreground(tcell.ColorWhite)
}

// putGlyph draws a glyph inside the field rows, filling the second column
// of wide glyphs to avoid rendering artifacts.
func (a *App) putGlyph(x, y int, glyph string, style tcell.Style) {
	w, h := a.screen.Size()
	if x < 0 || x >= w || y < hudRows || y >= h-footerRows {
		return
	}
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	a.screen.SetContent(x, y, runes[0], combc, style)
	if runewidth.StringWidth(glyph) == 2 && x+1 < w {
		a.screen.SetContent(x+1, y, ' ', nil, style)
	}
}

// putText writes a string starting at (x, y), one rune per column,
// stopping at the right edge.
func putText(scr tcell.Screen, x, y int, s string, st tcell.Style) {
	sw, _ := scr.Size()
	for _, r := range s {
		if x >= sw {
			break
		}
		scr.SetContent(x, y, r, nil, st)
		x += max(runewidth.RuneWidth(r), 1)
	}
}
