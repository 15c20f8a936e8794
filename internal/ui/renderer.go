package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeonturn/internal/entity"
	"github.com/samdwyer/dungeonturn/internal/world"
)

// Frame is everything needed to draw one resolved turn.
type Frame struct {
	Grid     *world.Grid
	Actors   []*entity.Actor // Already in draw order, lowest first
	Player   *entity.Actor
	Messages []string // Oldest first
	Turn     int
	Status   string // Optional banner, e.g. on defeat
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the map, actors, status line and messages.
func (r *Renderer) Render(f Frame) {
	r.screen.Clear()

	r.drawMap(f.Grid)
	for _, a := range f.Actors {
		bg := glyphAt(f.Grid, a.Pos.X, a.Pos.Y).Bg
		style := tcell.StyleDefault.Foreground(a.Color).Background(bg)
		if a == f.Player {
			style = style.Bold(true)
		}
		r.screen.SetContent(a.Pos.X, a.Pos.Y, a.Glyph, style)
	}

	y := f.Grid.Height
	r.screen.DrawText(0, y, statusLine(f), tcell.StyleDefault.Foreground(tcell.ColorWhite))
	for i, msg := range f.Messages {
		r.screen.DrawText(0, y+1+i, msg, tcell.StyleDefault.Foreground(tcell.ColorSilver))
	}

	r.screen.Show()
}

// drawMap paints lit cells in view, dark cells already explored, and shroud elsewhere.
func (r *Renderer) drawMap(g *world.Grid) {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			gl := glyphAt(g, x, y)
			style := tcell.StyleDefault.Foreground(gl.Fg).Background(gl.Bg)
			r.screen.SetContent(x, y, gl.Rune, style)
		}
	}
}

func glyphAt(g *world.Grid, x, y int) world.Glyph {
	switch {
	case g.IsVisible(x, y):
		return g.GetTile(x, y).Light
	case g.IsExplored(x, y):
		return g.GetTile(x, y).Dark
	default:
		return world.Shroud
	}
}

func statusLine(f Frame) string {
	line := fmt.Sprintf("Turn %d", f.Turn)
	if f.Player != nil && f.Player.Fighter != nil {
		line = fmt.Sprintf("HP: %d/%d  %s", f.Player.Fighter.HP(), f.Player.Fighter.MaxHP, line)
	}
	if f.Status != "" {
		line += "  " + f.Status
	}
	return line
}
