package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/dotframe/grid"
)

// ScreenRenderer adapts a tcell.Screen to the Renderer and CellWriter
// capabilities. Useful where tcell already owns the terminal (event
// handling, portability) and the engine should draw through it rather
// than through the raw ANSI collaborator.
type ScreenRenderer struct {
	screen tcell.Screen
}

// NewScreenRenderer wraps an initialized tcell.Screen
func NewScreenRenderer(s tcell.Screen) *ScreenRenderer {
	return &ScreenRenderer{screen: s}
}

// style converts an optional cell color to a tcell style
func (r *ScreenRenderer) style(c grid.Color) tcell.Style {
	if !c.Valid {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

// Render draws the full grid and shows it
func (r *ScreenRenderer) Render(g *grid.Grid) error {
	w, h := g.Size()
	for cy := 0; cy < h; cy++ {
		for cx := 0; cx < w; cx++ {
			r.screen.SetContent(cx, cy, g.CellRune(cx, cy), nil, r.style(g.Color(cx, cy)))
		}
	}
	r.screen.Show()
	return nil
}

// WriteCell stages one positioned cell write
func (r *ScreenRenderer) WriteCell(x, y int, ch rune, c grid.Color) error {
	r.screen.SetContent(x, y, ch, nil, r.style(c))
	return nil
}

// Flush shows writes staged since the last Flush
func (r *ScreenRenderer) Flush() error {
	r.screen.Show()
	return nil
}

// Cleanup finalizes the screen. tcell recovers the terminal state it
// captured at Init.
func (r *ScreenRenderer) Cleanup() error {
	r.screen.Fini()
	return nil
}
