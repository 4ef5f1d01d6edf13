package render

import "github.com/lixenwraith/dotframe/grid"

// Renderer is the terminal render capability the engine consumes.
// Render draws a full grid; Cleanup runs once at shutdown and must be
// reachable on failure paths so the terminal is always restored.
type Renderer interface {
	Render(g *grid.Grid) error
	Cleanup() error
}

// CellWriter is the positioned-write capability required by the
// differential renderer: move the cursor to one cell and write a
// single character (plus optional color) without repainting anything
// else. Flush commits writes batched since the last Flush.
type CellWriter interface {
	WriteCell(x, y int, r rune, c grid.Color) error
	Flush() error
	Cleanup() error
}
