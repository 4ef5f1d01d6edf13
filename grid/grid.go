package grid

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/dotframe/parameter"
)

// Grid is a dot-addressable drawing surface. Each cell covers a 2x4
// sub-matrix of dots stored as one bit each in a uint8 mask, so a
// width x height grid addresses width*2 x height*4 dots. Drawing APIs
// take dot-space coordinates; color and cell APIs take cell-space
// coordinates. Dimensions are fixed at construction.
type Grid struct {
	width  int
	height int
	cells  []uint8 // Row-major dot masks, cells[cy*width+cx]
	colors []Color // Lazily allocated, same layout; nil until first SetCellColor
}

// New creates an empty grid of width x height cells
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 || width > parameter.MaxGridDim || height > parameter.MaxGridDim {
		return nil, fmt.Errorf("%w: %dx%d (max %d per axis)", ErrDimensions, width, height, parameter.MaxGridDim)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]uint8, width*height),
	}, nil
}

// Size returns the grid dimensions in cells
func (g *Grid) Size() (width, height int) {
	return g.width, g.height
}

// DotSize returns the addressable dot-space extents
func (g *Grid) DotSize() (width, height int) {
	return g.width * parameter.CellDotWidth, g.height * parameter.CellDotHeight
}

// dotIndex resolves a dot-space coordinate to cell index and mask bit
func (g *Grid) dotIndex(x, y int) (idx int, bit uint8, err error) {
	dw, dh := g.DotSize()
	if x < 0 || x >= dw || y < 0 || y >= dh {
		return 0, 0, fmt.Errorf("%w: dot (%d,%d), extents %dx%d", ErrOutOfBounds, x, y, dw, dh)
	}
	cx := x / parameter.CellDotWidth
	cy := y / parameter.CellDotHeight
	bit, err = dotBit(x%parameter.CellDotWidth, y%parameter.CellDotHeight)
	if err != nil {
		return 0, 0, err
	}
	return cy*g.width + cx, bit, nil
}

// SetDot turns on one dot at a dot-space coordinate
func (g *Grid) SetDot(x, y int) error {
	idx, bit, err := g.dotIndex(x, y)
	if err != nil {
		return err
	}
	g.cells[idx] |= bit
	return nil
}

// ClearDot turns off one dot at a dot-space coordinate
func (g *Grid) ClearDot(x, y int) error {
	idx, bit, err := g.dotIndex(x, y)
	if err != nil {
		return err
	}
	g.cells[idx] &^= bit
	return nil
}

// Dot reports whether the dot at a dot-space coordinate is set
func (g *Grid) Dot(x, y int) (bool, error) {
	idx, bit, err := g.dotIndex(x, y)
	if err != nil {
		return false, err
	}
	return g.cells[idx]&bit != 0, nil
}

// cellIndex validates a cell-space coordinate
func (g *Grid) cellIndex(cx, cy int) (int, error) {
	if cx < 0 || cx >= g.width || cy < 0 || cy >= g.height {
		return 0, fmt.Errorf("%w: cell (%d,%d), extents %dx%d", ErrOutOfBounds, cx, cy, g.width, g.height)
	}
	return cy*g.width + cx, nil
}

// SetCellColor assigns a color to one cell, allocating the color
// store on first use
func (g *Grid) SetCellColor(cx, cy int, c Color) error {
	idx, err := g.cellIndex(cx, cy)
	if err != nil {
		return err
	}
	if g.colors == nil {
		g.colors = make([]Color, g.width*g.height)
	}
	g.colors[idx] = c
	return nil
}

// ClearCellColor resets one cell to "no color"
func (g *Grid) ClearCellColor(cx, cy int) error {
	idx, err := g.cellIndex(cx, cy)
	if err != nil {
		return err
	}
	if g.colors != nil {
		g.colors[idx] = Color{}
	}
	return nil
}

// Color returns the cell's color; the zero value when colors were
// never enabled or the cell has none
func (g *Grid) Color(cx, cy int) Color {
	if g.colors == nil || cx < 0 || cx >= g.width || cy < 0 || cy >= g.height {
		return Color{}
	}
	return g.colors[cy*g.width+cx]
}

// Mask returns the cell's raw dot mask (0 when out of bounds)
func (g *Grid) Mask(cx, cy int) uint8 {
	if cx < 0 || cx >= g.width || cy < 0 || cy >= g.height {
		return 0
	}
	return g.cells[cy*g.width+cx]
}

// HasColors reports whether the color store has been enabled
func (g *Grid) HasColors() bool {
	return g.colors != nil
}

// Clear resets all dot masks, leaving the color store untouched so a
// monochrome fallback does not discard assigned colors
func (g *Grid) Clear() {
	if len(g.cells) == 0 {
		return
	}
	g.cells[0] = 0
	for filled := 1; filled < len(g.cells); filled *= 2 {
		copy(g.cells[filled:], g.cells[:filled])
	}
}

// ClearColors resets every cell to "no color"
func (g *Grid) ClearColors() {
	if g.colors == nil {
		return
	}
	g.colors[0] = Color{}
	for filled := 1; filled < len(g.colors); filled *= 2 {
		copy(g.colors[filled:], g.colors[:filled])
	}
}

// CellRune returns the braille character for one cell
func (g *Grid) CellRune(cx, cy int) rune {
	return MaskRune(g.Mask(cx, cy))
}

// Rows renders every row as a string of braille characters
func (g *Grid) Rows() []string {
	rows := make([]string, g.height)
	var sb strings.Builder
	for cy := 0; cy < g.height; cy++ {
		sb.Reset()
		sb.Grow(g.width * 3) // Braille runes are 3 bytes in UTF-8
		for cx := 0; cx < g.width; cx++ {
			sb.WriteRune(MaskRune(g.cells[cy*g.width+cx]))
		}
		rows[cy] = sb.String()
	}
	return rows
}

// String renders the whole grid, rows separated by newlines
func (g *Grid) String() string {
	return strings.Join(g.Rows(), "\n")
}

// Clone returns a deep copy, used by the diff renderer to snapshot
// the last rendered frame
func (g *Grid) Clone() *Grid {
	c := &Grid{
		width:  g.width,
		height: g.height,
		cells:  make([]uint8, len(g.cells)),
	}
	copy(c.cells, g.cells)
	if g.colors != nil {
		c.colors = make([]Color, len(g.colors))
		copy(c.colors, g.colors)
	}
	return c
}

// CopyFrom overwrites this grid's content with src's. Dimensions must
// match; used to reuse snapshot allocations across frames.
func (g *Grid) CopyFrom(src *Grid) error {
	if g.width != src.width || g.height != src.height {
		return fmt.Errorf("%w: copy %dx%d into %dx%d", ErrDimensions, src.width, src.height, g.width, g.height)
	}
	copy(g.cells, src.cells)
	switch {
	case src.colors == nil && g.colors != nil:
		g.ClearColors()
	case src.colors != nil:
		if g.colors == nil {
			g.colors = make([]Color, len(src.colors))
		}
		copy(g.colors, src.colors)
	}
	return nil
}
