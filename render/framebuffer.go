package render

import "github.com/lixenwraith/dotframe/grid"

// FrameBuffer owns two same-dimension grids and swaps their roles
// between frames. The back grid is the only mutable target; the front
// grid is what renderers see. Swap is a pointer exchange, so its cost
// is independent of grid size.
type FrameBuffer struct {
	front *grid.Grid
	back  *grid.Grid
}

// NewFrameBuffer creates a frame buffer with two empty grids
func NewFrameBuffer(width, height int) (*FrameBuffer, error) {
	front, err := grid.New(width, height)
	if err != nil {
		return nil, err
	}
	back, err := grid.New(width, height)
	if err != nil {
		return nil, err
	}
	return &FrameBuffer{front: front, back: back}, nil
}

// Back returns the mutable back grid. The front grid is never handed
// out for mutation; a half-drawn frame cannot become visible.
func (f *FrameBuffer) Back() *grid.Grid {
	return f.back
}

// Swap exchanges the front/back roles. O(1) regardless of dimensions.
func (f *FrameBuffer) Swap() {
	f.front, f.back = f.back, f.front
}

// Render passes the front grid to the renderer
func (f *FrameBuffer) Render(r Renderer) error {
	return r.Render(f.front)
}

// Size returns the buffer dimensions in cells
func (f *FrameBuffer) Size() (width, height int) {
	return f.front.Size()
}
