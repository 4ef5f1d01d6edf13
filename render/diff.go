package render

import (
	"sync/atomic"

	"github.com/lixenwraith/dotframe/grid"
	"github.com/lixenwraith/dotframe/status"
)

// DiffRenderer draws only the cells that changed since the frame it
// last rendered. It owns a deep snapshot of that frame; no other
// component reads or mutates it, so no synchronization is needed on
// the single render-calling goroutine.
type DiffRenderer struct {
	out  CellWriter
	prev *grid.Grid // nil forces a full repaint

	// Cached status pointers; nil when no registry attached
	statChanged   *atomic.Int64
	statTotal     *atomic.Int64
	statReduction *status.AtomicFloat
	statFull      *atomic.Int64
}

// NewDiffRenderer creates a differential renderer over a cell writer
func NewDiffRenderer(out CellWriter) *DiffRenderer {
	return &DiffRenderer{out: out}
}

// AttachStatus caches metric pointers so the render path writes
// atomics directly instead of doing map lookups per frame
func (d *DiffRenderer) AttachStatus(reg *status.Registry) {
	d.statChanged = reg.Ints.Get(status.KeyChangedCells)
	d.statTotal = reg.Ints.Get(status.KeyTotalCells)
	d.statReduction = reg.Floats.Get(status.KeyIOReduction)
	d.statFull = reg.Ints.Get(status.KeyFullRenders)
}

// Invalidate discards the previous-frame snapshot, forcing the next
// Render to repaint every cell. Used after mode switches, resizes,
// or error recovery.
func (d *DiffRenderer) Invalidate() {
	d.prev = nil
}

// full reports whether the next render must repaint everything:
// no snapshot yet, or the snapshot's dimensions no longer match.
// A dimension change is an expected runtime event (terminal resize),
// never an error.
func (d *DiffRenderer) full(g *grid.Grid) bool {
	if d.prev == nil {
		return true
	}
	pw, ph := d.prev.Size()
	w, h := g.Size()
	return pw != w || ph != h
}

// cellChanged reports whether one cell differs between two
// same-dimension grids, by dot mask or by color
func cellChanged(current, previous *grid.Grid, cx, cy int) bool {
	return current.Mask(cx, cy) != previous.Mask(cx, cy) ||
		current.Color(cx, cy) != previous.Color(cx, cy)
}

// Render emits positioned writes for changed cells only, then
// snapshots the grid as the new previous frame. Implements Renderer.
func (d *DiffRenderer) Render(g *grid.Grid) error {
	w, h := g.Size()
	full := d.full(g)
	if full && d.statFull != nil {
		d.statFull.Add(1)
	}

	changed := 0
	for cy := 0; cy < h; cy++ {
		for cx := 0; cx < w; cx++ {
			if !full && !cellChanged(g, d.prev, cx, cy) {
				continue
			}
			if err := d.out.WriteCell(cx, cy, g.CellRune(cx, cy), g.Color(cx, cy)); err != nil {
				return err
			}
			changed++
		}
	}

	if err := d.out.Flush(); err != nil {
		return err
	}

	// Deep snapshot: the caller's grid is reused next cycle.
	// Reuse the existing allocation when dimensions still match.
	if full || d.prev.CopyFrom(g) != nil {
		d.prev = g.Clone()
	}

	d.recordStats(changed, w*h)
	return nil
}

// Cleanup restores the underlying terminal collaborator
func (d *DiffRenderer) Cleanup() error {
	return d.out.Cleanup()
}

func (d *DiffRenderer) recordStats(changed, total int) {
	if d.statChanged == nil {
		return
	}
	d.statChanged.Store(int64(changed))
	d.statTotal.Store(int64(total))
	if total > 0 {
		d.statReduction.Set(100 * float64(total-changed) / float64(total))
	}
}

// CountChangedCells returns how many cells differ between two grids.
// Pure instrumentation variant of the diff pass: no terminal I/O, no
// snapshot update. A nil or size-mismatched previous grid counts every
// cell, mirroring the full-repaint fallback of Render.
func CountChangedCells(current, previous *grid.Grid) int {
	w, h := current.Size()
	if previous == nil {
		return w * h
	}
	if pw, ph := previous.Size(); pw != w || ph != h {
		return w * h
	}

	changed := 0
	for cy := 0; cy < h; cy++ {
		for cx := 0; cx < w; cx++ {
			if cellChanged(current, previous, cx, cy) {
				changed++
			}
		}
	}
	return changed
}

// Previous returns the stored snapshot, or nil before the first
// render. Exposed for instrumentation; callers must not mutate it.
func (d *DiffRenderer) Previous() *grid.Grid {
	return d.prev
}
