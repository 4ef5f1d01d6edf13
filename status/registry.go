package status

import "sync/atomic"

// Well-known metric keys published by the engine. The loop and the
// differential renderer cache pointers at construction and write to
// the atomics directly on the render path.
const (
	KeyFrames       = "engine.frames"       // Int: total frames rendered
	KeyActualFPS    = "engine.fps"          // Float: smoothed achieved frame rate
	KeyDropped      = "engine.dropped"      // Int: frames that overran their budget
	KeyChangedCells = "render.changed"      // Int: cells emitted by the last diff
	KeyTotalCells   = "render.total"        // Int: cells in the grid
	KeyIOReduction  = "render.reduction"    // Float: percent of cells skipped by diffing
	KeyFullRenders  = "render.full_repaint" // Int: forced full repaints (first frame, invalidate, resize)
)

// Registry is the central metrics facade
// Components cache pointers during init; render loops write directly to atomics
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count()
}
