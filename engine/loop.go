package engine

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/lixenwraith/dotframe/grid"
	"github.com/lixenwraith/dotframe/render"
	"github.com/lixenwraith/dotframe/status"
)

// ErrStopped is returned by Run when the cancellation channel closes
// before the callback asks to stop. Callers that treat cancellation
// as normal shutdown can errors.Is against it.
var ErrStopped = errors.New("animation cancelled")

// FrameFunc draws one frame into the back grid. It returns false to
// stop the loop cleanly; an error stops the loop and propagates.
// The callback never sees the front grid, so a half-drawn frame
// cannot become visible.
type FrameFunc func(frame int64, back *grid.Grid) (bool, error)

// Config assembles a Loop. No reconfiguration happens after Run starts.
type Config struct {
	Width  int
	Height int
	FPS    float64

	// Status receives fps/frame metrics when non-nil
	Status *status.Registry

	// Overlay is drawn after each rendered frame when non-nil
	Overlay *render.StatsOverlay
}

// Loop is the cooperative single-threaded render loop: callback into
// the back grid, swap, render the front grid, wait for the frame
// boundary. Everything runs on the caller's goroutine.
type Loop struct {
	buffer  *render.FrameBuffer
	timer   *FrameTimer
	overlay *render.StatsOverlay

	statFPS     *status.AtomicFloat
	statFrames  *atomic.Int64
	statDropped *atomic.Int64
}

// NewLoop builds a loop from the config
func NewLoop(cfg Config) (*Loop, error) {
	fb, err := render.NewFrameBuffer(cfg.Width, cfg.Height)
	if err != nil {
		return nil, fmt.Errorf("frame buffer: %w", err)
	}
	l := &Loop{
		buffer:  fb,
		timer:   NewFrameTimer(cfg.FPS),
		overlay: cfg.Overlay,
	}
	if cfg.Status != nil {
		l.statFPS = cfg.Status.Floats.Get(status.KeyActualFPS)
		l.statFrames = cfg.Status.Ints.Get(status.KeyFrames)
		l.statDropped = cfg.Status.Ints.Get(status.KeyDropped)
	}
	return l, nil
}

// Buffer exposes the frame buffer for pre-loop setup (e.g. seeding
// the first back frame)
func (l *Loop) Buffer() *render.FrameBuffer {
	return l.buffer
}

// Timer exposes the frame timer for diagnostics
func (l *Loop) Timer() *FrameTimer {
	return l.timer
}

// Run drives the loop until the callback stops it, the callback or
// renderer fails, or cancel closes. Per iteration, in fixed order:
// cancellation poll, callback on the back grid, swap, render front,
// wait for the frame boundary. The renderer's Cleanup always runs
// before Run returns, including on failure paths.
func (l *Loop) Run(cancel <-chan struct{}, r render.Renderer, fn FrameFunc) (err error) {
	defer func() {
		if cerr := r.Cleanup(); cerr != nil && err == nil {
			err = fmt.Errorf("cleanup: %w", cerr)
		}
	}()

	l.timer.Reset()

	var frame int64
	for {
		// Non-blocking cancellation poll bounds shutdown latency to
		// one frame period
		select {
		case <-cancel:
			return ErrStopped
		default:
		}

		cont, ferr := fn(frame, l.buffer.Back())
		if ferr != nil {
			return fmt.Errorf("frame %d: %w", frame, ferr)
		}

		l.buffer.Swap()

		if rerr := l.buffer.Render(r); rerr != nil {
			return fmt.Errorf("render frame %d: %w", frame, rerr)
		}
		if l.overlay != nil {
			if oerr := l.overlay.Draw(); oerr != nil {
				return fmt.Errorf("overlay frame %d: %w", frame, oerr)
			}
		}

		if !cont {
			return nil
		}

		l.timer.WaitForNextFrame()
		frame++
		l.recordStats(frame)
	}
}

func (l *Loop) recordStats(frame int64) {
	if l.statFPS == nil {
		return
	}
	l.statFPS.Set(l.timer.ActualFPS())
	l.statFrames.Store(frame)
	l.statDropped.Store(l.timer.Dropped())
}
