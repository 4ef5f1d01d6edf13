package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/dotframe/grid"
	"github.com/lixenwraith/dotframe/render"
)

var (
	// ErrPlaybackStarted reports AddFrame after playback began
	ErrPlaybackStarted = errors.New("animation playback already started")

	// ErrNoFrames reports playback of an empty sequence
	ErrNoFrames = errors.New("animation has no frames")
)

// Prerendered is an ordered cache of precomputed grids replayed
// cyclically at a fixed rate. During playback no per-frame computation
// happens beyond cursor and character emission; that zero-compute
// guarantee is the whole point, in contrast to Loop which computes
// every frame live.
type Prerendered struct {
	frames   []*grid.Grid
	fps      float64
	interval time.Duration
	playing  bool
	next     int
}

// NewPrerendered creates an empty sequence with a fixed target rate
func NewPrerendered(fps float64) *Prerendered {
	return &Prerendered{
		fps:      fps,
		interval: NewFrameTimer(fps).TargetFrameTime(),
	}
}

// AddFrame appends one precomputed grid. Only valid before playback;
// the sequence is read-only once PlayLoop starts.
func (p *Prerendered) AddFrame(g *grid.Grid) error {
	if p.playing {
		return ErrPlaybackStarted
	}
	p.frames = append(p.frames, g)
	return nil
}

// FrameCount returns the sequence length
func (p *Prerendered) FrameCount() int {
	return len(p.frames)
}

// FPS returns the fixed playback rate
func (p *Prerendered) FPS() float64 {
	return p.fps
}

// PlayLoop replays the stored frames cyclically through the renderer
// until cancel closes. Always returns ErrStopped on cancellation, or
// the first render failure.
func (p *Prerendered) PlayLoop(cancel <-chan struct{}, r render.Renderer) error {
	if len(p.frames) == 0 {
		return ErrNoFrames
	}
	p.playing = true
	p.next = 0

	timer := NewFrameTimer(p.fps)
	for i := 0; ; i = (i + 1) % len(p.frames) {
		select {
		case <-cancel:
			return ErrStopped
		default:
		}

		if err := r.Render(p.frames[i]); err != nil {
			return fmt.Errorf("playback frame %d: %w", i, err)
		}
		timer.WaitForNextFrame()
	}
}

// FrameSource is the uniform "produce next frame plus delay" contract
// shared by interchangeable media players. Prerendered implements it;
// decoder-backed sources plug into the same seam. ok is false when the
// source is exhausted (Prerendered never exhausts, it wraps).
type FrameSource interface {
	NextFrame() (g *grid.Grid, delay time.Duration, ok bool)
}

// NextFrame implements FrameSource with cyclic wraparound and the
// fixed per-frame interval derived from the configured rate
func (p *Prerendered) NextFrame() (*grid.Grid, time.Duration, bool) {
	if len(p.frames) == 0 {
		return nil, 0, false
	}
	p.playing = true
	g := p.frames[p.next]
	p.next = (p.next + 1) % len(p.frames)
	return g, p.interval, true
}

// PlaySource renders frames from any source, honoring each frame's
// own delay, until the source exhausts or cancel closes
func PlaySource(cancel <-chan struct{}, src FrameSource, r render.Renderer) error {
	for {
		select {
		case <-cancel:
			return ErrStopped
		default:
		}

		g, delay, ok := src.NextFrame()
		if !ok {
			return nil
		}
		if err := r.Render(g); err != nil {
			return fmt.Errorf("source frame: %w", err)
		}

		if delay <= 0 {
			continue
		}
		select {
		case <-cancel:
			return ErrStopped
		case <-time.After(delay):
		}
	}
}
