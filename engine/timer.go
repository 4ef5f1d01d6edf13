package engine

import (
	"time"

	"github.com/lixenwraith/dotframe/parameter"
)

// FrameTimer paces a render loop at a target rate. It is the loop's
// single intentional suspension point: WaitForNextFrame blocks for the
// remainder of the frame budget, or returns immediately when the frame
// overran (a dropped frame; no catch-up sleep debt is accumulated).
type FrameTimer struct {
	target      time.Duration
	frameStart  time.Time
	lastFrame   time.Duration
	smoothedFPS float64
	dropped     int64
}

// NewFrameTimer creates a timer for the given target rate.
// Non-positive or absurd rates fall back to the default.
func NewFrameTimer(targetFPS float64) *FrameTimer {
	if targetFPS <= 0 {
		targetFPS = parameter.DefaultFPS
	}
	target := time.Duration(float64(time.Second) / targetFPS)
	if target < parameter.MinFrameDuration {
		target = parameter.MinFrameDuration
	}
	return &FrameTimer{
		target:     target,
		frameStart: time.Now(),
	}
}

// WaitForNextFrame blocks until the current frame's budget elapses,
// records the completed frame's duration, and starts timing the next.
// Never sleeps a negative duration.
func (t *FrameTimer) WaitForNextFrame() {
	elapsed := time.Since(t.frameStart)
	if elapsed < t.target {
		time.Sleep(t.target - elapsed)
	} else {
		t.dropped++
	}

	now := time.Now()
	t.lastFrame = now.Sub(t.frameStart)
	t.frameStart = now

	if secs := t.lastFrame.Seconds(); secs > 0 {
		inst := 1 / secs
		if t.smoothedFPS == 0 {
			t.smoothedFPS = inst
		} else {
			t.smoothedFPS = parameter.FPSSmoothing*t.smoothedFPS + (1-parameter.FPSSmoothing)*inst
		}
	}
}

// ActualFPS returns the smoothed achieved frame rate, 0 before the
// first frame completes
func (t *FrameTimer) ActualFPS() float64 {
	return t.smoothedFPS
}

// FrameTime returns the duration of the last completed frame
func (t *FrameTimer) FrameTime() time.Duration {
	return t.lastFrame
}

// TargetFrameTime returns the configured frame budget
func (t *FrameTimer) TargetFrameTime() time.Duration {
	return t.target
}

// Dropped returns how many frames overran their budget
func (t *FrameTimer) Dropped() int64 {
	return t.dropped
}

// Reset clears timing history and restarts the frame clock from now
func (t *FrameTimer) Reset() {
	t.frameStart = time.Now()
	t.lastFrame = 0
	t.smoothedFPS = 0
	t.dropped = 0
}
