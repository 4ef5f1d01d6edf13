package engine

import (
	"testing"
	"time"
)

func TestTargetFrameTime(t *testing.T) {
	cases := []struct {
		fps  float64
		want time.Duration
	}{
		{60, time.Second / 60},
		{30, time.Second / 30},
		{10, 100 * time.Millisecond},
	}
	for _, tc := range cases {
		timer := NewFrameTimer(tc.fps)
		if got := timer.TargetFrameTime(); got != tc.want {
			t.Errorf("NewFrameTimer(%v): target %v, want %v", tc.fps, got, tc.want)
		}
	}
}

func TestInvalidFPSFallsBackToDefault(t *testing.T) {
	for _, fps := range []float64{0, -5} {
		timer := NewFrameTimer(fps)
		if timer.TargetFrameTime() <= 0 {
			t.Errorf("NewFrameTimer(%v): expected positive target", fps)
		}
	}

	// Absurd rates clamp rather than producing a zero budget
	timer := NewFrameTimer(1e9)
	if timer.TargetFrameTime() <= 0 {
		t.Error("Expected clamped positive target for extreme fps")
	}
}

func TestActualFPSDefinedBeforeFirstFrame(t *testing.T) {
	timer := NewFrameTimer(60)
	if got := timer.ActualFPS(); got != 0 {
		t.Errorf("Expected fallback 0 before first frame, got %v", got)
	}
	if got := timer.FrameTime(); got != 0 {
		t.Errorf("Expected zero frame time before first frame, got %v", got)
	}
}

func TestWaitBlocksForRemainder(t *testing.T) {
	timer := NewFrameTimer(50) // 20ms budget
	start := time.Now()
	timer.WaitForNextFrame()
	elapsed := time.Since(start)

	if elapsed < 15*time.Millisecond {
		t.Errorf("Expected wait near 20ms, got %v", elapsed)
	}
	if timer.ActualFPS() <= 0 {
		t.Error("Expected positive actual fps after a completed frame")
	}
}

func TestOverrunReturnsImmediately(t *testing.T) {
	timer := NewFrameTimer(100) // 10ms budget

	// Simulate a frame that blew its budget
	time.Sleep(25 * time.Millisecond)

	start := time.Now()
	timer.WaitForNextFrame()
	if wait := time.Since(start); wait > 5*time.Millisecond {
		t.Errorf("Expected immediate return on overrun, waited %v", wait)
	}
	if timer.Dropped() != 1 {
		t.Errorf("Expected 1 dropped frame, got %d", timer.Dropped())
	}

	// Baseline reset to now: the next on-budget frame is not penalized
	start = time.Now()
	timer.WaitForNextFrame()
	if wait := time.Since(start); wait < 5*time.Millisecond {
		t.Errorf("Expected next frame to honor its full budget, waited only %v", wait)
	}
	if timer.Dropped() != 1 {
		t.Errorf("Expected no additional drop, got %d", timer.Dropped())
	}
}

func TestReset(t *testing.T) {
	timer := NewFrameTimer(200)
	timer.WaitForNextFrame()
	time.Sleep(10 * time.Millisecond)
	timer.WaitForNextFrame()

	timer.Reset()
	if timer.ActualFPS() != 0 || timer.FrameTime() != 0 || timer.Dropped() != 0 {
		t.Error("Expected Reset to clear timing history")
	}
}
