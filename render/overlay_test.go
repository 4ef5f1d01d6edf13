package render

import (
	"strings"
	"testing"

	"github.com/lixenwraith/dotframe/status"
)

func TestStatsOverlayDraw(t *testing.T) {
	reg := status.NewRegistry()
	reg.Floats.Get(status.KeyActualFPS).Set(59.8)
	reg.Ints.Get(status.KeyFrames).Store(120)
	reg.Ints.Get(status.KeyChangedCells).Store(37)
	reg.Ints.Get(status.KeyTotalCells).Store(1920)
	reg.Floats.Get(status.KeyIOReduction).Set(98.1)

	rec := &recordingWriter{}
	o := NewStatsOverlay(rec, reg, 24, 80)

	if err := o.Draw(); err != nil {
		t.Fatal(err)
	}

	// Padded to full width, all on the overlay row
	if len(rec.writes) != 80 {
		t.Errorf("Expected 80 writes, got %d", len(rec.writes))
	}
	for _, w := range rec.writes {
		if w.Y != 24 {
			t.Fatalf("Expected all writes on row 24, got row %d", w.Y)
		}
	}
	if rec.flushes != 1 {
		t.Errorf("Expected 1 flush, got %d", rec.flushes)
	}

	var sb strings.Builder
	for _, w := range rec.writes {
		sb.WriteRune(w.R)
	}
	line := sb.String()
	for _, frag := range []string{"FPS:  59.8", "frame: 120", "diff: 37/1920", "io saved:  98.1%"} {
		if !strings.Contains(line, frag) {
			t.Errorf("Expected overlay line to contain %q, got %q", frag, line)
		}
	}
}

func TestStatsOverlayClipsToWidth(t *testing.T) {
	reg := status.NewRegistry()
	rec := &recordingWriter{}
	o := NewStatsOverlay(rec, reg, 0, 10)

	if err := o.Draw(); err != nil {
		t.Fatal(err)
	}
	if len(rec.writes) != 10 {
		t.Errorf("Expected writes clipped to width 10, got %d", len(rec.writes))
	}
	for _, w := range rec.writes {
		if w.X >= 10 {
			t.Errorf("Expected x < 10, got %d", w.X)
		}
	}
}
