package terminal

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lixenwraith/dotframe/grid"
)

func TestRenderFullGrid(t *testing.T) {
	g, err := grid.New(4, 2)
	if err != nil {
		t.Fatal(err)
	}
	g.SetDot(0, 0)

	var buf bytes.Buffer
	term := NewWriter(&buf, 80, 24, ColorMode256)
	if err := term.Render(g); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	// One absolute position per row, 1-indexed
	for _, pos := range []string{"\x1b[1;1H", "\x1b[2;1H"} {
		if !strings.Contains(out, pos) {
			t.Errorf("Expected cursor sequence %q in output", pos)
		}
	}
	// Dot (0,0) renders as braille dot 1, empty cells as blank braille
	if !strings.Contains(out, "⠁") {
		t.Error("Expected U+2801 for the set dot")
	}
	if strings.Count(out, "⠀") != 7 {
		t.Errorf("Expected 7 blank braille cells, got %d", strings.Count(out, "⠀"))
	}
	// Style reset at frame end
	if !strings.HasSuffix(out, "\x1b[0m") {
		t.Error("Expected trailing SGR reset")
	}
}

func TestWriteCellPositioning(t *testing.T) {
	var buf bytes.Buffer
	term := NewWriter(&buf, 80, 24, ColorMode256)

	term.WriteCell(5, 3, '⣿', grid.Color{})
	term.Flush()

	out := buf.String()
	if !strings.Contains(out, "\x1b[4;6H") {
		t.Errorf("Expected absolute position for cell (5,3), got %q", out)
	}
	if !strings.Contains(out, "⣿") {
		t.Error("Expected written cell rune")
	}
}

func TestWriteCellElidesCursorForRuns(t *testing.T) {
	var buf bytes.Buffer
	term := NewWriter(&buf, 80, 24, ColorMode256)

	term.WriteCell(0, 0, '⠁', grid.Color{})
	term.WriteCell(1, 0, '⠂', grid.Color{})
	term.WriteCell(2, 0, '⠄', grid.Color{})
	term.Flush()

	out := buf.String()
	if got := strings.Count(out, "H"); got != 1 {
		t.Errorf("Expected a single absolute position for a contiguous run, got %d", got)
	}
}

func TestWriteCellTrueColor(t *testing.T) {
	var buf bytes.Buffer
	term := NewWriter(&buf, 80, 24, ColorModeTrueColor)

	term.WriteCell(0, 0, '⠁', grid.RGB(255, 128, 0))
	term.Flush()

	if !strings.Contains(buf.String(), "\x1b[38;2;255;128;0m") {
		t.Errorf("Expected truecolor escape, got %q", buf.String())
	}
}

func TestColorCoalescing(t *testing.T) {
	var buf bytes.Buffer
	term := NewWriter(&buf, 80, 24, ColorModeTrueColor)

	c := grid.RGB(10, 20, 30)
	term.WriteCell(0, 0, '⠁', c)
	term.WriteCell(1, 0, '⠁', c)
	term.WriteCell(2, 0, '⠁', grid.Color{})
	term.Flush()

	out := buf.String()
	if got := strings.Count(out, "\x1b[38;2;10;20;30m"); got != 1 {
		t.Errorf("Expected color emitted once for the run, got %d", got)
	}
	if got := strings.Count(out, "\x1b[39m"); got != 1 {
		t.Errorf("Expected one default-fg escape, got %d", got)
	}
}

func TestColorMode256Escape(t *testing.T) {
	var buf bytes.Buffer
	term := NewWriter(&buf, 80, 24, ColorMode256)

	term.WriteCell(0, 0, '⠁', grid.RGB(255, 0, 0))
	term.Flush()

	if !strings.Contains(buf.String(), "\x1b[38;5;196m") {
		t.Errorf("Expected 256-palette escape for pure red, got %q", buf.String())
	}
}

func TestRGBTo256(t *testing.T) {
	cases := []struct {
		r, g, b uint8
		want    uint8
	}{
		{0, 0, 0, 16},      // Cube black
		{255, 255, 255, 231}, // Cube white
		{255, 0, 0, 196},   // Pure red (5,0,0)
		{0, 255, 0, 46},    // Pure green (0,5,0)
		{0, 0, 255, 21},    // Pure blue (0,0,5)
	}
	for _, tc := range cases {
		if got := rgbTo256(tc.r, tc.g, tc.b); got != tc.want {
			t.Errorf("rgbTo256(%d,%d,%d) = %d, want %d", tc.r, tc.g, tc.b, got, tc.want)
		}
	}
}

func TestCleanupIdempotent(t *testing.T) {
	var buf bytes.Buffer
	term := NewWriter(&buf, 80, 24, ColorMode256)
	if err := term.Init(); err != nil {
		t.Fatal(err)
	}

	if err := term.Cleanup(); err != nil {
		t.Fatal(err)
	}
	n := buf.Len()
	if err := term.Cleanup(); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != n {
		t.Error("Expected second Cleanup to be a no-op")
	}
}

func TestInitEntersAltScreen(t *testing.T) {
	var buf bytes.Buffer
	term := NewWriter(&buf, 80, 24, ColorMode256)
	if err := term.Init(); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, seq := range []string{"\x1b[?1049h", "\x1b[?25l", "\x1b[?7l", "\x1b[2J"} {
		if !strings.Contains(out, seq) {
			t.Errorf("Expected init sequence %q", seq)
		}
	}

	buf.Reset()
	term.Fini()
	out = buf.String()
	for _, seq := range []string{"\x1b[?1049l", "\x1b[?25h", "\x1b[?7h"} {
		if !strings.Contains(out, seq) {
			t.Errorf("Expected fini sequence %q", seq)
		}
	}
}
