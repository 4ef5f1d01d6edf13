package grid

import (
	"errors"
	"testing"
)

func TestMaskRuneTotalAndDeterministic(t *testing.T) {
	seen := make(map[rune]uint8, 256)
	for m := 0; m < 256; m++ {
		r1 := MaskRune(uint8(m))
		r2 := MaskRune(uint8(m))
		if r1 != r2 {
			t.Fatalf("MaskRune(%d) not deterministic: %q vs %q", m, r1, r2)
		}
		if r1 < 0x2800 || r1 > 0x28FF {
			t.Errorf("MaskRune(%d) = %q outside braille block", m, r1)
		}
		if prev, dup := seen[r1]; dup {
			t.Errorf("MaskRune not injective: masks %d and %d both map to %q", prev, m, r1)
		}
		seen[r1] = uint8(m)
	}
	if len(seen) != 256 {
		t.Errorf("Expected 256 distinct runes, got %d", len(seen))
	}
}

func TestDotBitMapping(t *testing.T) {
	// Dots 1-3 and 7 in the left column, 4-6 and 8 in the right
	cases := []struct {
		dx, dy int
		want   uint8
	}{
		{0, 0, 0x01}, {0, 1, 0x02}, {0, 2, 0x04}, {0, 3, 0x40},
		{1, 0, 0x08}, {1, 1, 0x10}, {1, 2, 0x20}, {1, 3, 0x80},
	}
	for _, tc := range cases {
		bit, err := dotBit(tc.dx, tc.dy)
		if err != nil {
			t.Fatalf("dotBit(%d,%d) failed: %v", tc.dx, tc.dy, err)
		}
		if bit != tc.want {
			t.Errorf("dotBit(%d,%d) = %#02x, want %#02x", tc.dx, tc.dy, bit, tc.want)
		}
	}
}

func TestDotBitRejectsInvalidIndex(t *testing.T) {
	for _, c := range [][2]int{{2, 0}, {0, 4}, {-1, 0}, {0, -1}} {
		if _, err := dotBit(c[0], c[1]); !errors.Is(err, ErrDotIndex) {
			t.Errorf("dotBit(%d,%d): expected ErrDotIndex, got %v", c[0], c[1], err)
		}
	}
}

func TestKnownPatterns(t *testing.T) {
	g, _ := New(1, 1)

	// Single top-left dot is dot 1
	g.SetDot(0, 0)
	if r := g.CellRune(0, 0); r != '⠁' {
		t.Errorf("Expected U+2801, got %q", r)
	}

	// All eight dots form the full block
	for dy := 0; dy < 4; dy++ {
		for dx := 0; dx < 2; dx++ {
			g.SetDot(dx, dy)
		}
	}
	if r := g.CellRune(0, 0); r != '⣿' {
		t.Errorf("Expected U+28FF, got %q", r)
	}

	// Empty cell is the blank braille pattern, not space
	g.Clear()
	if r := g.CellRune(0, 0); r != '⠀' {
		t.Errorf("Expected U+2800, got %q", r)
	}
}
