package grid

import "github.com/lixenwraith/dotframe/parameter"

// brailleBase is the first codepoint of the Unicode braille block
// A cell's 8-bit dot mask maps losslessly to brailleBase+mask
const brailleBase rune = 0x2800

// dotBits maps a (dy, dx) position within the 2x4 sub-matrix to its
// braille bit. The block encodes dots 1-6 column-major in the low six
// bits and dots 7-8 (the bottom row) in bits 6-7, so the table is not
// a plain row-major progression.
var dotBits = [parameter.CellDotHeight][parameter.CellDotWidth]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// dotBit returns the mask bit for a dot position within one cell
func dotBit(dx, dy int) (uint8, error) {
	if dx < 0 || dx >= parameter.CellDotWidth || dy < 0 || dy >= parameter.CellDotHeight {
		return 0, ErrDotIndex
	}
	return dotBits[dy][dx], nil
}

// MaskRune converts an 8-bit dot mask to its braille character.
// Total and deterministic over all 256 mask values; mask 0 is the
// blank braille pattern U+2800, not ASCII space, so cell width and
// font rendering stay uniform across a grid.
func MaskRune(mask uint8) rune {
	return brailleBase + rune(mask)
}
