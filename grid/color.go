package grid

// Color is an optional 24-bit cell color. The zero value means
// "no color"; renderers fall back to the terminal default.
type Color struct {
	R, G, B uint8
	Valid   bool
}

// RGB constructs a valid color
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, Valid: true}
}
