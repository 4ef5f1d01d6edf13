package terminal

import "io"

// Backend abstracts platform-specific terminal operations so the
// ANSI layer can target a real tty or a plain writer (tests, pipes).
type Backend interface {
	io.Writer

	// Init enters raw mode where applicable
	Init() error

	// Fini restores the previous terminal mode. Safe to call twice.
	Fini()

	// Size returns current terminal dimensions in cells
	Size() (width, height int)

	// Read blocks until input is available, the stop channel is
	// closed, or an error occurs
	Read(stopCh <-chan struct{}) ([]byte, error)

	// SetResizeHandler registers a callback for terminal resize events
	SetResizeHandler(handler func(width, height int))
}
