package terminal

import (
	"bufio"
	"fmt"
	"io"
	"sync"

	"github.com/lixenwraith/dotframe/grid"
	"github.com/lixenwraith/dotframe/parameter"
)

// Term renders braille grids to an ANSI terminal. It implements both
// the full-grid render capability and the positioned single-cell
// writes the differential renderer needs. All drawing happens on the
// caller's goroutine; the mutex guards lifecycle only.
type Term struct {
	backend Backend
	w       *bufio.Writer
	mode    ColorMode

	mu          sync.Mutex
	initialized bool
	finalized   bool

	// Cursor and style state for write coalescing
	cursorX     int
	cursorY     int
	cursorValid bool
	lastColor   grid.Color
	lastValid   bool
}

// New creates a terminal over stdin/stdout. Color mode defaults to
// the process-wide detected capability.
func New(mode ...ColorMode) *Term {
	m := ColorCapability()
	if len(mode) > 0 {
		m = mode[0]
	}
	b := newBackend()
	return &Term{
		backend: b,
		w:       bufio.NewWriterSize(b, parameter.OutputBufferSize),
		mode:    m,
	}
}

// NewWriter creates a terminal over a plain writer with a fixed
// reported size. No raw mode, no input; used for piped output and
// tests.
func NewWriter(out io.Writer, width, height int, mode ColorMode) *Term {
	b := &writerBackend{out: out, width: width, height: height}
	return &Term{
		backend: b,
		w:       bufio.NewWriterSize(b, parameter.OutputBufferSize),
		mode:    mode,
	}
}

// Init enters raw mode, switches to the alternate screen, and hides
// the cursor
func (t *Term) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}
	if err := t.backend.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}

	t.w.Write(csiAltScreenEnter)
	t.w.Write(csiCursorHide)
	// Prevents terminal scroll/wrap on bottom-right corner write
	t.w.Write(csiAutoWrapOff)
	t.w.Write(csiSGR0)
	t.w.Write(csiClear)
	if err := t.w.Flush(); err != nil {
		t.backend.Fini()
		return fmt.Errorf("terminal init: %w", err)
	}

	t.cursorValid = false
	t.lastValid = false
	t.initialized = true
	return nil
}

// Fini restores terminal state. Safe to call multiple times.
func (t *Term) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}

	t.w.Write(csiSGR0)
	t.w.Write(csiCursorShow)
	t.w.Write(csiAltScreenExit)
	// Re-enable auto-wrap after exiting alt screen so the main buffer
	// keeps wrap enabled
	t.w.Write(csiAutoWrapOn)
	t.w.Flush()

	t.backend.Fini()
	t.finalized = true
}

// Size returns current terminal dimensions in cells
func (t *Term) Size() (int, int) {
	return t.backend.Size()
}

// ColorMode returns the configured color capability
func (t *Term) ColorMode() ColorMode {
	return t.mode
}

// writeColor emits a foreground escape only when the color differs
// from the last one written
func (t *Term) writeColor(c grid.Color) {
	if t.lastValid && c == t.lastColor {
		return
	}
	if !c.Valid {
		t.w.Write(csiDefaultFg)
	} else if t.mode == ColorModeTrueColor {
		t.w.Write(csiFgRGB)
		writeInt(t.w, int(c.R))
		t.w.WriteByte(';')
		writeInt(t.w, int(c.G))
		t.w.WriteByte(';')
		writeInt(t.w, int(c.B))
		t.w.WriteByte('m')
	} else {
		t.w.Write(csiFg256)
		writeInt(t.w, int(rgbTo256(c.R, c.G, c.B)))
		t.w.WriteByte('m')
	}
	t.lastColor = c
	t.lastValid = true
}

// Render paints the full grid from the top-left corner
func (t *Term) Render(g *grid.Grid) error {
	w, h := g.Size()
	for cy := 0; cy < h; cy++ {
		writeCursorPos(t.w, 0, cy)
		for cx := 0; cx < w; cx++ {
			t.writeColor(g.Color(cx, cy))
			t.w.WriteRune(g.CellRune(cx, cy))
		}
	}
	t.w.Write(csiSGR0)
	t.lastValid = false
	t.cursorValid = false

	if err := t.w.Flush(); err != nil {
		return fmt.Errorf("terminal render: %w", err)
	}
	return nil
}

// WriteCell positions the cursor and writes one character. Cursor
// movement is elided for consecutive cells on the same row.
func (t *Term) WriteCell(x, y int, r rune, c grid.Color) error {
	if !t.cursorValid || x != t.cursorX || y != t.cursorY {
		// Non-destructive forward movement on the same row is shorter
		// than an absolute position
		if t.cursorValid && y == t.cursorY && x > t.cursorX {
			writeCursorForward(t.w, x-t.cursorX)
		} else {
			writeCursorPos(t.w, x, y)
		}
	}
	t.writeColor(c)
	if r < 0x80 {
		t.w.WriteByte(byte(r))
	} else {
		t.w.WriteRune(r)
	}
	t.cursorX = x + 1
	t.cursorY = y
	t.cursorValid = true
	return nil
}

// Flush commits writes batched since the last Flush
func (t *Term) Flush() error {
	if err := t.w.Flush(); err != nil {
		return fmt.Errorf("terminal flush: %w", err)
	}
	return nil
}

// Cleanup implements the renderer shutdown contract
func (t *Term) Cleanup() error {
	t.Fini()
	return nil
}

// Clear erases the screen and resets write coalescing state
func (t *Term) Clear() error {
	t.w.Write(csiSGR0)
	t.w.Write(csiClear)
	t.lastValid = false
	t.cursorValid = false
	return t.Flush()
}

// OnResize registers a handler for terminal size changes. The handler
// runs on a background goroutine; callers typically forward into
// their own loop state (e.g. to invalidate a differential renderer).
func (t *Term) OnResize(fn func(width, height int)) {
	t.backend.SetResizeHandler(fn)
}

// CancelOnKey returns a channel closed on the first key press,
// usable directly as a loop cancellation signal
func (t *Term) CancelOnKey() <-chan struct{} {
	cancel := make(chan struct{})
	go func() {
		defer close(cancel)
		t.backend.Read(nil)
	}()
	return cancel
}

// EmergencyReset attempts to restore the terminal to a sane state.
// Call from panic recovery when Fini cannot run normally.
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)
	w.Write(csiRIS)

	// Escape sequences alone don't restore termios
	resetTerminalMode()
}
