package render

import (
	"fmt"
	"sync/atomic"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/dotframe/grid"
	"github.com/lixenwraith/dotframe/status"
)

// StatsOverlay renders a one-line diagnostics readout (achieved fps,
// diff size, I/O reduction) on a terminal row outside the animation
// grid. Values come from cached status registry pointers, written by
// the loop and the differential renderer.
type StatsOverlay struct {
	out   CellWriter
	row   int
	width int

	statFPS       *status.AtomicFloat
	statFrames    *atomic.Int64
	statChanged   *atomic.Int64
	statTotal     *atomic.Int64
	statReduction *status.AtomicFloat
}

// NewStatsOverlay creates an overlay on the given row, clipped to width
func NewStatsOverlay(out CellWriter, reg *status.Registry, row, width int) *StatsOverlay {
	return &StatsOverlay{
		out:           out,
		row:           row,
		width:         width,
		statFPS:       reg.Floats.Get(status.KeyActualFPS),
		statFrames:    reg.Ints.Get(status.KeyFrames),
		statChanged:   reg.Ints.Get(status.KeyChangedCells),
		statTotal:     reg.Ints.Get(status.KeyTotalCells),
		statReduction: reg.Floats.Get(status.KeyIOReduction),
	}
}

// Text formats the current readout line
func (s *StatsOverlay) Text() string {
	return fmt.Sprintf(" FPS: %5.1f | frame: %d | diff: %d/%d | io saved: %5.1f%% ",
		s.statFPS.Get(),
		s.statFrames.Load(),
		s.statChanged.Load(),
		s.statTotal.Load(),
		s.statReduction.Get())
}

// Draw writes the readout to the overlay row, padding to full width
// so stale characters from longer previous readouts are erased
func (s *StatsOverlay) Draw() error {
	text := runewidth.Truncate(s.Text(), s.width, "")

	x := 0
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 || x+w > s.width {
			continue
		}
		if err := s.out.WriteCell(x, s.row, r, grid.Color{}); err != nil {
			return err
		}
		x += w
	}
	for ; x < s.width; x++ {
		if err := s.out.WriteCell(x, s.row, ' ', grid.Color{}); err != nil {
			return err
		}
	}
	return s.out.Flush()
}
