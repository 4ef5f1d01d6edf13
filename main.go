// Braille wave demo: three phase-shifted Lissajous waves drawn in
// dot space, diff-rendered at the configured frame rate.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/dotframe/engine"
	"github.com/lixenwraith/dotframe/grid"
	"github.com/lixenwraith/dotframe/parameter"
	"github.com/lixenwraith/dotframe/render"
	"github.com/lixenwraith/dotframe/status"
	"github.com/lixenwraith/dotframe/terminal"
)

var (
	fps      = flag.Float64("fps", parameter.DefaultFPS, "Target frame rate")
	duration = flag.Duration("duration", 0, "Run time (0 = until key press or SIGINT)")
	overlay  = flag.Bool("overlay", true, "Show the stats overlay on the bottom row")
	backend  = flag.String("backend", "ansi", "Renderer backend: ansi|tcell")
)

func main() {
	flag.Parse()

	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stderr)
			panic(r)
		}
	}()

	var err error
	switch *backend {
	case "ansi":
		err = runANSI()
	case "tcell":
		err = runTcell()
	default:
		err = fmt.Errorf("unknown backend %q", *backend)
	}
	if err != nil && !errors.Is(err, engine.ErrStopped) {
		log.Fatal(err)
	}
}

func runANSI() error {
	term := terminal.New()
	if err := term.Init(); err != nil {
		return err
	}
	defer term.Fini()

	w, h := term.Size()
	diff := render.NewDiffRenderer(term)
	term.OnResize(func(_, _ int) { diff.Invalidate() })

	return run(w, h, diff, term, term.CancelOnKey())
}

func runTcell() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}

	w, h := screen.Size()
	sr := render.NewScreenRenderer(screen)

	cancel := make(chan struct{})
	go func() {
		defer close(cancel)
		for {
			switch screen.PollEvent().(type) {
			case *tcell.EventKey:
				return
			case nil:
				return
			}
		}
	}()

	return run(w, h, render.NewDiffRenderer(sr), sr, cancel)
}

// run drives the wave animation on any diff renderer and cell writer
// pair until cancelled
func run(w, h int, diff *render.DiffRenderer, out render.CellWriter, keyCancel <-chan struct{}) error {
	reg := status.NewRegistry()
	diff.AttachStatus(reg)

	cfg := engine.Config{Width: w, Height: h, FPS: *fps, Status: reg}
	if *overlay {
		cfg.Overlay = render.NewStatsOverlay(out, reg, h-1, w)
	}
	loop, err := engine.NewLoop(cfg)
	if err != nil {
		return err
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	cancel := make(chan struct{})
	go func() {
		defer close(cancel)
		select {
		case <-sigCh:
		case <-keyCancel:
		}
	}()

	deadline := time.Time{}
	if *duration > 0 {
		deadline = time.Now().Add(*duration)
	}

	dotW, dotH := loop.Buffer().Back().DotSize()
	frameTime := loop.Timer().TargetFrameTime().Seconds()
	return loop.Run(cancel, diff, func(frame int64, back *grid.Grid) (bool, error) {
		if !deadline.IsZero() && time.Now().After(deadline) {
			return false, nil
		}
		drawWaves(back, dotW, dotH, float64(frame)*frameTime)
		return true, nil
	})
}

// drawWaves renders three hue-rotated sine waves into dot space at
// animation time t (seconds)
func drawWaves(g *grid.Grid, dotW, dotH int, t float64) {
	g.Clear()
	g.ClearColors()

	mid := float64(dotH) / 2
	amp := mid * 0.8

	for x := 0; x < dotW; x++ {
		fx := float64(x) / float64(dotW)
		for wave := 0; wave < 3; wave++ {
			phase := t*2 + float64(wave)*2*math.Pi/3
			y := int(mid + amp*math.Sin(fx*4*math.Pi+phase)*math.Sin(t+float64(wave)))
			if y < 0 || y >= dotH {
				continue
			}
			g.SetDot(x, y)

			hue := math.Mod(fx*360+t*40+float64(wave)*120, 360)
			r, gc, b := colorful.Hsv(hue, 0.9, 1.0).RGB255()
			g.SetCellColor(x/parameter.CellDotWidth, y/parameter.CellDotHeight, grid.RGB(r, gc, b))
		}
	}
}
