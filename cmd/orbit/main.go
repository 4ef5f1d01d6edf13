// Prerendered animation demo: a two-body orbit with fading trails,
// baked into frames up front and played back in a loop.
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

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/dotframe/engine"
	"github.com/lixenwraith/dotframe/grid"
	"github.com/lixenwraith/dotframe/parameter"
	"github.com/lixenwraith/dotframe/render"
	"github.com/lixenwraith/dotframe/terminal"
)

var (
	fps        = flag.Float64("fps", 30, "Playback frame rate")
	frameCount = flag.Int("frames", 120, "Frames per orbit cycle")
	trail      = flag.Int("trail", 24, "Trail length in frames")
)

func main() {
	flag.Parse()

	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stderr)
			panic(r)
		}
	}()

	term := terminal.New()
	if err := term.Init(); err != nil {
		log.Fatal(err)
	}
	defer term.Fini()

	w, h := term.Size()
	anim, err := bake(w, h, *frameCount, *trail, *fps)
	if err != nil {
		term.Fini()
		log.Fatal(err)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	cancel := make(chan struct{})
	keyCh := term.CancelOnKey()
	go func() {
		defer close(cancel)
		select {
		case <-sigCh:
		case <-keyCh:
		}
	}()

	diff := render.NewDiffRenderer(term)
	term.OnResize(func(_, _ int) { diff.Invalidate() })

	if err := anim.PlayLoop(cancel, diff); err != nil && !errors.Is(err, engine.ErrStopped) {
		term.Fini()
		log.Fatal(err)
	}
}

// bake renders one full orbit cycle into an animation
func bake(w, h, frames, trail int, fps float64) (*engine.Prerendered, error) {
	anim := engine.NewPrerendered(fps)

	for i := 0; i < frames; i++ {
		g, err := grid.New(w, h)
		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", i, err)
		}
		for age := trail; age >= 0; age-- {
			t := float64((i-age+frames)%frames) / float64(frames)
			fade := 1.0 - float64(age)/float64(trail+1)
			drawBodies(g, t, fade)
		}
		if err := anim.AddFrame(g); err != nil {
			return nil, err
		}
	}
	return anim, nil
}

// drawBodies plots the two orbiting bodies for cycle position t in
// [0,1), colored by fade intensity
func drawBodies(g *grid.Grid, t, fade float64) {
	dotW, dotH := g.DotSize()
	cx, cy := float64(dotW)/2, float64(dotH)/2
	rx, ry := cx*0.8, cy*0.8

	angle := t * 2 * math.Pi
	plot(g, cx+rx*math.Cos(angle), cy+ry*math.Sin(angle), 30, fade)
	plot(g, cx-rx*math.Cos(angle)*0.5, cy-ry*math.Sin(angle)*0.5, 210, fade)
}

func plot(g *grid.Grid, fx, fy, hue, fade float64) {
	x, y := int(fx), int(fy)
	dotW, dotH := g.DotSize()
	if x < 0 || x >= dotW || y < 0 || y >= dotH {
		return
	}
	g.SetDot(x, y)
	r, gc, b := colorful.Hsv(hue, 0.8, 0.3+0.7*fade).RGB255()
	g.SetCellColor(x/parameter.CellDotWidth, y/parameter.CellDotHeight, grid.RGB(r, gc, b))
}
