// Throughput benchmark for the render pipeline. Compares differential
// rendering against full repaints on synthetic dot patterns.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/lixenwraith/dotframe/engine"
	"github.com/lixenwraith/dotframe/grid"
	"github.com/lixenwraith/dotframe/render"
	"github.com/lixenwraith/dotframe/status"
	"github.com/lixenwraith/dotframe/terminal"
)

var (
	duration = flag.Duration("duration", 10*time.Second, "Benchmark duration")
	pattern  = flag.String("pattern", "noise", "Pattern: noise|scroll|static")
	mode     = flag.String("mode", "diff", "Render mode: diff|full")
	fps      = flag.Float64("fps", 240, "Target frame rate cap")
)

func main() {
	flag.Parse()

	term := terminal.New()
	if err := term.Init(); err != nil {
		panic(err)
	}
	defer term.Fini()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	w, h := term.Size()
	reg := status.NewRegistry()

	var r render.Renderer = term
	if *mode == "diff" {
		d := render.NewDiffRenderer(term)
		d.AttachStatus(reg)
		r = d
	}

	loop, err := engine.NewLoop(engine.Config{Width: w, Height: h, FPS: *fps, Status: reg})
	if err != nil {
		term.Fini()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	cancel := make(chan struct{})
	go func() {
		<-sigCh
		close(cancel)
	}()

	dotW, dotH := loop.Buffer().Back().DotSize()
	start := time.Now()

	// rng state for the noise pattern, xorshift keeps generation cost
	// negligible next to the render path
	seed := uint64(0x9e3779b97f4a7c15)

	err = loop.Run(cancel, r, func(frame int64, back *grid.Grid) (bool, error) {
		if time.Since(start) >= *duration {
			return false, nil
		}
		switch *pattern {
		case "noise":
			back.Clear()
			for i := 0; i < dotW*dotH/64; i++ {
				seed ^= seed << 13
				seed ^= seed >> 7
				seed ^= seed << 17
				back.SetDot(int(seed>>32)%dotW, int(seed&0xffffffff)%dotH)
			}
		case "scroll":
			back.Clear()
			off := int(frame)
			for y := 0; y < dotH; y += 4 {
				back.SetDot((y*7+off)%dotW, y)
			}
		case "static":
			// Single moving dot, best case for the diff path
			back.Clear()
			back.SetDot(int(frame)%dotW, dotH/2)
		}
		return true, nil
	})

	elapsed := time.Since(start)
	term.Fini()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	frames := reg.Ints.Get(status.KeyFrames).Load()
	if frames == 0 {
		frames = 1
	}

	fmt.Printf("Benchmark Results:\n")
	fmt.Printf("  Resolution:   %dx%d cells (%dx%d dots)\n", w, h, dotW, dotH)
	fmt.Printf("  Mode:         %s / %s\n", *mode, *pattern)
	fmt.Printf("  Total Frames: %d\n", frames)
	fmt.Printf("  Total Time:   %v\n", elapsed)
	fmt.Printf("  Avg FPS:      %.2f\n", float64(frames)/elapsed.Seconds())
	fmt.Printf("  Dropped:      %d\n", reg.Ints.Get(status.KeyDropped).Load())
	if *mode == "diff" {
		fmt.Printf("  Changed/frame: %d of %d\n",
			reg.Ints.Get(status.KeyChangedCells).Load(),
			reg.Ints.Get(status.KeyTotalCells).Load())
		fmt.Printf("  IO Reduction:  %.1f%%\n", reg.Floats.Get(status.KeyIOReduction).Get())
		fmt.Printf("  Full Repaints: %d\n", reg.Ints.Get(status.KeyFullRenders).Load())
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	fmt.Printf("  Total Alloc:  %d bytes\n", m.TotalAlloc)
	fmt.Printf("  Mallocs:      %d\n", m.Mallocs)
}
