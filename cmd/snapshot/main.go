// Command snapshot renders the backdrop effects without a window and
// writes the last frame to a PNG.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/milk9111/backdrop/effects"
	"github.com/milk9111/backdrop/presets"
)

func main() {
	var opts options
	flag.StringVar(&opts.effect, "effect", effects.Both, "effect to render: field, lattice or both")
	flag.IntVar(&opts.width, "w", 1280, "viewport width")
	flag.IntVar(&opts.height, "h", 720, "viewport height")
	flag.Float64Var(&opts.dpr, "dpr", 1, "device pixel ratio")
	flag.Uint64Var(&opts.frames, "frames", 120, "frames to simulate before capturing")
	flag.IntVar(&opts.hz, "hz", 0, "frames per second to pace the run at (0 = as fast as possible)")
	flag.Uint64Var(&opts.seed, "seed", 1, "seed for fragment placement (0 = random)")
	pointerFlag := flag.String("pointer", "", "pointer position as x,y (empty = no pointer)")
	flag.StringVar(&opts.out, "out", "backdrop.png", "output PNG path")
	noVignette := flag.Bool("no-vignette", false, "skip the vignette over the field")
	flag.Parse()

	if *pointerFlag != "" {
		x, y, err := parsePoint(*pointerFlag)
		if err != nil {
			log.Fatalf("snapshot: -pointer: %v", err)
		}
		opts.pointer = &[2]float64{x, y}
	}

	host, err := presets.LoadHost()
	if err != nil {
		log.Printf("%v; using defaults", err)
		host = presets.DefaultHost()
	}
	opts.background = host.Background.NRGBA()
	if !*noVignette {
		opts.vignette = host.Vignette.Vignette()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, opts); err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func parsePoint(s string) (float64, float64, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("want x,y, got %q", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return 0, 0, err
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}
