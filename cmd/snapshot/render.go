package main

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/fogleman/gg"
	"github.com/milk9111/backdrop/effects"
	"github.com/milk9111/backdrop/paint"
	"github.com/milk9111/backdrop/scene"
	xdraw "golang.org/x/image/draw"
)

type options struct {
	effect        string
	width, height int
	dpr           float64
	frames        uint64
	hz            int
	seed          uint64
	pointer       *[2]float64
	out           string
	background    color.NRGBA

	// vignette, when set, is laid over the field layer.
	vignette *paint.Vignette
}

func run(ctx context.Context, opts options) error {
	img, err := render(ctx, opts)
	if err != nil {
		return err
	}
	if err := gg.SavePNG(opts.out, img); err != nil {
		return fmt.Errorf("snapshot: write %s: %w", opts.out, err)
	}
	return nil
}

// render simulates opts.frames frames and composites the last one of
// every layer over the background at device resolution. The vignette
// sits directly above the field, under the lattice.
func render(ctx context.Context, opts options) (*image.RGBA, error) {
	if opts.width <= 0 || opts.height <= 0 {
		return nil, fmt.Errorf("snapshot: invalid size %dx%d", opts.width, opts.height)
	}
	if opts.dpr <= 0 {
		opts.dpr = 1
	}

	set, err := effects.Build(opts.effect, opts.seed)
	if err != nil {
		return nil, err
	}

	w, h := float64(opts.width), float64(opts.height)
	s := scene.New(nil)
	s.Events().Resize(w, h, opts.dpr)
	defer s.Close()

	type plate struct {
		raster   *paint.Raster
		vignette bool
	}
	var plates []plate
	for _, layer := range set.Layers() {
		layer.Resize(w, h, opts.dpr)
		sw, sh := layer.SurfaceSize()
		if sw <= 0 || sh <= 0 {
			continue
		}
		r := paint.NewRaster(sw, sh)
		s.Mount(scene.NewMount(s.Events(), layer, r))
		isField := set.Field != nil && layer == scene.Layer(set.Field)
		plates = append(plates, plate{raster: r, vignette: isField && opts.vignette != nil})
	}

	if opts.pointer != nil {
		s.Events().PointerMove(opts.pointer[0], opts.pointer[1])
	}

	if opts.frames > 0 {
		cfg := scene.HeadlessConfig{Hz: opts.hz, Frames: opts.frames}
		if err := scene.RunHeadless(ctx, s, cfg); err != nil {
			return nil, err
		}
	}

	dw := int(w*opts.dpr + 0.5)
	dh := int(h*opts.dpr + 0.5)
	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(opts.background), image.Point{}, draw.Src)
	for _, p := range plates {
		src := p.raster.Image()
		xdraw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Over, nil)
		if p.vignette {
			draw.Draw(dst, dst.Bounds(), opts.vignette.Image(dw, dh), image.Point{}, draw.Over)
		}
	}
	return dst, nil
}
