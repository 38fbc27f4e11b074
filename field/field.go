// Package field implements the arrow field: a fixed grid of short line
// segments that turn toward the pointer and brighten inside its radius,
// and otherwise sway with a slow sin/cos drift.
package field

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/milk9111/backdrop/common"
	"github.com/milk9111/backdrop/paint"
	"github.com/milk9111/backdrop/pointer"
)

// Element is one grid cell's arrow. X and Y never change after Build.
type Element struct {
	X, Y        float64
	Angle       float64
	TargetAngle float64

	Hue, Sat, Light float64
	Alpha           float64
}

type Engine struct {
	cfg      Config
	elements []Element
	pointer  pointer.State

	time          int
	width, height float64
	dpr           float64
}

func New(cfg Config) *Engine {
	return &Engine{cfg: cfg, pointer: pointer.Cleared(), dpr: 1}
}

func (e *Engine) Config() Config {
	return e.cfg
}

// Reconfigure swaps the configuration and rebuilds for the current size.
func (e *Engine) Reconfigure(cfg Config) {
	e.cfg = cfg
	if e.width > 0 || e.height > 0 {
		e.Resize(e.width, e.height, e.dpr)
	}
}

// Resize discards every element and lays the grid out again, centred in
// a width by height viewport.
func (e *Engine) Resize(width, height, dpr float64) {
	e.width, e.height = width, height
	e.dpr = 1
	if e.cfg.ScaleByDeviceRatio && dpr > 0 {
		e.dpr = dpr
	}

	e.elements = e.elements[:0]
	spacing := e.cfg.GridSpacing
	if spacing <= 0 {
		return
	}
	cols := int(math.Floor(width / spacing))
	rows := int(math.Floor(height / spacing))
	offX := (width-float64(cols)*spacing)/2 + spacing/2
	offY := (height-float64(rows)*spacing)/2 + spacing/2

	if cap(e.elements) < cols*rows {
		e.elements = make([]Element, 0, cols*rows)
	}
	base := e.cfg.BaseColor
	for i := 0; i < cols; i++ {
		for j := 0; j < rows; j++ {
			e.elements = append(e.elements, Element{
				X:     offX + float64(i)*spacing,
				Y:     offY + float64(j)*spacing,
				Hue:   base.H,
				Sat:   base.S,
				Light: base.L,
				Alpha: e.cfg.BaseAlpha,
			})
		}
	}
}

// SurfaceSize is the pixel size of the surface Draw expects.
func (e *Engine) SurfaceSize() (int, int) {
	return int(math.Round(e.width * e.dpr)), int(math.Round(e.height * e.dpr))
}

func (e *Engine) SetPointer(x, y float64) { e.pointer.Set(x, y) }
func (e *Engine) ClearPointer()           { e.pointer.Clear() }
func (e *Engine) Pointer() pointer.State  { return e.pointer }

func (e *Engine) Len() int { return len(e.elements) }

func (e *Engine) Elements() []Element {
	return append([]Element(nil), e.elements...)
}

// Time is the number of frames stepped since construction.
func (e *Engine) Time() int { return e.time }

// Step advances the frame counter and updates every element once.
func (e *Engine) Step() {
	e.time++
	t := float64(e.time)
	for i := range e.elements {
		e.update(&e.elements[i], t)
	}
}

func (e *Engine) update(el *Element, t float64) {
	cfg := &e.cfg
	m := e.pointer
	dist := common.Distance(el.X, el.Y, m.X, m.Y)

	if m.Active && dist < cfg.MouseRadius {
		el.TargetAngle = math.Atan2(m.Y-el.Y, m.X-el.X)

		strength := 1 - dist/cfg.MouseRadius
		el.Hue = common.Lerp(cfg.BaseColor.H, cfg.ActiveColor.H, strength)
		el.Sat = common.Lerp(cfg.BaseColor.S, cfg.ActiveColor.S, strength)
		el.Light = common.Lerp(cfg.BaseColor.L, cfg.ActiveColor.L, strength)
		el.Alpha = common.Lerp(cfg.BaseAlpha, cfg.ActiveAlpha, strength)
	} else {
		noise := math.Sin(0.005*el.X+0.001*t) + math.Cos(0.005*el.Y+0.001*t)
		el.TargetAngle = 0.5 * noise

		el.Hue = common.Lerp(el.Hue, cfg.BaseColor.H, cfg.IdleBlend)
		el.Sat = common.Lerp(el.Sat, cfg.BaseColor.S, cfg.IdleBlend)
		el.Light = common.Lerp(el.Light, cfg.BaseColor.L, cfg.IdleBlend)
		el.Alpha = common.Lerp(el.Alpha, cfg.BaseAlpha, cfg.IdleBlend)
	}

	el.Angle = common.EaseAngle(el.Angle, el.TargetAngle, cfg.Ease)
}

// Draw paints every arrow. A nil painter draws nothing.
func (e *Engine) Draw(p paint.Painter) {
	if p == nil {
		return
	}
	p.Save()
	defer p.Restore()
	if e.dpr != 1 {
		p.Scale(e.dpr, e.dpr)
	}

	if e.cfg.Grid.Enabled {
		e.DrawGrid(p)
	}

	half := e.cfg.LineLength / 2
	for i := range e.elements {
		el := &e.elements[i]
		p.Save()
		p.Translate(el.X, el.Y)
		p.Rotate(el.Angle)

		p.MoveTo(-half, 0)
		p.LineTo(half, 0)
		if el.Alpha > e.cfg.ArrowAlpha {
			p.LineTo(half-4, -3)
			p.MoveTo(half, 0)
			p.LineTo(half-4, 3)
		}
		p.Stroke(hsla(el.Hue, el.Sat, el.Light, el.Alpha), e.cfg.LineWidth)
		p.Restore()
	}
}

// DrawGrid paints faint background grid lines in the base colour.
func (e *Engine) DrawGrid(p paint.Painter) {
	g := e.cfg.Grid
	b := e.cfg.BaseColor
	paint.Grid(p, e.width, e.height, g.Step, hsla(b.H, b.S, b.L, g.Alpha), g.Width)
}

func hsla(h, s, l, a float64) color.Color {
	r, g, b := colorful.Hsl(h, s/100, l/100).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(common.Clamp(a, 0, 1) * 255))}
}
