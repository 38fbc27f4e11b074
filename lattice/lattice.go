// Package lattice implements the blueprint fragments: glyphs that drift
// and wrap around the viewport, and snap onto the nearest grid
// intersection while the pointer is close.
package lattice

import (
	"image/color"
	"math"
	"math/rand/v2"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/backdrop/common"
	"github.com/milk9111/backdrop/paint"
	"github.com/milk9111/backdrop/pointer"
)

type Fragment struct {
	Pos    cp.Vector
	Target cp.Vector
	Vel    cp.Vector

	Angle float64
	Spin  float64

	Locked  bool
	Opacity float64
	Kind    Kind
}

type Engine struct {
	cfg       Config
	rng       *rand.Rand
	fragments []Fragment
	pointer   pointer.State

	width, height float64
	dpr           float64
}

// New builds an engine drawing randomness from rng. A nil rng is seeded
// from the clock.
func New(cfg Config, rng *rand.Rand) *Engine {
	if rng == nil {
		now := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(now, now>>32))
	}
	return &Engine{cfg: cfg, rng: rng, pointer: pointer.Cleared(), dpr: 1}
}

// NewSeeded is New with a PCG source fixed by seed.
func NewSeeded(cfg Config, seed uint64) *Engine {
	return New(cfg, rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

func (e *Engine) Config() Config {
	return e.cfg
}

func (e *Engine) Reconfigure(cfg Config) {
	e.cfg = cfg
	if e.width > 0 || e.height > 0 {
		e.Resize(e.width, e.height, e.dpr)
	}
}

// Resize throws the population away and scatters a fresh one across a
// width by height viewport. A non-positive grid size has no
// intersections to snap to, so it leaves the engine empty.
func (e *Engine) Resize(width, height, dpr float64) {
	e.width, e.height = width, height
	e.dpr = 1
	if e.cfg.ScaleByDeviceRatio && dpr > 0 {
		e.dpr = dpr
	}

	n := max(e.cfg.FragmentCount, 0)
	if !(e.cfg.GridSize > 0) {
		n = 0
	}
	if cap(e.fragments) < n {
		e.fragments = make([]Fragment, n)
	}
	e.fragments = e.fragments[:n]
	for i := range e.fragments {
		e.fragments[i] = e.spawn()
	}
}

func (e *Engine) spawn() Fragment {
	r := e.rng
	f := Fragment{Kind: Kind(r.IntN(int(kindCount)))}
	f.Pos = cp.Vector{X: r.Float64() * e.width, Y: r.Float64() * e.height}
	f.Target = f.Pos
	f.Vel = cp.Vector{
		X: (r.Float64() - 0.5) * e.cfg.DriftSpeed,
		Y: (r.Float64() - 0.5) * e.cfg.DriftSpeed,
	}
	f.Angle = r.Float64() * 2 * math.Pi
	f.Spin = (r.Float64() - 0.5) * e.cfg.AngularDrift
	f.Opacity = e.cfg.InitialOpacity
	return f
}

func (e *Engine) SurfaceSize() (int, int) {
	return int(math.Round(e.width * e.dpr)), int(math.Round(e.height * e.dpr))
}

func (e *Engine) SetPointer(x, y float64) { e.pointer.Set(x, y) }
func (e *Engine) ClearPointer()           { e.pointer.Clear() }
func (e *Engine) Pointer() pointer.State  { return e.pointer }

func (e *Engine) Len() int { return len(e.fragments) }

func (e *Engine) Elements() []Fragment {
	return append([]Fragment(nil), e.fragments...)
}

// Intersection is the lattice point nearest to v, rounding each axis on
// its own.
func (e *Engine) Intersection(v cp.Vector) cp.Vector {
	g := e.cfg.GridSize
	return cp.Vector{X: math.Round(v.X/g) * g, Y: math.Round(v.Y/g) * g}
}

func (e *Engine) Step() {
	for i := range e.fragments {
		e.update(&e.fragments[i])
	}
}

func (e *Engine) update(f *Fragment) {
	cfg := &e.cfg
	m := e.pointer
	mouse := cp.Vector{X: m.X, Y: m.Y}

	if m.Active && f.Pos.Distance(mouse) < cfg.SnapRadius {
		g := e.Intersection(f.Pos)
		f.Locked = f.Pos.Distance(g) < cfg.LockThreshold()
		f.Target = g

		f.Pos = f.Pos.Lerp(f.Target, cfg.SnapSpeed)
		f.Angle = common.EaseAngle(f.Angle, 0, cfg.SnapSpeed)
		f.Opacity = math.Min(f.Opacity+cfg.OpacityRise, 1)
		return
	}

	f.Locked = false
	f.Pos = f.Pos.Add(f.Vel)
	f.Angle += f.Spin
	e.wrap(f)
	f.Opacity = math.Max(f.Opacity-cfg.OpacityDecay, cfg.OpacityFloor)
}

// wrap moves a fragment that left the viewport, plus one grid cell of
// margin, to the opposite edge.
func (e *Engine) wrap(f *Fragment) {
	g := e.cfg.GridSize
	switch {
	case f.Pos.X < -g:
		f.Pos.X = e.width + g
	case f.Pos.X > e.width+g:
		f.Pos.X = -g
	}
	switch {
	case f.Pos.Y < -g:
		f.Pos.Y = e.height + g
	case f.Pos.Y > e.height+g:
		f.Pos.Y = -g
	}
}

// Draw paints every visible fragment. A nil painter draws nothing.
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

	s := e.cfg.GridSize / 2
	for i := range e.fragments {
		f := &e.fragments[i]
		if f.Opacity < e.cfg.VisibleOpacity {
			continue
		}

		p.Save()
		p.Translate(f.Pos.X, f.Pos.Y)
		p.Rotate(f.Angle)

		base, width := e.cfg.BaseColor, 1.0
		if f.Locked {
			base, width = e.cfg.ActiveColor, 2.0
		}
		glyph(p, f.Kind, s)
		p.Stroke(withOpacity(base, f.Opacity), width)

		if f.Locked {
			p.FillRect(-1.5, -1.5, 3, 3, withOpacity(e.cfg.MarkerColor, f.Opacity))
		}
		p.Restore()
	}
}

// DrawGrid paints the faint background lattice. Draw only calls it when
// Grid.Enabled is set.
func (e *Engine) DrawGrid(p paint.Painter) {
	g := e.cfg.Grid
	paint.Grid(p, e.width, e.height, g.Step, g.Color, g.Width)
}

func withOpacity(c color.NRGBA, opacity float64) color.NRGBA {
	c.A = uint8(math.Round(common.Clamp(opacity, 0, 1) * 255))
	return c
}
