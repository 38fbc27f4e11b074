package field

import (
	"math"
	"testing"

	"github.com/milk9111/backdrop/common"
	"github.com/milk9111/backdrop/paint"
)

func TestResizeLaysOutCentredGrid(t *testing.T) {
	cases := []struct {
		name       string
		w, h       float64
		wantCount  int
		wantFirstX float64
		wantFirstY float64
	}{
		{"exact_fit", 400, 200, 10 * 5, 20, 20},
		{"leftover_centred", 410, 230, 10 * 5, 25, 35},
		{"smaller_than_cell", 30, 30, 0, 0, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e := New(DefaultConfig())
			e.Resize(c.w, c.h, 1)
			if e.Len() != c.wantCount {
				t.Fatalf("expected %d elements, got %d", c.wantCount, e.Len())
			}
			if c.wantCount == 0 {
				return
			}
			first := e.Elements()[0]
			if first.X != c.wantFirstX || first.Y != c.wantFirstY {
				t.Fatalf("first element at (%v,%v), want (%v,%v)", first.X, first.Y, c.wantFirstX, c.wantFirstY)
			}
		})
	}
}

func TestResizeIsIdempotent(t *testing.T) {
	e := New(DefaultConfig())
	e.Resize(1280, 720, 2)
	a := e.Elements()
	e.Resize(1280, 720, 2)
	b := e.Elements()

	if len(a) != len(b) {
		t.Fatalf("population changed: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].X != b[i].X || a[i].Y != b[i].Y {
			t.Fatalf("element %d moved: %+v vs %+v", i, a[i], b[i])
		}
		if a[i].X < 0 || a[i].X > 1280 || a[i].Y < 0 || a[i].Y > 720 {
			t.Fatalf("element %d outside viewport: (%v,%v)", i, a[i].X, a[i].Y)
		}
	}
}

func TestSurfaceSizeFollowsDeviceRatio(t *testing.T) {
	cases := []struct {
		name         string
		scale        bool
		dpr          float64
		wantW, wantH int
	}{
		{"scaled", true, 2, 1600, 1200},
		{"unscaled_ignores_ratio", false, 2, 800, 600},
		{"zero_ratio_falls_back", true, 0, 800, 600},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.ScaleByDeviceRatio = c.scale
			e := New(cfg)
			e.Resize(800, 600, c.dpr)
			w, h := e.SurfaceSize()
			if w != c.wantW || h != c.wantH {
				t.Fatalf("surface %dx%d, want %dx%d", w, h, c.wantW, c.wantH)
			}
		})
	}
}

func TestStepAngleNeverJumps(t *testing.T) {
	cfg := DefaultConfig()
	e := New(cfg)
	e.Resize(800, 600, 1)

	// Park the pointer so that some targets sit across the ±π seam.
	positions := [][2]float64{{400, 300}, {10, 300}, {790, 590}, {400, 300}}
	for frame := 0; frame < 200; frame++ {
		before := e.Elements()
		switch {
		case frame%50 == 49:
			e.ClearPointer()
		default:
			p := positions[(frame/50)%len(positions)]
			e.SetPointer(p[0], p[1])
		}
		e.Step()
		after := e.Elements()

		for i := range after {
			step := math.Abs(after[i].Angle - before[i].Angle)
			if step > cfg.Ease*math.Pi+1e-9 {
				t.Fatalf("frame %d element %d jumped %v rad", frame, i, step)
			}
			want := common.EaseAngle(before[i].Angle, after[i].TargetAngle, cfg.Ease)
			if math.Abs(after[i].Angle-want) > 1e-12 {
				t.Fatalf("frame %d element %d angle %v, want %v", frame, i, after[i].Angle, want)
			}
		}
	}
}

func TestActivePointerBlendsByDistance(t *testing.T) {
	cfg := DefaultConfig()
	e := New(cfg)
	e.Resize(400, 400, 1)

	first := e.Elements()[0]
	e.SetPointer(first.X+150, first.Y)
	e.Step()

	got := e.Elements()[0]
	if math.Abs(got.TargetAngle) > 1e-12 {
		t.Fatalf("target angle %v, want 0 (pointer due east)", got.TargetAngle)
	}
	// strength is 1 - 150/300
	if math.Abs(got.Alpha-0.6) > 1e-12 {
		t.Fatalf("alpha %v, want 0.6", got.Alpha)
	}
	if math.Abs(got.Hue-200) > 1e-12 || math.Abs(got.Sat-45) > 1e-12 || math.Abs(got.Light-40) > 1e-12 {
		t.Fatalf("colour (%v,%v,%v), want (200,45,40)", got.Hue, got.Sat, got.Light)
	}
}

func TestInactivePointerConvergesToBase(t *testing.T) {
	cfg := DefaultConfig()
	e := New(cfg)
	e.Resize(800, 600, 1)

	starts := []float64{0, 0.05, 0.9, 1}
	for i := range e.elements {
		e.elements[i].Alpha = starts[i%len(starts)]
		e.elements[i].Hue = 0
		e.elements[i].Sat = 100
		e.elements[i].Light = 100
	}

	prev := e.Elements()
	for frame := 0; frame < 300; frame++ {
		e.Step()
		cur := e.Elements()
		for i := range cur {
			if !approaches(prev[i].Alpha, cur[i].Alpha, cfg.BaseAlpha) ||
				!approaches(prev[i].Hue, cur[i].Hue, cfg.BaseColor.H) ||
				!approaches(prev[i].Sat, cur[i].Sat, cfg.BaseColor.S) ||
				!approaches(prev[i].Light, cur[i].Light, cfg.BaseColor.L) {
				t.Fatalf("frame %d element %d moved away from base: %+v -> %+v", frame, i, prev[i], cur[i])
			}
		}
		prev = cur
	}

	for i, el := range prev {
		if math.Abs(el.Alpha-0.3) > 1e-6 {
			t.Fatalf("element %d alpha %v did not settle at 0.3", i, el.Alpha)
		}
	}
}

// approaches reports whether next is no further from target than prev and
// on the same side of it.
func approaches(prev, next, target float64) bool {
	const eps = 1e-9
	if math.Abs(next-target) > math.Abs(prev-target)+eps {
		return false
	}
	return (prev-target)*(next-target) >= -eps
}

func TestDrawArrowheadOnlyWhenBright(t *testing.T) {
	e := New(DefaultConfig())
	e.Resize(80, 40, 1)
	if e.Len() != 2 {
		t.Fatalf("expected 2 elements, got %d", e.Len())
	}
	e.elements[0].Alpha = 0.3
	e.elements[1].Alpha = 0.8

	rec := paint.NewRecorder()
	e.Draw(rec)

	if len(rec.Strokes) != 2 {
		t.Fatalf("expected 2 strokes, got %d", len(rec.Strokes))
	}
	if got := len(rec.Strokes[0].Subpaths); got != 1 {
		t.Fatalf("dim arrow: expected 1 subpath, got %d", got)
	}
	if got := len(rec.Strokes[1].Subpaths); got != 2 {
		t.Fatalf("bright arrow: expected 2 subpaths, got %d", got)
	}
	if got := len(rec.Strokes[1].Subpaths[0]); got != 3 {
		t.Fatalf("bright arrow: expected shaft plus tick (3 points), got %d", got)
	}
	if rec.Depth() != 0 {
		t.Fatalf("draw left save depth %d", rec.Depth())
	}
}

func TestDrawScalesByDeviceRatio(t *testing.T) {
	e := New(DefaultConfig())
	e.Resize(40, 40, 2)

	rec := paint.NewRecorder()
	e.Draw(rec)
	if len(rec.Strokes) != 1 {
		t.Fatalf("expected 1 stroke, got %d", len(rec.Strokes))
	}
	s := rec.Strokes[0]
	if math.Abs(s.Width-4) > 1e-9 {
		t.Fatalf("stroke width %v, want 4", s.Width)
	}
	// Element sits at (20,20), the shaft spans ±7.5 before scaling.
	start := s.Subpaths[0][0]
	if math.Abs(start[0]-25) > 1e-9 || math.Abs(start[1]-40) > 1e-9 {
		t.Fatalf("shaft start %v, want (25,40)", start)
	}
}

func TestDrawNilPainterIsNoop(t *testing.T) {
	e := New(DefaultConfig())
	e.Resize(200, 200, 1)
	e.Draw(nil)
}

func TestGridDisabledByDefault(t *testing.T) {
	cfg := DefaultConfig()
	e := New(cfg)
	e.Resize(40, 40, 1)

	rec := paint.NewRecorder()
	e.Draw(rec)
	if len(rec.Strokes) != 1 {
		t.Fatalf("expected only the arrow stroke, got %d", len(rec.Strokes))
	}

	cfg.Grid.Enabled = true
	e.Reconfigure(cfg)
	rec = paint.NewRecorder()
	e.Draw(rec)
	if len(rec.Strokes) != 2 {
		t.Fatalf("expected grid plus arrow strokes, got %d", len(rec.Strokes))
	}
}
