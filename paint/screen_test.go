package paint

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2/vector"
)

func TestScreenStrokeHasRoundCaps(t *testing.T) {
	cases := []struct {
		name  string
		setup func(p Painter)
		x0    float64
		x1    float64
		width float64
	}{
		{"translated", func(p Painter) { p.Translate(5, 5) }, 5, 15, 4},
		{"scaled", func(p Painter) { p.Scale(2, 2) }, 5, 10, 2},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := NewScreen(nil)
			s.Save()
			c.setup(s)
			s.MoveTo(c.x0, 5)
			s.LineTo(c.x1, 5)
			op := s.buildStroke(c.width)
			s.Restore()

			if op.Width != 4 {
				t.Fatalf("stroke width %v, want 4", op.Width)
			}
			if op.LineCap != vector.LineCapRound || op.LineJoin != vector.LineJoinRound {
				t.Fatalf("caps %v joins %v, want round", op.LineCap, op.LineJoin)
			}

			// The segment runs (10,10)->(20,10); round caps reach one half
			// width past each end.
			var outline vector.Path
			outline.AddStroke(&s.vpath, &vector.AddStrokeOptions{StrokeOptions: *op})
			b := outline.Bounds()
			if b.Min.X > 8 || b.Max.X < 22 {
				t.Fatalf("stroke bounds %v do not cover the caps", b)
			}
			if b.Min.Y > 8 || b.Max.Y < 12 {
				t.Fatalf("stroke bounds %v thinner than the line", b)
			}
		})
	}
}

func TestScreenWithoutTargetDrawsNothing(t *testing.T) {
	s := NewScreen(nil)
	s.MoveTo(0, 0)
	s.LineTo(1, 1)
	s.Stroke(nil, 1)
	s.FillRect(0, 0, 1, 1, nil)
	if len(s.path.subpaths) != 0 {
		t.Fatalf("stroke left %d pending subpaths", len(s.path.subpaths))
	}
}
