package paint

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Screen paints onto an ebiten image. Path points are transformed on the
// CPU, then stroked or filled as one vector.Path with round caps and
// joins.
type Screen struct {
	dst   *ebiten.Image
	geo   ebiten.GeoM
	stack []ebiten.GeoM
	path  polyline
	vpath vector.Path
}

func NewScreen(dst *ebiten.Image) *Screen {
	return &Screen{dst: dst}
}

// SetTarget points the painter at a new image and resets the transform.
func (s *Screen) SetTarget(dst *ebiten.Image) {
	s.dst = dst
	s.geo.Reset()
	s.stack = s.stack[:0]
	s.path.reset()
}

func (s *Screen) Target() *ebiten.Image {
	return s.dst
}

func (s *Screen) Save() {
	s.stack = append(s.stack, s.geo)
}

func (s *Screen) Restore() {
	if len(s.stack) == 0 {
		return
	}
	s.geo = s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
}

// prepend applies op before the current transform, matching canvas order.
func (s *Screen) prepend(op ebiten.GeoM) {
	op.Concat(s.geo)
	s.geo = op
}

func (s *Screen) Translate(x, y float64) {
	var op ebiten.GeoM
	op.Translate(x, y)
	s.prepend(op)
}

func (s *Screen) Rotate(theta float64) {
	var op ebiten.GeoM
	op.Rotate(theta)
	s.prepend(op)
}

func (s *Screen) Scale(sx, sy float64) {
	var op ebiten.GeoM
	op.Scale(sx, sy)
	s.prepend(op)
}

func (s *Screen) MoveTo(x, y float64) {
	tx, ty := s.geo.Apply(x, y)
	s.path.moveTo(tx, ty)
}

func (s *Screen) LineTo(x, y float64) {
	tx, ty := s.geo.Apply(x, y)
	s.path.lineTo(tx, ty)
}

func (s *Screen) Stroke(c color.Color, width float64) {
	defer s.path.reset()
	if s.dst == nil {
		return
	}
	vector.StrokePath(s.dst, &s.vpath, s.buildStroke(width), drawOptions(c))
}

// buildStroke loads the pending path into s.vpath and returns the stroke
// options for width under the current transform.
func (s *Screen) buildStroke(width float64) *vector.StrokeOptions {
	s.vpath.Reset()
	for _, sub := range s.path.subpaths {
		for i, p := range sub {
			if i == 0 {
				s.vpath.MoveTo(float32(p.x), float32(p.y))
				continue
			}
			s.vpath.LineTo(float32(p.x), float32(p.y))
		}
	}
	return &vector.StrokeOptions{
		Width:    float32(width * geoScale(s.geo)),
		LineCap:  vector.LineCapRound,
		LineJoin: vector.LineJoinRound,
	}
}

// FillRect fills the rectangle under the current transform, rotation
// included.
func (s *Screen) FillRect(x, y, w, h float64, c color.Color) {
	if s.dst == nil {
		return
	}
	s.vpath.Reset()
	for i, p := range [4]point{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}} {
		tx, ty := s.geo.Apply(p.x, p.y)
		if i == 0 {
			s.vpath.MoveTo(float32(tx), float32(ty))
			continue
		}
		s.vpath.LineTo(float32(tx), float32(ty))
	}
	s.vpath.Close()
	vector.FillPath(s.dst, &s.vpath, nil, drawOptions(c))
}

func drawOptions(c color.Color) *vector.DrawPathOptions {
	op := &vector.DrawPathOptions{AntiAlias: true}
	op.ColorScale.ScaleWithColor(c)
	return op
}

func (s *Screen) Clear(c color.Color) {
	if s.dst == nil {
		return
	}
	if _, _, _, a := c.RGBA(); a == 0 {
		s.dst.Clear()
		return
	}
	s.dst.Fill(c)
}

// geoScale is the uniform scale of g, used to scale line widths the way
// a canvas does.
func geoScale(g ebiten.GeoM) float64 {
	a, b := g.Element(0, 0), g.Element(0, 1)
	c, d := g.Element(1, 0), g.Element(1, 1)
	return math.Sqrt(math.Abs(a*d - b*c))
}
