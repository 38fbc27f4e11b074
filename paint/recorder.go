package paint

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// StrokeOp is one recorded Stroke call. Points are in surface space.
type StrokeOp struct {
	Subpaths [][][2]float64
	Color    color.Color
	Width    float64
}

// FillOp is one recorded FillRect call; X and Y are the transformed
// centre of the rectangle.
type FillOp struct {
	X, Y  float64
	W, H  float64
	Color color.Color
}

// Recorder is a Painter that keeps every stroke and fill it receives.
// It applies transforms the same way the real backends do.
type Recorder struct {
	Strokes []StrokeOp
	Fills   []FillOp
	Clears  int

	geo   ebiten.GeoM
	stack []ebiten.GeoM
	path  polyline
	depth int
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

// Depth reports the current Save nesting.
func (r *Recorder) Depth() int {
	return r.depth
}

func (r *Recorder) Save() {
	r.stack = append(r.stack, r.geo)
	r.depth++
}

func (r *Recorder) Restore() {
	if len(r.stack) == 0 {
		return
	}
	r.geo = r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
	r.depth--
}

func (r *Recorder) prepend(op ebiten.GeoM) {
	op.Concat(r.geo)
	r.geo = op
}

func (r *Recorder) Translate(x, y float64) {
	var op ebiten.GeoM
	op.Translate(x, y)
	r.prepend(op)
}

func (r *Recorder) Rotate(theta float64) {
	var op ebiten.GeoM
	op.Rotate(theta)
	r.prepend(op)
}

func (r *Recorder) Scale(sx, sy float64) {
	var op ebiten.GeoM
	op.Scale(sx, sy)
	r.prepend(op)
}

func (r *Recorder) MoveTo(x, y float64) {
	tx, ty := r.geo.Apply(x, y)
	r.path.moveTo(tx, ty)
}

func (r *Recorder) LineTo(x, y float64) {
	tx, ty := r.geo.Apply(x, y)
	r.path.lineTo(tx, ty)
}

func (r *Recorder) Stroke(c color.Color, width float64) {
	op := StrokeOp{Color: c, Width: width * geoScale(r.geo)}
	for _, sub := range r.path.subpaths {
		pts := make([][2]float64, len(sub))
		for i, p := range sub {
			pts[i] = [2]float64{p.x, p.y}
		}
		op.Subpaths = append(op.Subpaths, pts)
	}
	r.Strokes = append(r.Strokes, op)
	r.path.reset()
}

func (r *Recorder) FillRect(x, y, w, h float64, c color.Color) {
	cx, cy := r.geo.Apply(x+w/2, y+h/2)
	k := geoScale(r.geo)
	r.Fills = append(r.Fills, FillOp{X: cx, Y: cy, W: w * k, H: h * k, Color: c})
}

func (r *Recorder) Clear(color.Color) {
	r.Clears++
	r.Strokes = r.Strokes[:0]
	r.Fills = r.Fills[:0]
}
