package paint

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
)

// Raster paints into an in-memory RGBA image using gg. It backs the
// headless snapshot tool.
type Raster struct {
	dc *gg.Context
}

func NewRaster(width, height int) *Raster {
	dc := gg.NewContext(width, height)
	dc.SetLineCap(gg.LineCapRound)
	return &Raster{dc: dc}
}

func (r *Raster) Save()    { r.dc.Push() }
func (r *Raster) Restore() { r.dc.Pop() }

func (r *Raster) Translate(x, y float64) { r.dc.Translate(x, y) }
func (r *Raster) Rotate(theta float64)   { r.dc.Rotate(theta) }
func (r *Raster) Scale(sx, sy float64)   { r.dc.Scale(sx, sy) }

func (r *Raster) MoveTo(x, y float64) { r.dc.MoveTo(x, y) }
func (r *Raster) LineTo(x, y float64) { r.dc.LineTo(x, y) }

func (r *Raster) Stroke(c color.Color, width float64) {
	r.dc.SetColor(c)
	// gg strokes in device space, so fold the transform scale in here.
	r.dc.SetLineWidth(width * r.lineScale())
	r.dc.Stroke()
}

func (r *Raster) FillRect(x, y, w, h float64, c color.Color) {
	r.dc.SetColor(c)
	r.dc.DrawRectangle(x, y, w, h)
	r.dc.Fill()
}

func (r *Raster) Clear(c color.Color) {
	r.dc.SetColor(c)
	r.dc.Clear()
}

func (r *Raster) Image() image.Image {
	return r.dc.Image()
}

func (r *Raster) SavePNG(path string) error {
	return r.dc.SavePNG(path)
}

func (r *Raster) lineScale() float64 {
	x0, y0 := r.dc.TransformPoint(0, 0)
	x1, y1 := r.dc.TransformPoint(1, 0)
	x2, y2 := r.dc.TransformPoint(0, 1)
	return math.Sqrt(math.Abs((x1-x0)*(y2-y0) - (y1-y0)*(x2-x0)))
}
