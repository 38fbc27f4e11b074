// Package paint is the drawing surface the animation engines render into.
//
// Painter mirrors the subset of a 2-D canvas context the engines need: a
// save/restore transform stack, polyline paths and axis-aligned fills.
// Coordinates passed to MoveTo, LineTo and FillRect are in the current
// local space; stroke widths scale with the current transform.
package paint

import "image/color"

type Painter interface {
	Save()
	Restore()
	Translate(x, y float64)
	Rotate(theta float64)
	Scale(sx, sy float64)

	MoveTo(x, y float64)
	LineTo(x, y float64)
	// Stroke draws the current path and starts a new one.
	Stroke(c color.Color, width float64)
	FillRect(x, y, w, h float64, c color.Color)

	// Clear replaces every pixel of the surface with c.
	Clear(c color.Color)
}

type point struct {
	x, y float64
}

// polyline collects the subpaths of the current path.
type polyline struct {
	subpaths [][]point
}

func (p *polyline) moveTo(x, y float64) {
	p.subpaths = append(p.subpaths, []point{{x, y}})
}

func (p *polyline) lineTo(x, y float64) {
	if len(p.subpaths) == 0 {
		p.moveTo(x, y)
		return
	}
	last := len(p.subpaths) - 1
	p.subpaths[last] = append(p.subpaths[last], point{x, y})
}

func (p *polyline) reset() {
	p.subpaths = p.subpaths[:0]
}
