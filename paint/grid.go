package paint

import "image/color"

// Grid strokes vertical and horizontal lines every step units across a
// width by height area as a single path.
func Grid(p Painter, width, height, step float64, c color.Color, lineWidth float64) {
	if p == nil || step <= 0 {
		return
	}
	for x := 0.0; x <= width; x += step {
		p.MoveTo(x, 0)
		p.LineTo(x, height)
	}
	for y := 0.0; y <= height; y += step {
		p.MoveTo(0, y)
		p.LineTo(width, y)
	}
	p.Stroke(c, lineWidth)
}
