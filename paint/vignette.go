package paint

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
)

// Vignette darkens a surface toward its corners with a circular radial
// gradient.
type Vignette struct {
	// Inner is the fraction of the radius that stays fully clear.
	Inner float64
	// Color is reached at the corners.
	Color color.NRGBA
}

// DefaultVignette is clear out to half the radius and 60% black at the
// corners.
func DefaultVignette() Vignette {
	return Vignette{Inner: 0.5, Color: color.NRGBA{A: 153}}
}

// Image renders v at w by h. The gradient is centred and its radius
// reaches the farthest corner.
func (v Vignette) Image(w, h int) image.Image {
	dc := gg.NewContext(max(w, 1), max(h, 1))
	cx, cy := float64(w)/2, float64(h)/2

	inner := v.Inner
	if !(inner >= 0) {
		inner = 0
	}
	if inner >= 1 {
		return dc.Image()
	}
	transparent := v.Color
	transparent.A = 0

	grad := gg.NewRadialGradient(cx, cy, 0, cx, cy, math.Hypot(cx, cy))
	if inner > 0 {
		grad.AddColorStop(0, transparent)
	}
	grad.AddColorStop(inner, transparent)
	grad.AddColorStop(1, v.Color)
	dc.SetFillStyle(grad)
	dc.DrawRectangle(0, 0, float64(w), float64(h))
	dc.Fill()
	return dc.Image()
}
