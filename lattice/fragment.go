package lattice

import "github.com/milk9111/backdrop/paint"

type Kind uint8

const (
	LineH Kind = iota
	LineV
	CornerTL
	CornerTR
	CornerBL
	CornerBR
	Cross

	kindCount
)

var kindNames = [...]string{
	LineH:    "LINE_H",
	LineV:    "LINE_V",
	CornerTL: "CORNER_TL",
	CornerTR: "CORNER_TR",
	CornerBL: "CORNER_BL",
	CornerBR: "CORNER_BR",
	Cross:    "CROSS",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "UNKNOWN"
}

// glyph traces the fragment outline centred on the origin. s is half the
// grid size; every arm stops 4 units short of it.
func glyph(p paint.Painter, k Kind, s float64) {
	arm := s - 4
	switch k {
	case LineH:
		p.MoveTo(-arm, 0)
		p.LineTo(arm, 0)
	case LineV:
		p.MoveTo(0, -arm)
		p.LineTo(0, arm)
	case CornerTL:
		p.MoveTo(0, arm)
		p.LineTo(0, 0)
		p.LineTo(arm, 0)
	case CornerTR:
		p.MoveTo(-arm, 0)
		p.LineTo(0, 0)
		p.LineTo(0, arm)
	case CornerBL:
		p.MoveTo(0, -arm)
		p.LineTo(0, 0)
		p.LineTo(arm, 0)
	case CornerBR:
		p.MoveTo(-arm, 0)
		p.LineTo(0, 0)
		p.LineTo(0, -arm)
	case Cross:
		p.MoveTo(0, -arm)
		p.LineTo(0, arm)
		p.MoveTo(-arm, 0)
		p.LineTo(arm, 0)
	}
}
