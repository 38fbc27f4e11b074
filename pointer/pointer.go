package pointer

// Offscreen is where a cleared pointer parks, far from any element.
const Offscreen = -1000

// State is the cursor or touch position an engine reacts to. The host
// writes it between frames; elements read it during Step.
type State struct {
	X, Y   float64
	Active bool
}

func Cleared() State {
	return State{X: Offscreen, Y: Offscreen}
}

func (s *State) Set(x, y float64) {
	s.X, s.Y, s.Active = x, y, true
}

func (s *State) Clear() {
	*s = Cleared()
}
