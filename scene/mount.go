package scene

import (
	"errors"
	"image/color"

	"github.com/milk9111/backdrop/paint"
)

var ErrClosed = errors.New("scene: mount closed")

// Layer is an animation engine a Mount drives. field.Engine and
// lattice.Engine both satisfy it.
type Layer interface {
	Resize(width, height, dpr float64)
	SetPointer(x, y float64)
	ClearPointer()
	Step()
	Draw(p paint.Painter)
	SurfaceSize() (int, int)
}

// Mount ties one layer to the host for its lifetime: four event
// listeners and a pending frame.
type Mount struct {
	events  *Events
	layer   Layer
	painter paint.Painter

	listeners []int
	scheduled bool
	frames    int
}

// NewMount attaches layer to events and paints through p. A nil p means
// there is no drawing context: the mount registers nothing and every
// frame is skipped.
func NewMount(events *Events, layer Layer, p paint.Painter) *Mount {
	m := &Mount{events: events, layer: layer, painter: p}
	if p == nil || layer == nil || events == nil {
		return m
	}

	m.listeners = []int{
		events.Subscribe(TopicResize, func(ev Event) { layer.Resize(ev.X, ev.Y, ev.DPR) }),
		events.Subscribe(TopicPointerMove, func(ev Event) { layer.SetPointer(ev.X, ev.Y) }),
		events.Subscribe(TopicPointerLeave, func(Event) { layer.ClearPointer() }),
		events.Subscribe(TopicTouchMove, func(ev Event) { layer.SetPointer(ev.X, ev.Y) }),
	}
	if w, h, dpr, ok := events.Viewport(); ok {
		layer.Resize(w, h, dpr)
	}
	m.scheduled = true
	return m
}

func (m *Mount) Layer() Layer { return m.layer }

func (m *Mount) Painter() paint.Painter { return m.painter }

// Active reports whether the next Frame will run.
func (m *Mount) Active() bool { return m.scheduled }

// Frames counts frames rendered since mounting.
func (m *Mount) Frames() int { return m.frames }

// Frame clears the surface, steps the layer and draws it.
func (m *Mount) Frame() error {
	if !m.scheduled {
		if m.painter == nil {
			return nil
		}
		return ErrClosed
	}
	m.painter.Clear(color.Transparent)
	m.layer.Step()
	m.layer.Draw(m.painter)
	m.frames++
	return nil
}

// Close cancels the pending frame and detaches every listener. It is
// safe to call more than once.
func (m *Mount) Close() {
	m.scheduled = false
	for _, id := range m.listeners {
		m.events.Unsubscribe(id)
	}
	m.listeners = nil
}
