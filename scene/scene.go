// Package scene runs animation layers against host input. The host
// publishes window events into Events and calls Scene.Frame once per
// display refresh.
package scene

import "errors"

type Scene struct {
	events *Events
	mounts []*Mount
}

func New(events *Events) *Scene {
	if events == nil {
		events = NewEvents()
	}
	return &Scene{events: events}
}

func (s *Scene) Events() *Events {
	return s.events
}

func (s *Scene) Mount(m *Mount) {
	if m == nil {
		return
	}
	s.mounts = append(s.mounts, m)
}

func (s *Scene) Mounts() []*Mount {
	mounts := make([]*Mount, 0, len(s.mounts))
	return append(mounts, s.mounts...)
}

// Frame renders every mount in order. Mounts closed on their own since
// the last frame are dropped from the scene.
func (s *Scene) Frame() {
	live := s.mounts[:0]
	for _, m := range s.mounts {
		if err := m.Frame(); errors.Is(err, ErrClosed) {
			continue
		}
		live = append(live, m)
	}
	clear(s.mounts[len(live):])
	s.mounts = live
}

func (s *Scene) Close() {
	for _, m := range s.mounts {
		m.Close()
	}
	s.mounts = nil
}
