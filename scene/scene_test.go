package scene

import (
	"errors"
	"testing"

	"github.com/milk9111/backdrop/field"
	"github.com/milk9111/backdrop/lattice"
	"github.com/milk9111/backdrop/paint"
)

type fakeLayer struct {
	resizes  int
	steps    int
	draws    int
	w, h     float64
	px, py   float64
	active   bool
	lastDraw paint.Painter
}

func (f *fakeLayer) Resize(w, h, dpr float64) { f.resizes++; f.w, f.h = w, h }
func (f *fakeLayer) SetPointer(x, y float64)  { f.px, f.py, f.active = x, y, true }
func (f *fakeLayer) ClearPointer()            { f.active = false }
func (f *fakeLayer) Step()                    { f.steps++ }
func (f *fakeLayer) Draw(p paint.Painter)     { f.draws++; f.lastDraw = p }
func (f *fakeLayer) SurfaceSize() (int, int)  { return int(f.w), int(f.h) }

var (
	_ Layer = (*field.Engine)(nil)
	_ Layer = (*lattice.Engine)(nil)
)

func TestMountLifecycle(t *testing.T) {
	ev := NewEvents()
	ev.Resize(640, 480, 1)

	layer := &fakeLayer{}
	rec := paint.NewRecorder()
	m := NewMount(ev, layer, rec)

	if ev.Listeners() != 4 {
		t.Fatalf("expected 4 listeners, got %d", ev.Listeners())
	}
	if layer.resizes != 1 || layer.w != 640 {
		t.Fatalf("mount should build for the known viewport, got %d resizes", layer.resizes)
	}

	steps := []struct {
		name  string
		do    func()
		check func(t *testing.T)
	}{
		{
			name: "pointer_move",
			do:   func() { ev.PointerMove(10, 20) },
			check: func(t *testing.T) {
				if !layer.active || layer.px != 10 || layer.py != 20 {
					t.Fatalf("pointer not forwarded: %+v", layer)
				}
			},
		},
		{
			name: "pointer_leave",
			do:   ev.PointerLeave,
			check: func(t *testing.T) {
				if layer.active {
					t.Fatalf("pointer should be cleared")
				}
			},
		},
		{
			name: "touch_move",
			do:   func() { ev.TouchMove(5, 6) },
			check: func(t *testing.T) {
				if !layer.active || layer.px != 5 {
					t.Fatalf("touch not forwarded: %+v", layer)
				}
			},
		},
		{
			name: "resize",
			do:   func() { ev.Resize(800, 600, 2) },
			check: func(t *testing.T) {
				if layer.resizes != 2 || layer.w != 800 {
					t.Fatalf("resize not forwarded: %+v", layer)
				}
			},
		},
		{
			name: "frame",
			do:   func() { _ = m.Frame() },
			check: func(t *testing.T) {
				if layer.steps != 1 || layer.draws != 1 || rec.Clears != 1 || m.Frames() != 1 {
					t.Fatalf("frame did not clear, step and draw: %+v", layer)
				}
			},
		},
	}
	for _, s := range steps {
		t.Run(s.name, func(t *testing.T) {
			s.do()
			s.check(t)
		})
	}

	m.Close()
	if ev.Listeners() != 0 {
		t.Fatalf("close left %d listeners", ev.Listeners())
	}
	if err := m.Frame(); !errors.Is(err, ErrClosed) {
		t.Fatalf("frame after close: %v", err)
	}
	ev.PointerMove(1, 1)
	ev.Resize(10, 10, 1)
	if layer.steps != 1 || layer.resizes != 2 || layer.px != 5 {
		t.Fatalf("closed mount still reacting: %+v", layer)
	}
	m.Close()
}

func TestMountWithoutPainterIsInert(t *testing.T) {
	ev := NewEvents()
	ev.Resize(640, 480, 1)
	layer := &fakeLayer{}

	m := NewMount(ev, layer, nil)
	if ev.Listeners() != 0 || m.Active() {
		t.Fatalf("inert mount registered %d listeners", ev.Listeners())
	}
	if err := m.Frame(); err != nil {
		t.Fatalf("inert frame: %v", err)
	}
	if layer.resizes != 0 || layer.steps != 0 {
		t.Fatalf("inert mount touched the layer: %+v", layer)
	}
	m.Close()
}

func TestSceneDrivesEngines(t *testing.T) {
	s := New(nil)
	s.Events().Resize(400, 300, 1)

	fr := paint.NewRecorder()
	lr := paint.NewRecorder()
	fe := field.New(field.DefaultConfig())
	le := lattice.NewSeeded(lattice.DefaultConfig(), 3)
	s.Mount(NewMount(s.Events(), fe, fr))
	s.Mount(NewMount(s.Events(), le, lr))

	if fe.Len() != 10*7 || le.Len() != 150 {
		t.Fatalf("engines not built: field %d lattice %d", fe.Len(), le.Len())
	}

	s.Events().PointerMove(200, 150)
	for i := 0; i < 3; i++ {
		s.Frame()
	}
	if fe.Time() != 3 {
		t.Fatalf("field stepped %d times, want 3", fe.Time())
	}
	if !fe.Pointer().Active || !le.Pointer().Active {
		t.Fatalf("pointer not delivered to both engines")
	}
	if len(fr.Strokes) != fe.Len() {
		t.Fatalf("field drew %d strokes, want %d", len(fr.Strokes), fe.Len())
	}
	if len(lr.Strokes) == 0 {
		t.Fatalf("lattice drew nothing")
	}

	s.Close()
	if s.Events().Listeners() != 0 {
		t.Fatalf("scene close left %d listeners", s.Events().Listeners())
	}
	s.Frame()
	if fe.Time() != 3 {
		t.Fatalf("closed scene kept stepping")
	}
}

func TestSceneDropsClosedMounts(t *testing.T) {
	s := New(nil)
	s.Events().Resize(100, 100, 1)

	kept, gone, inert := &fakeLayer{}, &fakeLayer{}, &fakeLayer{}
	s.Mount(NewMount(s.Events(), kept, paint.NewRecorder()))
	closing := NewMount(s.Events(), gone, paint.NewRecorder())
	s.Mount(closing)
	s.Mount(NewMount(s.Events(), inert, nil))

	s.Frame()
	closing.Close()
	s.Frame()
	s.Frame()

	if kept.steps != 3 || gone.steps != 1 || inert.steps != 0 {
		t.Fatalf("steps kept=%d closed=%d inert=%d", kept.steps, gone.steps, inert.steps)
	}
	if n := len(s.Mounts()); n != 2 {
		t.Fatalf("scene holds %d mounts, want 2", n)
	}
	for _, m := range s.Mounts() {
		if m == closing {
			t.Fatalf("closed mount still scheduled in the scene")
		}
	}
}

func TestUnsubscribeDuringPublish(t *testing.T) {
	ev := NewEvents()
	var id int
	calls := 0
	id = ev.Subscribe(TopicPointerLeave, func(Event) {
		calls++
		ev.Unsubscribe(id)
	})
	ev.PointerLeave()
	ev.PointerLeave()
	if calls != 1 {
		t.Fatalf("handler ran %d times, want 1", calls)
	}
	if ev.Unsubscribe(id) {
		t.Fatalf("second unsubscribe should report false")
	}
	if ev.Subscribe(topicCount, func(Event) {}) != 0 {
		t.Fatalf("unknown topic should not subscribe")
	}
}
