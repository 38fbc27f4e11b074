package scene

// Topic names one kind of host input.
type Topic uint8

const (
	TopicResize Topic = iota
	TopicPointerMove
	TopicPointerLeave
	TopicTouchMove

	topicCount
)

// Event is one host input. X and Y carry the pointer or touch position,
// or the viewport size for resize; DPR is only set on resize.
type Event struct {
	Topic Topic
	X, Y  float64
	DPR   float64
}

type Handler func(Event)

type subscription struct {
	id      int
	handler Handler
}

// Events fans host input out to subscribed handlers. It is not safe for
// concurrent use; the host publishes from its update loop.
type Events struct {
	subs   [topicCount][]subscription
	nextID int

	viewport Event
	hasSize  bool
}

func NewEvents() *Events {
	return &Events{}
}

// Subscribe registers h for topic and returns an id for Unsubscribe.
func (e *Events) Subscribe(topic Topic, h Handler) int {
	if topic >= topicCount || h == nil {
		return 0
	}
	e.nextID++
	e.subs[topic] = append(e.subs[topic], subscription{id: e.nextID, handler: h})
	return e.nextID
}

func (e *Events) Unsubscribe(id int) bool {
	for t := range e.subs {
		for i, s := range e.subs[t] {
			if s.id == id {
				e.subs[t] = append(e.subs[t][:i], e.subs[t][i+1:]...)
				return true
			}
		}
	}
	return false
}

// Listeners counts handlers across every topic.
func (e *Events) Listeners() int {
	n := 0
	for t := range e.subs {
		n += len(e.subs[t])
	}
	return n
}

// Viewport is the size last published with Resize.
func (e *Events) Viewport() (width, height, dpr float64, ok bool) {
	return e.viewport.X, e.viewport.Y, e.viewport.DPR, e.hasSize
}

func (e *Events) Resize(width, height, dpr float64) {
	ev := Event{Topic: TopicResize, X: width, Y: height, DPR: dpr}
	e.viewport, e.hasSize = ev, true
	e.publish(ev)
}

func (e *Events) PointerMove(x, y float64) {
	e.publish(Event{Topic: TopicPointerMove, X: x, Y: y})
}

func (e *Events) PointerLeave() {
	e.publish(Event{Topic: TopicPointerLeave})
}

func (e *Events) TouchMove(x, y float64) {
	e.publish(Event{Topic: TopicTouchMove, X: x, Y: y})
}

func (e *Events) publish(ev Event) {
	// Copy so a handler may unsubscribe while we iterate.
	subs := append([]subscription(nil), e.subs[ev.Topic]...)
	for _, s := range subs {
		s.handler(ev)
	}
}
