package wheel

import "sync"

// Event is a notification published by the wheel.
type Event interface {
	wheelEvent()
}

// DirectionChangedEvent carries the payload after the selector moved, the ring
// finished a spin, or the puzzle was reset.
type DirectionChangedEvent struct {
	Selector Direction
	Payload  Payload
}

func (DirectionChangedEvent) wheelEvent() {}

// RotationStartedEvent carries the payload that was under the selector when the spin began.
type RotationStartedEvent struct {
	Selector Direction
	Payload  Payload
	Manual   bool // Spin came from SubmitManualRotate rather than a confirm
}

func (RotationStartedEvent) wheelEvent() {}

// RotationFinishedEvent is published when the ring settles.
type RotationFinishedEvent struct{}

func (RotationFinishedEvent) wheelEvent() {}

// PuzzleFinishedEvent is published once when the last selection's spin settles.
type PuzzleFinishedEvent struct {
	Selections int
}

func (PuzzleFinishedEvent) wheelEvent() {}

// Listener receives events. Listeners must not call back into the Machine that
// published the event.
type Listener func(Event)

// Hub fans events out to subscribers in subscription order.
type Hub struct {
	mu        sync.Mutex
	nextID    int
	listeners map[int]Listener
	order     []int
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{listeners: make(map[int]Listener)}
}

// Subscribe registers l and returns a function that removes it.
func (h *Hub) Subscribe(l Listener) (unsubscribe func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++
	h.listeners[id] = l
	h.order = append(h.order, id)

	var once sync.Once
	return func() {
		once.Do(func() { h.remove(id) })
	}
}

func (h *Hub) remove(id int) {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.listeners, id)
	for i, v := range h.order {
		if v == id {
			h.order = append(h.order[:i], h.order[i+1:]...)
			break
		}
	}
}

// Publish delivers evt to every subscriber. Delivery is synchronous; the listener set
// is captured before the first call so listeners may unsubscribe themselves.
func (h *Hub) Publish(evt Event) {
	h.mu.Lock()
	ls := make([]Listener, 0, len(h.order))
	for _, id := range h.order {
		ls = append(ls, h.listeners[id])
	}
	h.mu.Unlock()

	for _, l := range ls {
		l(evt)
	}
}

// ChannelListener buffers events for a consumer that drains them on its own schedule,
// such as a render loop. When the buffer is full the oldest event is dropped.
type ChannelListener struct {
	events    chan Event
	done      chan struct{}
	closeOnce sync.Once
}

// NewChannelListener creates a listener holding up to size events.
func NewChannelListener(size int) *ChannelListener {
	if size < 1 {
		size = 64
	}
	return &ChannelListener{
		events: make(chan Event, size),
		done:   make(chan struct{}),
	}
}

// Listen is the Listener to pass to Hub.Subscribe.
func (c *ChannelListener) Listen(evt Event) {
	select {
	case <-c.done:
		return
	default:
	}

	select {
	case c.events <- evt:
	default:
		select {
		case <-c.events:
		default:
		}
		select {
		case c.events <- evt:
		default:
		}
	}
}

// Events returns the receive side of the buffer.
func (c *ChannelListener) Events() <-chan Event {
	return c.events
}

// Drain returns every buffered event without blocking.
func (c *ChannelListener) Drain() []Event {
	var out []Event
	for {
		select {
		case evt := <-c.events:
			out = append(out, evt)
		default:
			return out
		}
	}
}

// Close stops accepting events. Buffered events remain readable.
func (c *ChannelListener) Close() {
	c.closeOnce.Do(func() { close(c.done) })
}
