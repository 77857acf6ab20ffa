// Package telemetry records frame timings and storefront session events and
// writes them out as CSV.
package telemetry

// EventType identifies a session event.
type EventType string

const (
	EventNavigate  EventType = "navigate"
	EventSelect    EventType = "select"
	EventAddToCart EventType = "add_to_cart"
	EventIncrement EventType = "increment"
	EventDecrement EventType = "decrement"
	EventRemove    EventType = "remove"
	EventCheckout  EventType = "checkout"
	EventGallery   EventType = "gallery"
)

// Event is one user interaction. Cart fields describe the cart after the event.
type Event struct {
	Frame     int64     `csv:"frame"`
	TimeSec   float64   `csv:"time_sec"`
	Type      EventType `csv:"type"`
	ProductID int       `csv:"product_id"`
	Index     int       `csv:"index"` // centred carousel index after the event
	CartItems int       `csv:"cart_items"`
	CartTotal float64   `csv:"cart_total"`
}

// EventLog keeps the most recent events in memory and counts every event
// recorded since the last window flush.
type EventLog struct {
	max    int
	events []Event
	window map[EventType]int
	total  int
}

// NewEventLog creates a log holding at most limit events (0 means unbounded).
func NewEventLog(limit int) *EventLog {
	return &EventLog{
		max:    limit,
		window: make(map[EventType]int),
	}
}

// Record appends an event, dropping the oldest when full.
func (l *EventLog) Record(e Event) {
	l.window[e.Type]++
	l.total++
	if l.max > 0 && len(l.events) == l.max {
		copy(l.events, l.events[1:])
		l.events = l.events[:len(l.events)-1]
	}
	l.events = append(l.events, e)
}

// Events returns a copy of the retained events, oldest first.
func (l *EventLog) Events() []Event {
	out := make([]Event, len(l.events))
	copy(out, l.events)
	return out
}

// Last returns the most recent event.
func (l *EventLog) Last() (Event, bool) {
	if len(l.events) == 0 {
		return Event{}, false
	}
	return l.events[len(l.events)-1], true
}

// Len returns the number of retained events.
func (l *EventLog) Len() int {
	return len(l.events)
}

// Total returns the number of events ever recorded.
func (l *EventLog) Total() int {
	return l.total
}

// WindowCount returns how many events of type t were recorded since the last flush.
func (l *EventLog) WindowCount(t EventType) int {
	return l.window[t]
}

// Flush summarises the current window and starts a new one.
func (l *EventLog) Flush(frame int64, timeSec float64, cartItems int, cartTotal float64, perf PerfStats) WindowStats {
	s := WindowStats{
		Frame:      frame,
		TimeSec:    timeSec,
		Navigate:   l.window[EventNavigate],
		Select:     l.window[EventSelect],
		AddToCart:  l.window[EventAddToCart],
		Increment:  l.window[EventIncrement],
		Decrement:  l.window[EventDecrement],
		Remove:     l.window[EventRemove],
		Checkout:   l.window[EventCheckout],
		Gallery:    l.window[EventGallery],
		CartItems:  cartItems,
		CartTotal:  cartTotal,
		FPS:        perf.FPS,
		P95FrameUS: perf.P95Frame.Microseconds(),
	}
	clear(l.window)
	return s
}
