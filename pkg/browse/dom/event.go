package dom

// EventType names an event
type EventType string

const (
	EventKeyDown EventType = "keydown"
	EventClick   EventType = "click"
)

// Key names carried by key events
const (
	KeyTab        = "Tab"
	KeyEscape     = "Escape"
	KeyEnter      = "Enter"
	KeySpace      = " "
	KeyArrowUp    = "ArrowUp"
	KeyArrowDown  = "ArrowDown"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
	KeyHome       = "Home"
	KeyEnd        = "End"
)

// Phase selects when a document listener runs relative to the target
type Phase int

const (
	// Capture listeners run before any element listener
	Capture Phase = iota
	// Bubble listeners run after the target and all its ancestors
	Bubble
)

// Event is dispatched through the document
type Event struct {
	Type   EventType
	Key    string
	Shift  bool
	Target *Element
	Detail any

	stopped   bool
	prevented bool
}

// StopPropagation stops the event from reaching further listeners. The
// listeners of the element currently handling it still run.
func (ev *Event) StopPropagation() { ev.stopped = true }

// PreventDefault suppresses the default action
func (ev *Event) PreventDefault() { ev.prevented = true }

// DefaultPrevented reports whether PreventDefault was called
func (ev *Event) DefaultPrevented() bool { return ev.prevented }

// PropagationStopped reports whether StopPropagation was called
func (ev *Event) PropagationStopped() bool { return ev.stopped }

// Listener handles an event
type Listener func(ev *Event)

// ListenerID identifies a registered listener for removal
type ListenerID uint64

type listener struct {
	id      ListenerID
	typ     EventType
	phase   Phase
	fn      Listener
	removed bool
}

func removeListener(ls []*listener, id ListenerID) ([]*listener, bool) {
	for i, l := range ls {
		if l.id == id {
			l.removed = true
			return append(ls[:i:i], ls[i+1:]...), true
		}
	}
	return ls, false
}

// fire runs the matching listeners of a snapshot. Listeners removed while
// the event is in flight are skipped.
func fire(ls []*listener, ev *Event, phase Phase, phased bool) {
	snapshot := make([]*listener, len(ls))
	copy(snapshot, ls)
	for _, l := range snapshot {
		if l.removed || l.typ != ev.Type || (phased && l.phase != phase) {
			continue
		}
		l.fn(ev)
	}
}
