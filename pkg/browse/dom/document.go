// Package dom is a small element tree with keyboard focus and event
// dispatch. It gives terminal components the document semantics a modal
// dialog depends on: an active element, attached/detached checks, focusable
// order, and capture/bubble listeners with default actions.
package dom

// BodyID is the id of the document root
const BodyID = "body"

// Document owns an element tree, the focused element and document-level
// listeners. It is not safe for concurrent use; every call is expected on
// the UI goroutine.
type Document struct {
	body      *Element
	active    *Element
	listeners []*listener
	lastID    ListenerID
}

// New returns an empty document
func New() *Document {
	d := &Document{}
	d.body = d.CreateElement(KindGeneric, BodyID)
	return d
}

func (d *Document) allocID() ListenerID {
	d.lastID++
	return d.lastID
}

// Body returns the root element
func (d *Document) Body() *Element { return d.body }

// CreateElement creates a detached element owned by the document
func (d *Document) CreateElement(kind Kind, id string) *Element {
	return &Element{id: id, kind: kind, doc: d}
}

// GetElementByID finds the first attached element with id
func (d *Document) GetElementByID(id string) *Element {
	var found *Element
	d.body.walk(func(e *Element) bool {
		if e.id == id {
			found = e
			return false
		}
		return true
	})
	return found
}

// Contains reports whether el is attached to the document
func (d *Document) Contains(el *Element) bool {
	return el != nil && d.body.Contains(el)
}

// ActiveElement returns the focused element. When nothing is focused, or
// the focused element was detached or hidden, the body is returned.
func (d *Document) ActiveElement() *Element {
	if d.active == nil || !d.Contains(d.active) || d.active.inHiddenTree() {
		return d.body
	}
	return d.active
}

// Focus moves focus to el. It reports false, leaving focus unchanged, when
// el is detached, hidden, or cannot take focus.
func (d *Document) Focus(el *Element) bool {
	if !d.Contains(el) || el.inHiddenTree() {
		return false
	}
	_, hasTabIndex := el.TabIndex()
	if !el.IsFocusable() && !hasTabIndex && el != d.body {
		return false
	}
	d.active = el
	return true
}

// Blur clears focus back to the body
func (d *Document) Blur() {
	d.active = nil
}

// Focusables returns the focusable descendants of within (inclusive) in
// tree order. Nothing is cached; each call walks the current tree.
func (d *Document) Focusables(within *Element) []*Element {
	if within == nil {
		within = d.body
	}
	var out []*Element
	within.walk(func(e *Element) bool {
		if e.IsFocusable() {
			out = append(out, e)
		}
		return true
	})
	return out
}

// AddEventListener registers a document-level listener for phase
func (d *Document) AddEventListener(typ EventType, phase Phase, fn Listener) ListenerID {
	id := d.allocID()
	d.listeners = append(d.listeners, &listener{id: id, typ: typ, phase: phase, fn: fn})
	return id
}

// RemoveEventListener removes a document-level listener. Removing an
// unknown or already removed id is a no-op and reports false.
func (d *Document) RemoveEventListener(id ListenerID) bool {
	var ok bool
	d.listeners, ok = removeListener(d.listeners, id)
	return ok
}

// ListenerCount returns the number of document-level listeners for typ
// registered in phase
func (d *Document) ListenerCount(typ EventType, phase Phase) int {
	n := 0
	for _, l := range d.listeners {
		if l.typ == typ && l.phase == phase {
			n++
		}
	}
	return n
}

// Dispatch delivers ev: document capture listeners, then the target and
// each ancestor up to the body, then document bubble listeners. It reports
// whether the default action is still allowed.
func (d *Document) Dispatch(ev *Event) bool {
	if ev.Target == nil {
		ev.Target = d.body
	}

	fire(d.listeners, ev, Capture, true)
	if ev.stopped {
		return !ev.prevented
	}

	for n := ev.Target; n != nil; n = n.parent {
		fire(n.listeners, ev, Bubble, false)
		if ev.stopped {
			return !ev.prevented
		}
	}

	fire(d.listeners, ev, Bubble, true)
	return !ev.prevented
}

// DispatchKey sends a key press to the focused element and runs the default
// action unless a listener prevented it: Tab moves focus through the
// document order, Enter and Space activate buttons and links.
func (d *Document) DispatchKey(key string, shift bool) *Event {
	ev := &Event{Type: EventKeyDown, Key: key, Shift: shift, Target: d.ActiveElement()}
	if !d.Dispatch(ev) {
		return ev
	}

	switch key {
	case KeyTab:
		d.moveFocus(shift)
	case KeyEnter, KeySpace:
		if ev.Target.kind == KindButton || ev.Target.kind == KindLink {
			if ev.Target.interactive() {
				d.Click(ev.Target)
			}
		}
	}
	return ev
}

// Click dispatches a click event targeted at el
func (d *Document) Click(el *Element) *Event {
	ev := &Event{Type: EventClick, Target: el}
	d.Dispatch(ev)
	return ev
}

// moveFocus performs sequential focus navigation, wrapping at both ends
func (d *Document) moveFocus(backward bool) {
	order := d.Focusables(d.body)
	if len(order) == 0 {
		return
	}

	cur := -1
	active := d.ActiveElement()
	for i, el := range order {
		if el == active {
			cur = i
			break
		}
	}

	var next int
	switch {
	case backward && cur <= 0:
		next = len(order) - 1
	case backward:
		next = cur - 1
	default:
		next = (cur + 1) % len(order)
	}
	d.Focus(order[next])
}
