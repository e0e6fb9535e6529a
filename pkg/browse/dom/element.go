package dom

import "strconv"

// Kind is the element kind, the terminal counterpart of a tag name
type Kind int

const (
	KindGeneric Kind = iota
	KindButton
	KindLink
	KindInput
	KindTextarea
	KindSelect
	KindImage
	KindHeading
	KindText
	KindList
	KindListItem
)

func (k Kind) String() string {
	switch k {
	case KindButton:
		return "button"
	case KindLink:
		return "a"
	case KindInput:
		return "input"
	case KindTextarea:
		return "textarea"
	case KindSelect:
		return "select"
	case KindImage:
		return "img"
	case KindHeading:
		return "h"
	case KindText:
		return "p"
	case KindList:
		return "ul"
	case KindListItem:
		return "li"
	default:
		return "div"
	}
}

// Element is a node of the document tree
type Element struct {
	id        string
	kind      Kind
	attrs     map[string]string
	text      string
	hidden    bool
	parent    *Element
	children  []*Element
	doc       *Document
	listeners []*listener
}

// ID returns the element id
func (e *Element) ID() string { return e.id }

// Kind returns the element kind
func (e *Element) Kind() Kind { return e.kind }

// Parent returns the parent element, nil when detached or root
func (e *Element) Parent() *Element { return e.parent }

// Children returns a copy of the child list
func (e *Element) Children() []*Element {
	out := make([]*Element, len(e.children))
	copy(out, e.children)
	return out
}

// GetAttribute returns the attribute value or "" when absent
func (e *Element) GetAttribute(name string) string {
	return e.attrs[name]
}

// HasAttribute reports whether the attribute is set
func (e *Element) HasAttribute(name string) bool {
	_, ok := e.attrs[name]
	return ok
}

// SetAttribute sets an attribute
func (e *Element) SetAttribute(name, value string) {
	if e.attrs == nil {
		e.attrs = make(map[string]string)
	}
	e.attrs[name] = value
}

// RemoveAttribute deletes an attribute
func (e *Element) RemoveAttribute(name string) {
	delete(e.attrs, name)
}

// Text returns the element's own text content
func (e *Element) Text() string { return e.text }

// SetText replaces the element's own text content
func (e *Element) SetText(s string) { e.text = s }

// Hidden reports the element's own visual hidden flag
func (e *Element) Hidden() bool { return e.hidden }

// SetHidden sets the visual hidden flag
func (e *Element) SetHidden(h bool) { e.hidden = h }

// AppendChild attaches child as the last child, detaching it from any
// previous parent first.
func (e *Element) AppendChild(child *Element) {
	if child == nil || child == e || child.Contains(e) {
		return
	}
	child.Remove()
	child.parent = e
	e.children = append(e.children, child)
}

// RemoveChild detaches child if it is a direct child
func (e *Element) RemoveChild(child *Element) {
	for i, c := range e.children {
		if c == child {
			e.children = append(e.children[:i], e.children[i+1:]...)
			child.parent = nil
			return
		}
	}
}

// Remove detaches the element from its parent
func (e *Element) Remove() {
	if e.parent != nil {
		e.parent.RemoveChild(e)
	}
}

// ReplaceChildren detaches every child and appends children in order
func (e *Element) ReplaceChildren(children ...*Element) {
	for _, c := range e.children {
		c.parent = nil
	}
	e.children = nil
	for _, c := range children {
		e.AppendChild(c)
	}
}

// Contains reports whether other is e or one of its descendants
func (e *Element) Contains(other *Element) bool {
	for n := other; n != nil; n = n.parent {
		if n == e {
			return true
		}
	}
	return false
}

// TabIndex returns the explicit tabindex, if one is set and parses
func (e *Element) TabIndex() (int, bool) {
	v, ok := e.attrs["tabindex"]
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Disabled reports whether the disabled attribute is present
func (e *Element) Disabled() bool {
	return e.HasAttribute("disabled")
}

// inHiddenTree reports whether e or an ancestor is visually hidden
func (e *Element) inHiddenTree() bool {
	for n := e; n != nil; n = n.parent {
		if n.hidden {
			return true
		}
	}
	return false
}

// interactive reports whether the element kind takes focus on its own
func (e *Element) interactive() bool {
	switch e.kind {
	case KindLink:
		return e.HasAttribute("href")
	case KindButton, KindInput, KindTextarea, KindSelect:
		return !e.Disabled()
	}
	return false
}

// IsFocusable reports whether the element takes part in keyboard focus
// order: an enabled interactive element, or any element with a
// non-negative tabindex. Hidden elements never qualify.
func (e *Element) IsFocusable() bool {
	if e.inHiddenTree() {
		return false
	}
	if e.interactive() {
		return true
	}
	n, ok := e.TabIndex()
	return ok && n >= 0
}

// AddEventListener registers a bubble-phase listener on the element
func (e *Element) AddEventListener(typ EventType, fn Listener) ListenerID {
	id := e.doc.allocID()
	e.listeners = append(e.listeners, &listener{id: id, typ: typ, fn: fn})
	return id
}

// RemoveEventListener removes a listener by id. Unknown ids are ignored.
func (e *Element) RemoveEventListener(id ListenerID) bool {
	var ok bool
	e.listeners, ok = removeListener(e.listeners, id)
	return ok
}

// walk visits e and its descendants in tree order until fn returns false
func (e *Element) walk(fn func(*Element) bool) bool {
	if !fn(e) {
		return false
	}
	for _, c := range e.children {
		if !c.walk(fn) {
			return false
		}
	}
	return true
}
