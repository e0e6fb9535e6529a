// Package mouse maps terminal mouse events onto named screen regions.
//
// Regions are registered while a frame renders and tested when the next
// mouse event arrives, so the hit map always matches what is on screen.
package mouse

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Rect is a screen rectangle with exclusive width and height
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether (x, y) falls inside the rectangle
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Region is a named, hit-testable area
type Region struct {
	ID   string
	Rect Rect
	Data any
}

// HitMap holds regions in registration order. Later regions sit on top.
type HitMap struct {
	regions []Region
}

// NewHitMap returns an empty hit map
func NewHitMap() *HitMap {
	return &HitMap{}
}

// AddRect registers a region
func (h *HitMap) AddRect(id string, x, y, w, h2 int, data any) {
	h.regions = append(h.regions, Region{ID: id, Rect: Rect{X: x, Y: y, W: w, H: h2}, Data: data})
}

// Test returns the topmost region containing (x, y), or nil
func (h *HitMap) Test(x, y int) *Region {
	for i := len(h.regions) - 1; i >= 0; i-- {
		if h.regions[i].Rect.Contains(x, y) {
			r := h.regions[i]
			return &r
		}
	}
	return nil
}

// Regions returns the registered regions
func (h *HitMap) Regions() []Region {
	return h.regions
}

// Clear removes every region
func (h *HitMap) Clear() {
	h.regions = h.regions[:0]
}

// ActionType classifies a mouse event
type ActionType int

const (
	ActionNone ActionType = iota
	ActionClick
	ActionHover
	ActionScrollUp
	ActionScrollDown
	ActionScrollLeft
	ActionScrollRight
)

func (a ActionType) String() string {
	switch a {
	case ActionClick:
		return "click"
	case ActionHover:
		return "hover"
	case ActionScrollUp:
		return "scroll-up"
	case ActionScrollDown:
		return "scroll-down"
	case ActionScrollLeft:
		return "scroll-left"
	case ActionScrollRight:
		return "scroll-right"
	default:
		return "none"
	}
}

// Action is the result of handling one mouse event
type Action struct {
	Type   ActionType
	Region *Region
	X, Y   int
}

// Handler owns the hit map for the current frame and tracks hover
type Handler struct {
	HitMap  *HitMap
	hoverID string
}

// NewHandler returns a handler with an empty hit map
func NewHandler() *Handler {
	return &Handler{HitMap: NewHitMap()}
}

// HoverID returns the id of the region under the pointer after the last
// motion event
func (h *Handler) HoverID() string {
	return h.hoverID
}

// HandleMouse classifies msg against the hit map
func (h *Handler) HandleMouse(msg tea.MouseMsg) Action {
	action := Action{X: msg.X, Y: msg.Y, Region: h.HitMap.Test(msg.X, msg.Y)}

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			action.Type = ActionClick
		case tea.MouseButtonWheelUp:
			action.Type = ActionScrollUp
			if msg.Shift {
				action.Type = ActionScrollLeft
			}
		case tea.MouseButtonWheelDown:
			action.Type = ActionScrollDown
			if msg.Shift {
				action.Type = ActionScrollRight
			}
		}
	case tea.MouseActionMotion:
		action.Type = ActionHover
		h.hoverID = ""
		if action.Region != nil {
			h.hoverID = action.Region.ID
		}
	}

	return action
}

// Clear drops every region, ready for the next frame
func (h *Handler) Clear() {
	h.HitMap.Clear()
}
