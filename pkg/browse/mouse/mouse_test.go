package mouse

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestRectContains(t *testing.T) {
	r := Rect{X: 4, Y: 2, W: 28, H: 8}

	cases := []struct {
		x, y     int
		expected bool
	}{
		{4, 2, true},   // Top-left corner
		{31, 2, true},  // Last column (exclusive width)
		{4, 9, true},   // Last row (exclusive height)
		{18, 5, true},  // Center
		{3, 2, false},  // Just left
		{32, 2, false}, // Just right
		{4, 1, false},  // Just above
		{4, 10, false}, // Just below
	}

	for _, tc := range cases {
		got := r.Contains(tc.x, tc.y)
		if got != tc.expected {
			t.Errorf("Rect(%+v).Contains(%d, %d) = %v, want %v", r, tc.x, tc.y, got, tc.expected)
		}
	}
}

func TestHitMapLayering(t *testing.T) {
	hm := NewHitMap()

	// Backdrop covers the screen, the dialog sits on top, the close button on top of that
	hm.AddRect("backdrop", 0, 0, 100, 40, nil)
	hm.AddRect("dialog", 20, 5, 60, 30, nil)
	hm.AddRect("close", 70, 6, 8, 1, "closeModal")

	r := hm.Test(72, 6)
	if r == nil || r.ID != "close" || r.Data != "closeModal" {
		t.Errorf("expected hit on close, got %v", r)
	}

	r = hm.Test(30, 20)
	if r == nil || r.ID != "dialog" {
		t.Errorf("expected hit on dialog, got %v", r)
	}

	r = hm.Test(2, 2)
	if r == nil || r.ID != "backdrop" {
		t.Errorf("expected hit on backdrop, got %v", r)
	}

	if r := hm.Test(120, 2); r != nil {
		t.Errorf("expected no hit off screen, got %v", r)
	}
}

func TestHitMapClear(t *testing.T) {
	hm := NewHitMap()
	hm.AddRect("card-1", 0, 0, 28, 8, nil)
	hm.AddRect("card-2", 30, 0, 28, 8, nil)

	if len(hm.Regions()) != 2 {
		t.Errorf("expected 2 regions, got %d", len(hm.Regions()))
	}

	hm.Clear()
	if len(hm.Regions()) != 0 {
		t.Errorf("expected 0 regions after clear, got %d", len(hm.Regions()))
	}
}

func TestHandleMouseActions(t *testing.T) {
	h := NewHandler()
	h.HitMap.AddRect("card-1", 0, 0, 28, 8, nil)

	cases := []struct {
		name   string
		msg    tea.MouseMsg
		want   ActionType
		region string
	}{
		{"left click", tea.MouseMsg{X: 5, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, ActionClick, "card-1"},
		{"click miss", tea.MouseMsg{X: 50, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, ActionClick, ""},
		{"wheel up", tea.MouseMsg{X: 5, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp}, ActionScrollUp, "card-1"},
		{"wheel down", tea.MouseMsg{X: 5, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown}, ActionScrollDown, "card-1"},
		{"shift wheel up", tea.MouseMsg{X: 5, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp, Shift: true}, ActionScrollLeft, "card-1"},
		{"shift wheel down", tea.MouseMsg{X: 5, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown, Shift: true}, ActionScrollRight, "card-1"},
		{"release", tea.MouseMsg{X: 5, Y: 3, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}, ActionNone, "card-1"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			action := h.HandleMouse(tc.msg)
			if action.Type != tc.want {
				t.Errorf("Type = %v, want %v", action.Type, tc.want)
			}
			gotRegion := ""
			if action.Region != nil {
				gotRegion = action.Region.ID
			}
			if gotRegion != tc.region {
				t.Errorf("Region = %q, want %q", gotRegion, tc.region)
			}
		})
	}
}

func TestHoverTracking(t *testing.T) {
	h := NewHandler()
	h.HitMap.AddRect("card-1", 0, 0, 28, 8, nil)

	action := h.HandleMouse(tea.MouseMsg{X: 3, Y: 3, Action: tea.MouseActionMotion})
	if action.Type != ActionHover {
		t.Errorf("expected ActionHover, got %v", action.Type)
	}
	if h.HoverID() != "card-1" {
		t.Errorf("HoverID = %q, want card-1", h.HoverID())
	}

	h.HandleMouse(tea.MouseMsg{X: 60, Y: 3, Action: tea.MouseActionMotion})
	if h.HoverID() != "" {
		t.Errorf("HoverID = %q after leaving, want empty", h.HoverID())
	}
}

func TestHandlerClear(t *testing.T) {
	h := NewHandler()
	h.HitMap.AddRect("close", 10, 10, 8, 1, nil)

	h.Clear()

	if len(h.HitMap.Regions()) != 0 {
		t.Errorf("expected 0 regions after Clear, got %d", len(h.HitMap.Regions()))
	}
}
