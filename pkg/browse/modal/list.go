package modal

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// SeasonLine is one rendered row of the season list
type SeasonLine struct {
	Label    string `json:"label"`    // "Season 1: Title"
	Episodes string `json:"episodes"` // "8 episodes"
}

// seasonList renders a scrollable window over the season rows.
type seasonList struct {
	items        []SeasonLine
	selected     int
	maxVisible   int
	scrollOffset int
}

func newSeasonList() *seasonList {
	return &seasonList{maxVisible: 5}
}

// reset replaces the rows and returns the cursor to the top
func (s *seasonList) reset(items []SeasonLine) {
	s.items = items
	s.selected = 0
	s.scrollOffset = 0
}

func (s *seasonList) setMaxVisible(n int) {
	if n > 0 {
		s.maxVisible = n
	}
}

// move shifts the cursor by delta, clamped to the list
func (s *seasonList) move(delta int) {
	if len(s.items) == 0 {
		return
	}
	s.selected = clamp(s.selected+delta, 0, len(s.items)-1)
}

// handleKey applies list navigation keys. It reports whether key was used.
func (s *seasonList) handleKey(key string) bool {
	switch key {
	case "up", "k":
		s.move(-1)
	case "down", "j":
		s.move(1)
	case "pgup":
		s.move(-s.maxVisible)
	case "pgdown":
		s.move(s.maxVisible)
	case "home":
		s.move(-len(s.items))
	case "end":
		s.move(len(s.items))
	default:
		return false
	}
	return true
}

// render returns the visible rows and how many lines they take
func (s *seasonList) render(width int, focused bool) (string, int) {
	if len(s.items) == 0 {
		return MutedText.Render("(no seasons)"), 1
	}

	visibleCount := min(s.maxVisible, len(s.items))

	// Keep the cursor visible
	if s.selected < s.scrollOffset {
		s.scrollOffset = s.selected
	} else if s.selected >= s.scrollOffset+visibleCount {
		s.scrollOffset = s.selected - visibleCount + 1
	}
	s.scrollOffset = clamp(s.scrollOffset, 0, max(0, len(s.items)-visibleCount))

	var lines []string
	if s.scrollOffset > 0 {
		lines = append(lines, MutedText.Render("↑ more above"))
	}

	for i := 0; i < visibleCount; i++ {
		idx := s.scrollOffset + i
		if idx >= len(s.items) {
			break
		}
		item := s.items[idx]

		style := ListItemNormal
		cursor := "  "
		if idx == s.selected && focused {
			style = ListItemFocused
			cursor = ListCursor.Render("> ")
		}

		episodes := MutedText.Render(item.Episodes)
		labelWidth := width - 2 - ansi.StringWidth(item.Episodes) - 1
		label := item.Label
		if labelWidth > 0 {
			label = ansi.Truncate(label, labelWidth, "…")
		}
		gap := width - 2 - ansi.StringWidth(label) - ansi.StringWidth(item.Episodes)
		if gap < 1 {
			gap = 1
		}
		lines = append(lines, cursor+style.Render(label)+strings.Repeat(" ", gap)+episodes)
	}

	if s.scrollOffset+visibleCount < len(s.items) {
		lines = append(lines, MutedText.Render("↓ more below"))
	}

	return strings.Join(lines, "\n"), len(lines)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
