package browse

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/marcus/podview/pkg/browse/card"
	"github.com/marcus/podview/pkg/browse/theme"
)

const (
	minCardWidth = 30
	chromeRows   = 3 // header, status, help
)

var headerStyle = theme.Title.Foreground(theme.Primary)

// cols returns the number of card columns for the current width
func (m Model) cols() int {
	if m.columns > 0 {
		return m.columns
	}
	return max(1, m.width/minCardWidth)
}

// visibleRows returns how many card rows fit on screen
func (m Model) visibleRows() int {
	rows := m.height - chromeRows
	if m.filtering || m.filter.Value() != "" {
		rows--
	}
	return max(1, rows/card.Height)
}

// View implements tea.Model
func (m Model) View() string {
	m.mouse.Clear()

	var sections []string
	vis := m.visibleCards()
	header := headerStyle.Render("podview") + theme.MutedText.Render(fmt.Sprintf("  %d of %d shows", len(vis), len(m.cards)))
	sections = append(sections, header)

	if m.filtering || m.filter.Value() != "" {
		sections = append(sections, m.filter.View())
	}

	gridTop := len(sections)
	sections = append(sections, m.renderGrid(vis, gridTop))

	status := m.dialog.Announcement()
	if m.notice != "" {
		status = m.notice
	}
	sections = append(sections, theme.Status.Render(ansi.Truncate(status, m.width, "…")))

	if m.dialog.IsOpen() {
		sections = append(sections, m.help.View(dialogKeys{m.keys}))
	} else {
		sections = append(sections, m.help.View(m.keys))
	}

	screen := strings.Join(sections, "\n")

	if m.dialog.IsOpen() {
		box, x, y := m.dialog.Render(m.width, m.height, m.mouse.HoverID(), m.mouse.HitMap)
		screen = overlay(screen, box, x, y, m.width, m.height)
	}
	return screen
}

// renderGrid draws the visible window of cards, registering a hit region
// per card. top is the screen row the grid starts on.
func (m Model) renderGrid(vis []*card.Card, top int) string {
	rows := m.visibleRows()
	if len(vis) == 0 {
		msg := "No shows in the catalog"
		if m.filter.Value() != "" {
			msg = "No shows match " + fmt.Sprintf("%q", m.filter.Value())
		}
		return lipgloss.PlaceVertical(rows*card.Height, lipgloss.Top, theme.MutedText.Render(msg))
	}

	cols := m.cols()
	cardW := max(minCardWidth/2, m.width/cols)
	active := m.doc.ActiveElement()
	hover := m.mouse.HoverID()

	var lines []string
	for r := 0; r < rows; r++ {
		start := (m.scrollRow + r) * cols
		if start >= len(vis) {
			break
		}
		var row []string
		for c := 0; c < cols && start+c < len(vis); c++ {
			cd := vis[start+c]
			el := cd.Element()
			row = append(row, cd.View(cardW, el == active, el.ID() == hover))
			m.mouse.HitMap.AddRect(el.ID(), c*cardW, top+r*card.Height, cardW, card.Height, nil)
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.PlaceVertical(rows*card.Height, lipgloss.Top, strings.Join(lines, "\n"))
}

// overlay draws fg over bg with its top-left corner at (x, y)
func overlay(bg, fg string, x, y, w, h int) string {
	bgLines := strings.Split(bg, "\n")
	for len(bgLines) < h {
		bgLines = append(bgLines, "")
	}
	fgLines := strings.Split(fg, "\n")
	fgW := lipgloss.Width(fg)

	for i, fgLine := range fgLines {
		row := y + i
		if row < 0 || row >= len(bgLines) {
			continue
		}
		bgLine := bgLines[row]
		if n := ansi.StringWidth(bgLine); n < w {
			bgLine += strings.Repeat(" ", w-n)
		}
		if n := ansi.StringWidth(fgLine); n < fgW {
			fgLine += strings.Repeat(" ", fgW-n)
		}
		bgLines[row] = ansi.Cut(bgLine, 0, x) + fgLine + ansi.Cut(bgLine, x+fgW, w)
	}
	return strings.Join(bgLines, "\n")
}
