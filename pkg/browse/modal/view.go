package modal

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/marcus/podview/internal/models"
	"github.com/marcus/podview/pkg/browse/mouse"
	"github.com/marcus/podview/pkg/browse/theme"
)

// Hit region ids registered by Render, besides IDClose and IDSeasons
const (
	RegionBackdrop = "modal-backdrop"
	RegionBody     = "modal-body"
)

const (
	maxWidth        = 72
	minWidth        = 30
	maxDescLines    = 8
	maxSeasonRows   = 8
	closeLabel      = "Close"
	boxFrameRows    = 2 + 2 // border + vertical padding
	boxFrameColumns = 2 + 4 // border + horizontal padding
)

// markdownCache keeps the last rendered description
type markdownCache struct {
	src   string
	width int
	out   string
}

func (c *markdownCache) render(src string, width int) string {
	if src == "" {
		return ""
	}
	if c.src == src && c.width == width && c.out != "" {
		return c.out
	}
	c.src, c.width = src, width
	c.out = renderMarkdown(src, width)
	return c.out
}

func renderMarkdown(text string, width int) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return lipgloss.NewStyle().Width(width).Render(text)
	}
	rendered, err := renderer.Render(text)
	if err != nil {
		return lipgloss.NewStyle().Width(width).Render(text)
	}
	return strings.Trim(rendered, "\n\r")
}

// renderDescription lays the description out at width. Only markdown goes
// through glamour; other text is wrapped as is.
func (d *Dialog) renderDescription(width int) string {
	text := d.content.Description
	if strings.TrimSpace(text) == "" {
		return ""
	}
	if d.content.Format == string(models.FormatMarkdown) {
		return d.md.render(text, width)
	}
	return strings.TrimRight(lipgloss.NewStyle().Width(width).Render(text), " \n")
}

// Render draws the open dialog centered on a screenW x screenH screen and
// registers its hit regions, backdrop first. It returns the box and its
// top-left corner. A closed dialog renders nothing.
func (d *Dialog) Render(screenW, screenH int, hoverID string, hits *mouse.HitMap) (string, int, int) {
	if !d.IsOpen() {
		return "", 0, 0
	}

	boxW := min(maxWidth, screenW-4)
	if boxW < minWidth {
		boxW = min(minWidth, screenW)
	}
	innerW := max(10, boxW-boxFrameColumns)
	active := d.doc.ActiveElement()

	// Header: title on the left, close button on the right
	btnStyle := theme.Button
	switch {
	case active == d.closeBtn:
		btnStyle = theme.ButtonFocused
	case hoverID == IDClose:
		btnStyle = theme.ButtonHover
	}
	btn := btnStyle.Render(closeLabel)
	btnW := lipgloss.Width(btn)

	title := d.content.Title
	titleStyle := ModalTitle
	if title == "" {
		title = "Details"
		titleStyle = MutedText
	}
	title = titleStyle.Render(ansi.Truncate(title, max(1, innerW-btnW-1), "…"))
	gap := max(1, innerW-lipgloss.Width(title)-btnW)
	header := title + strings.Repeat(" ", gap) + btn

	var tags []string
	used := 0
	for _, name := range d.content.Genres {
		tag := theme.Tag.Render(name)
		w := lipgloss.Width(tag)
		if used+w > innerW {
			break
		}
		tags = append(tags, tag)
		used += w + 1
	}

	lines := []string{
		header,
		strings.Join(tags, " "),
		MutedText.Render(d.content.Updated),
		"",
	}

	if desc := d.renderDescription(innerW); desc != "" {
		descLines := strings.Split(desc, "\n")
		if len(descLines) > maxDescLines {
			descLines = append(descLines[:maxDescLines], MutedText.Render("…"))
		}
		for _, l := range descLines {
			lines = append(lines, ansi.Truncate(l, innerW, ""))
		}
		lines = append(lines, "")
	}

	lines = append(lines, Section.Render("Seasons"))

	// Fit the season window into what is left of the screen
	fixed := boxFrameRows + len(lines) + 2 + 2 // hint rows + scroll indicators
	d.list.setMaxVisible(clamp(screenH-fixed-2, 1, maxSeasonRows))
	seasonRow := len(lines)
	list, listH := d.list.render(innerW, active == d.seasons)
	lines = append(lines, list, "", MutedText.Render("esc close · tab next · ↑/↓ seasons"))

	box := Box.Width(innerW + 4).Render(strings.Join(lines, "\n"))
	boxW = lipgloss.Width(box)
	boxH := lipgloss.Height(box)

	x := max(0, (screenW-boxW)/2)
	y := max(0, (screenH-boxH)/2)

	if hits != nil {
		contentX, contentY := x+3, y+2
		hits.AddRect(RegionBackdrop, 0, 0, screenW, screenH, nil)
		hits.AddRect(RegionBody, x, y, boxW, boxH, nil)
		hits.AddRect(IDSeasons, contentX, contentY+seasonRow, innerW, listH, nil)
		hits.AddRect(IDClose, contentX+innerW-btnW, contentY, btnW, 1, nil)
	}

	return box, x, y
}
