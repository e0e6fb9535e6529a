package browse

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/podview/pkg/browse/modal"
)

// writeClipboard is replaced in tests
var writeClipboard = clipboard.WriteAll

// copiedMsg reports the result of a clipboard write
type copiedMsg struct {
	title string
	err   error
}

// copyCmd writes text to the system clipboard off the update loop
func copyCmd(text, title string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{title: title, err: writeClipboard(text)}
	}
}

// formatShowAsMarkdown formats the dialog content as markdown for the
// clipboard
func formatShowAsMarkdown(c modal.Content) string {
	var sb strings.Builder

	title := c.Title
	if title == "" {
		title = "Details"
	}
	sb.WriteString(fmt.Sprintf("# %s\n", title))

	if len(c.Genres) > 0 {
		sb.WriteString(fmt.Sprintf("\n**Genres:** %s\n", strings.Join(c.Genres, ", ")))
	}
	if c.Updated != "" {
		sb.WriteString(fmt.Sprintf("\n_%s_\n", c.Updated))
	}
	if c.Description != "" {
		sb.WriteString(fmt.Sprintf("\n%s\n", c.Description))
	}

	if len(c.Seasons) > 0 {
		sb.WriteString("\n## Seasons\n\n")
		for _, s := range c.Seasons {
			sb.WriteString(fmt.Sprintf("- %s (%s)\n", s.Label, s.Episodes))
		}
	}

	return sb.String()
}
