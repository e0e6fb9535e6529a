package modal

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/podview/pkg/browse/theme"
)

// Dialog styles, built on the shared theme
var (
	Box = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Padding(1, 2)

	ModalTitle = theme.Title.Foreground(theme.Primary)
	MutedText  = theme.MutedText
	Section    = lipgloss.NewStyle().Bold(true).Foreground(theme.Text)
)

// List styles for the season list
var (
	ListItemNormal = lipgloss.NewStyle().
			Foreground(theme.Text)

	ListItemFocused = lipgloss.NewStyle().
			Background(theme.BgTag).
			Foreground(theme.TextBright).
			Bold(true)

	ListCursor = lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true)
)
