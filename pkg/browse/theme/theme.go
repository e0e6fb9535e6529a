// Package theme holds the colors and base styles shared by the browser's
// cards, dialog and chrome.
package theme

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	Primary      = lipgloss.Color("212")
	Error        = lipgloss.Color("196")
	Info         = lipgloss.Color("45")
	Muted        = lipgloss.Color("241")
	Text         = lipgloss.Color("252")
	TextBright   = lipgloss.Color("255")
	BgSecondary  = lipgloss.Color("235")
	BgTag        = lipgloss.Color("237")
	BorderNormal = lipgloss.Color("240")
	BorderHover  = lipgloss.Color("245")
)

// Text styles
var (
	Title     = lipgloss.NewStyle().Bold(true).Foreground(TextBright)
	MutedText = lipgloss.NewStyle().Foreground(Muted)
	Body      = lipgloss.NewStyle().Foreground(Text)
	Tag       = lipgloss.NewStyle().
			Foreground(TextBright).
			Background(BgTag).
			Padding(0, 1)
	Status = lipgloss.NewStyle().Foreground(Info)
)

// Button styles
var (
	Button = lipgloss.NewStyle().
		Foreground(Text).
		Background(lipgloss.Color("238")).
		Padding(0, 1)

	ButtonFocused = lipgloss.NewStyle().
			Foreground(TextBright).
			Background(Primary).
			Bold(true).
			Padding(0, 1)

	ButtonHover = lipgloss.NewStyle().
			Foreground(TextBright).
			Background(BorderHover).
			Padding(0, 1)
)

// Frame returns a rounded border styled for the interaction state
func Frame(focused, hovered bool) lipgloss.Style {
	color := BorderNormal
	switch {
	case focused:
		color = Primary
	case hovered:
		color = BorderHover
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Padding(0, 1)
}
