package browse

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/podview/pkg/browse/dom"
)

// KeyMap holds the browser's key bindings
type KeyMap struct {
	Left   key.Binding
	Right  key.Binding
	Up     key.Binding
	Down   key.Binding
	Open   key.Binding
	Close  key.Binding
	Next   key.Binding
	Copy   key.Binding
	Filter key.Binding
	Help   key.Binding
	Quit   key.Binding
	Force  key.Binding
}

// DefaultKeyMap is the standard set of bindings
var DefaultKeyMap = KeyMap{
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "prev"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "next"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "details"),
	),
	Close: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close"),
	),
	Next: key.NewBinding(
		key.WithKeys("tab", "shift+tab"),
		key.WithHelp("tab", "next control"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy details"),
	),
	Filter: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "filter"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "more keys"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
	Force: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Filter, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Open, k.Close, k.Next},
		{k.Filter, k.Help, k.Quit, k.Force},
	}
}

// dialogKeys is the help shown while the dialog is open
type dialogKeys struct {
	KeyMap
}

func (k dialogKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Close, k.Next, k.Copy, k.Force}
}

func (k dialogKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Close, k.Next, k.Up, k.Down, k.Copy, k.Force}}
}

// domKey translates a terminal key press into a document key name
func domKey(msg tea.KeyMsg) (name string, shift bool, ok bool) {
	switch msg.Type {
	case tea.KeyTab:
		return dom.KeyTab, false, true
	case tea.KeyShiftTab:
		return dom.KeyTab, true, true
	case tea.KeyEsc:
		return dom.KeyEscape, false, true
	case tea.KeyEnter:
		return dom.KeyEnter, false, true
	case tea.KeySpace:
		return dom.KeySpace, false, true
	case tea.KeyUp:
		return dom.KeyArrowUp, false, true
	case tea.KeyDown:
		return dom.KeyArrowDown, false, true
	case tea.KeyLeft:
		return dom.KeyArrowLeft, false, true
	case tea.KeyRight:
		return dom.KeyArrowRight, false, true
	case tea.KeyHome:
		return dom.KeyHome, false, true
	case tea.KeyEnd:
		return dom.KeyEnd, false, true
	case tea.KeyRunes:
		if len(msg.Runes) == 1 {
			if msg.Runes[0] == ' ' {
				return dom.KeySpace, false, true
			}
			return string(msg.Runes), false, true
		}
	}
	return "", false, false
}
