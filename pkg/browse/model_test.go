package browse

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/marcus/podview/internal/catalog"
	"github.com/marcus/podview/pkg/browse/modal"
)

func newModel(t *testing.T) Model {
	t.Helper()
	m, err := New(catalog.Sample(), Options{Columns: 2})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestNewBuildsCards(t *testing.T) {
	m := newModel(t)
	if got, want := len(m.Cards()), catalog.Sample().Len(); got != want {
		t.Fatalf("cards = %d, want %d", got, want)
	}
	if m.Document().ActiveElement() != m.Cards()[0].Element() {
		t.Error("first card should start focused")
	}
	if m.Dialog().IsOpen() {
		t.Error("dialog should start closed")
	}
}

func TestEnterOpensAndEscapeRestores(t *testing.T) {
	m := newModel(t)
	m = send(t, m, keyMsg("right"))
	second := m.Cards()[1].Element()
	if m.Document().ActiveElement() != second {
		t.Fatalf("focus = %q, want the second card", m.Document().ActiveElement().ID())
	}

	m = send(t, m, keyMsg("enter"))
	d := m.Dialog()
	if !d.IsOpen() {
		t.Fatal("enter should open the dialog")
	}
	if got, want := d.Content().Title, catalog.Sample().Items[1].Title; got != want {
		t.Errorf("Title = %q, want %q", got, want)
	}
	if got := m.Document().ActiveElement().ID(); got != modal.IDClose {
		t.Errorf("focus = %q, want %q", got, modal.IDClose)
	}

	m = send(t, m, keyMsg("esc"))
	if d.IsOpen() {
		t.Fatal("esc should close the dialog")
	}
	if m.Document().ActiveElement() != second {
		t.Errorf("focus = %q, want the second card back", m.Document().ActiveElement().ID())
	}
}

func TestSpaceOpens(t *testing.T) {
	m := newModel(t)
	m = send(t, m, keyMsg("space"))
	if !m.Dialog().IsOpen() {
		t.Error("space should open the dialog")
	}
}

func TestTabStaysInDialog(t *testing.T) {
	m := newModel(t)
	m = send(t, m, keyMsg("enter"))

	for i := 0; i < 5; i++ {
		m = send(t, m, keyMsg("tab"))
		if !m.Dialog().Root().Contains(m.Document().ActiveElement()) {
			t.Fatalf("tab %d moved focus out of the dialog to %q", i, m.Document().ActiveElement().ID())
		}
	}
	for i := 0; i < 5; i++ {
		m = send(t, m, keyMsg("shift+tab"))
		if !m.Dialog().Root().Contains(m.Document().ActiveElement()) {
			t.Fatalf("shift+tab %d moved focus out of the dialog", i)
		}
	}
}

func TestQuit(t *testing.T) {
	m := newModel(t)

	m = send(t, m, keyMsg("enter"))
	next, cmd := m.Update(keyMsg("q"))
	if isQuit(cmd) {
		t.Error("q should not quit while the dialog is open")
	}
	m = next.(Model)

	if _, cmd := m.Update(keyMsg("ctrl+c")); !isQuit(cmd) {
		t.Error("ctrl+c should quit while the dialog is open")
	}

	m = send(t, m, keyMsg("esc"))
	if _, cmd := m.Update(keyMsg("q")); !isQuit(cmd) {
		t.Error("q should quit while the dialog is closed")
	}
}

func TestArrowNavigation(t *testing.T) {
	m := newModel(t)
	cards := m.Cards()

	cases := []struct {
		key  string
		want int
	}{
		{"down", 2},
		{"right", 3},
		{"left", 2},
		{"up", 0},
		{"up", 0},
		{"left", 0},
	}
	for _, tc := range cases {
		m = send(t, m, keyMsg(tc.key))
		if got := m.Document().ActiveElement(); got != cards[tc.want].Element() {
			t.Errorf("after %s: focus = %q, want card %d", tc.key, got.ID(), tc.want)
		}
	}
}

func TestSeasonListKeys(t *testing.T) {
	m := newModel(t)
	m = send(t, m, keyMsg("enter"))
	m = send(t, m, keyMsg("tab"))
	if got := m.Document().ActiveElement().ID(); got != modal.IDSeasons {
		t.Fatalf("focus = %q, want the season list", got)
	}

	m = send(t, m, keyMsg("down"))
	if !m.Dialog().IsOpen() || m.Document().ActiveElement().ID() != modal.IDSeasons {
		t.Error("down should scroll the list without moving focus")
	}
}

func TestFilter(t *testing.T) {
	m := newModel(t)
	m = send(t, m, keyMsg("/"))
	for _, r := range "rome" {
		m = send(t, m, keyMsg(string(r)))
	}

	vis := m.visibleCards()
	if len(vis) != 1 || vis[0].Value().Title != "This Was Rome" {
		var titles []string
		for _, c := range vis {
			titles = append(titles, c.Value().Title)
		}
		t.Fatalf("visible = %v, want [This Was Rome]", titles)
	}
	if m.Document().ActiveElement() != vis[0].Element() {
		t.Error("focus should move to the remaining card")
	}

	// Typing q into the filter does not quit
	next, cmd := m.Update(keyMsg("q"))
	if isQuit(cmd) {
		t.Error("q should be typed into the filter")
	}
	m = next.(Model)
	if len(m.visibleCards()) != 0 {
		t.Error("no title matches romeq")
	}
	m = send(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	if len(m.visibleCards()) != 1 {
		t.Fatal("backspace should restore the match")
	}

	m = send(t, m, keyMsg("enter"))
	if m.filtering {
		t.Error("enter should leave filter input")
	}
	if len(m.visibleCards()) != 1 {
		t.Error("the filter should stay applied")
	}

	m = send(t, m, keyMsg("/"))
	m = send(t, m, keyMsg("esc"))
	if got := len(m.visibleCards()); got != len(m.Cards()) {
		t.Errorf("visible after esc = %d, want all", got)
	}
}

func TestFilterIgnoredWhileOpen(t *testing.T) {
	m := newModel(t)
	m = send(t, m, keyMsg("enter"))
	m = send(t, m, keyMsg("/"))
	if m.filtering {
		t.Error("filter should not open over the dialog")
	}
}

func TestViewShowsDialogAndStatus(t *testing.T) {
	m := newModel(t)
	plain := ansi.Strip(m.View())
	if !strings.Contains(plain, "Something Was Wrong") {
		t.Errorf("grid missing first card:\n%s", plain)
	}

	m = send(t, m, keyMsg("enter"))
	plain = ansi.Strip(m.View())
	if !strings.Contains(plain, "Dialog opened: Something Was Wrong") {
		t.Errorf("status line should echo the announcement:\n%s", plain)
	}
	if !strings.Contains(plain, "Seasons") {
		t.Errorf("dialog not drawn:\n%s", plain)
	}
	if n := len(strings.Split(m.View(), "\n")); n > 40 {
		t.Errorf("view has %d lines, want at most 40", n)
	}
}

func TestMouse(t *testing.T) {
	m := newModel(t)
	m.View()

	// Second card of the first row
	m = send(t, m, tea.MouseMsg{X: 60, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if !m.Dialog().IsOpen() {
		t.Fatal("clicking a card should open the dialog")
	}
	if got, want := m.Dialog().Content().Title, catalog.Sample().Items[1].Title; got != want {
		t.Errorf("Title = %q, want %q", got, want)
	}

	m.View()
	m = send(t, m, tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.Dialog().IsOpen() {
		t.Error("clicking the backdrop should close the dialog")
	}
	if m.Document().ActiveElement() != m.Cards()[1].Element() {
		t.Errorf("focus = %q, want the clicked card", m.Document().ActiveElement().ID())
	}
}

func TestOverlay(t *testing.T) {
	bg := "aaaaaa\nbbbbbb\ncccccc"
	got := overlay(bg, "XX\nYY", 2, 1, 6, 3)
	want := "aaaaaa\nbbXXbb\nccYYcc"
	if got != want {
		t.Errorf("overlay = %q, want %q", got, want)
	}
}
