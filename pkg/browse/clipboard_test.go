package browse

import (
	"errors"
	"strings"
	"testing"

	"github.com/marcus/podview/pkg/browse/modal"
)

func TestFormatShowAsMarkdown(t *testing.T) {
	got := formatShowAsMarkdown(modal.Content{
		Title:       "This Was Rome",
		Genres:      []string{"History"},
		Updated:     "Updated June 30, 2021",
		Description: "Stories from the ancient city.",
		Seasons: []modal.SeasonLine{
			{Label: "Season 1: The Republic", Episodes: "12 episodes"},
		},
	})

	want := "# This Was Rome\n" +
		"\n**Genres:** History\n" +
		"\n_Updated June 30, 2021_\n" +
		"\nStories from the ancient city.\n" +
		"\n## Seasons\n\n" +
		"- Season 1: The Republic (12 episodes)\n"
	if got != want {
		t.Errorf("formatShowAsMarkdown() =\n%s\nwant\n%s", got, want)
	}
}

func TestFormatShowAsMarkdownEmpty(t *testing.T) {
	if got := formatShowAsMarkdown(modal.Content{}); got != "# Details\n" {
		t.Errorf("formatShowAsMarkdown() = %q", got)
	}
}

func TestCopyWhileOpen(t *testing.T) {
	var copied string
	prev := writeClipboard
	writeClipboard = func(s string) error { copied = s; return nil }
	t.Cleanup(func() { writeClipboard = prev })

	m := newModel(t)
	m = send(t, m, keyMsg("enter"))

	next, cmd := m.Update(keyMsg("y"))
	m = next.(Model)
	if cmd == nil {
		t.Fatal("copy key should return a command")
	}
	m = send(t, m, cmd())

	if !strings.HasPrefix(copied, "# Something Was Wrong\n") {
		t.Errorf("clipboard = %q", copied)
	}
	if !m.Dialog().IsOpen() {
		t.Error("copying should leave the dialog open")
	}
	if !strings.Contains(m.View(), "Copied Something Was Wrong") {
		t.Error("status line should confirm the copy")
	}

	m = send(t, m, keyMsg("down"))
	if strings.Contains(m.View(), "Copied Something Was Wrong") {
		t.Error("next key should clear the notice")
	}
}

func TestCopyFailure(t *testing.T) {
	prev := writeClipboard
	writeClipboard = func(string) error { return errors.New("no clipboard") }
	t.Cleanup(func() { writeClipboard = prev })

	m := newModel(t)
	m = send(t, m, keyMsg("enter"))
	_, cmd := m.Update(keyMsg("y"))
	m = send(t, m, cmd())

	if !strings.Contains(m.View(), "Copy failed: no clipboard") {
		t.Error("status line should report the failure")
	}
}

func TestCopyIgnoredWhileClosed(t *testing.T) {
	called := false
	prev := writeClipboard
	writeClipboard = func(string) error { called = true; return nil }
	t.Cleanup(func() { writeClipboard = prev })

	m := newModel(t)
	_, cmd := m.Update(keyMsg("y"))
	if cmd != nil {
		cmd()
	}
	if called {
		t.Error("copy should only run while the dialog is open")
	}
}
