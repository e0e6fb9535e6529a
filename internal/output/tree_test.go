package output

import (
	"strings"
	"testing"

	"github.com/marcus/podview/internal/models"
)

func TestRenderTreeLines_Empty(t *testing.T) {
	lines := RenderTreeLines(nil, TreeRenderOptions{})
	if len(lines) != 0 {
		t.Errorf("expected empty lines, got %d", len(lines))
	}
}

func TestRenderTreeLines_SingleNode(t *testing.T) {
	nodes := []TreeNode{
		{ID: "10716", Label: "Something Was Wrong", Detail: "2 seasons"},
	}
	lines := RenderTreeLines(nodes, TreeRenderOptions{ShowID: true, ShowDetail: true})

	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if want := "└── 10716: Something Was Wrong [2 seasons]"; lines[0] != want {
		t.Errorf("line = %q, want %q", lines[0], want)
	}
}

func TestRenderTreeLines_HidesOptionalParts(t *testing.T) {
	nodes := []TreeNode{{ID: "1", Label: "Plain", Detail: "hidden"}}
	lines := RenderTreeLines(nodes, TreeRenderOptions{})
	if lines[0] != "└── Plain" {
		t.Errorf("line = %q, want bare label", lines[0])
	}
}

func TestRenderTreeLines_WithChildren(t *testing.T) {
	nodes := []TreeNode{
		{
			Label: "First",
			Children: []TreeNode{
				{Label: "Season 1"},
				{Label: "Season 2"},
			},
		},
		{Label: "Second"},
	}
	lines := RenderTreeLines(nodes, TreeRenderOptions{})

	want := []string{
		"├── First",
		"│   ├── Season 1",
		"│   └── Season 2",
		"└── Second",
	}
	if strings.Join(lines, "\n") != strings.Join(want, "\n") {
		t.Errorf("lines =\n%s\nwant\n%s", strings.Join(lines, "\n"), strings.Join(want, "\n"))
	}
}

func TestRenderTreeLines_MaxDepth(t *testing.T) {
	nodes := []TreeNode{
		{Label: "Show", Children: []TreeNode{{Label: "Season 1"}}},
	}
	lines := RenderTreeLines(nodes, TreeRenderOptions{MaxDepth: 1})
	if len(lines) != 1 {
		t.Errorf("expected children cut at depth 1, got %v", lines)
	}
}

func TestRenderTree(t *testing.T) {
	root := ShowNode(models.Item{ID: "1", Title: "Show", Seasons: 2}, []models.SeasonDetail{
		{Title: "Pilot", Episodes: 1},
		{Title: "", Episodes: 12},
	})
	got := RenderTree(root, TreeRenderOptions{ShowDetail: true})
	want := "├── Season 1: Pilot [1 episode]\n└── Season 2 [12 episodes]"
	if got != want {
		t.Errorf("RenderTree = %q, want %q", got, want)
	}
	if root.Detail != "2 seasons" {
		t.Errorf("Detail = %q", root.Detail)
	}
}

func TestShowNodeUntitled(t *testing.T) {
	if got := ShowNode(models.Item{}, nil).Label; got != "(untitled)" {
		t.Errorf("Label = %q", got)
	}
}
