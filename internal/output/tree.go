package output

import (
	"strings"

	"github.com/marcus/podview/internal/models"
)

// TreeNode represents a node in a tree structure for rendering
type TreeNode struct {
	ID       string
	Label    string
	Detail   string // shown in brackets after the label
	Children []TreeNode
}

// TreeRenderOptions configures tree rendering behavior
type TreeRenderOptions struct {
	MaxDepth   int  // 0 = unlimited
	ShowID     bool // Whether to prefix labels with the node ID
	ShowDetail bool // Whether to show the bracketed detail
}

// RenderTree renders a tree starting from a single root node
// Returns the complete tree as a string (without the root - just children)
func RenderTree(root TreeNode, opts TreeRenderOptions) string {
	lines := renderTreeNodes(root.Children, opts, 0, "")
	return strings.Join(lines, "\n")
}

// RenderTreeLines renders multiple root nodes and returns individual lines
// Useful for embedding trees in other output
func RenderTreeLines(roots []TreeNode, opts TreeRenderOptions) []string {
	return renderTreeNodes(roots, opts, 0, "")
}

// renderTreeNodes recursively renders tree nodes
func renderTreeNodes(nodes []TreeNode, opts TreeRenderOptions, depth int, prefix string) []string {
	if opts.MaxDepth > 0 && depth >= opts.MaxDepth {
		return nil
	}

	var lines []string

	for i, node := range nodes {
		isLast := i == len(nodes)-1

		connector := "├── "
		if isLast {
			connector = "└── "
		}

		var parts []string
		if opts.ShowID && node.ID != "" {
			parts = append(parts, node.ID+":")
		}
		parts = append(parts, node.Label)
		if opts.ShowDetail && node.Detail != "" {
			parts = append(parts, "["+node.Detail+"]")
		}

		lines = append(lines, prefix+connector+strings.Join(parts, " "))

		childPrefix := prefix
		if isLast {
			childPrefix += "    "
		} else {
			childPrefix += "│   "
		}

		lines = append(lines, renderTreeNodes(node.Children, opts, depth+1, childPrefix)...)
	}

	return lines
}

// SeasonNodes builds one node per season, numbered from 1
func SeasonNodes(seasons []models.SeasonDetail) []TreeNode {
	nodes := make([]TreeNode, 0, len(seasons))
	for i, s := range seasons {
		nodes = append(nodes, TreeNode{
			Label:  FormatSeason(i+1, s.Title),
			Detail: FormatEpisodes(s.Episodes),
		})
	}
	return nodes
}

// ShowNode builds a tree node for a show with its seasons as children
func ShowNode(item models.Item, seasons []models.SeasonDetail) TreeNode {
	title := item.Title
	if title == "" {
		title = "(untitled)"
	}
	return TreeNode{
		ID:       item.ID,
		Label:    title,
		Detail:   models.SeasonsLabel(item.Seasons),
		Children: SeasonNodes(seasons),
	}
}
