package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/marcus/podview/internal/catalog"
	"github.com/marcus/podview/internal/output"
	"github.com/marcus/podview/pkg/browse/dom"
	"github.com/marcus/podview/pkg/browse/modal"
)

var showFlags catalogFlags

var showCmd = &cobra.Command{
	Use:   "show [show-id]",
	Short: "Display the details of a show",
	Long: `Display a show the way the browser's dialog presents it: sanitized
description, resolved genres, formatted date and season breakdown.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")

		cat, _, err := loadCatalog(cmd.Context(), &showFlags)
		if err != nil {
			output.Error("%v", err)
			return err
		}

		content, err := detailContent(cat, args[0])
		if err != nil {
			if jsonOutput {
				output.JSONError("not_found", err.Error())
			} else {
				output.Error("%v", err)
			}
			return err
		}

		if jsonOutput {
			return output.JSON(content)
		}
		printContent(content)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)

	showFlags.register(showCmd)
	showCmd.Flags().Bool("json", false, "JSON output")
}

// detailContent opens the show in a dialog on a headless document and
// returns what the dialog rendered
func detailContent(cat *catalog.Catalog, id string) (modal.Content, error) {
	item, ok := cat.Item(id)
	if !ok {
		return modal.Content{}, fmt.Errorf("show not found: %s", id)
	}

	doc := dom.New()
	modal.Mount(doc)
	dialog, err := modal.New(doc,
		modal.WithSource(cat),
		modal.WithLabels(cat.Resolver()),
		modal.WithLogger(slog.New(slog.DiscardHandler)),
	)
	if err != nil {
		return modal.Content{}, fmt.Errorf("create dialog: %w", err)
	}
	defer dialog.Destroy()

	dialog.Open(item)
	return dialog.Content(), nil
}

func printContent(c modal.Content) {
	w := output.Stdout
	title := c.Title
	if title == "" {
		title = "(untitled)"
	}
	fmt.Fprintf(w, "%s: %s\n", c.ID, title)
	if len(c.Genres) > 0 {
		fmt.Fprintf(w, "Genres: %s\n", strings.Join(c.Genres, ", "))
	}
	if c.Updated != "" {
		fmt.Fprintln(w, c.Updated)
	}
	if c.Image != "" {
		fmt.Fprintf(w, "Image: %s\n", c.Image)
	}

	if c.Description != "" {
		fmt.Fprintf(w, "\n%s\n", c.Description)
	}

	fmt.Fprintln(w, "\nSeasons:")
	if len(c.Seasons) == 0 {
		fmt.Fprintln(w, "  (no seasons)")
		return
	}
	nodes := make([]output.TreeNode, len(c.Seasons))
	for i, s := range c.Seasons {
		nodes[i] = output.TreeNode{Label: s.Label, Detail: s.Episodes}
	}
	for _, line := range output.RenderTreeLines(nodes, output.TreeRenderOptions{ShowDetail: true}) {
		fmt.Fprintln(w, "  "+line)
	}
}
