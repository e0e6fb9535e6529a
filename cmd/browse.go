package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/marcus/podview/internal/catalog"
	"github.com/marcus/podview/internal/models"
	"github.com/marcus/podview/internal/output"
	"github.com/marcus/podview/pkg/browse"
)

var browseFlags catalogFlags

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Open the catalog browser",
	Long: `Open the interactive catalog browser.

Arrow keys move between cards, Enter or Space opens the focused show and
Escape closes the dialog. Press / to filter by title and ? for help.

When stdout is not a terminal the catalog is printed as a tree instead.`,
	Args: cobra.NoArgs,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)

	browseFlags.register(browseCmd)
	browseCmd.Flags().Int("columns", 0, "fixed number of card columns (0 = fit to width)")
	browseCmd.Flags().Bool("seasons", false, "include seasons in non-interactive output")
	browseCmd.Flags().Bool("sort-updated", false, "list newest shows first in non-interactive output")
}

func runBrowse(cmd *cobra.Command, args []string) error {
	cat, cfg, err := loadCatalog(cmd.Context(), &browseFlags)
	if err != nil {
		output.Error("%v", err)
		return err
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		seasons, _ := cmd.Flags().GetBool("seasons")
		byUpdated, _ := cmd.Flags().GetBool("sort-updated")
		printCatalog(cat, seasons, byUpdated)
		return nil
	}

	columns := cfg.Columns
	if cmd.Flags().Changed("columns") {
		columns, _ = cmd.Flags().GetInt("columns")
	}
	if columns < 0 {
		err := fmt.Errorf("columns must not be negative")
		output.Error("%v", err)
		return err
	}

	logger, cleanup, err := setupLogging(cmd, cfg.Debug)
	if err != nil {
		output.Error("%v", err)
		return err
	}
	defer cleanup()

	m, err := browse.New(cat, browse.Options{Columns: columns, Logger: logger})
	if err != nil {
		output.Error("%v", err)
		return err
	}
	logger.Debug("browser starting", "shows", cat.Len(), "columns", columns)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run browser: %w", err)
	}
	return nil
}

// printCatalog writes the catalog as a tree, one show per root
func printCatalog(cat *catalog.Catalog, withSeasons, byUpdated bool) {
	items := append([]models.Item(nil), cat.Items...)
	if byUpdated {
		catalog.SortByUpdated(items)
	}

	nodes := make([]output.TreeNode, 0, len(items))
	for _, item := range items {
		var seasons []models.SeasonDetail
		if withSeasons {
			seasons = cat.SeasonDetails(item.ID)
			if len(seasons) == 0 {
				seasons = item.SeasonList
			}
		}
		nodes = append(nodes, output.ShowNode(item, seasons))
	}

	opts := output.TreeRenderOptions{ShowID: true, ShowDetail: true}
	if !withSeasons {
		opts.MaxDepth = 1
	}
	for _, line := range output.RenderTreeLines(nodes, opts) {
		fmt.Fprintln(output.Stdout, line)
	}
}
