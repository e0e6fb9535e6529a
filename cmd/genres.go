package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/marcus/podview/internal/output"
)

var genresFlags catalogFlags

var genresCmd = &cobra.Command{
	Use:   "genres",
	Short: "List the genre label table",
	Long: `List the table used to turn numeric genre ids into labels. Catalogs
without a genre table use the built-in one.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, _, err := loadCatalog(cmd.Context(), &genresFlags)
		if err != nil {
			output.Error("%v", err)
			return err
		}
		table := cat.Resolver().Table()

		if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
			return output.JSON(table)
		}

		w := tabwriter.NewWriter(output.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tLABEL")
		for _, g := range table {
			fmt.Fprintf(w, "%d\t%s\n", g.ID, g.Title)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(genresCmd)

	genresFlags.register(genresCmd)
	genresCmd.Flags().Bool("json", false, "JSON output")
}
