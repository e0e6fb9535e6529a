package cmd

import (
	"github.com/spf13/cobra"

	"github.com/marcus/podview/internal/catalog"
	"github.com/marcus/podview/internal/db"
	"github.com/marcus/podview/internal/output"
)

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Manage the sqlite catalog database",
}

var dbInitCmd = &cobra.Command{
	Use:   "init [PATH]",
	Short: "Create an empty catalog database",
	Long:  `Create the catalog database and its schema. PATH defaults to .podview/catalog.db.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := db.DefaultPath(getBaseDir())
		if len(args) == 1 {
			path = args[0]
		}

		database, err := db.Initialize(path)
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer database.Close()

		output.Success("Initialized catalog database at %s", database.Path())
		return nil
	},
}

var dbImportCmd = &cobra.Command{
	Use:   "import SOURCE",
	Short: "Load a catalog file or directory into the database",
	Long: `Replace the database contents with the catalog read from SOURCE, a
JSON or YAML file or a directory holding podcasts.json, seasons.json and
genres.json. The database is created when missing.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := catalog.Load(cmd.Context(), args[0])
		if err != nil {
			output.Error("load catalog: %v", err)
			return err
		}

		path, _ := cmd.Flags().GetString("db")
		if path == "" {
			path = db.DefaultPath(getBaseDir())
		}

		database, err := db.Initialize(path)
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer database.Close()

		if err := database.Import(cmd.Context(), cat); err != nil {
			output.Error("%v", err)
			return err
		}

		output.Success("Imported %d shows into %s", cat.Len(), database.Path())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dbCmd)
	dbCmd.AddCommand(dbInitCmd, dbImportCmd)

	dbImportCmd.Flags().String("db", "", "database path (default .podview/catalog.db)")
}
