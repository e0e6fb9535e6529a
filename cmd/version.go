package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marcus/podview/internal/output"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the podview version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(output.Stdout, "podview %s\n", versionString())
	},
}

func versionString() string {
	if version == "" {
		return "dev"
	}
	return version
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
