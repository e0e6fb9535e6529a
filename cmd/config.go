package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/marcus/podview/internal/config"
	"github.com/marcus/podview/internal/output"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Read and write podview settings",
	Long: `Read and write the settings stored in .podview/config.json.

Keys: ` + strings.Join(config.Keys(), ", ") + `

Command line flags override these settings.`,
}

var configGetCmd = &cobra.Command{
	Use:   "get KEY",
	Short: "Print a setting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := config.Get(getBaseDir(), args[0])
		if err != nil {
			output.Error("%v", err)
			return err
		}
		fmt.Fprintln(output.Stdout, value)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Change a setting",
	Long:  `Change a setting. An empty VALUE clears it.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Set(getBaseDir(), args[0], args[1]); err != nil {
			output.Error("%v", err)
			return err
		}
		output.Success("%s = %s", args[0], args[1])
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print every setting",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		values := make(map[string]string)
		for _, key := range config.Keys() {
			v, err := config.Get(getBaseDir(), key)
			if err != nil {
				output.Error("%v", err)
				return err
			}
			values[key] = v
		}

		if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
			return output.JSON(values)
		}
		for _, key := range config.Keys() {
			fmt.Fprintf(output.Stdout, "%s=%s\n", key, values[key])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configGetCmd, configSetCmd, configListCmd)

	configListCmd.Flags().Bool("json", false, "JSON output")
}
