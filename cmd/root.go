package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	version string
	baseDir string
)

// SetVersion sets the version string
func SetVersion(v string) {
	version = v
}

var rootCmd = &cobra.Command{
	Use:   "podview",
	Short: "Browse a podcast catalog in the terminal",
	Long: `podview - A keyboard-first terminal browser for podcast catalogs.

Shows are laid out as preview cards; opening one shows its details in a
dialog that keeps keyboard focus until it is closed.

Running podview with no command starts the browser.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() {
	rootCmd.Version = version
	args := os.Args[1:]
	if defaultToBrowse(args) {
		rootCmd.SetArgs(append([]string{"browse"}, args...))
	}
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initBaseDir)
	rootCmd.PersistentFlags().Bool("debug", false, "write debug logs to .podview/debug.log")
}

func initBaseDir() {
	var err error
	baseDir, err = os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot determine working directory: %v\n", err)
		os.Exit(1)
	}
}

// getBaseDir returns the base directory for the project
func getBaseDir() string {
	return baseDir
}

// defaultToBrowse reports whether args name no command, so the browser
// should run. Help and version requests are left alone.
func defaultToBrowse(args []string) bool {
	var rest []string
	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case a == "-h" || a == "--help" || a == "-v" || a == "--version":
			return false
		case browseValueFlags[a]:
			i++ // skip the flag's value
		default:
			rest = append(rest, a)
		}
	}
	return firstNonFlagArg(rest) == ""
}

// browseValueFlags are the browse flags that take a separate value
var browseValueFlags = map[string]bool{
	"--catalog": true,
	"-c":        true,
	"--db":      true,
	"--source":  true,
	"-s":        true,
	"--columns": true,
}

// firstNonFlagArg returns the first argument that is not a flag
func firstNonFlagArg(args []string) string {
	for _, a := range args {
		if !strings.HasPrefix(a, "-") {
			return a
		}
	}
	return ""
}
