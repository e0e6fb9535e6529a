package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

const debugLogFile = ".podview/debug.log"

// setupLogging returns the logger commands report to. The terminal belongs
// to the browser, so logs go to a file when debugging and nowhere otherwise.
// The returned cleanup must be called on exit.
func setupLogging(cmd *cobra.Command, enabled bool) (*slog.Logger, func(), error) {
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		enabled = true
	}
	if !enabled {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}

	path := filepath.Join(getBaseDir(), debugLogFile)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := tea.LogToFile(path, "podview")
	if err != nil {
		return nil, nil, fmt.Errorf("open debug log: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)
	return logger, func() { f.Close() }, nil
}
