// Package output formats CLI results for people and for scripts.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Destinations, swapped out by tests
var (
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

// Error prints an error message to stderr
func Error(format string, args ...any) {
	fmt.Fprintf(Stderr, "%s %s\n", errorStyle.Render("ERROR:"), fmt.Sprintf(format, args...))
}

// Warning prints a warning to stderr
func Warning(format string, args ...any) {
	fmt.Fprintf(Stderr, "%s %s\n", warningStyle.Render("WARNING:"), fmt.Sprintf(format, args...))
}

// Success prints a confirmation to stdout
func Success(format string, args ...any) {
	fmt.Fprintln(Stdout, successStyle.Render(fmt.Sprintf(format, args...)))
}

// JSON writes v as indented JSON to stdout
func JSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	_, err = fmt.Fprintln(Stdout, string(data))
	return err
}

// JSONError writes a machine-readable error object to stdout
func JSONError(code, message string) {
	_ = JSON(map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}

// FormatSeason returns the numbered season heading
func FormatSeason(n int, title string) string {
	if title == "" {
		return fmt.Sprintf("Season %d", n)
	}
	return fmt.Sprintf("Season %d: %s", n, title)
}

// FormatEpisodes returns the episode count text
func FormatEpisodes(n int) string {
	if n == 1 {
		return "1 episode"
	}
	return fmt.Sprintf("%d episodes", n)
}
