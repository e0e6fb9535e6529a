// Package dateparse turns date-like strings into display labels.
package dateparse

import (
	"strings"
	"time"
)

// layouts accepted by Parse, tried in order
var layouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC1123Z,
	time.RFC1123,
	"January 2, 2006",
	"Jan 2, 2006",
}

const displayLayout = "January 2, 2006"

// Parse parses s using the accepted layouts. Inputs without an offset are
// read as UTC so a bare date is never shifted to another day.
func Parse(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Format returns "Updated <Month> <Day>, <Year>" for a parseable input and an
// empty string otherwise.
func Format(s string) string {
	t, ok := Parse(s)
	if !ok {
		return ""
	}
	return "Updated " + t.Format(displayLayout)
}
