package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// SourceKind selects where the catalog is read from
type SourceKind string

const (
	SourceSample SourceKind = "sample"
	SourceFile   SourceKind = "file"
	SourceSQLite SourceKind = "sqlite"
)

// IsValidSourceKind checks if a source kind is valid
func IsValidSourceKind(k SourceKind) bool {
	switch k {
	case SourceSample, SourceFile, SourceSQLite:
		return true
	}
	return false
}

// AllSourceKinds returns source kinds in display order
func AllSourceKinds() []SourceKind {
	return []SourceKind{SourceSample, SourceFile, SourceSQLite}
}

// GenreRef is one entry of an item's category list. It is either a numeric
// identifier awaiting resolution or an already-resolved display name.
type GenreRef struct {
	ID   int
	Name string
}

// GenreID returns a reference to a numeric genre identifier
func GenreID(id int) GenreRef {
	return GenreRef{ID: id}
}

// GenreName returns a reference holding a resolved display name
func GenreName(name string) GenreRef {
	return GenreRef{Name: name}
}

// IsID reports whether the reference still needs resolving
func (g GenreRef) IsID() bool {
	return g.Name == ""
}

func (g GenreRef) String() string {
	if g.IsID() {
		return strconv.Itoa(g.ID)
	}
	return g.Name
}

// ParseGenreRef turns a raw token into a reference. Numeric tokens become
// identifiers, anything else is kept as a name.
func ParseGenreRef(token string) GenreRef {
	token = strings.TrimSpace(token)
	if n, err := strconv.Atoi(token); err == nil {
		return GenreID(n)
	}
	return GenreName(token)
}

// MarshalJSON writes identifiers as numbers and names as strings
func (g GenreRef) MarshalJSON() ([]byte, error) {
	if g.IsID() {
		return json.Marshal(g.ID)
	}
	return json.Marshal(g.Name)
}

// UnmarshalJSON accepts a JSON number or string
func (g *GenreRef) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*g = GenreID(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("genre must be a number or string: %s", data)
	}
	*g = GenreName(s)
	return nil
}

// UnmarshalYAML accepts a YAML integer or string scalar
func (g *GenreRef) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("genre must be a scalar at line %d", value.Line)
	}
	if value.ShortTag() == "!!int" {
		n, err := strconv.Atoi(value.Value)
		if err != nil {
			return fmt.Errorf("parse genre id %q: %w", value.Value, err)
		}
		*g = GenreID(n)
		return nil
	}
	*g = GenreName(value.Value)
	return nil
}

// DescriptionFormat says how an item's description is written. The zero
// value is plain text.
type DescriptionFormat string

const (
	FormatText     DescriptionFormat = "text"
	FormatMarkdown DescriptionFormat = "markdown"
	FormatHTML     DescriptionFormat = "html"
)

// IsValidDescriptionFormat checks if a description format is valid. The
// empty format is valid and means plain text.
func IsValidDescriptionFormat(f DescriptionFormat) bool {
	switch f {
	case "", FormatText, FormatMarkdown, FormatHTML:
		return true
	}
	return false
}

// Item is the normalized detail record shared by cards and the dialog.
// Every field is optional.
type Item struct {
	ID          string            `json:"id" yaml:"id"`
	Title       string            `json:"title" yaml:"title"`
	Image       string            `json:"image" yaml:"image"`
	Description string            `json:"description" yaml:"description"`
	Format      DescriptionFormat `json:"descriptionFormat,omitempty" yaml:"descriptionFormat,omitempty"`
	Genres      []GenreRef        `json:"genres" yaml:"genres"`
	Seasons     int               `json:"seasons" yaml:"seasons"`
	Updated     string            `json:"updated" yaml:"updated"`
	SeasonList  []SeasonDetail    `json:"seasonDetails,omitempty" yaml:"seasonDetails,omitempty"`
}

// SeasonDetail summarizes one season of a show
type SeasonDetail struct {
	Title    string `json:"title" yaml:"title"`
	Episodes int    `json:"episodes" yaml:"episodes"`
}

// ShowSeasons is the season-detail record for one item id
type ShowSeasons struct {
	ID            string         `json:"id" yaml:"id"`
	SeasonDetails []SeasonDetail `json:"seasonDetails" yaml:"seasonDetails"`
}

// Genre is a row of the label table
type Genre struct {
	ID    int    `json:"id" yaml:"id"`
	Title string `json:"title" yaml:"title"`
}

// Config represents the podview config file
type Config struct {
	Catalog  string     `json:"catalog,omitempty"`
	Database string     `json:"database,omitempty"`
	Source   SourceKind `json:"source,omitempty"`
	Columns  int        `json:"columns,omitempty"`
	Debug    bool       `json:"debug,omitempty"`
}

// SeasonsLabel renders a season count as "1 season" or "N seasons".
// Zero or negative counts render as the empty string.
func SeasonsLabel(n int) string {
	switch {
	case n <= 0:
		return ""
	case n == 1:
		return "1 season"
	default:
		return strconv.Itoa(n) + " seasons"
	}
}
