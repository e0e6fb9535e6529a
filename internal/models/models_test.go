package models

import (
	"encoding/json"
	"testing"

	"gopkg.in/yaml.v3"
)

// TestIsValidSourceKindValid tests all valid source kinds
func TestIsValidSourceKindValid(t *testing.T) {
	for _, k := range AllSourceKinds() {
		if !IsValidSourceKind(k) {
			t.Errorf("Expected %q to be valid source kind", k)
		}
	}
}

// TestIsValidSourceKindInvalid tests invalid source kinds
func TestIsValidSourceKindInvalid(t *testing.T) {
	invalid := []SourceKind{"", "SQLite", "http", "files"}
	for _, k := range invalid {
		if IsValidSourceKind(k) {
			t.Errorf("Expected %q to be invalid source kind", k)
		}
	}
}

func TestParseGenreRef(t *testing.T) {
	tests := []struct {
		token string
		want  GenreRef
	}{
		{"3", GenreID(3)},
		{" 12 ", GenreID(12)},
		{"Comedy", GenreName("Comedy")},
		{"True Crime", GenreName("True Crime")},
	}

	for _, tt := range tests {
		if got := ParseGenreRef(tt.token); got != tt.want {
			t.Errorf("ParseGenreRef(%q) = %+v, want %+v", tt.token, got, tt.want)
		}
	}
}

func TestGenreRefJSON(t *testing.T) {
	var item Item
	data := `{"id":"10716","title":"Something True","genres":[1,"History",3],"seasons":2}`
	if err := json.Unmarshal([]byte(data), &item); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	want := []GenreRef{GenreID(1), GenreName("History"), GenreID(3)}
	if len(item.Genres) != len(want) {
		t.Fatalf("got %d genres, want %d", len(item.Genres), len(want))
	}
	for i := range want {
		if item.Genres[i] != want[i] {
			t.Errorf("Genres[%d] = %+v, want %+v", i, item.Genres[i], want[i])
		}
	}

	out, err := json.Marshal(item.Genres)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(out) != `[1,"History",3]` {
		t.Errorf("Marshal = %s, want [1,\"History\",3]", out)
	}
}

func TestGenreRefJSONRejectsObjects(t *testing.T) {
	var g GenreRef
	if err := json.Unmarshal([]byte(`{"id":1}`), &g); err == nil {
		t.Error("expected error for object genre")
	}
}

func TestGenreRefYAML(t *testing.T) {
	var item Item
	data := "id: a\ngenres:\n  - 2\n  - Fiction\n  - \"7\"\n"
	if err := yaml.Unmarshal([]byte(data), &item); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	// A quoted number is a string scalar and stays a name
	want := []GenreRef{GenreID(2), GenreName("Fiction"), GenreName("7")}
	if len(item.Genres) != len(want) {
		t.Fatalf("got %d genres, want %d", len(item.Genres), len(want))
	}
	for i := range want {
		if item.Genres[i] != want[i] {
			t.Errorf("Genres[%d] = %+v, want %+v", i, item.Genres[i], want[i])
		}
	}
}

func TestSeasonsLabel(t *testing.T) {
	cases := []struct {
		n    int
		want string
	}{
		{0, ""},
		{-2, ""},
		{1, "1 season"},
		{3, "3 seasons"},
	}
	for _, tc := range cases {
		if got := SeasonsLabel(tc.n); got != tc.want {
			t.Errorf("SeasonsLabel(%d) = %q, want %q", tc.n, got, tc.want)
		}
	}
}
