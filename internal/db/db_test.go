package db

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/marcus/podview/internal/catalog"
	"github.com/marcus/podview/internal/models"
)

func TestInitialize(t *testing.T) {
	dir := t.TempDir()
	path := DefaultPath(dir)

	db, err := Initialize(path)
	if err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	defer db.Close()

	// Check database file exists
	if _, err := os.Stat(filepath.Join(dir, ".podview", "catalog.db")); os.IsNotExist(err) {
		t.Error("Database file not created")
	}
}

func TestOpenMissing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.db"))
	if err == nil {
		t.Fatal("expected error opening missing database")
	}
	if !strings.Contains(err.Error(), "podview db init") {
		t.Errorf("error should point at db init, got %v", err)
	}
}

func seed(t *testing.T, path string) {
	t.Helper()
	db, err := Initialize(path)
	if err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	defer db.Close()

	stmts := []string{
		`INSERT INTO shows (id, position, title, image, description, seasons, updated)
		 VALUES ('b', 2, 'Second', 'b.jpg', 'Two', 1, '2023-01-01')`,
		`INSERT INTO shows (id, position, title, image, description, seasons, updated)
		 VALUES ('a', 1, 'First', 'a.jpg', 'One', 2, '2024-01-05')`,
		`INSERT INTO genres (id, title) VALUES (3, 'History'), (4, 'Comedy')`,
		`INSERT INTO show_genres (show_id, position, genre_id, genre_name) VALUES ('a', 0, 4, '')`,
		`INSERT INTO show_genres (show_id, position, genre_id, genre_name) VALUES ('a', 1, NULL, 'Satire')`,
		`INSERT INTO seasons (show_id, number, title, episodes) VALUES ('a', 2, 'Later', 6), ('a', 1, 'Early', 8)`,
	}
	for _, s := range stmts {
		if _, err := db.conn.Exec(s); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
}

func TestCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.db")
	seed(t, path)

	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer db.Close()

	c, err := db.Catalog(context.Background())
	if err != nil {
		t.Fatalf("Catalog failed: %v", err)
	}

	if c.Len() != 2 {
		t.Fatalf("Len = %d, want 2", c.Len())
	}
	if c.Items[0].ID != "a" || c.Items[1].ID != "b" {
		t.Errorf("items not in position order: %s, %s", c.Items[0].ID, c.Items[1].ID)
	}

	first := c.Items[0]
	wantGenres := []models.GenreRef{models.GenreID(4), models.GenreName("Satire")}
	if len(first.Genres) != len(wantGenres) {
		t.Fatalf("Genres = %+v, want %+v", first.Genres, wantGenres)
	}
	for i := range wantGenres {
		if first.Genres[i] != wantGenres[i] {
			t.Errorf("Genres[%d] = %+v, want %+v", i, first.Genres[i], wantGenres[i])
		}
	}

	seasons := c.SeasonDetails("a")
	if len(seasons) != 2 || seasons[0].Title != "Early" || seasons[1].Title != "Later" {
		t.Errorf("SeasonDetails(a) = %+v, want Early then Later", seasons)
	}
	if got := c.SeasonDetails("b"); len(got) != 0 {
		t.Errorf("SeasonDetails(b) = %+v, want empty", got)
	}

	if labels := c.Resolver().Labels(first.Genres); len(labels) != 2 || labels[0] != "Comedy" {
		t.Errorf("Labels = %v, want [Comedy Satire]", labels)
	}
}

func TestOpenIsReadOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.db")
	seed(t, path)

	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer db.Close()

	if _, err := db.conn.Exec(`INSERT INTO genres (id, title) VALUES (9, 'Kids')`); err == nil {
		t.Error("expected write to fail on read-only connection")
	}
}

func TestSeasonDetailsUnknownShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.db")
	seed(t, path)

	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer db.Close()

	got, err := db.SeasonDetails(context.Background(), "missing")
	if err != nil {
		t.Fatalf("SeasonDetails failed: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("SeasonDetails(missing) = %#v, want empty non-nil slice", got)
	}
}

func TestImportRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.db")
	src := catalog.Sample()
	src.Genres = []models.Genre{{ID: 1, Title: "Personal Growth"}}

	w, err := Initialize(path)
	if err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	if err := w.Import(context.Background(), src); err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	// Importing again replaces rather than duplicates
	if err := w.Import(context.Background(), src); err != nil {
		t.Fatalf("second Import failed: %v", err)
	}
	w.Close()

	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer db.Close()

	got, err := db.Catalog(context.Background())
	if err != nil {
		t.Fatalf("Catalog failed: %v", err)
	}
	if got.Len() != src.Len() {
		t.Fatalf("Len = %d, want %d", got.Len(), src.Len())
	}
	for i, item := range src.Items {
		if got.Items[i].ID != item.ID || got.Items[i].Title != item.Title {
			t.Errorf("Items[%d] = %s/%q, want %s/%q", i, got.Items[i].ID, got.Items[i].Title, item.ID, item.Title)
		}
		if got.Items[i].Format != item.Format {
			t.Errorf("Items[%d].Format = %q, want %q", i, got.Items[i].Format, item.Format)
		}
		if len(got.Items[i].Genres) != len(item.Genres) {
			t.Errorf("Items[%d].Genres = %+v, want %+v", i, got.Items[i].Genres, item.Genres)
		}
		if a, b := len(got.SeasonDetails(item.ID)), len(src.SeasonDetails(item.ID)); a != b {
			t.Errorf("SeasonDetails(%s) has %d rows, want %d", item.ID, a, b)
		}
	}
	if len(got.Genres) != 1 || got.Genres[0].Title != "Personal Growth" {
		t.Errorf("Genres = %+v", got.Genres)
	}
}

func TestImportRejectsMissingID(t *testing.T) {
	w, err := Initialize(filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	defer w.Close()

	err = w.Import(context.Background(), catalog.New([]models.Item{{Title: "No id"}}, nil, nil))
	if err == nil || !strings.Contains(err.Error(), "no id") {
		t.Errorf("Import error = %v, want missing id", err)
	}
}
