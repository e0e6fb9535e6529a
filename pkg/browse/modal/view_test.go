package modal

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/marcus/podview/internal/models"
	"github.com/marcus/podview/pkg/browse/mouse"
)

func TestRenderClosed(t *testing.T) {
	f := newFixture(t)
	hits := mouse.NewHitMap()

	box, _, _ := f.dialog.Render(100, 40, "", hits)
	if box != "" || len(hits.Regions()) != 0 {
		t.Errorf("closed dialog rendered %q with %d regions", box, len(hits.Regions()))
	}
}

func TestRenderPlainDescriptionLiterally(t *testing.T) {
	f := newFixture(t)
	f.dialog.Open(models.Item{
		Title:       "Example",
		Description: "Use <div> & *stars* in # headings",
	})

	box, _, _ := f.dialog.Render(100, 40, "", mouse.NewHitMap())
	if plain := ansi.Strip(box); !strings.Contains(plain, "Use <div> & *stars* in # headings") {
		t.Errorf("description not shown as written:\n%s", plain)
	}
}

func TestRenderOpen(t *testing.T) {
	f := newFixture(t)
	f.dialog.Open(models.Item{
		Title:       "Example",
		Description: "A show about things.",
		Genres:      []models.GenreRef{models.GenreID(3)},
		Updated:     "2024-01-05",
		SeasonList:  []models.SeasonDetail{{Title: "Pilot", Episodes: 6}},
	})
	hits := mouse.NewHitMap()

	box, x, y := f.dialog.Render(100, 40, "", hits)
	plain := ansi.Strip(box)

	for _, want := range []string{"Example", closeLabel, "History", "Updated January 5, 2024", "Season 1: Pilot", "6 episodes"} {
		if !strings.Contains(plain, want) {
			t.Errorf("rendered dialog missing %q:\n%s", want, plain)
		}
	}

	w, h := lipgloss.Width(box), lipgloss.Height(box)
	if w > 100 || h > 40 {
		t.Errorf("box %dx%d exceeds the screen", w, h)
	}
	if x != (100-w)/2 || y != (40-h)/2 {
		t.Errorf("box at (%d,%d), want centered", x, y)
	}

	// Close button sits on the header row inside the frame
	r := hits.Test(x+w-4, y+2)
	if r == nil || r.ID != IDClose {
		t.Errorf("hit at close button = %v, want %s", r, IDClose)
	}
	if r := hits.Test(x+4, y+2); r == nil || r.ID != RegionBody {
		t.Errorf("hit on the title = %v, want %s", r, RegionBody)
	}
	if r := hits.Test(0, 0); r == nil || r.ID != RegionBackdrop {
		t.Errorf("hit outside the box = %v, want %s", r, RegionBackdrop)
	}
}

func TestRenderManySeasonsScrolls(t *testing.T) {
	f := newFixture(t)
	var seasons []models.SeasonDetail
	for i := 0; i < 20; i++ {
		seasons = append(seasons, models.SeasonDetail{Title: "S", Episodes: i})
	}
	f.dialog.Open(models.Item{Title: "Long", SeasonList: seasons})

	box, _, _ := f.dialog.Render(80, 30, "", nil)
	plain := ansi.Strip(box)
	if !strings.Contains(plain, "↓ more below") {
		t.Errorf("expected a scroll indicator:\n%s", plain)
	}
	if strings.Contains(plain, "Season 20:") {
		t.Error("last season should be scrolled out of view")
	}

	f.dialog.ScrollSeasons(19)
	plain = ansi.Strip(func() string { b, _, _ := f.dialog.Render(80, 30, "", nil); return b }())
	if !strings.Contains(plain, "Season 20:") || !strings.Contains(plain, "↑ more above") {
		t.Errorf("expected the end of the list:\n%s", plain)
	}
}
