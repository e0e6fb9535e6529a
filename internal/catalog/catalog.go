// Package catalog holds the read-only show catalog consulted by the browser:
// preview items, per-show season details and the genre label table.
package catalog

import (
	"sort"

	"github.com/marcus/podview/internal/dateparse"
	"github.com/marcus/podview/internal/genre"
	"github.com/marcus/podview/internal/models"
	"github.com/sahilm/fuzzy"
)

// Catalog is an ordered item list plus season details keyed by item id
type Catalog struct {
	Items   []models.Item
	Seasons map[string][]models.SeasonDetail
	Genres  []models.Genre
}

// New builds a catalog from decoded sections
func New(items []models.Item, seasons []models.ShowSeasons, genres []models.Genre) *Catalog {
	c := &Catalog{
		Items:   items,
		Seasons: make(map[string][]models.SeasonDetail, len(seasons)),
		Genres:  genres,
	}
	for _, s := range seasons {
		c.Seasons[s.ID] = s.SeasonDetails
	}
	return c
}

// SeasonDetails returns the season list for id. An unknown id yields an
// empty list.
func (c *Catalog) SeasonDetails(id string) []models.SeasonDetail {
	if c == nil {
		return []models.SeasonDetail{}
	}
	src := c.Seasons[id]
	out := make([]models.SeasonDetail, len(src))
	copy(out, src)
	return out
}

// Item looks up an item by id
func (c *Catalog) Item(id string) (models.Item, bool) {
	if c == nil {
		return models.Item{}, false
	}
	for _, it := range c.Items {
		if it.ID == id {
			return it, true
		}
	}
	return models.Item{}, false
}

// Resolver returns a label resolver for the catalog's genre table, falling
// back to the built-in table when the catalog carries none.
func (c *Catalog) Resolver() *genre.Resolver {
	if c == nil || len(c.Genres) == 0 {
		return genre.Default()
	}
	return genre.NewResolver(c.Genres)
}

// Len returns the number of items
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Items)
}

// titleSource adapts an item list to fuzzy.Source
type titleSource []models.Item

func (s titleSource) String(i int) string { return s[i].Title }
func (s titleSource) Len() int            { return len(s) }

// Filter returns the items whose title fuzzy-matches query, best match
// first. An empty query returns every item in catalog order.
func (c *Catalog) Filter(query string) []models.Item {
	if c == nil {
		return nil
	}
	if query == "" {
		out := make([]models.Item, len(c.Items))
		copy(out, c.Items)
		return out
	}
	matches := fuzzy.FindFrom(query, titleSource(c.Items))
	out := make([]models.Item, 0, len(matches))
	for _, m := range matches {
		out = append(out, c.Items[m.Index])
	}
	return out
}

// SortByUpdated orders items newest first. Items with an unparseable date
// sort last and keep their relative order.
func SortByUpdated(items []models.Item) {
	sort.SliceStable(items, func(i, j int) bool {
		ti, okI := dateparse.Parse(items[i].Updated)
		tj, okJ := dateparse.Parse(items[j].Updated)
		switch {
		case okI && okJ:
			return ti.After(tj)
		case okI:
			return true
		default:
			return false
		}
	})
}
