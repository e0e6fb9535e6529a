// Package genre maps opaque category identifiers to display names.
package genre

import "github.com/marcus/podview/internal/models"

// defaultTable is the label table shipped with podview
var defaultTable = []models.Genre{
	{ID: 1, Title: "Personal Growth"},
	{ID: 2, Title: "Investigative Journalism"},
	{ID: 3, Title: "History"},
	{ID: 4, Title: "Comedy"},
	{ID: 5, Title: "Entertainment"},
	{ID: 6, Title: "Business"},
	{ID: 7, Title: "Fiction"},
	{ID: 8, Title: "News"},
	{ID: 9, Title: "Kids and Family"},
}

// Resolver resolves genre identifiers against a fixed table.
// The zero value resolves nothing.
type Resolver struct {
	byID  map[int]string
	order []models.Genre
}

// NewResolver builds a resolver from a table. Later rows win on duplicate ids.
func NewResolver(table []models.Genre) *Resolver {
	r := &Resolver{byID: make(map[int]string, len(table))}
	for _, g := range table {
		if _, dup := r.byID[g.ID]; !dup {
			r.order = append(r.order, g)
		} else {
			for i := range r.order {
				if r.order[i].ID == g.ID {
					r.order[i] = g
				}
			}
		}
		r.byID[g.ID] = g.Title
	}
	return r
}

// Default returns a resolver over the built-in table
func Default() *Resolver {
	return NewResolver(defaultTable)
}

// DefaultTable returns a copy of the built-in table
func DefaultTable() []models.Genre {
	out := make([]models.Genre, len(defaultTable))
	copy(out, defaultTable)
	return out
}

// Name returns the display name for id
func (r *Resolver) Name(id int) (string, bool) {
	if r == nil {
		return "", false
	}
	name, ok := r.byID[id]
	return name, ok && name != ""
}

// Names returns the display names of known ids in input order.
// Unknown ids are dropped.
func (r *Resolver) Names(ids []int) []string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if name, ok := r.Name(id); ok {
			names = append(names, name)
		}
	}
	return names
}

// Labels resolves a mixed reference list. Identifiers are looked up and
// dropped when unknown; names pass through unchanged.
func (r *Resolver) Labels(refs []models.GenreRef) []string {
	labels := make([]string, 0, len(refs))
	for _, ref := range refs {
		if !ref.IsID() {
			labels = append(labels, ref.Name)
			continue
		}
		if name, ok := r.Name(ref.ID); ok {
			labels = append(labels, name)
		}
	}
	return labels
}

// Table returns the rows of the resolver in id order of first appearance
func (r *Resolver) Table() []models.Genre {
	if r == nil {
		return nil
	}
	out := make([]models.Genre, len(r.order))
	copy(out, r.order)
	return out
}
