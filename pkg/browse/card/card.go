// Package card implements the preview card: a focusable summary of one
// catalog item that announces itself as a dialog opener and emits a
// selection event when activated.
package card

import (
	"path"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/marcus/podview/internal/dateparse"
	"github.com/marcus/podview/internal/genre"
	"github.com/marcus/podview/internal/models"
	"github.com/marcus/podview/pkg/browse/dom"
	"github.com/marcus/podview/pkg/browse/theme"
)

// SelectEvent is dispatched, bubbling, when a card is activated. Its
// Detail is the card's normalized models.Item.
const SelectEvent dom.EventType = "item-select"

// Observed display attributes. Changing any of them re-renders the card.
const (
	AttrID      = "pid"
	AttrTitle   = "title"
	AttrImage   = "image"
	AttrGenres  = "genres"
	AttrSeasons = "seasons"
	AttrUpdated = "updated"
)

var observed = map[string]bool{
	AttrID: true, AttrTitle: true, AttrImage: true,
	AttrGenres: true, AttrSeasons: true, AttrUpdated: true,
}

// Labeler resolves genre references to display names
type Labeler interface {
	Labels(refs []models.GenreRef) []string
}

// Rendered is the card's current display content
type Rendered struct {
	Image   string
	Alt     string
	Title   string
	Seasons string
	Updated string
	Tags    []string
}

// Card is a preview card bound to one document element
type Card struct {
	doc      *dom.Document
	el       *dom.Element
	data     *models.Item
	labels   Labeler
	rendered Rendered
}

// New creates a detached card element with the given id. A nil labeler
// uses the built-in genre table.
func New(doc *dom.Document, id string, labels Labeler) *Card {
	if labels == nil {
		labels = genre.Default()
	}
	c := &Card{
		doc:    doc,
		el:     doc.CreateElement(dom.KindGeneric, id),
		labels: labels,
	}

	c.el.AddEventListener(dom.EventClick, func(*dom.Event) {
		c.emitSelect()
	})
	c.el.AddEventListener(dom.EventKeyDown, func(ev *dom.Event) {
		if ev.Key == dom.KeyEnter || ev.Key == dom.KeySpace {
			ev.PreventDefault()
			c.emitSelect()
		}
	})

	c.syncAria()
	c.render()
	return c
}

// Element returns the card's document element
func (c *Card) Element() *dom.Element { return c.el }

// Mount attaches the card under parent and applies its accessibility
// defaults where the caller has not set them.
func (c *Card) Mount(parent *dom.Element) {
	parent.AppendChild(c.el)

	if !c.el.HasAttribute("tabindex") {
		c.el.SetAttribute("tabindex", "0")
	}
	if !c.el.HasAttribute("role") {
		c.el.SetAttribute("role", "button")
	}
	if !c.el.HasAttribute("aria-haspopup") {
		c.el.SetAttribute("aria-haspopup", "dialog")
	}

	c.syncAria()
	c.render()
}

// SetData sets the structured source. Explicit attributes keep precedence.
func (c *Card) SetData(item *models.Item) {
	if item == nil {
		c.data = nil
	} else {
		cp := *item
		c.data = &cp
	}
	c.syncAria()
	c.render()
}

// SetAttribute sets an element attribute, re-rendering when it is one of
// the observed display attributes.
func (c *Card) SetAttribute(name, value string) {
	c.el.SetAttribute(name, value)
	if observed[name] {
		c.syncAria()
		c.render()
	}
}

// RemoveAttribute removes an element attribute, re-rendering when it is
// observed.
func (c *Card) RemoveAttribute(name string) {
	c.el.RemoveAttribute(name)
	if observed[name] {
		c.syncAria()
		c.render()
	}
}

// Value merges the attribute and structured sources into a normalized
// item. A non-empty attribute always wins over structured data.
func (c *Card) Value() models.Item {
	var d models.Item
	if c.data != nil {
		d = *c.data
	}

	v := models.Item{
		ID:          c.attrOr(AttrID, d.ID),
		Title:       c.attrOr(AttrTitle, d.Title),
		Image:       c.attrOr(AttrImage, d.Image),
		Genres:      c.readGenres(d.Genres),
		Seasons:     c.readSeasons(d.Seasons),
		Updated:     c.attrOr(AttrUpdated, d.Updated),
		Description: d.Description,
		Format:      d.Format,
	}
	if len(d.SeasonList) > 0 {
		v.SeasonList = append([]models.SeasonDetail(nil), d.SeasonList...)
	}
	return v
}

// AccessibleLabel returns the computed aria-label
func (c *Card) AccessibleLabel() string {
	return c.el.GetAttribute("aria-label")
}

// Rendered returns the current display content
func (c *Card) Rendered() Rendered {
	r := c.rendered
	r.Tags = append([]string(nil), c.rendered.Tags...)
	return r
}

// Hidden reports whether the card is filtered out of view
func (c *Card) Hidden() bool { return c.el.Hidden() }

// SetHidden shows or hides the card. Hidden cards leave the focus order.
func (c *Card) SetHidden(h bool) { c.el.SetHidden(h) }

func (c *Card) attrOr(name, fallback string) string {
	if v := c.el.GetAttribute(name); v != "" {
		return v
	}
	return fallback
}

func (c *Card) readSeasons(fallback int) int {
	raw := strings.TrimSpace(c.el.GetAttribute(AttrSeasons))
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}

func (c *Card) readGenres(fallback []models.GenreRef) []models.GenreRef {
	raw := strings.TrimSpace(c.el.GetAttribute(AttrGenres))
	if raw == "" {
		return append([]models.GenreRef{}, fallback...)
	}
	refs := []models.GenreRef{}
	for _, tok := range strings.Split(raw, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		refs = append(refs, models.ParseGenreRef(tok))
	}
	return refs
}

func (c *Card) emitSelect() {
	c.doc.Dispatch(&dom.Event{Type: SelectEvent, Target: c.el, Detail: c.Value()})
}

// Label builds the accessible label: the title, plus the season count
// when there is one.
func Label(title string, seasons int) string {
	if title == "" {
		title = "Podcast"
	}
	if s := models.SeasonsLabel(seasons); s != "" {
		return title + " — " + s
	}
	return title
}

func (c *Card) syncAria() {
	v := c.Value()
	c.el.SetAttribute("aria-label", Label(v.Title, v.Seasons))
}

func (c *Card) render() {
	v := c.Value()

	alt := v.Title
	if alt == "" {
		alt = "Podcast cover"
	}
	updated := ""
	if v.Updated != "" {
		updated = dateparse.Format(v.Updated)
	}

	c.rendered = Rendered{
		Image:   v.Image,
		Alt:     alt,
		Title:   v.Title,
		Seasons: models.SeasonsLabel(v.Seasons),
		Updated: updated,
		Tags:    c.labels.Labels(v.Genres),
	}
}

// Height is the number of rows a card occupies on screen
const Height = 7

// View renders the card into a box width columns wide
func (c *Card) View(width int, focused, hovered bool) string {
	frame := theme.Frame(focused, hovered)
	inner := width - frame.GetHorizontalFrameSize()
	if inner < 8 {
		inner = 8
	}
	r := c.rendered

	fit := func(s string) string { return ansi.Truncate(s, inner, "…") }

	title := r.Title
	if title == "" {
		title = "Untitled"
	}
	cover := ""
	if r.Image != "" {
		cover = "▣ " + path.Base(r.Image)
	}

	var tags []string
	used := 0
	for _, t := range r.Tags {
		tag := theme.Tag.Render(t)
		w := lipgloss.Width(tag)
		if used+w > inner {
			break
		}
		tags = append(tags, tag)
		used += w + 1
	}

	lines := []string{
		theme.Title.Render(fit(title)),
		theme.MutedText.Render(fit(r.Seasons)),
		theme.MutedText.Render(fit(r.Updated)),
		strings.Join(tags, " "),
		theme.MutedText.Render(fit(cover)),
	}
	return frame.Width(inner + frame.GetHorizontalPadding()).Render(strings.Join(lines, "\n"))
}
