package modal

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/marcus/podview/internal/genre"
	"github.com/marcus/podview/internal/models"
	"github.com/marcus/podview/pkg/browse/card"
	"github.com/marcus/podview/pkg/browse/dom"
)

// Anchor ids the dialog is built from
const (
	IDRoot     = "modal"
	IDClose    = "closeModal"
	IDImage    = "modalImage"
	IDTitle    = "modalTitle"
	IDDesc     = "modalDesc"
	IDGenres   = "modalGenres"
	IDUpdated  = "modalUpdated"
	IDSeasons  = "seasonList"
	IDLiveArea = "sr-live-region"
)

var anchorIDs = []string{IDRoot, IDClose, IDImage, IDTitle, IDDesc, IDGenres, IDUpdated, IDSeasons}

// ErrMissingAnchor is returned by New when the document lacks a required
// dialog element
var ErrMissingAnchor = errors.New("dialog anchor missing")

// SeasonSource supplies season details keyed by item id
type SeasonSource interface {
	SeasonDetails(id string) []models.SeasonDetail
}

// Content is what the dialog currently shows
type Content struct {
	ID          string       `json:"id"`
	Image       string       `json:"image"`
	Alt         string       `json:"alt"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Format      string       `json:"descriptionFormat"`
	Genres      []string     `json:"genres"`
	Updated     string       `json:"updated"`
	Seasons     []SeasonLine `json:"seasons"`
}

// Option configures a Dialog
type Option func(*Dialog)

// WithSource sets the season catalog consulted on open
func WithSource(src SeasonSource) Option {
	return func(d *Dialog) { d.source = src }
}

// WithLabels sets the genre label resolver
func WithLabels(l card.Labeler) Option {
	return func(d *Dialog) {
		if l != nil {
			d.labels = l
		}
	}
}

// WithLogger sets the logger transitions are reported to
func WithLogger(l *slog.Logger) Option {
	return func(d *Dialog) {
		if l != nil {
			d.logger = l
		}
	}
}

type subscription struct {
	target *dom.Element // nil for the document
	id     dom.ListenerID
}

// Dialog is the detail dialog controller. Construct one per document.
type Dialog struct {
	doc *dom.Document

	root     *dom.Element
	closeBtn *dom.Element
	image    *dom.Element
	title    *dom.Element
	desc     *dom.Element
	genres   *dom.Element
	updated  *dom.Element
	seasons  *dom.Element
	live     *dom.Element

	state     State
	lastFocus *dom.Element
	trap      dom.ListenerID
	closeSub  dom.ListenerID
	subs      []subscription
	destroyed bool

	source    SeasonSource
	labels    card.Labeler
	logger    *slog.Logger
	sanitizer *bluemonday.Policy

	content Content
	list    *seasonList
	md      markdownCache
}

// Mount builds the dialog skeleton under the document body unless a root
// anchor is already present. It returns the dialog root.
func Mount(doc *dom.Document) *dom.Element {
	if root := doc.GetElementByID(IDRoot); root != nil {
		return root
	}

	root := doc.CreateElement(dom.KindGeneric, IDRoot)
	root.SetHidden(true)
	root.SetAttribute("aria-hidden", "true")

	closeBtn := doc.CreateElement(dom.KindButton, IDClose)
	closeBtn.SetAttribute("aria-label", "Close dialog")
	closeBtn.SetText("Close")

	seasons := doc.CreateElement(dom.KindList, IDSeasons)
	seasons.SetAttribute("tabindex", "0")

	root.AppendChild(closeBtn)
	root.AppendChild(doc.CreateElement(dom.KindImage, IDImage))
	root.AppendChild(doc.CreateElement(dom.KindHeading, IDTitle))
	root.AppendChild(doc.CreateElement(dom.KindText, IDDesc))
	root.AppendChild(doc.CreateElement(dom.KindGeneric, IDGenres))
	root.AppendChild(doc.CreateElement(dom.KindText, IDUpdated))
	root.AppendChild(seasons)

	doc.Body().AppendChild(root)
	return root
}

// New binds a controller to the dialog anchors in doc. It fails with
// ErrMissingAnchor when any anchor is absent.
func New(doc *dom.Document, opts ...Option) (*Dialog, error) {
	anchors := make(map[string]*dom.Element, len(anchorIDs))
	for _, id := range anchorIDs {
		el := doc.GetElementByID(id)
		if el == nil {
			return nil, fmt.Errorf("%w: #%s", ErrMissingAnchor, id)
		}
		anchors[id] = el
	}

	d := &Dialog{
		doc:       doc,
		root:      anchors[IDRoot],
		closeBtn:  anchors[IDClose],
		image:     anchors[IDImage],
		title:     anchors[IDTitle],
		desc:      anchors[IDDesc],
		genres:    anchors[IDGenres],
		updated:   anchors[IDUpdated],
		seasons:   anchors[IDSeasons],
		labels:    genre.Default(),
		logger:    slog.Default(),
		sanitizer: bluemonday.StrictPolicy(),
		list:      newSeasonList(),
	}
	for _, opt := range opts {
		opt(d)
	}

	setDefault(d.root, "role", "dialog")
	setDefault(d.root, "aria-modal", "true")
	setDefault(d.root, "aria-labelledby", IDTitle)
	setDefault(d.root, "aria-describedby", IDDesc)

	d.live = liveRegion(doc)

	// The visible state follows the controller, which starts closed
	d.root.SetHidden(true)
	d.root.SetAttribute("aria-hidden", "true")

	d.closeSub = d.closeBtn.AddEventListener(dom.EventClick, func(*dom.Event) {
		d.Close()
	})

	return d, nil
}

func setDefault(el *dom.Element, name, value string) {
	if !el.HasAttribute(name) {
		el.SetAttribute(name, value)
	}
}

// liveRegion returns the document's announcement region, creating it on
// first use
func liveRegion(doc *dom.Document) *dom.Element {
	if live := doc.GetElementByID(IDLiveArea); live != nil {
		return live
	}
	live := doc.CreateElement(dom.KindText, IDLiveArea)
	live.SetAttribute("role", "status")
	live.SetAttribute("aria-live", "polite")
	doc.Body().AppendChild(live)
	return live
}

// State returns the current dialog state
func (d *Dialog) State() State { return d.state }

// IsOpen reports whether the dialog is open
func (d *Dialog) IsOpen() bool { return d.state == StateOpen }

// TrapInstalled reports whether the keyboard trap listener is registered
func (d *Dialog) TrapInstalled() bool { return d.trap != 0 }

// Content returns a copy of what the dialog last rendered
func (d *Dialog) Content() Content {
	c := d.content
	c.Genres = append([]string{}, d.content.Genres...)
	c.Seasons = append([]SeasonLine{}, d.content.Seasons...)
	return c
}

// Root returns the dialog root element
func (d *Dialog) Root() *dom.Element { return d.root }

// Announcement returns the live region's current message
func (d *Dialog) Announcement() string { return d.live.Text() }

// Listen opens the dialog for every selection event that reaches target.
// A nil target subscribes at the document.
func (d *Dialog) Listen(target *dom.Element) {
	handler := func(ev *dom.Event) {
		switch item := ev.Detail.(type) {
		case models.Item:
			d.Open(item)
		case *models.Item:
			if item != nil {
				d.Open(*item)
			}
		}
	}

	var id dom.ListenerID
	if target == nil {
		id = d.doc.AddEventListener(card.SelectEvent, dom.Bubble, handler)
	} else {
		id = target.AddEventListener(card.SelectEvent, handler)
	}
	d.subs = append(d.subs, subscription{target: target, id: id})
}

// Open shows item in the dialog. Opening an open dialog replaces its
// content and keeps the focus captured by the first open.
func (d *Dialog) Open(item models.Item) {
	if d.destroyed {
		d.logger.Debug("dialog open ignored", "reason", "destroyed", "item", item.ID)
		return
	}
	t := Next(d.state, ActionOpen)

	if d.state == StateClosed {
		d.lastFocus = d.doc.ActiveElement()
	}

	d.render(item)

	d.state = t.To
	d.root.SetHidden(false)
	d.root.SetAttribute("aria-hidden", "false")

	title := strings.TrimSpace(d.title.Text())
	if title == "" {
		title = "Details"
	}
	d.announce("Dialog opened: " + title)

	d.doc.Focus(d.closeBtn)

	if d.trap == 0 {
		d.trap = d.doc.AddEventListener(dom.EventKeyDown, dom.Capture, d.trapKey)
	}

	d.logger.Debug("dialog transition", "transition", t.Name, "item", item.ID)
}

// Close hides the dialog and returns focus to where it was before the
// dialog opened. Closing a closed dialog does nothing.
func (d *Dialog) Close() {
	t := Next(d.state, ActionClose)
	if d.state == StateClosed {
		d.logger.Debug("dialog transition", "transition", t.Name)
		return
	}

	d.state = t.To
	d.root.SetHidden(true)
	d.root.SetAttribute("aria-hidden", "true")

	d.releaseTrap()

	if d.lastFocus != nil && d.doc.Contains(d.lastFocus) {
		if !d.doc.Focus(d.lastFocus) {
			d.doc.Blur()
		}
	} else {
		d.doc.Blur()
	}
	d.lastFocus = nil

	d.announce("Dialog closed")
	d.logger.Debug("dialog transition", "transition", t.Name, "item", d.content.ID)
}

// Destroy closes the dialog and removes every listener it registered.
// The dialog ignores later opens.
func (d *Dialog) Destroy() {
	if d.destroyed {
		return
	}
	d.Close()
	d.releaseTrap()

	for _, s := range d.subs {
		if s.target == nil {
			d.doc.RemoveEventListener(s.id)
		} else {
			s.target.RemoveEventListener(s.id)
		}
	}
	d.subs = nil

	if d.closeSub != 0 {
		d.closeBtn.RemoveEventListener(d.closeSub)
		d.closeSub = 0
	}
	d.destroyed = true
}

func (d *Dialog) releaseTrap() {
	if d.trap == 0 {
		return
	}
	d.doc.RemoveEventListener(d.trap)
	d.trap = 0
}

func (d *Dialog) announce(msg string) {
	d.live.SetText(msg)
	d.logger.Debug("dialog announce", "message", msg)
}

// trapKey runs in the capture phase while the dialog is open
func (d *Dialog) trapKey(ev *dom.Event) {
	switch ev.Key {
	case dom.KeyEscape:
		ev.StopPropagation()
		d.Close()
		return
	case dom.KeyTab:
	default:
		return
	}

	focusables := d.doc.Focusables(d.root)
	if len(focusables) == 0 {
		return
	}
	first, last := focusables[0], focusables[len(focusables)-1]
	active := d.doc.ActiveElement()
	inside := d.root.Contains(active)

	if ev.Shift {
		if active == first || !inside {
			d.doc.Focus(last)
			ev.PreventDefault()
		}
		return
	}
	if active == last || !inside {
		d.doc.Focus(first)
		ev.PreventDefault()
	}
}

// HandleSeasonKey applies a navigation key to the season list when it has
// focus. It reports whether the key was used.
func (d *Dialog) HandleSeasonKey(key string) bool {
	if !d.IsOpen() || d.doc.ActiveElement() != d.seasons {
		return false
	}
	return d.list.handleKey(key)
}

// ScrollSeasons moves the season list cursor by delta rows
func (d *Dialog) ScrollSeasons(delta int) {
	if d.IsOpen() {
		d.list.move(delta)
	}
}
