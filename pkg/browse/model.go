// Package browse is the terminal catalog browser: a grid of preview cards
// over a document model, with the detail dialog layered on top.
package browse

import (
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/podview/internal/catalog"
	"github.com/marcus/podview/internal/models"
	"github.com/marcus/podview/pkg/browse/card"
	"github.com/marcus/podview/pkg/browse/dom"
	"github.com/marcus/podview/pkg/browse/modal"
	"github.com/marcus/podview/pkg/browse/mouse"
)

// GridID is the id of the element holding the cards
const GridID = "grid"

// Options configures the browser
type Options struct {
	Columns int // fixed column count, 0 fits the width
	Logger  *slog.Logger
}

// Model is the bubbletea model for the browser
type Model struct {
	doc     *dom.Document
	grid    *dom.Element
	cards   []*card.Card
	dialog  *modal.Dialog
	catalog *catalog.Catalog

	keys   KeyMap
	help   help.Model
	filter textinput.Model
	mouse  *mouse.Handler
	logger *slog.Logger

	notice    string // transient status text, replaced by the next key
	filtering bool
	columns   int
	scrollRow int
	width     int
	height    int
}

// New builds the document for cat and binds a dialog to it
func New(cat *catalog.Catalog, opts Options) (Model, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	doc := dom.New()
	grid := doc.CreateElement(dom.KindGeneric, GridID)
	grid.SetAttribute("role", "list")
	doc.Body().AppendChild(grid)

	labels := cat.Resolver()
	var cards []*card.Card
	if cat != nil {
		for i := range cat.Items {
			c := card.New(doc, fmt.Sprintf("card-%d", i), labels)
			c.SetData(&cat.Items[i])
			c.Mount(grid)
			cards = append(cards, c)
		}
	}

	modal.Mount(doc)
	dialog, err := modal.New(doc,
		modal.WithSource(cat),
		modal.WithLabels(labels),
		modal.WithLogger(logger),
	)
	if err != nil {
		return Model{}, fmt.Errorf("create dialog: %w", err)
	}
	dialog.Listen(grid)

	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "filter by title"
	ti.CharLimit = 80

	m := Model{
		doc:     doc,
		grid:    grid,
		cards:   cards,
		dialog:  dialog,
		catalog: cat,
		keys:    DefaultKeyMap,
		help:    help.New(),
		filter:  ti,
		mouse:   mouse.NewHandler(),
		logger:  logger,
		columns: opts.Columns,
		width:   80,
		height:  24,
	}
	if len(cards) > 0 {
		doc.Focus(cards[0].Element())
	}
	return m, nil
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Dialog returns the browser's dialog controller
func (m Model) Dialog() *modal.Dialog { return m.dialog }

// Document returns the browser's document
func (m Model) Document() *dom.Document { return m.doc }

// Cards returns the cards in grid order
func (m Model) Cards() []*card.Card { return m.cards }

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.filter.Width = max(10, msg.Width-4)
		m.ensureFocusVisible()
		return m, nil

	case tea.KeyMsg:
		m.notice = ""
		return m.handleKey(msg)

	case copiedMsg:
		if msg.err != nil {
			m.notice = "Copy failed: " + msg.err.Error()
			m.logger.Debug("clipboard write failed", "err", msg.err)
		} else {
			m.notice = "Copied " + msg.title
		}
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Force) {
		return m, tea.Quit
	}
	if m.filtering {
		return m.handleFilterKey(msg)
	}

	open := m.dialog.IsOpen()
	if open {
		if key.Matches(msg, m.keys.Copy) {
			c := m.dialog.Content()
			return m, copyCmd(formatShowAsMarkdown(c), c.Title)
		}
		if m.dialog.HandleSeasonKey(msg.String()) {
			return m, nil
		}
	} else {
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Filter):
			m.filtering = true
			return m, m.filter.Focus()
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Left):
			m.moveFocus(-1)
			return m, nil
		case key.Matches(msg, m.keys.Right):
			m.moveFocus(1)
			return m, nil
		case key.Matches(msg, m.keys.Up):
			m.moveFocus(-m.cols())
			return m, nil
		case key.Matches(msg, m.keys.Down):
			m.moveFocus(m.cols())
			return m, nil
		}
	}

	// Everything else goes through the document so the dialog's trap sees
	// it before any other handler
	if name, shift, ok := domKey(msg); ok {
		m.doc.DispatchKey(name, shift)
	}
	m.ensureFocusVisible()
	return m, nil
}

func (m Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.filtering = false
		m.filter.Blur()
		m.filter.SetValue("")
		m.applyFilter("")
		return m, nil
	case tea.KeyEnter:
		m.filtering = false
		m.filter.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.applyFilter(m.filter.Value())
	return m, cmd
}

// applyFilter hides the cards whose title does not match query
func (m *Model) applyFilter(query string) {
	keep := make(map[string]bool)
	for _, item := range m.catalog.Filter(query) {
		keep[itemKey(item)] = true
	}
	for i, c := range m.cards {
		c.SetHidden(!keep[itemKey(m.catalog.Items[i])])
	}

	m.scrollRow = 0
	if active := m.doc.ActiveElement(); active == m.doc.Body() || active.Hidden() {
		if vis := m.visibleCards(); len(vis) > 0 {
			m.doc.Focus(vis[0].Element())
		}
	}
	m.logger.Debug("filter applied", "query", query, "visible", len(m.visibleCards()))
}

func itemKey(item models.Item) string {
	return item.ID + "\x00" + item.Title
}

// visibleCards returns the cards not hidden by the filter
func (m Model) visibleCards() []*card.Card {
	var out []*card.Card
	for _, c := range m.cards {
		if !c.Hidden() {
			out = append(out, c)
		}
	}
	return out
}

// focusedIndex returns the position of the focused card among the
// visible cards, or -1
func (m Model) focusedIndex(vis []*card.Card) int {
	active := m.doc.ActiveElement()
	for i, c := range vis {
		if c.Element() == active {
			return i
		}
	}
	return -1
}

// moveFocus moves card focus by delta positions in the visible grid
func (m *Model) moveFocus(delta int) {
	vis := m.visibleCards()
	if len(vis) == 0 {
		return
	}
	cur := m.focusedIndex(vis)
	next := 0
	if cur >= 0 {
		next = cur + delta
		if next < 0 || next >= len(vis) {
			next = cur
		}
	}
	m.doc.Focus(vis[next].Element())
	m.ensureFocusVisible()
}

// ensureFocusVisible scrolls the grid so the focused card is on screen
func (m *Model) ensureFocusVisible() {
	vis := m.visibleCards()
	idx := m.focusedIndex(vis)
	if idx < 0 {
		return
	}
	row := idx / m.cols()
	rows := m.visibleRows()
	if row < m.scrollRow {
		m.scrollRow = row
	} else if row >= m.scrollRow+rows {
		m.scrollRow = row - rows + 1
	}
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	action := m.mouse.HandleMouse(msg)

	switch action.Type {
	case mouse.ActionClick:
		if action.Region == nil {
			return m, nil
		}
		id := action.Region.ID
		if m.dialog.IsOpen() {
			switch id {
			case modal.IDClose:
				m.doc.Click(m.doc.GetElementByID(modal.IDClose))
			case modal.IDSeasons:
				m.doc.Focus(m.doc.GetElementByID(modal.IDSeasons))
			case modal.RegionBackdrop:
				m.dialog.Close()
			}
			return m, nil
		}
		if el := m.doc.GetElementByID(id); el != nil && m.grid.Contains(el) {
			m.doc.Focus(el)
			m.doc.Click(el)
		}

	case mouse.ActionScrollUp, mouse.ActionScrollDown:
		delta := 1
		if action.Type == mouse.ActionScrollUp {
			delta = -1
		}
		if m.dialog.IsOpen() {
			m.dialog.ScrollSeasons(delta)
			return m, nil
		}
		total := (len(m.visibleCards()) + m.cols() - 1) / m.cols()
		m.scrollRow = clamp(m.scrollRow+delta, 0, max(0, total-m.visibleRows()))
	}
	return m, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
