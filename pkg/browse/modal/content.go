package modal

import (
	"fmt"
	"html"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/marcus/podview/internal/dateparse"
	"github.com/marcus/podview/internal/models"
	"github.com/marcus/podview/internal/output"
	"github.com/marcus/podview/pkg/browse/dom"
)

// render populates the dialog anchors from item. Missing fields render
// empty.
func (d *Dialog) render(item models.Item) {
	alt := item.Title
	if alt == "" {
		alt = "Podcast cover"
	}
	d.image.SetAttribute("src", item.Image)
	d.image.SetAttribute("alt", alt)

	d.title.SetText(item.Title)

	desc, format := d.description(item)
	d.desc.SetText(desc)

	names := d.labels.Labels(item.Genres)
	tags := make([]*dom.Element, 0, len(names))
	for i, name := range names {
		tag := d.doc.CreateElement(dom.KindText, fmt.Sprintf("%s-%d", IDGenres, i))
		tag.SetAttribute("class", "tag")
		tag.SetText(name)
		tags = append(tags, tag)
	}
	d.genres.ReplaceChildren(tags...)

	updated := dateparse.Format(item.Updated)
	d.updated.SetText(updated)

	details := d.seasonDetails(item)
	lines := make([]SeasonLine, 0, len(details))
	rows := make([]*dom.Element, 0, len(details))
	for i, s := range details {
		line := SeasonLine{
			Label:    output.FormatSeason(i+1, s.Title),
			Episodes: output.FormatEpisodes(s.Episodes),
		}
		lines = append(lines, line)

		row := d.doc.CreateElement(dom.KindListItem, fmt.Sprintf("%s-%d", IDSeasons, i))
		row.SetAttribute("class", "season-item")
		row.SetText(line.Label + " " + line.Episodes)
		rows = append(rows, row)
	}
	d.seasons.ReplaceChildren(rows...)
	d.list.reset(lines)

	d.content = Content{
		ID:          item.ID,
		Image:       item.Image,
		Alt:         alt,
		Title:       item.Title,
		Description: desc,
		Format:      string(format),
		Genres:      names,
		Updated:     updated,
		Seasons:     lines,
	}
}

// seasonDetails looks the item up in the season source, falling back to
// the details carried by the item itself
func (d *Dialog) seasonDetails(item models.Item) []models.SeasonDetail {
	if d.source != nil && item.ID != "" {
		if details := d.source.SeasonDetails(item.ID); len(details) > 0 {
			return details
		}
	}
	return item.SeasonList
}

// description returns the text the dialog shows and how the view should
// lay it out. Text and markdown are kept as written, minus terminal escape
// sequences. HTML is reduced to its text.
func (d *Dialog) description(item models.Item) (string, models.DescriptionFormat) {
	s := ansi.Strip(item.Description)
	switch item.Format {
	case models.FormatMarkdown:
		return s, models.FormatMarkdown
	case models.FormatHTML:
		return strings.TrimSpace(html.UnescapeString(d.sanitizer.Sanitize(s))), models.FormatHTML
	}
	return s, models.FormatText
}
