package catalog

import "github.com/marcus/podview/internal/models"

// Sample returns the built-in catalog used when nothing is configured
func Sample() *Catalog {
	items := []models.Item{
		{
			ID:          "10716",
			Title:       "Something Was Wrong",
			Image:       "https://content.production.cdn.art19.com/images/something-was-wrong.jpeg",
			Description: "An Iris Award-winning docuseries about the discovery and recovery from **traumatic** relationships.",
			Format:      models.FormatMarkdown,
			Genres:      []models.GenreRef{models.GenreID(1), models.GenreID(2)},
			Seasons:     14,
			Updated:     "2022-11-03T07:00:00.000Z",
		},
		{
			ID:          "5675",
			Title:       "This Was Rome",
			Image:       "https://content.production.cdn.art19.com/images/this-was-rome.jpeg",
			Description: "Stories from the ancient city, told one emperor at a time.",
			Genres:      []models.GenreRef{models.GenreID(3)},
			Seasons:     2,
			Updated:     "2021-06-30",
		},
		{
			ID:          "8514",
			Title:       "Laugh Track",
			Image:       "https://content.production.cdn.art19.com/images/laugh-track.jpeg",
			Description: "Working comedians on the jokes that almost did not make it.",
			Genres:      []models.GenreRef{models.GenreID(4), models.GenreID(5)},
			Seasons:     1,
			Updated:     "2023-02-14T09:30:00Z",
		},
		{
			ID:          "9177",
			Title:       "Small Business, Big Ideas",
			Image:       "https://content.production.cdn.art19.com/images/small-business.jpeg",
			Description: "Founders share what worked, what failed, and what they would do again.",
			Genres:      []models.GenreRef{models.GenreID(6), models.GenreID(1)},
			Seasons:     3,
			Updated:     "2024-01-05",
		},
		{
			ID:          "6756",
			Title:       "Night Shift Stories",
			Image:       "https://content.production.cdn.art19.com/images/night-shift.jpeg",
			Description: "Audio fiction for the small hours.",
			Genres:      []models.GenreRef{models.GenreID(7)},
			Seasons:     4,
			Updated:     "2020-10-31",
		},
		{
			ID:          "7212",
			Title:       "Bedtime Builders",
			Genres:      []models.GenreRef{models.GenreID(9), models.GenreName("Education")},
			Seasons:     0,
			Description: "",
		},
	}

	seasons := []models.ShowSeasons{
		{ID: "10716", SeasonDetails: []models.SeasonDetail{
			{Title: "The Undoing", Episodes: 10},
			{Title: "The Unraveling", Episodes: 8},
			{Title: "The Healing", Episodes: 9},
		}},
		{ID: "5675", SeasonDetails: []models.SeasonDetail{
			{Title: "The Republic", Episodes: 12},
			{Title: "The Empire", Episodes: 14},
		}},
		{ID: "8514", SeasonDetails: []models.SeasonDetail{
			{Title: "Pilot Season", Episodes: 6},
		}},
		{ID: "9177", SeasonDetails: []models.SeasonDetail{
			{Title: "Starting Up", Episodes: 10},
			{Title: "Scaling", Episodes: 10},
			{Title: "Selling", Episodes: 7},
		}},
		{ID: "6756", SeasonDetails: []models.SeasonDetail{
			{Title: "Graveyard", Episodes: 13},
			{Title: "Lights Out", Episodes: 13},
			{Title: "Dawn", Episodes: 11},
			{Title: "Encore", Episodes: 5},
		}},
	}

	return New(items, seasons, nil)
}
