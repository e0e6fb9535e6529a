package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/marcus/podview/internal/catalog"
	"github.com/marcus/podview/internal/models"
)

// Catalog reads every table into an in-memory catalog
func (db *DB) Catalog(ctx context.Context) (*catalog.Catalog, error) {
	items, err := db.ListShows(ctx)
	if err != nil {
		return nil, err
	}

	genres, err := db.ListGenres(ctx)
	if err != nil {
		return nil, err
	}

	c := catalog.New(items, nil, genres)
	for _, it := range items {
		details, err := db.SeasonDetails(ctx, it.ID)
		if err != nil {
			return nil, err
		}
		if len(details) > 0 {
			c.Seasons[it.ID] = details
		}
	}
	return c, nil
}

// ListShows returns shows in catalog order with their genre lists
func (db *DB) ListShows(ctx context.Context) ([]models.Item, error) {
	rows, err := db.conn.QueryContext(ctx, `
		SELECT id, title, image, description, description_format, seasons, updated
		FROM shows ORDER BY position, id`)
	if err != nil {
		return nil, fmt.Errorf("query shows: %w", err)
	}
	defer rows.Close()

	var items []models.Item
	for rows.Next() {
		var it models.Item
		if err := rows.Scan(&it.ID, &it.Title, &it.Image, &it.Description, &it.Format, &it.Seasons, &it.Updated); err != nil {
			return nil, fmt.Errorf("scan show: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate shows: %w", err)
	}

	for i := range items {
		refs, err := db.showGenres(ctx, items[i].ID)
		if err != nil {
			return nil, err
		}
		items[i].Genres = refs
	}
	return items, nil
}

func (db *DB) showGenres(ctx context.Context, showID string) ([]models.GenreRef, error) {
	rows, err := db.conn.QueryContext(ctx, `
		SELECT genre_id, genre_name FROM show_genres
		WHERE show_id = ? ORDER BY position`, showID)
	if err != nil {
		return nil, fmt.Errorf("query show genres: %w", err)
	}
	defer rows.Close()

	var refs []models.GenreRef
	for rows.Next() {
		var id sql.NullInt64
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("scan show genre: %w", err)
		}
		if id.Valid {
			refs = append(refs, models.GenreID(int(id.Int64)))
		} else {
			refs = append(refs, models.GenreName(name))
		}
	}
	return refs, rows.Err()
}

// ListGenres returns the genre label table
func (db *DB) ListGenres(ctx context.Context) ([]models.Genre, error) {
	rows, err := db.conn.QueryContext(ctx, `SELECT id, title FROM genres ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query genres: %w", err)
	}
	defer rows.Close()

	var genres []models.Genre
	for rows.Next() {
		var g models.Genre
		if err := rows.Scan(&g.ID, &g.Title); err != nil {
			return nil, fmt.Errorf("scan genre: %w", err)
		}
		genres = append(genres, g)
	}
	return genres, rows.Err()
}

// SeasonDetails returns a show's seasons in order. A show without seasons
// yields an empty list.
func (db *DB) SeasonDetails(ctx context.Context, showID string) ([]models.SeasonDetail, error) {
	rows, err := db.conn.QueryContext(ctx, `
		SELECT title, episodes FROM seasons
		WHERE show_id = ? ORDER BY number`, showID)
	if err != nil {
		return nil, fmt.Errorf("query seasons: %w", err)
	}
	defer rows.Close()

	details := []models.SeasonDetail{}
	for rows.Next() {
		var s models.SeasonDetail
		if err := rows.Scan(&s.Title, &s.Episodes); err != nil {
			return nil, fmt.Errorf("scan season: %w", err)
		}
		details = append(details, s)
	}
	return details, rows.Err()
}
