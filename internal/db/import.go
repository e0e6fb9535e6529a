package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/marcus/podview/internal/catalog"
)

// Import replaces the database contents with cat in a single transaction.
// The database must have been opened with Initialize.
func (db *DB) Import(ctx context.Context, cat *catalog.Catalog) error {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin import: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"seasons", "show_genres", "shows", "genres"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	for _, g := range cat.Genres {
		if _, err := tx.ExecContext(ctx, `INSERT INTO genres (id, title) VALUES (?, ?)`, g.ID, g.Title); err != nil {
			return fmt.Errorf("insert genre %d: %w", g.ID, err)
		}
	}

	for pos, item := range cat.Items {
		if item.ID == "" {
			return fmt.Errorf("show at position %d has no id", pos)
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO shows (id, position, title, image, description, description_format, seasons, updated)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, item.ID, pos, item.Title, item.Image, item.Description, item.Format, item.Seasons, item.Updated)
		if err != nil {
			return fmt.Errorf("insert show %s: %w", item.ID, err)
		}

		for i, ref := range item.Genres {
			var genreID sql.NullInt64
			if ref.IsID() {
				genreID = sql.NullInt64{Int64: int64(ref.ID), Valid: true}
			}
			_, err := tx.ExecContext(ctx, `
				INSERT INTO show_genres (show_id, position, genre_id, genre_name) VALUES (?, ?, ?, ?)
			`, item.ID, i, genreID, ref.Name)
			if err != nil {
				return fmt.Errorf("insert genres for %s: %w", item.ID, err)
			}
		}

		seasons := cat.SeasonDetails(item.ID)
		if len(seasons) == 0 {
			seasons = item.SeasonList
		}
		for i, s := range seasons {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO seasons (show_id, number, title, episodes) VALUES (?, ?, ?, ?)
			`, item.ID, i+1, s.Title, s.Episodes)
			if err != nil {
				return fmt.Errorf("insert seasons for %s: %w", item.ID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit import: %w", err)
	}
	return nil
}
