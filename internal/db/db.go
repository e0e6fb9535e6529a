package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const (
	dbFile = ".podview/catalog.db"
)

// DB wraps the catalog database connection
type DB struct {
	conn *sql.DB
	path string
}

// DefaultPath returns the catalog database location for a base directory
func DefaultPath(baseDir string) string {
	return filepath.Join(baseDir, dbFile)
}

// Open opens an existing catalog database for reading
func Open(path string) (*DB, error) {
	// Check if db exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("catalog database not found at %s: run 'podview db init' first", path)
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// The browser never writes to the catalog
	if _, err := conn.Exec("PRAGMA query_only=ON"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("set query_only: %w", err)
	}

	// Set busy timeout so a concurrent writer does not fail reads outright
	if _, err := conn.Exec("PRAGMA busy_timeout=500"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("set busy timeout: %w", err)
	}

	// query_only is per connection
	conn.SetMaxOpenConns(1)

	return &DB{conn: conn, path: path}, nil
}

// Initialize creates the database file and schema
func Initialize(path string) (*DB, error) {
	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Enable WAL mode so readers do not block an external loader
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	if _, err := conn.Exec(schema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &DB{conn: conn, path: path}, nil
}

// Close closes the database
func (db *DB) Close() error {
	return db.conn.Close()
}

// Path returns the database file path
func (db *DB) Path() string {
	return db.path
}
