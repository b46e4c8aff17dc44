package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// OpenSQLite opens (creating if needed) the database file and its tables.
// Rows are returned in rowid order, which is insertion order.
func OpenSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}
	// sqlite allows one writer at a time.
	db.SetMaxOpenConns(1)

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS motion_graphics (
			id TEXT PRIMARY KEY NOT NULL,
			title TEXT NOT NULL,
			description TEXT NOT NULL,
			category TEXT NOT NULL,
			tags TEXT NOT NULL DEFAULT '[]',
			filename TEXT NOT NULL,
			storage_path TEXT NOT NULL,
			file_size INTEGER NOT NULL,
			duration REAL,
			thumbnail TEXT NOT NULL,
			download_count INTEGER NOT NULL DEFAULT 0,
			created_at TEXT NOT NULL,
			format TEXT NOT NULL
		);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("error creating motion_graphics table: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS templates (
			id TEXT PRIMARY KEY NOT NULL,
			name TEXT NOT NULL,
			kind TEXT NOT NULL,
			category TEXT NOT NULL,
			description TEXT NOT NULL,
			preview_url TEXT NOT NULL DEFAULT '',
			default_config TEXT NOT NULL DEFAULT '{}',
			editable_params TEXT NOT NULL DEFAULT '[]',
			created_at TEXT NOT NULL
		);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("error creating templates table: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS projects (
			id TEXT PRIMARY KEY NOT NULL,
			template_id TEXT NOT NULL,
			name TEXT NOT NULL,
			config TEXT NOT NULL DEFAULT '{}',
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("error creating projects table: %w", err)
	}

	return db, nil
}

func encodeJSON(v interface{}) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...interface{}) error
}
