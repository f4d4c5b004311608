package db

import (
	"database/sql"
	"fmt"
)

// Migrate creates the session schema.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS destinations (
		id         TEXT PRIMARY KEY,
		position   INTEGER NOT NULL UNIQUE,
		name       TEXT NOT NULL,
		country    TEXT NOT NULL,
		start_date TEXT,
		end_date   TEXT,
		budget     REAL NOT NULL DEFAULT 0 CHECK(budget >= 0),
		status     TEXT NOT NULL DEFAULT 'planned'
		           CHECK(status IN ('planned','booked','completed')),
		notes      TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE TABLE IF NOT EXISTS destination_activities (
		destination_id TEXT NOT NULL REFERENCES destinations(id) ON DELETE CASCADE,
		position       INTEGER NOT NULL,
		label          TEXT NOT NULL,
		PRIMARY KEY (destination_id, position)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_destinations_status ON destinations(status)`,
}
