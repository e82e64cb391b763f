package storage

import (
	"database/sql"
	"fmt"
	"log/slog"

	_ "modernc.org/sqlite" // SQLite driver
)

// NewSQLite opens the local state database and prepares its schema.
func NewSQLite(path string, logger *slog.Logger) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)

	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite works best with a single writing connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA temp_store = MEMORY",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return nil, fmt.Errorf("failed to set %s: %w", pragma, err)
		}
	}

	if err := createSchema(db); err != nil {
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	logger.Info("opened state database",
		"path", path,
	)

	return db, nil
}

func createSchema(db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS jobs (
			full_name       TEXT PRIMARY KEY,
			enabled         INTEGER NOT NULL DEFAULT 1,
			last_seen_build INTEGER NOT NULL DEFAULT 0,
			last_sync_time  INTEGER,
			created_at      INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS job_changes (
			full_name  TEXT,
			action     TEXT,
			event_time INTEGER
		)`,
		"CREATE INDEX IF NOT EXISTS idx_jobs_enabled ON jobs(enabled)",
		"CREATE INDEX IF NOT EXISTS idx_jobs_enabled_lastseen ON jobs(enabled, last_seen_build)",
		"CREATE INDEX IF NOT EXISTS idx_job_changes_time ON job_changes(event_time)",
	}

	for _, statement := range statements {
		if _, err := db.Exec(statement); err != nil {
			return err
		}
	}

	return nil
}
