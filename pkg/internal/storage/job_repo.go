package storage

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"
)

// Job is one job record in the state database. FullName is the
// folder-qualified name the server reports, like "folder/inner".
type Job struct {
	FullName      string
	Enabled       bool
	LastSeenBuild int64
	LastSyncTime  *time.Time
	CreatedAt     time.Time
}

// JobRepo provides access to the job records.
type JobRepo struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewJobRepo returns a repository on top of the given database.
func NewJobRepo(db *sql.DB, logger *slog.Logger) *JobRepo {
	return &JobRepo{
		db:     db,
		logger: logger.With("component", "job_repo"),
	}
}

// ListEnabled returns all jobs that were present during the last sync.
func (r *JobRepo) ListEnabled() ([]Job, error) {
	rows, err := r.db.Query(`
		SELECT full_name, enabled, last_seen_build, last_sync_time, created_at
		FROM jobs
		WHERE enabled = 1
		ORDER BY full_name`)

	if err != nil {
		return nil, fmt.Errorf("failed to query jobs: %w", err)
	}

	defer rows.Close()

	var jobs []Job

	for rows.Next() {
		var (
			job       Job
			syncTime  sql.NullInt64
			createdAt sql.NullInt64
		)

		if err := rows.Scan(
			&job.FullName,
			&job.Enabled,
			&job.LastSeenBuild,
			&syncTime,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}

		if syncTime.Valid {
			t := time.Unix(syncTime.Int64, 0)
			job.LastSyncTime = &t
		}

		if createdAt.Valid {
			job.CreatedAt = time.Unix(createdAt.Int64, 0)
		}

		jobs = append(jobs, job)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate jobs: %w", err)
	}

	return jobs, nil
}

// UpdateLastSeen records the highest build number observed for a job.
func (r *JobRepo) UpdateLastSeen(fullName string, buildNumber int64) error {
	result, err := r.db.Exec(
		`UPDATE jobs SET last_seen_build = ? WHERE full_name = ?`,
		buildNumber,
		fullName,
	)

	if err != nil {
		return fmt.Errorf("failed to update last seen build: %w", err)
	}

	affected, err := result.RowsAffected()

	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}

	if affected == 0 {
		r.logger.Warn("job missing while recording build",
			"job", fullName,
		)
	}

	return nil
}

// Sync reconciles the stored job list with the names fetched from the
// server. New jobs get inserted, vanished jobs get disabled, and jobs
// that are still present get their sync time refreshed. Changes are
// recorded in the audit table.
func (r *JobRepo) Sync(fullNames []string) error {
	tx, err := r.db.Begin()

	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		_ = tx.Rollback()
	}()

	present := make(map[string]bool, len(fullNames))

	for _, name := range fullNames {
		present[name] = true
	}

	existing, err := listEnabledNames(tx)

	if err != nil {
		return fmt.Errorf("failed to list existing jobs: %w", err)
	}

	now := time.Now().Unix()

	var added, removed, updated int

	for _, name := range fullNames {
		if jobExists(tx, name) {
			if _, err := tx.Exec(
				`UPDATE jobs SET enabled = 1, last_sync_time = ? WHERE full_name = ?`,
				now,
				name,
			); err != nil {
				return fmt.Errorf("failed to refresh job %s: %w", name, err)
			}

			updated++
			continue
		}

		if _, err := tx.Exec(
			`INSERT INTO jobs(full_name, enabled, last_seen_build, last_sync_time, created_at)
			VALUES (?, 1, 0, ?, ?)`,
			name,
			now,
			now,
		); err != nil {
			return fmt.Errorf("failed to insert job %s: %w", name, err)
		}

		if err := recordChange(tx, name, "ADD", now); err != nil {
			return fmt.Errorf("failed to record change for %s: %w", name, err)
		}

		added++
	}

	for _, name := range existing {
		if present[name] {
			continue
		}

		if _, err := tx.Exec(
			`UPDATE jobs SET enabled = 0 WHERE full_name = ?`,
			name,
		); err != nil {
			return fmt.Errorf("failed to disable job %s: %w", name, err)
		}

		if err := recordChange(tx, name, "REMOVE", now); err != nil {
			return fmt.Errorf("failed to record change for %s: %w", name, err)
		}

		removed++
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	r.logger.Info("synced job list",
		"added", added,
		"removed", removed,
		"updated", updated,
		"total", len(fullNames),
	)

	return nil
}

func listEnabledNames(tx *sql.Tx) ([]string, error) {
	rows, err := tx.Query(`SELECT full_name FROM jobs WHERE enabled = 1`)

	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var names []string

	for rows.Next() {
		var name string

		if err := rows.Scan(&name); err != nil {
			return nil, err
		}

		names = append(names, name)
	}

	return names, rows.Err()
}

func jobExists(tx *sql.Tx, fullName string) bool {
	var one int

	err := tx.QueryRow(
		`SELECT 1 FROM jobs WHERE full_name = ? LIMIT 1`,
		fullName,
	).Scan(&one)

	return err == nil
}

func recordChange(tx *sql.Tx, fullName, action string, eventTime int64) error {
	_, err := tx.Exec(
		`INSERT INTO job_changes(full_name, action, event_time) VALUES (?, ?, ?)`,
		fullName,
		action,
		eventTime,
	)

	return err
}
