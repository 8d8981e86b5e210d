package repository

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/foxseedlab/speech2srt/internal/repository"
	_ "modernc.org/sqlite"
)

// Fixed-width so that text ordering matches time ordering.
const sqliteTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

type SQLiteRepository struct {
	db *sql.DB
}

// OpenSQLite opens (creating when needed) the job database at path and
// applies migrations.
func OpenSQLite(ctx context.Context, path string) (*SQLiteRepository, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.ExecContext(ctx, pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}
	for _, stmt := range sqliteMigrationStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply migration: %w", err)
		}
	}
	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) CreateJob(ctx context.Context, input repository.CreateJobInput) (*repository.Job, error) {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO jobs (id, storage_uri, language_code, output_srt, output_txt, started_at, status)
		 VALUES (?, ?, ?, ?, ?, ?, 'running')`,
		input.ID, input.StorageURI, input.LanguageCode, input.OutputSRT, input.OutputTXT, formatTime(input.StartedAt))
	if err != nil {
		return nil, err
	}
	return &repository.Job{
		ID:           input.ID,
		StorageURI:   input.StorageURI,
		LanguageCode: input.LanguageCode,
		OutputSRT:    input.OutputSRT,
		OutputTXT:    input.OutputTXT,
		Status:       repository.JobStatusRunning,
		StartedAt:    input.StartedAt,
	}, nil
}

func (r *SQLiteRepository) CompleteJob(ctx context.Context, input repository.CompleteJobInput) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE jobs SET status = 'completed', cue_count = ?, ended_at = ? WHERE id = ?`,
		input.CueCount, formatTime(input.EndedAt), input.JobID)
	return err
}

func (r *SQLiteRepository) SkipJob(ctx context.Context, input repository.FinishJobInput) error {
	return r.finish(ctx, repository.JobStatusSkipped, input)
}

func (r *SQLiteRepository) FailJob(ctx context.Context, input repository.FinishJobInput) error {
	return r.finish(ctx, repository.JobStatusFailed, input)
}

func (r *SQLiteRepository) finish(ctx context.Context, status repository.JobStatus, input repository.FinishJobInput) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE jobs SET status = ?, error = ?, ended_at = ? WHERE id = ?`,
		string(status), input.Reason, formatTime(input.EndedAt), input.JobID)
	return err
}

func (r *SQLiteRepository) ListRecentJobs(ctx context.Context, limit int) ([]repository.Job, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, storage_uri, language_code, output_srt, output_txt, status, cue_count, started_at, ended_at, error
		 FROM jobs ORDER BY started_at DESC LIMIT ?`,
		limit)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = rows.Close()
	}()
	var list []repository.Job
	for rows.Next() {
		var (
			j         repository.Job
			status    string
			startedAt string
			endedAt   sql.NullString
		)
		if err := rows.Scan(&j.ID, &j.StorageURI, &j.LanguageCode, &j.OutputSRT, &j.OutputTXT, &status, &j.CueCount, &startedAt, &endedAt, &j.Error); err != nil {
			return nil, err
		}
		j.Status = repository.JobStatus(status)
		if j.StartedAt, err = parseTime(startedAt); err != nil {
			return nil, err
		}
		if endedAt.Valid {
			t, err := parseTime(endedAt.String)
			if err != nil {
				return nil, err
			}
			j.EndedAt = &t
		}
		list = append(list, j)
	}
	return list, rows.Err()
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func formatTime(t time.Time) string {
	return t.UTC().Format(sqliteTimeLayout)
}

func parseTime(value string) (time.Time, error) {
	t, err := time.Parse(sqliteTimeLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse stored time %q: %w", value, err)
	}
	return t, nil
}
