package repository

import (
	"context"
	"strings"
	"time"

	"github.com/foxseedlab/speech2srt/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) repository.Repository {
	return &PostgresRepository{pool: pool}
}

func RunPostgresMigration(ctx context.Context, pool *pgxpool.Pool) error {
	for _, s := range postgresMigrationStatements {
		stmt := strings.TrimSpace(s)
		if stmt == "" {
			continue
		}
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func (r *PostgresRepository) CreateJob(ctx context.Context, input repository.CreateJobInput) (*repository.Job, error) {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO jobs (id, storage_uri, language_code, output_srt, output_txt, started_at, status)
		 VALUES ($1, $2, $3, $4, $5, $6, 'running')
		 RETURNING id, storage_uri, language_code, output_srt, output_txt, status, cue_count, started_at, ended_at, error`,
		input.ID, input.StorageURI, input.LanguageCode, input.OutputSRT, input.OutputTXT, input.StartedAt)
	var j repository.Job
	var endedAt *time.Time
	err := row.Scan(&j.ID, &j.StorageURI, &j.LanguageCode, &j.OutputSRT, &j.OutputTXT, &j.Status, &j.CueCount, &j.StartedAt, &endedAt, &j.Error)
	if err != nil {
		return nil, err
	}
	j.EndedAt = endedAt
	return &j, nil
}

func (r *PostgresRepository) CompleteJob(ctx context.Context, input repository.CompleteJobInput) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE jobs SET status = 'completed', cue_count = $2, ended_at = $3 WHERE id = $1`,
		input.JobID, input.CueCount, input.EndedAt)
	return err
}

func (r *PostgresRepository) SkipJob(ctx context.Context, input repository.FinishJobInput) error {
	return r.finish(ctx, repository.JobStatusSkipped, input)
}

func (r *PostgresRepository) FailJob(ctx context.Context, input repository.FinishJobInput) error {
	return r.finish(ctx, repository.JobStatusFailed, input)
}

func (r *PostgresRepository) finish(ctx context.Context, status repository.JobStatus, input repository.FinishJobInput) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE jobs SET status = $2, error = $3, ended_at = $4 WHERE id = $1`,
		input.JobID, string(status), input.Reason, input.EndedAt)
	return err
}

func (r *PostgresRepository) ListRecentJobs(ctx context.Context, limit int) ([]repository.Job, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, storage_uri, language_code, output_srt, output_txt, status, cue_count, started_at, ended_at, error
		 FROM jobs ORDER BY started_at DESC LIMIT $1`,
		limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []repository.Job
	for rows.Next() {
		var j repository.Job
		var endedAt *time.Time
		if err := rows.Scan(&j.ID, &j.StorageURI, &j.LanguageCode, &j.OutputSRT, &j.OutputTXT, &j.Status, &j.CueCount, &j.StartedAt, &endedAt, &j.Error); err != nil {
			return nil, err
		}
		j.EndedAt = endedAt
		list = append(list, j)
	}
	return list, rows.Err()
}

func (r *PostgresRepository) Close() error {
	r.pool.Close()
	return nil
}
