package repository

import (
	"context"

	"github.com/foxseedlab/speech2srt/internal/repository"
)

// NoopRepository is used when no DATABASE_URL is configured; job history is
// simply not kept.
type NoopRepository struct{}

func NewNoopRepository() repository.Repository {
	return NoopRepository{}
}

func (NoopRepository) CreateJob(_ context.Context, input repository.CreateJobInput) (*repository.Job, error) {
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

func (NoopRepository) CompleteJob(context.Context, repository.CompleteJobInput) error { return nil }
func (NoopRepository) SkipJob(context.Context, repository.FinishJobInput) error       { return nil }
func (NoopRepository) FailJob(context.Context, repository.FinishJobInput) error       { return nil }
func (NoopRepository) ListRecentJobs(context.Context, int) ([]repository.Job, error)  { return nil, nil }
func (NoopRepository) Close() error                                                   { return nil }
