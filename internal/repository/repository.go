package repository

import (
	"context"
	"time"
)

type CreateJobInput struct {
	ID           string
	StorageURI   string
	LanguageCode string
	OutputSRT    string
	OutputTXT    string
	StartedAt    time.Time
}

type CompleteJobInput struct {
	JobID    string
	CueCount int
	EndedAt  time.Time
}

type FinishJobInput struct {
	JobID   string
	Reason  string
	EndedAt time.Time
}

type JobRepository interface {
	CreateJob(ctx context.Context, input CreateJobInput) (*Job, error)
	CompleteJob(ctx context.Context, input CompleteJobInput) error
	SkipJob(ctx context.Context, input FinishJobInput) error
	FailJob(ctx context.Context, input FinishJobInput) error
	ListRecentJobs(ctx context.Context, limit int) ([]Job, error)
}

type Repository interface {
	JobRepository
	Close() error
}
