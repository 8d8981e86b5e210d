package repository

import "time"

type JobStatus string

const (
	JobStatusRunning   JobStatus = "running"
	JobStatusCompleted JobStatus = "completed"
	JobStatusFailed    JobStatus = "failed"
	JobStatusSkipped   JobStatus = "skipped"
)

type Job struct {
	ID           string
	StorageURI   string
	LanguageCode string
	OutputSRT    string
	OutputTXT    string
	Status       JobStatus
	CueCount     int
	StartedAt    time.Time
	EndedAt      *time.Time
	Error        string
}
