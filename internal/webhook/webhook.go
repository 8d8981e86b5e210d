package webhook

import "context"

const JobWebhookSchemaVersion = "2026-10-01"

type JobWebhookOutputs struct {
	SRT string `json:"srt"`
	TXT string `json:"txt"`
}

type JobWebhookPayload struct {
	SchemaVersion   string            `json:"schema_version"`
	JobID           string            `json:"job_id"`
	StorageURI      string            `json:"storage_uri"`
	LanguageCode    string            `json:"language_code"`
	Outputs         JobWebhookOutputs `json:"outputs"`
	CueCount        int               `json:"cue_count"`
	StartAt         string            `json:"start_at"`
	EndAt           string            `json:"end_at"`
	DurationSeconds int64             `json:"duration_seconds"`
	Transcript      string            `json:"transcript"`
}

type Sender interface {
	SendJobResult(ctx context.Context, payload JobWebhookPayload) error
}
