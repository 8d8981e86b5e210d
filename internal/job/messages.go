package job

import (
	"fmt"
	"time"

	"github.com/foxseedlab/speech2srt/internal/config"
	"github.com/foxseedlab/speech2srt/internal/webhook"
)

const completionMessageFormat = ":page_facing_up: **Subtitles ready** for `%s` (%s, %d cues)"

func completionMessage(storageURI, language string, cueCount int) string {
	return fmt.Sprintf(completionMessageFormat, storageURI, language, cueCount)
}

func buildJobWebhookPayload(cfg *config.Config, res *Result, startedAt, endedAt time.Time) webhook.JobWebhookPayload {
	durationSeconds := int64(endedAt.Sub(startedAt).Seconds())
	if durationSeconds < 0 {
		durationSeconds = 0
	}
	return webhook.JobWebhookPayload{
		SchemaVersion: webhook.JobWebhookSchemaVersion,
		JobID:         res.JobID,
		StorageURI:    cfg.StorageURI,
		LanguageCode:  cfg.LanguageCode,
		Outputs: webhook.JobWebhookOutputs{
			SRT: res.SRTLocation,
			TXT: res.TXTLocation,
		},
		CueCount:        len(res.Outputs.Cues),
		StartAt:         startedAt.UTC().Format(time.RFC3339),
		EndAt:           endedAt.UTC().Format(time.RFC3339),
		DurationSeconds: durationSeconds,
		Transcript:      string(res.Outputs.TXT),
	}
}
