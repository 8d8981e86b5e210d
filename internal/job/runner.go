package job

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path"
	"time"

	"github.com/foxseedlab/speech2srt/internal/config"
	"github.com/foxseedlab/speech2srt/internal/discord"
	"github.com/foxseedlab/speech2srt/internal/repository"
	"github.com/foxseedlab/speech2srt/internal/storage"
	"github.com/foxseedlab/speech2srt/internal/subtitle"
	"github.com/foxseedlab/speech2srt/internal/transcriber"
	"github.com/foxseedlab/speech2srt/internal/webhook"
	"github.com/google/uuid"
)

var ErrOutputExists = errors.New("output already exists")

type Result struct {
	JobID       string
	Status      repository.JobStatus
	Outputs     Outputs
	SRTLocation string
	TXTLocation string
}

type Runner struct {
	cfg         *config.Config
	repo        repository.Repository
	transcriber transcriber.Transcriber
	store       storage.BlobStore
	webhook     webhook.Sender
	discord     discord.Client

	now   func() time.Time
	newID func() string
}

func NewRunner(cfg *config.Config, repo repository.Repository, stt transcriber.Transcriber, store storage.BlobStore, wh webhook.Sender, dc discord.Client) *Runner {
	return &Runner{
		cfg:         cfg,
		repo:        repo,
		transcriber: stt,
		store:       store,
		webhook:     wh,
		discord:     dc,
		now:         time.Now,
		newID:       uuid.NewString,
	}
}

func (r *Runner) segmenter() subtitle.Segmenter {
	return subtitle.Segmenter{MaxChars: r.cfg.MaxChars, FlushTrailing: r.cfg.FlushTrailingCue}
}

// Run executes one recognize-segment-upload job. Existing outputs make the
// job a no-op reported as skipped rather than an error. Outputs are written
// both or not at all.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	base := r.cfg.OutputBase()
	srtName, txtName := base+".srt", base+".txt"
	res := &Result{
		JobID:       r.newID(),
		SRTLocation: r.store.Location(srtName),
		TXTLocation: r.store.Location(txtName),
	}
	startedAt := r.now()
	log := slog.With("job_id", res.JobID, "storage_uri", r.cfg.StorageURI, "language", r.cfg.LanguageCode)

	if _, err := r.repo.CreateJob(ctx, repository.CreateJobInput{
		ID:           res.JobID,
		StorageURI:   r.cfg.StorageURI,
		LanguageCode: r.cfg.LanguageCode,
		OutputSRT:    res.SRTLocation,
		OutputTXT:    res.TXTLocation,
		StartedAt:    startedAt,
	}); err != nil {
		log.Error("failed to record job", "error", err)
		return nil, fmt.Errorf("record job: %w", err)
	}
	log.Info("job started", "output_srt", res.SRTLocation, "output_txt", res.TXTLocation)

	if err := r.checkOutputsAbsent(ctx, srtName, txtName); err != nil {
		if errors.Is(err, ErrOutputExists) {
			log.Info("skipped job as output path is not empty", "reason", err.Error())
			res.Status = repository.JobStatusSkipped
			r.finish(ctx, log, r.repo.SkipJob, res.JobID, err)
			return res, nil
		}
		return nil, r.fail(ctx, log, res.JobID, err)
	}

	if r.cfg.MaxChars <= 0 {
		log.Warn("max chars is not positive; cues break on punctuation only", "max_chars", r.cfg.MaxChars)
	}

	results, err := r.recognize(ctx)
	if err != nil {
		return nil, r.fail(ctx, log, res.JobID, err)
	}
	out, err := BuildOutputs(results, r.segmenter())
	if err != nil {
		return nil, r.fail(ctx, log, res.JobID, err)
	}
	res.Outputs = out
	log.Info("transcript segmented", "results", len(results), "cue_count", len(out.Cues))

	if err := r.writeOutputs(ctx, srtName, txtName, out); err != nil {
		return nil, r.fail(ctx, log, res.JobID, err)
	}

	endedAt := r.now()
	if err := r.repo.CompleteJob(context.WithoutCancel(ctx), repository.CompleteJobInput{
		JobID:    res.JobID,
		CueCount: len(out.Cues),
		EndedAt:  endedAt,
	}); err != nil {
		log.Error("failed to complete job record", "error", err)
	}
	res.Status = repository.JobStatusCompleted
	log.Info("job completed", "cue_count", len(out.Cues))

	r.notify(ctx, res, startedAt, endedAt)
	return res, nil
}

func (r *Runner) checkOutputsAbsent(ctx context.Context, names ...string) error {
	for _, name := range names {
		exists, err := r.store.Exists(ctx, name)
		if err != nil {
			return fmt.Errorf("check output %s: %w", r.store.Location(name), err)
		}
		if exists {
			return fmt.Errorf("%w: %s", ErrOutputExists, r.store.Location(name))
		}
	}
	return nil
}

func (r *Runner) recognize(ctx context.Context) ([]transcriber.Result, error) {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.RecognizeTimeout)
	defer cancel()
	results, err := r.transcriber.Recognize(ctx, transcriber.RecognizeRequest{
		AudioURI:        r.cfg.StorageURI,
		LanguageCode:    r.cfg.LanguageCode,
		SampleRateHertz: r.cfg.SampleRateHertz,
		Encoding:        r.cfg.AudioEncoding,
	})
	if err != nil {
		return nil, fmt.Errorf("recognize %s: %w", r.cfg.StorageURI, err)
	}
	return results, nil
}

func (r *Runner) writeOutputs(ctx context.Context, srtName, txtName string, out Outputs) error {
	if err := r.store.Write(ctx, srtName, out.SRT, srtContentType); err != nil {
		return fmt.Errorf("write %s: %w", r.store.Location(srtName), err)
	}
	if err := r.store.Write(ctx, txtName, out.TXT, txtContentType); err != nil {
		if delErr := r.store.Delete(context.WithoutCancel(ctx), srtName); delErr != nil {
			slog.Error("failed to roll back subtitle output", "error", delErr, "output", r.store.Location(srtName))
		}
		return fmt.Errorf("write %s: %w", r.store.Location(txtName), err)
	}
	return nil
}

func (r *Runner) fail(ctx context.Context, log *slog.Logger, jobID string, err error) error {
	log.Error("job failed", "error", err)
	r.finish(ctx, log, r.repo.FailJob, jobID, err)
	return err
}

func (r *Runner) finish(ctx context.Context, log *slog.Logger, record func(context.Context, repository.FinishJobInput) error, jobID string, reason error) {
	if err := record(context.WithoutCancel(ctx), repository.FinishJobInput{
		JobID:   jobID,
		Reason:  reason.Error(),
		EndedAt: r.now(),
	}); err != nil {
		log.Error("failed to update job record", "error", err)
	}
}

func (r *Runner) notify(ctx context.Context, res *Result, startedAt, endedAt time.Time) {
	ctx = context.WithoutCancel(ctx)
	if err := r.webhook.SendJobResult(ctx, buildJobWebhookPayload(r.cfg, res, startedAt, endedAt)); err != nil {
		slog.Error("failed to send job webhook", "error", err, "job_id", res.JobID)
	}
	if r.cfg.DiscordChannelID == "" {
		return
	}
	if err := r.discord.SendChannelMessageWithFiles(discord.FileMessage{
		ChannelID: r.cfg.DiscordChannelID,
		Content:   completionMessage(r.cfg.StorageURI, r.cfg.LanguageCode, len(res.Outputs.Cues)),
		Files: []discord.File{
			{Name: path.Base(res.SRTLocation), ContentType: srtContentType, Body: res.Outputs.SRT},
			{Name: path.Base(res.TXTLocation), ContentType: txtContentType, Body: res.Outputs.TXT},
		},
	}); err != nil {
		slog.Error("failed to post job result to discord", "error", err, "job_id", res.JobID)
	}
}
