package main

import (
	"fmt"
	"io"
	"log/slog"

	transcriberimpl "github.com/foxseedlab/speech2srt/external/transcriber"
	"github.com/foxseedlab/speech2srt/internal/config"
	"github.com/foxseedlab/speech2srt/internal/job"
	"github.com/foxseedlab/speech2srt/internal/repository"
	"github.com/foxseedlab/speech2srt/internal/storage"
	"github.com/samber/do/v2"
	"github.com/spf13/cobra"
)

type runFlags struct {
	segmentFlags
	storageURI string
	output     string
	outputName string
	sampleRate int
	encoding   string
}

func newRunCommand(cc *commandContext) *cobra.Command {
	var flags runFlags

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Recognize an audio file and upload .srt and .txt outputs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := cc.cfg
			flags.apply(cmd, cfg)
			if err := cfg.ValidateForJob(); err != nil {
				return fmt.Errorf("config validation failed: %w", err)
			}
			slog.Info("startup: configuration loaded", "env", cfg.Env, "storage_uri", cfg.StorageURI, "output_storage", cfg.OutputStorage)

			injector := setupDI(cfg, transcriberimpl.RegisterDI)
			return runJob(cmd, injector)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&flags.storageURI, "input", "i", "", "gs:// URI of the audio file (overrides STORAGE_URI)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output location, gs://bucket/prefix or a directory (overrides OUTPUT_STORAGE)")
	cmd.Flags().StringVar(&flags.outputName, "output-name", "", "Output base name without extension (overrides OUTPUT_BASE_NAME)")
	cmd.Flags().IntVar(&flags.sampleRate, "sample-rate", 0, "Sample rate in hertz (overrides SAMPLE_RATE_HERTZ)")
	cmd.Flags().StringVar(&flags.encoding, "encoding", "", "auto, linear16, mulaw or alaw (overrides AUDIO_ENCODING)")
	return cmd
}

func (f *runFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	f.segmentFlags.apply(cmd, cfg)
	if cmd.Flags().Changed("input") {
		cfg.StorageURI = f.storageURI
	}
	if cmd.Flags().Changed("output") {
		cfg.OutputStorage = f.output
	}
	if cmd.Flags().Changed("output-name") {
		cfg.OutputBaseName = f.outputName
	}
	if cmd.Flags().Changed("sample-rate") {
		cfg.SampleRateHertz = f.sampleRate
	}
	if cmd.Flags().Changed("encoding") {
		cfg.AudioEncoding = f.encoding
	}
}

func runJob(cmd *cobra.Command, injector do.Injector) error {
	runner, err := do.Invoke[*job.Runner](injector)
	if err != nil {
		return fmt.Errorf("failed to build job runner: %w", err)
	}
	repo := do.MustInvoke[repository.Repository](injector)
	defer func() {
		if err := repo.Close(); err != nil {
			slog.Error("failed to close repository", "error", err)
		}
	}()
	if closer, ok := do.MustInvoke[storage.BlobStore](injector).(io.Closer); ok {
		defer func() {
			if err := closer.Close(); err != nil {
				slog.Error("failed to close output storage", "error", err)
			}
		}()
	}

	res, err := runner.Run(cmd.Context())
	if err != nil {
		return err
	}
	printJobResult(cmd, string(res.Status), res.JobID, len(res.Outputs.Cues), res.SRTLocation, res.TXTLocation)
	return nil
}
