package main

import (
	"fmt"
	"log/slog"
	"os"

	configloader "github.com/foxseedlab/speech2srt/external/config"
	"github.com/foxseedlab/speech2srt/internal/config"
	"github.com/spf13/cobra"
)

type commandContext struct {
	cfg *config.Config
}

func newRootCommand() *cobra.Command {
	cc := &commandContext{}

	rootCmd := &cobra.Command{
		Use:           "speech2srt",
		Short:         "Turn speech recognition results into SRT subtitles",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := configloader.Load()
			if err != nil {
				return err
			}
			initLogger(cfg)
			cc.cfg = cfg
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.AddCommand(newRunCommand(cc))
	rootCmd.AddCommand(newRenderCommand(cc))
	rootCmd.AddCommand(newInspectCommand(cc))
	rootCmd.AddCommand(newJobsCommand(cc))

	return rootCmd
}

func initLogger(cfg *config.Config) {
	logLevel := slog.LevelInfo
	if cfg.IsDevelopment() {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))
}

type segmentFlags struct {
	language      string
	maxChars      int
	flushTrailing bool
}

func (f *segmentFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.language, "language", "l", "", "Language code (overrides LANGUAGE_CODE)")
	cmd.Flags().IntVar(&f.maxChars, "max-chars", 0, "Character limit per cue, 0 to break on punctuation only (overrides MAX_CHARS)")
	cmd.Flags().BoolVar(&f.flushTrailing, "flush-trailing", false, "Emit words after the last break as a final cue (overrides FLUSH_TRAILING_CUE)")
}

func (f *segmentFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("language") {
		cfg.LanguageCode = f.language
	}
	if cmd.Flags().Changed("max-chars") {
		cfg.MaxChars = f.maxChars
	}
	if cmd.Flags().Changed("flush-trailing") {
		cfg.FlushTrailingCue = f.flushTrailing
	}
}

func printJobResult(cmd *cobra.Command, status, jobID string, cueCount int, srt, txt string) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "job %s %s (%d cues)\n", jobID, status, cueCount)
	fmt.Fprintf(out, "  srt: %s\n", srt)
	fmt.Fprintf(out, "  txt: %s\n", txt)
}
