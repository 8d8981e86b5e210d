package main

import (
	"fmt"

	transcriberimpl "github.com/foxseedlab/speech2srt/external/transcriber"
	"github.com/foxseedlab/speech2srt/internal/job"
	"github.com/foxseedlab/speech2srt/internal/subtitle"
	"github.com/foxseedlab/speech2srt/internal/transcriber"
	"github.com/spf13/cobra"
)

func newRenderCommand(cc *commandContext) *cobra.Command {
	var flags segmentFlags
	var outDir string
	var outputName string
	var plainText bool

	cmd := &cobra.Command{
		Use:   "render <results.json>",
		Short: "Segment saved recognizer results without calling the API",
		Long: "Reads a BatchRecognizeResults JSON document and renders it as subtitles.\n" +
			"With --out the .srt and .txt files are written there as a recorded job;\n" +
			"otherwise the SRT (or plain text with --text) is printed.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := cc.cfg
			flags.apply(cmd, cfg)
			cfg.StorageURI = args[0]
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("config validation failed: %w", err)
			}

			if outDir != "" {
				cfg.OutputStorage = outDir
				if cmd.Flags().Changed("output-name") {
					cfg.OutputBaseName = outputName
				}
				injector := setupDI(cfg, transcriberimpl.RegisterFileDI)
				return runJob(cmd, injector)
			}

			results, err := transcriberimpl.NewFileTranscriber().Recognize(cmd.Context(), transcriber.RecognizeRequest{AudioURI: args[0]})
			if err != nil {
				return err
			}
			out, err := job.BuildOutputs(results, subtitle.Segmenter{MaxChars: cfg.MaxChars, FlushTrailing: cfg.FlushTrailingCue})
			if err != nil {
				return err
			}
			body := out.SRT
			if plainText {
				body = out.TXT
			}
			_, err = cmd.OutOrStdout().Write(body)
			return err
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Directory or gs:// location to write .srt and .txt into")
	cmd.Flags().StringVar(&outputName, "output-name", "", "Output base name without extension (overrides OUTPUT_BASE_NAME)")
	cmd.Flags().BoolVar(&plainText, "text", false, "Print plain text instead of SRT")
	return cmd
}
