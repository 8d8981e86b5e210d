package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/foxseedlab/speech2srt/internal/subtitle"
	"github.com/spf13/cobra"
)

func newInspectCommand(_ *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file.srt>",
		Short: "Parse an SRT file and list its cues",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}
			cues, err := subtitle.Parse(string(data))
			if err != nil {
				return fmt.Errorf("parse %s: %w", args[0], err)
			}

			rows := make([][]string, 0, len(cues))
			for _, c := range cues {
				rows = append(rows, []string{
					strconv.Itoa(c.Index),
					subtitle.FormatTimestamp(c.Start),
					subtitle.FormatTimestamp(c.End),
					fmt.Sprintf("%.3fs", (c.End - c.Start).Seconds()),
					strings.ReplaceAll(c.Text, "\n", " / "),
				})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(out,
				[]string{"#", "Start", "End", "Duration", "Text"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignLeft},
			))
			fmt.Fprintf(out, "%d cues\n", len(cues))
			return nil
		},
	}
}
