package main

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	repositoryimpl "github.com/foxseedlab/speech2srt/external/repository"
	"github.com/foxseedlab/speech2srt/internal/repository"
	"github.com/spf13/cobra"
)

const jobsOpenTimeout = 15 * time.Second

func newJobsCommand(cc *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "jobs",
		Short: "List recent jobs from DATABASE_URL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cc.cfg.DatabaseURL == "" {
				return fmt.Errorf("DATABASE_URL is required to list jobs")
			}
			if limit <= 0 {
				return fmt.Errorf("--limit must be positive, got %d", limit)
			}
			openCtx, cancel := context.WithTimeout(cmd.Context(), jobsOpenTimeout)
			defer cancel()
			repo, err := repositoryimpl.Open(openCtx, cc.cfg.DatabaseURL)
			if err != nil {
				return err
			}
			defer func() {
				if err := repo.Close(); err != nil {
					slog.Error("failed to close repository", "error", err)
				}
			}()

			jobs, err := repo.ListRecentJobs(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("list jobs: %w", err)
			}
			out := cmd.OutOrStdout()
			if len(jobs) == 0 {
				fmt.Fprintln(out, "no jobs recorded")
				return nil
			}
			fmt.Fprintln(out, renderTable(out,
				[]string{"Job", "Status", "Input", "Lang", "Cues", "Started", "Duration", "Error"},
				jobRows(jobs),
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignLeft, alignRight, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Number of jobs to show")
	return cmd
}

func jobRows(jobs []repository.Job) [][]string {
	rows := make([][]string, 0, len(jobs))
	for _, j := range jobs {
		duration := "-"
		if j.EndedAt != nil {
			duration = j.EndedAt.Sub(j.StartedAt).Round(time.Second).String()
		}
		rows = append(rows, []string{
			j.ID,
			string(j.Status),
			j.StorageURI,
			j.LanguageCode,
			strconv.Itoa(j.CueCount),
			j.StartedAt.Local().Format(time.DateTime),
			duration,
			j.Error,
		})
	}
	return rows
}
