// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/l3montree-dev/qualitygate/database/repositories"
	"github.com/l3montree-dev/qualitygate/services"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

func NewRetentionCommand() *cobra.Command {
	retention := cobra.Command{
		Use:   "retention",
		Short: "Manage stored scans",
	}

	retention.AddCommand(newRetentionRunCommand())
	return &retention
}

func newRetentionRunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Trims every project to the scan limit of its plan",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			timeout, _ := cmd.Flags().GetDuration("timeout")
			quiet, _ := cmd.Flags().GetBool("quiet")
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			s := spinner.New(spinner.CharSets[11], 100*time.Millisecond)
			s.Suffix = " Loading projects"
			s.Writer = os.Stderr
			if !quiet {
				s.Start()
			}

			_, db, closeFn, err := connect(ctx)
			if err != nil {
				s.Stop()
				return err
			}
			defer closeFn()

			retentionService := services.NewRetentionService(
				repositories.NewScanRepository(db),
				repositories.NewProjectRepository(db),
			)

			progress := newRetentionTable(s, quiet)
			deleted, err := retentionService.RunAllWithProgress(ctx, progress)
			s.Stop()
			if !quiet {
				progress.render(cmd.OutOrStdout())
			}
			slog.Info("retention finished", "deleted", deleted)
			return err
		},
	}
	cmd.Flags().Duration("timeout", 30*time.Minute, "maximum duration of the run")
	cmd.Flags().Bool("quiet", false, "do not print progress and the result table")
	return cmd
}

// retentionTable shows a progress bar while the run is active and collects one row per project
// which trimmed scans or failed.
type retentionTable struct {
	spinner *spinner.Spinner
	quiet   bool
	bar     *progressbar.ProgressBar
	rows    []table.Row
	total   int64
}

func newRetentionTable(s *spinner.Spinner, quiet bool) *retentionTable {
	return &retentionTable{spinner: s, quiet: quiet}
}

func (r *retentionTable) Start(projects int) {
	r.spinner.Stop()
	if !r.quiet {
		r.bar = progressbar.Default(int64(projects), "trimming projects")
	}
}

func (r *retentionTable) Trimmed(result services.ProjectRetention) {
	if r.bar != nil {
		r.bar.Add(1) // nolint
	}
	r.total += result.Deleted
	switch {
	case result.Err != nil:
		r.rows = append(r.rows, table.Row{result.Project.ID, result.Project.Name, result.Limit, "-", text.FgRed.Sprint(result.Err.Error())})
	case result.Deleted > 0:
		r.rows = append(r.rows, table.Row{result.Project.ID, result.Project.Name, result.Limit, result.Deleted, text.FgGreen.Sprint("trimmed")})
	}
}

func (r *retentionTable) render(w io.Writer) {
	if len(r.rows) == 0 {
		fmt.Fprintln(w, "no project exceeded its scan limit") // nolint
		return
	}
	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"Project", "Name", "Limit", "Deleted", "Status"})
	tw.AppendRows(r.rows)
	tw.AppendFooter(table.Row{"", "", "Total", r.total, ""})
	fmt.Fprintln(w, tw.Render()) // nolint
}
