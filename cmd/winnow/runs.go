package main

import (
	"fmt"
	"strconv"
	"time"

	"winnow"
	"winnow/clean"
)

// RunsCmd is the "runs" subcommand.
type RunsCmd struct {
	ID string `arg:"" optional:"" help:"Run ID; shows that run's file records"`

	Limit  int    `default:"20" help:"Show at most N runs"`
	Status string `help:"Filter file records by status (cleaned, empty, duplicate, skipped, failed)"`
	Failed bool   `help:"Show only failed and skipped file records"`
	Prune  bool   `help:"Delete the run and its file records (requires a run ID)"`
}

// Run executes the runs command.
func (c *RunsCmd) Run(deps *Dependencies) error {
	if c.ID == "" {
		if c.Prune {
			fmt.Fprintf(deps.Stderr, "error: --prune requires a run ID\n")
			return winnow.Errorf(winnow.EINVALID, "--prune requires a run ID")
		}
		return c.listRuns(deps)
	}

	run, err := deps.Runs.FindRunByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s Use 'winnow runs' to see recorded runs.\n", winnow.ErrorMessage(err))
		return err
	}

	if c.Prune {
		if err := deps.Runs.DeleteRun(deps.Ctx, run.ID); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", winnow.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Deleted run %s\n", run.ID)
		return nil
	}

	return c.showRun(deps, run)
}

// listRuns prints the most recent runs as a table.
func (c *RunsCmd) listRuns(deps *Dependencies) error {
	runs, err := deps.Runs.FindRuns(deps.Ctx, winnow.RunFilter{Limit: c.Limit})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", winnow.ErrorMessage(err))
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(deps.Stdout, "No runs recorded. Use 'winnow clean' to create one.")
		return nil
	}

	rows := make([][]string, 0, len(runs))
	for _, run := range runs {
		took := "-"
		if run.FinishedAt != nil {
			took = run.FinishedAt.Sub(run.StartedAt).Round(time.Second).String()
		}
		rows = append(rows, []string{
			run.ID,
			run.StartedAt.Local().Format("2006-01-02 15:04"),
			clean.TruncatePath(run.InputDir, 32),
			strconv.Itoa(run.Files),
			strconv.Itoa(run.Cleaned),
			strconv.Itoa(run.Failed),
			clean.FormatBytes(run.BytesOut),
			took,
		})
	}

	headers := []string{"ID", "STARTED", "INPUT", "FILES", "CLEANED", "FAILED", "OUTPUT", "TOOK"}
	rightAligned := []bool{false, false, false, true, true, true, true, false}
	fmt.Fprintln(deps.Stdout, renderTable(headers, rows, rightAligned))
	return nil
}

// showRun prints one run's summary and its file records.
func (c *RunsCmd) showRun(deps *Dependencies, run *winnow.Run) error {
	fmt.Fprintf(deps.Stdout, "Run %s\n", run.ID)
	fmt.Fprintf(deps.Stdout, "  %s -> %s\n", run.InputDir, run.OutputDir)
	fmt.Fprintf(deps.Stdout, "  %d files: %d cleaned, %d empty, %d duplicates, %d failed\n",
		run.Files, run.Cleaned, run.EmptyOutputs, run.Duplicates, run.Failed)
	fmt.Fprintf(deps.Stdout, "  %s in, %s out\n\n", clean.FormatBytes(run.BytesIn), clean.FormatBytes(run.BytesOut))

	filter := winnow.FileRecordFilter{RunID: &run.ID}
	if c.Status != "" {
		filter.Status = &c.Status
	}
	recs, err := deps.Runs.FindFileRecords(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", winnow.ErrorMessage(err))
		return err
	}

	if c.Failed {
		kept := recs[:0]
		for _, rec := range recs {
			if rec.Status == winnow.StatusFailed || rec.Status == winnow.StatusSkipped {
				kept = append(kept, rec)
			}
		}
		recs = kept
	}

	if len(recs) == 0 {
		fmt.Fprintln(deps.Stdout, "No matching file records.")
		return nil
	}

	rows := make([][]string, 0, len(recs))
	for _, rec := range recs {
		detail := rec.Error
		if detail == "" {
			detail = rec.ContentHash
		}
		rows = append(rows, []string{
			clean.TruncatePath(rec.Path, 40),
			rec.Status,
			strconv.Itoa(rec.TokensKept),
			clean.FormatBytes(rec.BytesIn),
			clean.FormatBytes(rec.BytesOut),
			truncate(detail, 40),
		})
	}

	headers := []string{"PATH", "STATUS", "TOKENS", "IN", "OUT", "DETAIL"}
	rightAligned := []bool{false, false, true, true, true, false}
	fmt.Fprintln(deps.Stdout, renderTable(headers, rows, rightAligned))
	return nil
}

// truncate shortens s to at most max characters, marking the cut with "...".
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
