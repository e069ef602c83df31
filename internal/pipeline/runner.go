package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/backmassage/seqrename/internal/config"
	"github.com/backmassage/seqrename/internal/display"
	"github.com/backmassage/seqrename/internal/logging"
	"github.com/backmassage/seqrename/internal/naming"
	"github.com/backmassage/seqrename/internal/report"
)

// Confirmer asks the user whether to go ahead with the previewed plan.
// Satisfied by *prompt.Prompter.
type Confirmer interface {
	Confirm() bool
}

// Run is the top-level batch entry point. Listing errors are returned before
// anything is touched; per-file rename problems are only counted in the
// returned stats. Preview and confirmation go to out and confirm; status
// lines go to log.
func Run(
	ctx context.Context,
	cfg *config.Config,
	job config.Job,
	log *logging.Logger,
	out io.Writer,
	confirm Confirmer,
) (RunStats, error) {
	var stats RunStats

	rep := report.New(job)
	rep.DryRun = cfg.DryRun
	logBatchHeader(log, job, rep.ID)

	files, err := Discover(job.Dir, job.Ext)
	if err != nil {
		return stats, err
	}
	if job.Ext != "" {
		log.Info("Found %d files with extension '%s'", len(files), job.Ext)
	} else {
		log.Info("Found %d files in directory", len(files))
	}
	if len(files) == 0 {
		log.Warn("No files found to rename!")
		return stats, nil
	}

	stats.Total = len(files)
	stats.TotalBytes = totalSize(job.Dir, files)

	plan := naming.Plan(files, job)

	limit := PreviewLimit
	if cfg.DryRun {
		limit = 0
	}
	Preview(out, plan, limit)

	if taken := naming.Collisions(job.Dir, plan); len(taken) > 0 {
		log.Warn("%s and will be skipped",
			display.Plural(len(taken), "new name already exists", "new names already exist"))
		for _, r := range taken {
			log.Debug("  taken: %s (for %s)", r.New, r.Old)
		}
	}

	if cfg.DryRun {
		log.Info("Dry run: %d files would be renamed, nothing changed", len(plan))
		rep.Add(plannedEntries(plan)...)
		writeReport(cfg, log, rep)
		return stats, nil
	}

	if !confirm.Confirm() {
		log.Info("Renaming cancelled by user.")
		stats.Cancelled = true
		rep.Add(plannedEntries(plan)...)
		writeReport(cfg, log, rep)
		return stats, nil
	}

	fmt.Fprintln(out)
	rep.Add(Execute(ctx, job.Dir, plan, log, &stats)...)

	logSummary(log, &stats)
	writeReport(cfg, log, rep)
	return stats, nil
}

func plannedEntries(plan []naming.Rename) []report.Entry {
	entries := make([]report.Entry, 0, len(plan))
	for _, r := range plan {
		entries = append(entries, entryFor(r, report.StatusPlanned, nil))
	}
	return entries
}

// totalSize sums the sizes of the listed files. Files that vanished since
// listing count as zero.
func totalSize(dir string, files []string) int64 {
	var n int64
	for _, name := range files {
		if fi, err := os.Stat(filepath.Join(dir, name)); err == nil {
			n += fi.Size()
		}
	}
	return n
}

func writeReport(cfg *config.Config, log *logging.Logger, rep *report.Report) {
	if cfg.ReportPath == "" {
		return
	}
	if err := rep.Write(cfg.ReportPath); err != nil {
		log.Error("Cannot write report: %v", err)
		return
	}
	log.Info("Report written to %s", cfg.ReportPath)
}

// --- Logging helpers ---

func logBatchHeader(log *logging.Logger, job config.Job, runID string) {
	log.Debug("Run %s", runID)
	log.Info("Directory: %s", job.Dir)

	example := naming.NewName(job.BaseName, job.Start, job.Style, "file.ext")
	log.Info("Pattern: %s (%s numbering from %d)", example, job.Style, job.Start)

	if job.Ext != "" {
		log.Info("Filter: names ending in '%s'", job.Ext)
	} else {
		log.Info("Filter: none (all files)")
	}
}

func logSummary(log *logging.Logger, stats *RunStats) {
	log.Info("=== RENAMING COMPLETE ===")
	log.Success("Successfully renamed %d out of %d files", stats.Renamed, stats.Total)
	if stats.Skipped > 0 {
		log.Warn("  Skipped (name already taken): %d", stats.Skipped)
	}
	if stats.Failed > 0 {
		log.Error("  Failed: %d", stats.Failed)
	}
	if p := stats.Pending(); p > 0 {
		log.Warn("  Not attempted: %d", p)
	}
	log.Info("  Files covered: %s", display.FormatBytes(stats.TotalBytes))
}
