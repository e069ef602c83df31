package pipeline

import (
	"context"
	"os"
	"path/filepath"

	"github.com/backmassage/seqrename/internal/logging"
	"github.com/backmassage/seqrename/internal/naming"
	"github.com/backmassage/seqrename/internal/report"
)

// Execute renames each plan entry inside dir, one at a time. An existing
// destination is never overwritten: the entry is skipped with a warning.
// A failed rename is logged and counted; the batch always continues. The
// context is checked between files only, so a started rename completes.
// Entries not attempted come back as planned.
func Execute(ctx context.Context, dir string, plan []naming.Rename, log *logging.Logger, stats *RunStats) []report.Entry {
	log.Info("Renaming %d files...", len(plan))

	entries := make([]report.Entry, 0, len(plan))
	for i, r := range plan {
		if ctx.Err() != nil {
			log.Warn("Interrupted, %d files left unrenamed", len(plan)-i)
			for _, rest := range plan[i:] {
				entries = append(entries, entryFor(rest, report.StatusPlanned, nil))
			}
			break
		}
		stats.Current = i + 1
		entries = append(entries, renameOne(dir, r, log, stats))
	}
	return entries
}

func renameOne(dir string, r naming.Rename, log *logging.Logger, stats *RunStats) report.Entry {
	if naming.Taken(dir, r.New) {
		log.Warn("%s already exists! Skipping %s", r.New, r.Old)
		stats.Skipped++
		return entryFor(r, report.StatusCollision, nil)
	}

	if err := os.Rename(filepath.Join(dir, r.Old), filepath.Join(dir, r.New)); err != nil {
		log.Error("Error renaming %s: %v", r.Old, err)
		stats.Failed++
		return entryFor(r, report.StatusFailed, err)
	}

	log.Success("Renamed: %s -> %s", r.Old, r.New)
	stats.Renamed++
	return entryFor(r, report.StatusRenamed, nil)
}

func entryFor(r naming.Rename, status report.Status, err error) report.Entry {
	e := report.Entry{Index: r.Index, Old: r.Old, New: r.New, Status: status}
	if err != nil {
		e.Error = err.Error()
	}
	return e
}
