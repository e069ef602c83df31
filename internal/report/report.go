// Package report records the outcome of a rename run and writes it as YAML
// or as an Excel workbook. Reports are written once per run; [ReadYAML]
// loads a YAML report for verification.
package report

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/backmassage/seqrename/internal/config"
)

// ErrUnknownFormat is returned by Write for paths without a supported extension.
var ErrUnknownFormat = errors.New("unknown report format (use .yaml, .yml or .xlsx)")

// Status is the outcome of one planned rename.
type Status string

const (
	StatusRenamed   Status = "renamed"
	StatusCollision Status = "collision" // Destination existed; file left alone.
	StatusFailed    Status = "failed"
	StatusPlanned   Status = "planned" // Not attempted (dry run, decline, interrupt).
)

// Entry is one file's line in the report.
type Entry struct {
	Index  int    `yaml:"index"`
	Old    string `yaml:"old"`
	New    string `yaml:"new"`
	Status Status `yaml:"status"`
	Error  string `yaml:"error,omitempty"`
}

// Report is the full record of one run.
type Report struct {
	ID         string    `yaml:"id"`
	StartedAt  time.Time `yaml:"started_at"`
	FinishedAt time.Time `yaml:"finished_at"`
	DryRun     bool      `yaml:"dry_run"`
	Directory  string    `yaml:"directory"`
	BaseName   string    `yaml:"base_name"`
	Style      string    `yaml:"style"`
	Start      int       `yaml:"start"`
	Filter     string    `yaml:"filter,omitempty"`
	Renamed    int       `yaml:"renamed"`
	Skipped    int       `yaml:"skipped"`
	Failed     int       `yaml:"failed"`
	Entries    []Entry   `yaml:"entries"`
}

// New starts a report for job with a fresh run ID.
func New(job config.Job) *Report {
	return &Report{
		ID:        uuid.NewString(),
		StartedAt: time.Now().UTC().Truncate(time.Second),
		Directory: job.Dir,
		BaseName:  job.BaseName,
		Style:     string(job.Style),
		Start:     job.Start,
		Filter:    job.Ext,
	}
}

// Add appends entries and updates the per-status counters.
func (r *Report) Add(entries ...Entry) {
	for _, e := range entries {
		switch e.Status {
		case StatusRenamed:
			r.Renamed++
		case StatusCollision:
			r.Skipped++
		case StatusFailed:
			r.Failed++
		}
		r.Entries = append(r.Entries, e)
	}
}

// Write stamps the finish time and writes the report to path, choosing the
// format from its extension.
func (r *Report) Write(path string) error {
	r.FinishedAt = time.Now().UTC().Truncate(time.Second)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return WriteYAML(path, r)
	case ".xlsx":
		return WriteXLSX(path, r)
	}
	return fmt.Errorf("%w: %s", ErrUnknownFormat, path)
}
