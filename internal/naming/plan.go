package naming

import (
	"path/filepath"
	"strings"

	"github.com/backmassage/seqrename/internal/config"
)

// Rename is one planned (old → new) pair. Index is the value fed to
// [Suffix] for this file.
type Rename struct {
	Index int
	Old   string
	New   string
}

// Plan maps each listed file to its new name. File at position p gets index
// job.Start+p, which cannot overflow once job.Start passed
// [config.ValidateStart]. Preview and renamer both consume this, so what the user
// confirms is exactly what runs.
func Plan(files []string, job config.Job) []Rename {
	plan := make([]Rename, 0, len(files))
	for p, name := range files {
		idx := job.Start + p
		plan = append(plan, Rename{
			Index: idx,
			Old:   name,
			New:   NewName(job.BaseName, idx, job.Style, name),
		})
	}
	return plan
}

// NewName returns "<base>_<suffix><ext>" where ext is the extension of
// original (including its dot, possibly empty).
func NewName(base string, index int, style config.NumberingStyle, original string) string {
	return base + "_" + Suffix(index, style) + Ext(original)
}

// Ext returns the extension of name including the leading dot. Leading dots
// do not start an extension, so ".bashrc" and "..x" have none, while
// "a.tar.gz" has ".gz".
func Ext(name string) string {
	ext := filepath.Ext(name)
	if ext == "" {
		return ""
	}
	stem := name[:len(name)-len(ext)]
	if strings.Trim(stem, ".") == "" {
		return ""
	}
	return ext
}
