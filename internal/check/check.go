// Package check provides the --check diagnostics for a target directory:
// it exists, is a directory, can be listed, and accepts new entries.
package check

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors returned by CheckDir.
var (
	ErrDirNotFound    = errors.New("directory not found")
	ErrNotADirectory  = errors.New("path is not a directory")
	ErrDirNotReadable = errors.New("directory cannot be listed")
	ErrDirNotWritable = errors.New("directory does not accept new entries")
)

// Logger is the minimal logging interface needed by RunCheck.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
}

// RunCheck runs the --check flow for dir and logs each step. It returns
// true when every check passed.
func RunCheck(dir string, log Logger) bool {
	log.Info("=== Directory Check ===")
	log.Info("Directory: %s", dir)

	if err := checkExists(dir); err != nil {
		log.Error("%v", err)
		return false
	}
	log.Success("Exists and is a directory")

	n, err := checkReadable(dir)
	if err != nil {
		log.Error("%v", err)
		return false
	}
	log.Success("Listable (%d entries)", n)

	if err := checkWritable(dir); err != nil {
		log.Error("%v", err)
		return false
	}
	log.Success("Writable (renames possible)")

	if caseInsensitive(dir) {
		log.Warn("Filesystem ignores case: 'A.jpg' and 'a.jpg' count as the same name")
	}
	return true
}

// CheckDir runs the same checks silently and returns the first failure.
func CheckDir(dir string) error {
	if err := checkExists(dir); err != nil {
		return err
	}
	if _, err := checkReadable(dir); err != nil {
		return err
	}
	return checkWritable(dir)
}

// --- internal helpers ---

func checkExists(dir string) error {
	fi, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrDirNotFound, dir)
		}
		return fmt.Errorf("%w: %v", ErrDirNotReadable, err)
	}
	if !fi.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotADirectory, dir)
	}
	return nil
}

func checkReadable(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrDirNotReadable, err)
	}
	return len(entries), nil
}

// checkWritable creates and removes a temp file. Renaming inside a directory
// needs the same permission as creating an entry in it.
func checkWritable(dir string) error {
	f, err := os.CreateTemp(dir, ".seqrename-check-*")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDirNotWritable, err)
	}
	name := f.Name()
	f.Close()
	if err := os.Remove(name); err != nil {
		return fmt.Errorf("%w: cannot remove probe file: %v", ErrDirNotWritable, err)
	}
	return nil
}

// caseInsensitive probes whether the filesystem under dir folds case by
// creating a lowercase temp file and stat-ing its uppercase spelling.
func caseInsensitive(dir string) bool {
	f, err := os.CreateTemp(dir, ".seqrename-case-*")
	if err != nil {
		return false
	}
	name := f.Name()
	f.Close()
	defer os.Remove(name)

	_, err = os.Stat(filepath.Join(filepath.Dir(name), strings.ToUpper(filepath.Base(name))))
	return err == nil
}
