package pipeline

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"
)

// Listing errors. Each aborts the run before anything is renamed.
var (
	ErrDirectoryNotFound = errors.New("directory not found")
	ErrPermissionDenied  = errors.New("permission denied")
	ErrNotADirectory     = errors.New("not a directory")
)

// Discover returns the names of the regular files directly inside dir whose
// lowercase name ends with ext (ext is already normalized; empty matches
// everything). Subdirectories are excluded; symlinks count when they point
// at a regular file. Order is enumeration order and carries no meaning.
func Discover(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, classifyListError(dir, err)
	}

	var files []string
	for _, e := range entries {
		if !isRegularFile(dir, e) {
			continue
		}
		if ext != "" && !strings.HasSuffix(strings.ToLower(e.Name()), ext) {
			continue
		}
		files = append(files, e.Name())
	}
	return files, nil
}

// isRegularFile follows symlinks the way a stat would; broken links and
// links to directories are not files.
func isRegularFile(dir string, e fs.DirEntry) bool {
	if e.Type().IsRegular() {
		return true
	}
	if e.Type()&fs.ModeSymlink == 0 {
		return false
	}
	fi, err := os.Stat(filepath.Join(dir, e.Name()))
	return err == nil && fi.Mode().IsRegular()
}

func classifyListError(dir string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: '%s'", ErrDirectoryNotFound, dir)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: cannot access directory '%s'", ErrPermissionDenied, dir)
	case errors.Is(err, syscall.ENOTDIR):
		return fmt.Errorf("%w: '%s'", ErrNotADirectory, dir)
	}
	return fmt.Errorf("cannot list '%s': %w", dir, err)
}
