package naming

import (
	"os"
	"path/filepath"
)

// Taken reports whether an entry named name already exists in dir. Any
// entry counts (file, directory, or dangling symlink), since renaming onto
// it would either clobber it or fail.
func Taken(dir, name string) bool {
	_, err := os.Lstat(filepath.Join(dir, name))
	return err == nil
}

// Collisions returns the plan entries whose destination is already taken
// in dir, in plan order.
func Collisions(dir string, plan []Rename) []Rename {
	var out []Rename
	for _, r := range plan {
		if Taken(dir, r.New) {
			out = append(out, r)
		}
	}
	return out
}
