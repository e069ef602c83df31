package check

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

type recordingLogger struct {
	errors []string
}

func (r *recordingLogger) Info(string, ...interface{}) {}
func (r *recordingLogger) Success(string, ...interface{}) {}
func (r *recordingLogger) Warn(string, ...interface{}) {}
func (r *recordingLogger) Error(format string, args ...interface{}) {
	r.errors = append(r.errors, fmt.Sprintf(format, args...))
}

func TestCheckDir(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "plain.txt")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{"usable directory", dir, nil},
		{"missing", filepath.Join(dir, "nope"), ErrDirNotFound},
		{"file instead of directory", file, ErrNotADirectory},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckDir(tt.path)
			if tt.wantErr == nil && err != nil {
				t.Fatalf("CheckDir(%q) = %v, want nil", tt.path, err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("CheckDir(%q) = %v, want %v", tt.path, err, tt.wantErr)
			}
		})
	}
}

func TestCheckDir_LeavesNoProbeFiles(t *testing.T) {
	dir := t.TempDir()
	if err := CheckDir(dir); err != nil {
		t.Fatal(err)
	}
	log := &recordingLogger{}
	if !RunCheck(dir, log) {
		t.Fatalf("RunCheck failed: %v", log.errors)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("probe files left behind: %v", entries)
	}
}

func TestRunCheck_ReportsFailure(t *testing.T) {
	log := &recordingLogger{}
	if RunCheck(filepath.Join(t.TempDir(), "missing"), log) {
		t.Fatal("RunCheck should fail for a missing directory")
	}
	if len(log.errors) != 1 {
		t.Errorf("logged errors = %v, want exactly one", log.errors)
	}
}

func TestCheckDir_ReadOnly(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root ignores directory permissions")
	}
	dir := filepath.Join(t.TempDir(), "ro")
	if err := os.Mkdir(dir, 0o555); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chmod(dir, 0o755) })

	if err := CheckDir(dir); !errors.Is(err, ErrDirNotWritable) {
		t.Errorf("CheckDir(read-only) = %v, want ErrDirNotWritable", err)
	}
}
