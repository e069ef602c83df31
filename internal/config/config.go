// Package config holds runtime configuration: defaults, CLI flag parsing, and
// validation, plus the Job that describes one rename batch.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// --- Enum types for validated string fields ---

// NumberingStyle selects how sequential suffixes are rendered.
type NumberingStyle string

const (
	StyleNumeric NumberingStyle = "numeric" // 1, 2, 3, … (menu choice 1).
	StyleAlpha   NumberingStyle = "alpha"   // a … z, aa, ab, … (menu choice 2).
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// DefaultStart is the start index used when none is given.
const DefaultStart = 1

// MaxStart caps the start index so that start plus a file's position in the
// listing always fits in an int, even on 32-bit platforms.
const MaxStart = 1_000_000_000

// Job is one rename batch. It is built once (from flags, prompts, or both)
// and passed by value afterwards.
type Job struct {
	Dir      string
	BaseName string
	Style    NumberingStyle
	Start    int
	Ext      string // Lowercase with leading dot; empty means no filter.
}

// Config holds all runtime settings. It is populated by [DefaultConfig] and
// then mutated by [ParseFlags]. Job fields set on the command line are not
// prompted for; the *Set markers record which ones were given.
type Config struct {
	// Job values supplied as flags.
	Dir      string
	BaseName string
	Style    NumberingStyle
	Start    int
	Ext      string

	DirSet   bool
	NameSet  bool
	StyleSet bool
	StartSet bool
	ExtSet   bool

	// Behavior flags.
	DryRun     bool
	ReportPath string // Optional run report (.yaml, .yml or .xlsx).

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
	CheckOnly bool      // Run --check diagnostics and exit.
}

// DefaultConfig returns a Config with all defaults. Used as the base before
// [ParseFlags] applies CLI overrides.
func DefaultConfig() Config {
	return Config{
		Style:     StyleNumeric,
		Start:     DefaultStart,
		ColorMode: ColorAuto,
	}
}

// Complete reports whether every job value was supplied on the command line,
// so no prompting is needed. The directory may be left to default.
func (c *Config) Complete() bool {
	return c.NameSet && c.StyleSet && c.StartSet && c.ExtSet
}

// NormalizeExtension lowercases and trims an extension filter and adds the
// leading dot when it is missing. Empty input stays empty (no filter).
func NormalizeExtension(raw string) string {
	ext := strings.ToLower(strings.TrimSpace(raw))
	if ext == "" || strings.HasPrefix(ext, ".") {
		return ext
	}
	return "." + ext
}

// ValidateStart checks a start index against the numbering style. Alphabetic
// suffixes have no representation for 0, so alpha runs must start at 1.
func ValidateStart(start int, style NumberingStyle) error {
	if start < 0 {
		return errors.New("start index must be a non-negative number")
	}
	if start > MaxStart {
		return fmt.Errorf("start index must be at most %d", MaxStart)
	}
	if start == 0 && style == StyleAlpha {
		return errors.New("alphabetic numbering starts at 1")
	}
	return nil
}

// ValidateBaseName rejects base names containing a path separator. Renamed
// files must stay in their directory.
func ValidateBaseName(name string) error {
	if strings.ContainsAny(name, "/"+string(filepath.Separator)) {
		return fmt.Errorf("name %q must not contain a path separator", name)
	}
	return nil
}

// Validate checks enum fields and the flag-supplied job values.
func (c *Config) Validate() error {
	switch c.Style {
	case StyleNumeric, StyleAlpha:
		// valid
	default:
		return errors.New("invalid style (use 'numeric' or 'alpha')")
	}

	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if err := ValidateStart(c.Start, c.Style); err != nil {
		return err
	}

	if c.NameSet && strings.TrimSpace(c.BaseName) == "" {
		return errors.New("name must not be empty")
	}
	c.BaseName = strings.TrimSpace(c.BaseName)
	if c.NameSet {
		if err := ValidateBaseName(c.BaseName); err != nil {
			return err
		}
	}
	c.Ext = NormalizeExtension(c.Ext)

	if c.ReportPath != "" {
		switch strings.ToLower(filepath.Ext(c.ReportPath)) {
		case ".yaml", ".yml", ".xlsx":
			// valid
		default:
			return fmt.Errorf("invalid report path %q (use a .yaml, .yml or .xlsx file)", c.ReportPath)
		}
	}
	return nil
}
