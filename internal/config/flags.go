package config

// This file implements CLI flag parsing and help text.
// Flags are grouped into job, behavior, display, and utility.
// Negated flags (e.g. --no-color) are applied after Parse so Config defaults hold unless set.

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrHelp is returned when --help was given and usage has been printed.
var ErrHelp = flag.ErrHelp

// ErrVersion is returned when --version was given and the version has been printed.
var ErrVersion = errors.New("version requested")

// ParseFlags parses args (without the program name) into cfg. On --help or
// --version it prints to stderr/stdout and returns ErrHelp or ErrVersion so
// the caller can exit cleanly. Other errors are unknown flags, bad values,
// or stray positional arguments.
func ParseFlags(cfg *Config, args []string, version string) error {
	fs := flag.NewFlagSet("seqrename", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() { printUsage(os.Stderr, version) }

	var negated negatedFlags

	defineJobFlags(fs, cfg)
	defineBehaviorFlags(fs, cfg)
	defineDisplayFlags(fs, cfg, &negated)
	defineUtilityFlags(fs, &negated)

	if err := fs.Parse(args); err != nil {
		return err
	}

	applyNegatedFlags(cfg, &negated)
	markSetFlags(fs, cfg)

	if negated.showHelp {
		printUsage(os.Stderr, version)
		return ErrHelp
	}
	if negated.showVersion {
		fmt.Fprintln(os.Stdout, "seqrename v"+version)
		return ErrVersion
	}

	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected argument %q (use --dir to choose a directory)", fs.Arg(0))
	}
	return nil
}

// negatedFlags holds boolean flags that are applied after Parse.
type negatedFlags struct {
	forceColor  bool
	noColor     bool
	showVersion bool
	showHelp    bool
}

// defineJobFlags registers -d/--dir, -n/--name, -s/--style, --start, -e/--ext.
func defineJobFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.Dir, "dir", "", "Directory with the files to rename")
	fs.StringVar(&cfg.Dir, "d", "", "Same as --dir")
	fs.StringVar(&cfg.BaseName, "name", "", "Common base name for all files")
	fs.StringVar(&cfg.BaseName, "n", "", "Same as --name")
	fs.Var(&styleValue{&cfg.Style}, "style", "Numbering style: numeric | alpha")
	fs.Var(&styleValue{&cfg.Style}, "s", "Same as --style")
	fs.Var(&startValue{&cfg.Start}, "start", "First suffix index (default 1)")
	fs.StringVar(&cfg.Ext, "ext", "", "Only rename files ending with this extension")
	fs.StringVar(&cfg.Ext, "e", "", "Same as --ext")
}

// defineBehaviorFlags registers --dry-run and -r/--report.
func defineBehaviorFlags(fs *flag.FlagSet, cfg *Config) {
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "Preview the full plan; do not rename")
	fs.StringVar(&cfg.ReportPath, "report", "", "Write a run report (.yaml, .yml or .xlsx)")
	fs.StringVar(&cfg.ReportPath, "r", "", "Same as --report")
}

// defineDisplayFlags registers --color, --no-color, verbose, --check, --log.
func defineDisplayFlags(fs *flag.FlagSet, cfg *Config, n *negatedFlags) {
	fs.BoolVar(&n.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&n.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "v", false, "Same as --verbose")
	fs.BoolVar(&cfg.CheckOnly, "check", false, "Run directory diagnostics and exit")
	fs.BoolVar(&cfg.CheckOnly, "c", false, "Same as --check")
	fs.StringVar(&cfg.LogFile, "log", "", "Append logs to file")
	fs.StringVar(&cfg.LogFile, "l", "", "Same as --log")
}

// defineUtilityFlags registers --version and --help.
func defineUtilityFlags(fs *flag.FlagSet, n *negatedFlags) {
	fs.BoolVar(&n.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&n.showVersion, "V", false, "Same as --version")
	fs.BoolVar(&n.showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&n.showHelp, "h", false, "Same as --help")
}

// applyNegatedFlags copies negated and override flag values into cfg.
func applyNegatedFlags(cfg *Config, n *negatedFlags) {
	if n.noColor {
		cfg.ColorMode = ColorNever
	} else if n.forceColor {
		cfg.ColorMode = ColorAlways
	}
}

// markSetFlags records which job values came from the command line, so the
// prompt layer only asks for the rest.
func markSetFlags(fs *flag.FlagSet, cfg *Config) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "dir", "d":
			cfg.DirSet = true
		case "name", "n":
			cfg.NameSet = true
		case "style", "s":
			cfg.StyleSet = true
		case "start":
			cfg.StartSet = true
		case "ext", "e":
			cfg.ExtSet = true
		}
	})
}

// printUsage writes the help text to w. Column-aligned for readability.
func printUsage(w io.Writer, version string) {
	const col1 = 28 // width of "  -x, --long-name <arg>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "seqrename v" + version + " - rename a directory of files to name_1, name_2, …"},
		{"", ""},
		{"  seqrename [OPTIONS]", ""},
		{"", ""},
		{"Any job option left out is asked for interactively.", ""},
		{"", ""},
		{"Job", ""},
		{"  -d, --dir <path>", "Directory to process (default: current)"},
		{"  -n, --name <name>", "Common base name for all files"},
		{"  -s, --style <numeric|alpha>", "Suffix style (default: numeric)"},
		{"  --start <n>", "First suffix index (default: 1)"},
		{"  -e, --ext <.ext>", "Only rename files ending with .ext"},
		{"", ""},
		{"Output & behavior", ""},
		{"  --dry-run", "Preview the full plan; do not rename"},
		{"  -r, --report <path>", "Write a run report (.yaml, .yml, .xlsx)"},
		{"", ""},
		{"Display", ""},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose output"},
		{"", ""},
		{"Utility", ""},
		{"  -l, --log <path>", "Append logs to file"},
		{"  -c, --check", "Directory diagnostics (exists, readable, writable)"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(w)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(w, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(w, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(w, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}

// flag.Value adapters so we can use typed fields with flag.Var.

type styleValue struct{ p *NumberingStyle }

func (s *styleValue) String() string {
	if s.p == nil {
		return ""
	}
	return string(*s.p)
}

func (s *styleValue) Set(v string) error {
	style, ok := ParseStyle(v)
	if !ok {
		return fmt.Errorf("invalid style %q (use 'numeric' or 'alpha')", v)
	}
	*s.p = style
	return nil
}

// ParseStyle maps a style name or menu number to a NumberingStyle.
func ParseStyle(v string) (NumberingStyle, bool) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "numeric", "number", "numbers":
		return StyleNumeric, true
	case "2", "alpha", "letter", "letters":
		return StyleAlpha, true
	}
	return "", false
}

type startValue struct{ p *int }

func (s *startValue) String() string {
	if s.p == nil {
		return ""
	}
	return strconv.Itoa(*s.p)
}

func (s *startValue) Set(v string) error {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return fmt.Errorf("start must be a whole number (got %q)", v)
	}
	if n < 0 {
		return fmt.Errorf("start must be a non-negative number (got %d)", n)
	}
	*s.p = n
	return nil
}
