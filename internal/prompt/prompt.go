// Package prompt collects the rename job interactively and asks for the
// final confirmation. Parsing of each answer lives in parse.go as pure
// functions; the Prompter only handles the read/print loop around them.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/backmassage/seqrename/internal/config"
)

// Prompter reads answers line by line from in and writes prompts to out.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New returns a Prompter over the given streams.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Collect builds the job, prompting only for values not already supplied as
// flags in cfg. An empty base name aborts with [ErrEmptyBaseName]; a bad
// style or start index is asked again. Closed input returns [ErrInputClosed].
func (p *Prompter) Collect(cfg *config.Config) (config.Job, error) {
	job := config.Job{
		Dir:      cfg.Dir,
		BaseName: cfg.BaseName,
		Style:    cfg.Style,
		Start:    cfg.Start,
		Ext:      config.NormalizeExtension(cfg.Ext),
	}

	interactive := !cfg.Complete()
	if interactive {
		fmt.Fprintln(p.out, "=== File Renaming Automation ===")
	}

	if interactive && !cfg.DirSet {
		raw, err := p.ask("Enter the directory path (or press Enter for current directory): ")
		if err != nil {
			return job, err
		}
		job.Dir = raw
	}
	dir, err := ResolveDir(job.Dir)
	if err != nil {
		return job, fmt.Errorf("cannot resolve current directory: %w", err)
	}
	job.Dir = dir

	if !cfg.NameSet {
		raw, err := p.ask("Enter the common name for all files: ")
		if err != nil {
			return job, err
		}
		name, err := ParseBaseName(raw)
		if err != nil {
			return job, err
		}
		job.BaseName = name
	}

	if !cfg.StyleSet {
		fmt.Fprintln(p.out)
		fmt.Fprintln(p.out, "Choose numbering style:")
		fmt.Fprintln(p.out, "1. Numbers (file_1, file_2, ...)")
		fmt.Fprintln(p.out, "2. Letters (file_a, file_b, ...)")
		err := p.askUntilValid("Enter your choice (1 or 2): ", func(raw string) error {
			s, err := ParseStyleChoice(raw)
			if err == nil {
				job.Style = s
			}
			return err
		})
		if err != nil {
			return job, err
		}
	}

	if !cfg.StartSet {
		err := p.askUntilValid("Enter starting number/letter index (default is 1): ", func(raw string) error {
			n, err := ParseStartIndex(raw, job.Style)
			if err == nil {
				job.Start = n
			}
			return err
		})
		if err != nil {
			return job, err
		}
	} else if err := config.ValidateStart(job.Start, job.Style); err != nil {
		return job, fmt.Errorf("%w: %v", ErrStartRange, err)
	}

	if !cfg.ExtSet {
		raw, err := p.ask("Enter file extension to filter by (e.g., '.jpg', '.png', or press Enter for all files): ")
		if err != nil {
			return job, err
		}
		job.Ext = config.NormalizeExtension(raw)
	}

	return job, nil
}

// Confirm asks whether to proceed. Only "y" is a yes; blank, anything else,
// or closed input is a no.
func (p *Prompter) Confirm() bool {
	raw, err := p.ask("\nProceed with renaming? (y/n): ")
	if err != nil {
		return false
	}
	return IsAffirmative(raw)
}

// askUntilValid repeats the question until accept returns nil, printing each
// rejection. It only gives up when input is closed.
func (p *Prompter) askUntilValid(question string, accept func(string) error) error {
	for {
		raw, err := p.ask(question)
		if err != nil {
			return err
		}
		if err := accept(raw); err != nil {
			fmt.Fprintln(p.out, capitalize(err.Error()))
			continue
		}
		return nil
	}
}

// ask prints question and returns the next input line without its line
// ending. A final unterminated line is still returned; nothing left at all
// is [ErrInputClosed].
func (p *Prompter) ask(question string) (string, error) {
	fmt.Fprint(p.out, question)
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrInputClosed
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
