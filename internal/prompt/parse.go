package prompt

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/backmassage/seqrename/internal/config"
)

// Validation errors. ErrEmptyBaseName and ErrBaseNamePath abort the run; the
// others make the prompter ask again.
var (
	ErrEmptyBaseName = errors.New("common name cannot be empty")
	ErrBaseNamePath  = errors.New("common name cannot contain a path separator")
	ErrChoiceNotInt  = errors.New("please enter a valid number (1 or 2)")
	ErrChoiceRange   = errors.New("please enter 1 or 2")
	ErrStartNotInt   = errors.New("please enter a valid number")
	ErrStartRange    = errors.New("invalid start index")
	ErrInputClosed   = errors.New("input closed before all answers were given")
)

// ResolveDir returns raw trimmed, or the working directory when raw is
// blank. Existence is not checked here; listing reports missing directories.
func ResolveDir(raw string) (string, error) {
	dir := strings.TrimSpace(raw)
	if dir != "" {
		return dir, nil
	}
	return os.Getwd()
}

// ParseBaseName trims raw and rejects an empty result or one that names
// another directory.
func ParseBaseName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", ErrEmptyBaseName
	}
	if config.ValidateBaseName(name) != nil {
		return "", ErrBaseNamePath
	}
	return name, nil
}

// ParseStyleChoice maps the menu answer "1" or "2" to a numbering style.
func ParseStyleChoice(raw string) (config.NumberingStyle, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return "", ErrChoiceNotInt
	}
	switch n {
	case 1:
		return config.StyleNumeric, nil
	case 2:
		return config.StyleAlpha, nil
	}
	return "", ErrChoiceRange
}

// ParseStartIndex parses the start index answer. Blank means
// [config.DefaultStart]. The value must lie in 0..[config.MaxStart], and be
// at least 1 for alphabetic numbering.
func ParseStartIndex(raw string, style config.NumberingStyle) (int, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return config.DefaultStart, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, ErrStartNotInt
	}
	if err := config.ValidateStart(n, style); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrStartRange, err)
	}
	return n, nil
}

// IsAffirmative reports whether a confirmation answer means yes. Only "y"
// (any case, surrounding space ignored) counts; blank is a no.
func IsAffirmative(raw string) bool {
	return strings.ToLower(strings.TrimSpace(raw)) == "y"
}
