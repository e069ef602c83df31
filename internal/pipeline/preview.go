package pipeline

import (
	"fmt"
	"io"
	"strings"

	"github.com/backmassage/seqrename/internal/naming"
	"github.com/backmassage/seqrename/internal/term"
)

// PreviewLimit is how many renames are shown before asking for confirmation.
const PreviewLimit = 5

// Preview writes the first limit entries of plan as "old -> new" lines and a
// count of the rest. limit <= 0 shows everything.
func Preview(w io.Writer, plan []naming.Rename, limit int) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "=== PREVIEW OF CHANGES ===")
	fmt.Fprintln(w, "Old names -> New names")
	fmt.Fprintln(w, strings.Repeat("-", 40))

	shown := plan
	if limit > 0 && len(plan) > limit {
		shown = plan[:limit]
	}
	for _, r := range shown {
		fmt.Fprintf(w, "%s %s %s\n", r.Old, term.Arrow(), r.New)
	}
	if rest := len(plan) - len(shown); rest > 0 {
		fmt.Fprintf(w, "... and %d more files\n", rest)
	}
}
