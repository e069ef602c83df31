package display

import (
	"fmt"
	"io"

	"github.com/backmassage/seqrename/internal/term"
)

// PrintBanner writes the ASCII art banner to w, in magenta when colors are
// enabled.
func PrintBanner(w io.Writer) {
	fmt.Fprint(w, term.Magenta)
	fmt.Fprint(w, `
 ___  ___  __ _ _ __ ___ _ __   __ _ _ __ ___   ___
/ __|/ _ \/ _  | '__/ _ \ '_ \ / _  | '_   _ \ / _ \
\__ \  __/ (_| | | |  __/ | | | (_| | | | | | |  __/
|___/\___|\__, |_|  \___|_| |_|\__,_|_| |_| |_|\___|
             |_|
`)
	fmt.Fprint(w, term.NC)
}
