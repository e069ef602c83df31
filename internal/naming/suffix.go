package naming

import (
	"strconv"

	"github.com/backmassage/seqrename/internal/config"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// Suffix renders index in the given style.
//
//	numeric: 1, 2, …, 10, 11, …
//	alpha:   a … z, aa, ab, … az, ba, …   (spreadsheet-column numbering)
//
// Alpha has no digit for zero, so index <= 0 yields "". Callers guarantee
// index >= 1 for alpha via [config.ValidateStart].
func Suffix(index int, style config.NumberingStyle) string {
	if style != config.StyleAlpha {
		return strconv.Itoa(index)
	}
	var buf []byte
	for index > 0 {
		index--
		buf = append(buf, alphabet[index%26])
		index /= 26
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}
