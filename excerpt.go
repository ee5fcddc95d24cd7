package jstack

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/creachadair/jstack/internal/chars"
)

// excerptRadius is the number of characters shown on each side of the
// offending character in an excerpt.
const excerptRadius = 10

// Excerpt renders a three-line diagnostic for the given byte offset of input:
// a location header, a window of text around the offset, and a caret marking
// the character at offset.  For example:
//
//	at 1:6 (offset 6):
//	  [1, 2,]
//	        ^
//
// Control characters in the window are shown as spaces so that the caret
// lines up.
func Excerpt(input string, offset int) string {
	offset = max(0, min(offset, len(input)))

	// Walk back to the start of the window, one rune at a time.
	lo := offset
	for i := 0; i < excerptRadius && lo > 0; i++ {
		_, n := utf8.DecodeLastRuneInString(input[:lo])
		lo -= n
	}
	hi := offset
	for i := 0; i <= excerptRadius && hi < len(input); i++ {
		_, n := utf8.DecodeRuneInString(input[hi:])
		hi += n
	}

	var win strings.Builder
	col := 0
	for i, r := range input[lo:hi] {
		if lo+i < offset {
			col++
		}
		if chars.IsControl(r) {
			r = ' '
		}
		win.WriteRune(r)
	}
	return fmt.Sprintf("at %s (offset %d):\n  %s\n  %s^",
		Position(input, offset), offset, win.String(), strings.Repeat(" ", col))
}
