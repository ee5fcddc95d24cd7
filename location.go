package jstack

import (
	"fmt"
	"strings"
)

// A LineCol describes the line number and column offset of a location in
// source text.
type LineCol struct {
	Line   int // line number, 1-based
	Column int // byte offset of column in line, 0-based
}

func (lc LineCol) String() string { return fmt.Sprintf("%d:%d", lc.Line, lc.Column) }

// Position returns the line and column of the given byte offset in input.
// Offsets beyond the end of input are treated as the end of input.
func Position(input string, offset int) LineCol {
	offset = max(0, min(offset, len(input)))
	head := input[:offset]
	line := strings.Count(head, "\n") + 1
	col := offset - (strings.LastIndexByte(head, '\n') + 1)
	return LineCol{Line: line, Column: col}
}
