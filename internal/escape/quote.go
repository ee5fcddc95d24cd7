// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package escape handles quoting of JSON strings.
package escape

import (
	"github.com/creachadair/jstack/internal/chars"

	"go4.org/mem"
)

// Append appends the JSON encoding of src to buf, including the enclosing
// double quotation marks, and returns the extended slice.
//
// Invalid UTF-8 sequences in src are encoded as the Unicode replacement rune.
func Append(buf []byte, src mem.RO) []byte {
	buf = append(buf, '"')
	for src.Len() != 0 {
		r, n := mem.DecodeRune(src)
		if n == 0 {
			n++
		}
		buf = chars.AppendEscaped(buf, r)
		src = src.SliceFrom(n)
	}
	return append(buf, '"')
}

// Quote encodes src as a quoted JSON string.
func Quote(src mem.RO) []byte { return Append(make([]byte, 0, src.Len()+2), src) }
