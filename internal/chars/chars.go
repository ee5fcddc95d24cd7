// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package chars defines the character classes of the JSON grammar.
package chars

import (
	"unicode/utf8"

	"go4.org/mem"
)

// IsDigit reports whether r is a decimal digit.
func IsDigit(r rune) bool { return '0' <= r && r <= '9' }

// IsNonZeroDigit reports whether r is a decimal digit other than 0.
func IsNonZeroDigit(r rune) bool { return '1' <= r && r <= '9' }

// IsHexDigit reports whether r is a hexadecimal digit in either case.
func IsHexDigit(r rune) bool {
	return IsDigit(r) || ('a' <= r && r <= 'f') || ('A' <= r && r <= 'F')
}

// IsWhitespace reports whether r is insignificant whitespace between tokens.
func IsWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n'
}

// IsControl reports whether r is a control character that may not appear
// unescaped inside a JSON string, U+0000 through U+001F.
func IsControl(r rune) bool { return r >= 0 && r < ' ' }

// HexValue returns the value of the hexadecimal digit r, or -1 if r is not
// a hex digit.
func HexValue(r rune) int {
	switch {
	case IsDigit(r):
		return int(r - '0')
	case 'a' <= r && r <= 'f':
		return int(r-'a') + 10
	case 'A' <= r && r <= 'F':
		return int(r-'A') + 10
	}
	return -1
}

// MatchLiteral reports whether input contains literal starting at offset pos.
// It is safe for any pos; out-of-range offsets do not match.
func MatchLiteral(input string, pos int, literal string) bool {
	if pos < 0 || pos > len(input) {
		return false
	}
	return mem.HasPrefix(mem.S(input[pos:]), mem.S(literal))
}

var namedEscape = [...]byte{
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	' ':  0, // sentinel
}

const hexDigit = "0123456789abcdef"

// AppendEscaped appends the JSON string encoding of r to dst.  Quotation
// marks and backslashes are escaped, control characters use their short
// escapes if they have one and \u00XX otherwise; all other runes are copied
// as UTF-8.
func AppendEscaped(dst []byte, r rune) []byte {
	switch {
	case r == '"' || r == '\\':
		return append(dst, '\\', byte(r))
	case IsControl(r):
		if b := namedEscape[r]; b != 0 {
			return append(dst, '\\', b)
		}
		return append(dst, '\\', 'u', '0', '0', hexDigit[r>>4], hexDigit[r&15])
	case r < utf8.RuneSelf:
		return append(dst, byte(r))
	default:
		return utf8.AppendRune(dst, r)
	}
}
