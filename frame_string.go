// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jstack

import (
	"unicode/utf16"

	"github.com/creachadair/jstack/internal/chars"
)

type stringState byte

const (
	strAny       stringState = iota // ordinary characters
	strEscape                       // after a backslash
	strUnicode                      // inside \uXXXX, hex digits pending
	strEnd                          // after the closing quote
)

// stringFrame builds a string. The opening quotation mark is consumed by its
// starter; the frame sees everything after it up to the closing quotation
// mark.
//
// Text is buffered as UTF-16 code units. Each \uXXXX escape contributes
// exactly one unit, and no attempt is made to pair surrogates while
// scanning; the buffer is decoded when the frame is resolved, so a valid
// surrogate pair yields one code point and an unpaired surrogate yields
// U+FFFD.
type stringFrame struct {
	noChildren

	state stringState
	units []uint16
	hex   rune // accumulated value of a \u escape
	nhex  int  // number of hex digits seen in a \u escape
}

func (*stringFrame) kind() FrameKind { return FrameString }

func (f *stringFrame) valid() bool { return f.state == strEnd }

func (f *stringFrame) next(r rune) action {
	switch f.state {
	case strAny:
		switch {
		case r == '"':
			f.state = strEnd
			return pop
		case r == '\\':
			f.state = strEscape
		case chars.IsControl(r):
			fail(UnexpectedCharacter)
		default:
			f.units = utf16.AppendRune(f.units, r)
		}

	case strEscape:
		switch r {
		case '"', '\\', '/':
			f.units = append(f.units, uint16(r))
		case 'b':
			f.units = append(f.units, '\b')
		case 'f':
			f.units = append(f.units, '\f')
		case 'n':
			f.units = append(f.units, '\n')
		case 'r':
			f.units = append(f.units, '\r')
		case 't':
			f.units = append(f.units, '\t')
		case 'u':
			f.state, f.hex, f.nhex = strUnicode, 0, 0
			return advance
		default:
			fail(UnexpectedCharacter)
		}
		f.state = strAny

	case strUnicode:
		v := chars.HexValue(r)
		if v < 0 {
			fail(UnexpectedCharacter)
		}
		f.hex = f.hex<<4 | rune(v)
		if f.nhex++; f.nhex == 4 {
			f.units = append(f.units, uint16(f.hex))
			f.state = strAny
		}

	default:
		fail(InvalidState)
	}
	return advance
}

func (f *stringFrame) resolve() Value {
	if f.state != strEnd {
		fail(ResolveWhileInvalid)
	}
	return String(utf16.Decode(f.units))
}
