// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jstack

import (
	"strconv"

	"github.com/creachadair/jstack/internal/chars"
)

type numberState byte

const (
	numStart      numberState = iota // nothing seen yet
	numMinus                         // after "-", want a digit
	numZero                          // after a leading "0"
	numInt                           // in integer digits after a nonzero lead
	numFracFirst                     // after ".", want a digit
	numFrac                          // in fraction digits
	numExpSign                       // after "e" or "E", want a sign or digit
	numExpFirst                      // after an exponent sign, want a digit
	numExp                           // in exponent digits
	numEnd                           // the number is complete
)

// numberFrame validates a number per the JSON grammar:
//
//	number = [ "-" ] int [ frac ] [ exp ]
//	int    = "0" / digit1-9 *digit
//	frac   = "." 1*digit
//	exp    = ("e" / "E") [ "-" / "+" ] 1*digit
//
// The first character of the number is delivered to the frame, not consumed
// by its starter. The character following the number is not consumed: the
// frame reports popNoAdvance so that its parent sees it.
type numberFrame struct {
	noChildren

	state numberState
	text  []byte
}

func (*numberFrame) kind() FrameKind { return FrameNumber }

// valid reports whether the text so far is a complete number. This is true
// in every state that permits the number to end.
func (f *numberFrame) valid() bool {
	switch f.state {
	case numZero, numInt, numFrac, numExp, numEnd:
		return true
	}
	return false
}

func (f *numberFrame) next(r rune) action {
	next := f.reduce(r)
	if next == numEnd {
		f.state = numEnd
		return popNoAdvance
	}
	f.text = append(f.text, byte(r))
	f.state = next
	return advance
}

// reduce returns the state following r. It returns numEnd if r does not
// belong to the number and the number may end in the current state.
func (f *numberFrame) reduce(r rune) numberState {
	switch f.state {
	case numStart:
		switch {
		case r == '-':
			return numMinus
		case r == '0':
			return numZero
		case chars.IsNonZeroDigit(r):
			return numInt
		}

	case numMinus:
		switch {
		case r == '0':
			return numZero
		case chars.IsNonZeroDigit(r):
			return numInt
		}

	case numZero:
		switch {
		case r == '.':
			return numFracFirst
		case r == 'e' || r == 'E':
			return numExpSign
		case chars.IsDigit(r):
			// Leading zeroes are not permitted: 0.12 is OK, 01.2 is not.
		default:
			return numEnd
		}

	case numInt:
		switch {
		case chars.IsDigit(r):
			return numInt
		case r == '.':
			return numFracFirst
		case r == 'e' || r == 'E':
			return numExpSign
		default:
			return numEnd
		}

	case numFracFirst:
		if chars.IsDigit(r) {
			return numFrac
		}

	case numFrac:
		switch {
		case chars.IsDigit(r):
			return numFrac
		case r == 'e' || r == 'E':
			return numExpSign
		default:
			return numEnd
		}

	case numExpSign:
		switch {
		case r == '-' || r == '+':
			return numExpFirst
		case chars.IsDigit(r):
			return numExp
		}

	case numExpFirst:
		if chars.IsDigit(r) {
			return numExp
		}

	case numExp:
		if chars.IsDigit(r) {
			return numExp
		}
		return numEnd

	case numEnd:
		// The number already ended; the parser should have popped it.
	}
	fail(UnexpectedCharacter)
	panic("unreachable")
}

func (f *numberFrame) resolve() Value {
	if !f.valid() {
		fail(ResolveWhileInvalid)
	}
	// The grammar has been checked, so the only possible error is a range
	// error. In that case v is ±Inf or 0, which we accept.
	v, _ := strconv.ParseFloat(string(f.text), 64)
	return Number(v)
}
