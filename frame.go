// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jstack

import (
	"github.com/creachadair/jstack/internal/chars"
)

// FrameKind identifies the grammar production a parse frame is building.
type FrameKind byte

// Constants defining the valid FrameKind values.
const (
	FrameRoot   FrameKind = iota // the document
	FrameObject                  // object: { ... }
	FrameArray                   // array: [ ... ]
	FrameString                  // quoted string
	FrameNumber                  // number
	FrameTrue                    // constant: true
	FrameFalse                   // constant: false
	FrameNull                    // constant: null
)

var frameStr = [...]string{
	FrameRoot:   "root",
	FrameObject: "object",
	FrameArray:  "array",
	FrameString: "string",
	FrameNumber: "number",
	FrameTrue:   "true",
	FrameFalse:  "false",
	FrameNull:   "null",
}

func (f FrameKind) String() string {
	if int(f) >= len(frameStr) {
		return "invalid frame"
	}
	return frameStr[f]
}

// An action tells the parser how to proceed after a frame has seen a
// character.
type action byte

const (
	advance      action = iota // move past the character
	pop                        // the frame is complete; move past the character
	popNoAdvance               // the frame is complete; offer the character to the parent
	startValue                 // begin a new child value at the character
)

// A frame is the state of one grammar production under construction.
// Frames do not refer to one another: a parent absorbs a completed child
// through consume, which reads only the child's kind and resolved value.
//
// Methods of a frame report errors by calling fail.
type frame interface {
	kind() FrameKind

	// next advances the state machine by one input character.
	next(r rune) action

	// consume absorbs the completed child frame c.
	consume(c frame)

	// valid reports whether ending the frame now would yield a complete value.
	valid() bool

	// resolve returns the completed value. It fails if the frame is not valid.
	resolve() Value
}

// A starter decides whether a frame of its kind begins at a given position.
type starter struct {
	kind FrameKind

	// start reports whether a frame begins at offset pos of input, whose
	// character there is r, and if so how many bytes of input the opening
	// token occupies. The frame does not see those bytes.
	start func(r rune, pos int, input string) (int, bool)

	create func() frame
}

// starters is the dispatch table consulted in order when a new value begins.
// The first characters of the productions are disjoint, so the order affects
// only how quickly a match is found.
var starters = [...]starter{
	{FrameObject, startByte('{'), func() frame { return new(objectFrame) }},
	{FrameArray, startByte('['), func() frame { return new(arrayFrame) }},
	{FrameString, startByte('"'), func() frame { return new(stringFrame) }},
	{FrameNumber, startNumber, func() frame { return new(numberFrame) }},
	{FrameTrue, startLiteral("true"), func() frame { return literalFrame{fk: FrameTrue, value: Bool(true)} }},
	{FrameFalse, startLiteral("false"), func() frame { return literalFrame{fk: FrameFalse, value: Bool(false)} }},
	{FrameNull, startLiteral("null"), func() frame { return literalFrame{fk: FrameNull, value: Null{}} }},
}

func startByte(b rune) func(rune, int, string) (int, bool) {
	return func(r rune, _ int, _ string) (int, bool) { return 1, r == b }
}

// A number is re-read by its frame from the first character, so that the
// state machine sees the sign or leading digit.
func startNumber(r rune, _ int, _ string) (int, bool) {
	return 0, r == '-' || chars.IsDigit(r)
}

func startLiteral(lit string) func(rune, int, string) (int, bool) {
	return func(_ rune, pos int, input string) (int, bool) {
		return len(lit), chars.MatchLiteral(input, pos, lit)
	}
}

// noChildren is embedded by frames that do not accept child values.
type noChildren struct{}

func (noChildren) consume(frame) { fail(Unimplemented) }

// rootFrame holds the single top-level value of the document.
type rootFrame struct {
	value Value
	ok    bool
}

func (*rootFrame) kind() FrameKind { return FrameRoot }

func (f *rootFrame) valid() bool { return f.ok }

func (*rootFrame) next(r rune) action {
	if chars.IsWhitespace(r) {
		return advance
	}
	return startValue
}

func (f *rootFrame) consume(c frame) {
	if f.ok {
		fail(UnexpectedRootData)
	}
	f.value, f.ok = c.resolve(), true
}

func (f *rootFrame) resolve() Value {
	if !f.ok {
		fail(ResolveWhileInvalid)
	}
	return f.value
}

type objectState byte

const (
	objKeyOrClose objectState = iota // expecting a key or "}"
	objKeyDone                       // expecting ":"
	objValue                         // expecting a value
	objValueDone                     // expecting "," or "}"
)

// objectFrame builds an object.
type objectFrame struct {
	state  objectState
	comma  bool // a comma was seen since the last member
	closed bool

	key     string
	members Object
	index   map[string]int // key → offset in members
}

func (*objectFrame) kind() FrameKind { return FrameObject }

func (f *objectFrame) valid() bool { return f.closed }

func (f *objectFrame) next(r rune) action {
	if chars.IsWhitespace(r) {
		return advance
	}
	switch f.state {
	case objKeyOrClose:
		if r == '}' {
			if f.comma {
				fail(TrailingComma)
			}
			f.closed = true
			return pop
		}
		return startValue
	case objKeyDone:
		if r == ':' {
			f.state = objValue
			return advance
		}
	case objValue:
		if r != '}' {
			return startValue
		}
	case objValueDone:
		switch r {
		case ',':
			f.state = objKeyOrClose
			f.comma = true
			return advance
		case '}':
			f.closed = true
			return pop
		}
	default:
		fail(InvalidState)
	}
	fail(UnexpectedCharacter)
	panic("unreachable")
}

func (f *objectFrame) consume(c frame) {
	switch f.state {
	case objKeyOrClose:
		if c.kind() != FrameString {
			fail(KeysMustBeStrings)
		}
		f.key = string(c.resolve().(String))
		f.state = objKeyDone
	case objValue:
		v := c.resolve()
		if i, ok := f.index[f.key]; ok {
			f.members[i].Value = v // last write wins
		} else {
			if f.index == nil {
				f.index = make(map[string]int)
			}
			f.index[f.key] = len(f.members)
			f.members = append(f.members, &Member{Key: f.key, Value: v})
		}
		f.state = objValueDone
		f.comma = false
	default:
		fail(TriedToConsumeAtInvalidState)
	}
}

func (f *objectFrame) resolve() Value {
	if !f.closed {
		fail(ResolveWhileInvalid)
	}
	if f.members == nil {
		return Object{}
	}
	return f.members
}

type arrayState byte

const (
	arrValueOrClose arrayState = iota // expecting a value or "]"
	arrValueDone                      // expecting "," or "]"
)

// arrayFrame builds an array.
type arrayFrame struct {
	state  arrayState
	comma  bool // a comma was seen since the last element
	closed bool

	elems Array
}

func (*arrayFrame) kind() FrameKind { return FrameArray }

func (f *arrayFrame) valid() bool { return f.closed }

func (f *arrayFrame) next(r rune) action {
	if chars.IsWhitespace(r) {
		return advance
	}
	switch f.state {
	case arrValueOrClose:
		if r == ']' {
			if f.comma {
				fail(TrailingComma)
			}
			f.closed = true
			return pop
		}
		return startValue
	case arrValueDone:
		switch r {
		case ',':
			f.state = arrValueOrClose
			f.comma = true
			return advance
		case ']':
			f.closed = true
			return pop
		}
	default:
		fail(InvalidState)
	}
	fail(UnexpectedCharacter)
	panic("unreachable")
}

func (f *arrayFrame) consume(c frame) {
	if f.state != arrValueOrClose {
		fail(TriedToConsumeAtInvalidState)
	}
	f.elems = append(f.elems, c.resolve())
	f.state = arrValueDone
	f.comma = false
}

func (f *arrayFrame) resolve() Value {
	if !f.closed {
		fail(ResolveWhileInvalid)
	}
	if f.elems == nil {
		return Array{}
	}
	return f.elems
}

// literalFrame is a constant, true, false, or null.  The whole literal is
// consumed by its starter, so the frame is complete as soon as it exists.
type literalFrame struct {
	noChildren

	fk    FrameKind
	value Value
}

func (f literalFrame) kind() FrameKind { return f.fk }

func (literalFrame) valid() bool { return true }

func (literalFrame) next(rune) action { return popNoAdvance }

func (f literalFrame) resolve() Value { return f.value }
