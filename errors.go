// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jstack

import (
	"fmt"
	"strings"
)

// ErrorKind identifies the cause of a parse failure. An ErrorKind is itself
// an error, so callers may write errors.Is(err, jstack.TrailingComma).
type ErrorKind byte

// Constants defining the valid ErrorKind values.
const (
	NoError                      ErrorKind = iota // no error
	Empty                                         // input is empty or all whitespace
	ResolvingNonRoot                              // the last frame standing is not the root
	EndingUnfinishedFrame                         // a frame ended before its value was complete
	PopNoFrame                                    // a frame was popped with no parent
	UnableToStartFrame                            // no value can begin at this character
	AdvanceBackwards                              // a frame tried to move the cursor backward
	TrailingComma                                 // a comma precedes a closing bracket
	UnexpectedCharacter                           // the character is not allowed here
	TriedToConsumeAtInvalidState                  // a frame received a child it cannot accept
	Unimplemented                                 // a frame lacks an operation
	ResolveWhileInvalid                           // a frame was resolved before it was complete
	InvalidState                                  // a state machine reached an unreachable state
	KeysMustBeStrings                             // an object key is not a string
	UnexpectedRootData                            // more than one value at the top level
)

var kindInfo = [...]struct{ name, msg string }{
	NoError:                      {"NoError", "no error"},
	Empty:                        {"Empty", "input is empty"},
	ResolvingNonRoot:             {"ResolvingNonRoot", "cannot resolve a non-root frame"},
	EndingUnfinishedFrame:        {"EndingUnfinishedFrame", "unexpected end of value"},
	PopNoFrame:                   {"PopNoFrame", "pop with no enclosing frame"},
	UnableToStartFrame:           {"UnableToStartFrame", "no value can start here"},
	AdvanceBackwards:             {"AdvanceBackwards", "cannot move backward in input"},
	TrailingComma:                {"TrailingComma", "unexpected trailing comma"},
	UnexpectedCharacter:          {"UnexpectedCharacter", "unexpected character"},
	TriedToConsumeAtInvalidState: {"TriedToConsumeAtInvalidState", "value not expected in this state"},
	Unimplemented:                {"Unimplemented", "operation not implemented by frame"},
	ResolveWhileInvalid:          {"ResolveWhileInvalid", "resolved an incomplete frame"},
	InvalidState:                 {"InvalidState", "frame reached an invalid state"},
	KeysMustBeStrings:            {"KeysMustBeStrings", "object keys must be strings"},
	UnexpectedRootData:           {"UnexpectedRootData", "unexpected data after top-level value"},
}

func (k ErrorKind) info() (string, string) {
	if int(k) >= len(kindInfo) {
		return fmt.Sprintf("ErrorKind(%d)", k), "unknown error"
	}
	return kindInfo[k].name, kindInfo[k].msg
}

// String returns the name of the error kind, for example "TrailingComma".
func (k ErrorKind) String() string { name, _ := k.info(); return name }

// Error satisfies the error interface with a human-readable message.
func (k ErrorKind) Error() string { _, msg := k.info(); return msg }

// IsDefect reports whether k indicates a fault in the parser itself rather
// than a problem with its input. Well-formed and malformed inputs alike
// should never produce a defect.
func (k ErrorKind) IsDefect() bool {
	switch k {
	case ResolvingNonRoot, PopNoFrame, AdvanceBackwards, TriedToConsumeAtInvalidState,
		Unimplemented, ResolveWhileInvalid, InvalidState:
		return true
	}
	return false
}

// SyntaxError is the concrete type of errors reported by Parse.
type SyntaxError struct {
	Kind     ErrorKind   // what went wrong
	Offset   int         // byte offset of the offending character
	Location LineCol     // line and column of Offset
	Trail    []FrameKind // frames open at the time of failure, outermost first
}

// Error satisfies the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("at %s: %v (offset %d)", e.Location, e.Kind, e.Offset)
}

// Unwrap supports error wrapping.
func (e *SyntaxError) Unwrap() error { return e.Kind }

// TrailString renders the frame trail of e as a path, for example
// "root > array > object > string".
func (e *SyntaxError) TrailString() string {
	ss := make([]string, len(e.Trail))
	for i, f := range e.Trail {
		ss[i] = f.String()
	}
	return strings.Join(ss, " > ")
}

// Excerpt renders a diagnostic excerpt of input around the location of e.
// The input should be the text whose parse reported e.
func (e *SyntaxError) Excerpt(input string) string { return Excerpt(input, e.Offset) }

// fail aborts the current parse with an error of kind k.  It is recovered by
// Parse, which adds positional context.
func fail(k ErrorKind) { panic(k) }
