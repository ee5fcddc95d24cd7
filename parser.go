// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jstack

import (
	"io"
	"unicode/utf8"

	"github.com/creachadair/jstack/internal/chars"
)

// Parse parses input as a single JSON value, optionally surrounded by
// whitespace. In case of error, the returned error has type [*SyntaxError].
func Parse(input string) (Value, error) {
	p := &parser{input: input, stk: []frame{new(rootFrame)}}
	return p.parse()
}

// ParseBytes parses input as a single JSON value. See Parse.
func ParseBytes(input []byte) (Value, error) { return Parse(string(input)) }

// ParseReader reads all of r and parses it as a single JSON value.
// See Parse. An error reading r is returned as-is.
func ParseReader(r io.Reader) (Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(string(data))
}

// MustParse parses input as a single JSON value, and panics on error.
// It is intended for use with program literals.
func MustParse(input string) Value {
	v, err := Parse(input)
	if err != nil {
		panic(err)
	}
	return v
}

// A parser is a push-down automaton over the frames in stk.  The bottom of
// the stack is always the root frame, and the top receives input.
type parser struct {
	input string
	pos   int // byte offset of the current character
	stk   []frame
}

func (p *parser) recoverParseError(errp *error) {
	if perr := recover(); perr != nil {
		switch k := perr.(type) {
		case ErrorKind:
			*errp = p.syntaxError(k)
		default:
			panic(perr)
		}
	}
}

// syntaxError captures the position and frame trail of the parser for an
// error of kind k.
func (p *parser) syntaxError(k ErrorKind) *SyntaxError {
	trail := make([]FrameKind, len(p.stk))
	for i, f := range p.stk {
		trail[i] = f.kind()
	}
	return &SyntaxError{
		Kind:     k,
		Offset:   p.pos,
		Location: Position(p.input, p.pos),
		Trail:    trail,
	}
}

func (p *parser) parse() (_ Value, err error) {
	defer p.recoverParseError(&err)

	for p.pos < len(p.input) && chars.IsWhitespace(rune(p.input[p.pos])) {
		p.pos++
	}
	if p.pos == len(p.input) {
		fail(Empty)
	}

	for p.pos < len(p.input) {
		r, n := utf8.DecodeRuneInString(p.input[p.pos:])
		switch p.top().next(r) {
		case advance:
			p.pos += n
		case pop:
			p.pop()
			p.pos += n
		case popNoAdvance:
			p.pop()
		case startValue:
			p.pos += p.startValue(r, n)
		default:
			fail(InvalidState)
		}
	}
	return p.resolve(), nil
}

func (p *parser) top() frame { return p.stk[len(p.stk)-1] }

// pop removes the frame atop the stack after its parent has consumed it.
// The frame remains on the stack while the parent consumes it, so that it
// is included in the trail if consume fails.
func (p *parser) pop() {
	n := len(p.stk)
	if n < 2 {
		fail(PopNoFrame)
	}
	f := p.stk[n-1]
	if !f.valid() {
		fail(EndingUnfinishedFrame)
	}
	p.stk[n-2].consume(f)
	p.stk[n-1] = nil
	p.stk = p.stk[:n-1]
}

// startValue pushes a new frame for the value beginning with r, which is n
// bytes long, and reports how many bytes to advance.
func (p *parser) startValue(r rune, n int) int {
	if chars.IsWhitespace(r) {
		return n
	}
	for _, s := range starters {
		skip, ok := s.start(r, p.pos, p.input)
		if !ok {
			continue
		}
		if skip < 0 {
			fail(AdvanceBackwards)
		}
		p.stk = append(p.stk, s.create())
		return skip
	}
	fail(UnableToStartFrame)
	panic("unreachable")
}

// resolve finishes the parse at the end of input by popping any frames that
// remain above the root.
func (p *parser) resolve() Value {
	for len(p.stk) > 1 {
		p.pop()
	}
	root := p.stk[0]
	if root.kind() != FrameRoot {
		fail(ResolvingNonRoot)
	}
	return root.resolve()
}
