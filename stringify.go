// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package jstack

import (
	"math"
	"strconv"
	"strings"

	"github.com/creachadair/jstack/internal/escape"
	"github.com/creachadair/mds/mapset"

	"go4.org/mem"
)

// A Key identifies the position of a value within its enclosing array or
// object, as reported to a Transform.
type Key struct {
	Parent Value  // the enclosing Array or Object
	Name   string // the member key, if Parent is an Object
	Index  int    // the element offset, if Parent is an Array
}

// InArray reports whether k denotes an element of an array.
func (k Key) InArray() bool { _, ok := k.Parent.(Array); return ok }

func (k Key) String() string {
	if k.InArray() {
		return strconv.Itoa(k.Index)
	}
	return k.Name
}

// A Transform is called by a Stringifier for each member of an object and
// each element of an array before the value is rendered. It returns the
// value to render in place of v, or false to omit it.
//
// An omitted object member is dropped entirely, key and all. An omitted
// array element is rendered as null, since arrays have no holes.
type Transform func(key Key, v Value) (Value, bool)

// AllowKeys returns a Transform that keeps only the object members whose
// keys are among names, at any depth. Array elements are not filtered.
func AllowKeys(names ...string) Transform {
	ok := mapset.New(names...)
	return func(key Key, v Value) (Value, bool) {
		if key.InArray() {
			return v, true
		}
		return v, ok.Has(key.Name)
	}
}

// Spaces returns an indentation unit of n spaces, for use as the Indent of
// a Stringifier. If n ≤ 0, the result is empty.
func Spaces(n int) string { return strings.Repeat(" ", max(n, 0)) }

// A Stringifier carries the settings for rendering values as JSON text.
// A zero value is ready for use and renders compact output.
type Stringifier struct {
	// If not nil, Transform is applied to each object member and array
	// element before it is rendered.
	Transform Transform

	// If not empty, each array element and object member is placed on its
	// own line, prefixed by one copy of Indent per level of nesting, and
	// a space follows the colon after each object key.
	Indent string
}

// Stringify renders v as compact JSON text.
func Stringify(v Value) string { return Stringifier{}.Stringify(v) }

type workKind byte

const (
	workValue workKind = iota
	workKey
	workComma
	workCloseObject
	workCloseArray
)

// A work item is a pending output step for the stringifier.
type work struct {
	kind  workKind
	value Value  // for workValue
	pad   bool   // for workValue: start the value on a new line
	key   string // for workKey
}

// Stringify renders v as JSON text using the settings from s.
//
// Rendering is iterative: pending values, keys, and punctuation are kept on
// an explicit stack, and the children of an array or object are pushed in
// reverse so they are rendered in order.
func (s Stringifier) Stringify(v Value) string {
	var buf []byte
	depth := 0
	stk := []work{{kind: workValue, value: v}}

	for len(stk) != 0 {
		w := stk[len(stk)-1]
		stk = stk[:len(stk)-1]

		switch w.kind {
		case workValue:
			if w.pad {
				buf = s.pad(buf, depth, depth != 0)
			}
			switch t := w.value.(type) {
			case Array:
				if len(t) == 0 {
					buf = append(buf, "[]"...)
					continue
				}
				elts := s.transformArray(t)
				buf = append(buf, '[')
				depth++
				stk = append(stk, work{kind: workCloseArray})
				for i := len(elts) - 1; i >= 0; i-- {
					stk = append(stk, work{kind: workValue, value: elts[i], pad: true})
					if i != 0 {
						stk = append(stk, work{kind: workComma})
					}
				}

			case Object:
				mems := s.transformObject(t)
				if len(mems) == 0 {
					buf = append(buf, "{}"...)
					continue
				}
				buf = append(buf, '{')
				depth++
				stk = append(stk, work{kind: workCloseObject})
				for i := len(mems) - 1; i >= 0; i-- {
					stk = append(stk,
						work{kind: workValue, value: mems[i].Value},
						work{kind: workKey, key: mems[i].Key},
					)
					if i != 0 {
						stk = append(stk, work{kind: workComma})
					}
				}

			default:
				buf = appendScalar(buf, w.value)
			}

		case workKey:
			buf = s.pad(buf, depth, true)
			buf = escape.Append(buf, mem.S(w.key))
			buf = append(buf, ':')
			if s.Indent != "" {
				buf = append(buf, ' ')
			}

		case workComma:
			buf = append(buf, ',')

		case workCloseArray:
			depth--
			buf = s.pad(buf, depth, true)
			buf = append(buf, ']')

		case workCloseObject:
			depth--
			buf = s.pad(buf, depth, true)
			buf = append(buf, '}')

		default:
			panic("invalid work item")
		}
	}
	return string(buf)
}

// pad appends indentation for the given depth to buf, preceded by a newline
// if newline is true. It does nothing for compact output.
func (s Stringifier) pad(buf []byte, depth int, newline bool) []byte {
	if s.Indent == "" {
		return buf
	}
	if newline {
		buf = append(buf, '\n')
	}
	for range depth {
		buf = append(buf, s.Indent...)
	}
	return buf
}

// transformArray applies the transform to the elements of a, in order.
func (s Stringifier) transformArray(a Array) Array {
	if s.Transform == nil {
		return a
	}
	out := make(Array, len(a))
	for i, v := range a {
		if w, ok := s.Transform(Key{Parent: a, Index: i}, v); ok {
			out[i] = w
		} else {
			out[i] = Null{}
		}
	}
	return out
}

// transformObject applies the transform to the members of o, in order, and
// returns the members that were not omitted.
func (s Stringifier) transformObject(o Object) Object {
	if s.Transform == nil {
		return o
	}
	out := make(Object, 0, len(o))
	for _, m := range o {
		if w, ok := s.Transform(Key{Parent: o, Name: m.Key}, m.Value); ok {
			out = append(out, &Member{Key: m.Key, Value: w})
		}
	}
	return out
}

// appendScalar appends the encoding of a non-container value to buf.
// A nil value is rendered as null.
func appendScalar(buf []byte, v Value) []byte {
	switch t := v.(type) {
	case String:
		return escape.Append(buf, mem.S(string(t)))
	case Number:
		return appendNumber(buf, float64(t))
	case Bool:
		return strconv.AppendBool(buf, bool(t))
	case Null, nil:
		return append(buf, "null"...)
	default:
		panic("invalid value type")
	}
}

// appendNumber appends the shortest text that reads back as f, in the form
// used by ECMAScript: exponent notation only for very large or small
// magnitudes. NaN and infinities have no JSON form and are rendered as null.
func appendNumber(buf []byte, f float64) []byte {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return append(buf, "null"...)
	}
	if f == 0 {
		return append(buf, '0') // including -0
	}
	abs := math.Abs(f)
	format := byte('f')
	if abs < 1e-6 || abs >= 1e21 {
		format = 'e'
	}
	buf = strconv.AppendFloat(buf, f, format, -1, 64)
	if format == 'e' {
		// Clean up e-09 to e-9.
		n := len(buf)
		if n >= 4 && buf[n-4] == 'e' && buf[n-3] == '-' && buf[n-2] == '0' {
			buf[n-2] = buf[n-1]
			buf = buf[:n-1]
		}
	}
	return buf
}
