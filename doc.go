// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package jstack implements a non-recursive JSON parser and encoder.
//
// # Parsing
//
// Parse converts JSON text into a Value. The parser is a push-down automaton:
// each grammar production under construction (object, array, string, number,
// or one of the constants true, false, and null) is a frame on an explicit
// stack, and input is fed to the topmost frame one character at a time.
// Nesting depth is limited only by memory, not by the call stack.
//
//	v, err := jstack.Parse(`{"episodes": [1, 2, 3]}`)
//	if err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//
// In case of error, Parse returns an error of concrete type *SyntaxError,
// which reports the kind of error, the byte offset and line/column where it
// occurred, and the kinds of the frames that were open at the time:
//
//	var serr *jstack.SyntaxError
//	if errors.As(err, &serr) {
//	   log.Printf("%v\n%s", serr.TrailString(), serr.Excerpt(input))
//	}
//
// The ErrorKind of a SyntaxError is itself an error, so errors.Is works:
//
//	if errors.Is(err, jstack.TrailingComma) { ... }
//
// # Values
//
// A Value is one of the concrete types:
//
//	JSON type  | Go type   | Notes
//	---------- | --------- | ------------------------------------------------
//	object     | Object    | ordered members; duplicate keys keep the last value
//	array      | Array     |
//	string     | String    | escapes decoded; lone surrogates become U+FFFD
//	number     | Number    | float64; out-of-range magnitudes become ±Inf
//	true/false | Bool      |
//	null       | Null      |
//
// # Encoding
//
// Stringify renders a Value as compact JSON text. A Stringifier adds options
// for indentation and for a Transform that may replace or omit values:
//
//	s := jstack.Stringifier{
//	   Indent:    jstack.Spaces(2),
//	   Transform: jstack.AllowKeys("title", "episode"),
//	}
//	fmt.Println(s.Stringify(v))
//
// The encoder, like the parser, uses an explicit stack rather than recursion.
package jstack
