// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package jstack_test

import (
	"math"
	"math/rand/v2"
	"strconv"
	"strings"
	"testing"

	"github.com/creachadair/jstack"
	"github.com/google/go-cmp/cmp"
)

func TestStringify(t *testing.T) {
	tests := []struct {
		name  string
		input jstack.Value
		want  string
	}{
		{"Nil", nil, "null"},
		{"Null", jstack.Null{}, "null"},
		{"True", jstack.Bool(true), "true"},
		{"String", jstack.String("a\"b "), "\"a\\\"b \""},
		{"EmptyArray", jstack.Array{}, "[]"},
		{"NilArray", jstack.Array(nil), "[]"},
		{"EmptyObject", jstack.Object{}, "{}"},
		{"NilInArray", jstack.Array{nil, jstack.Number(1)}, "[null,1]"},
		{"Object", jstack.Object{
			jstack.Field("a", 1),
			jstack.Field("b", []any{"x", true, nil}),
			jstack.Field("c", jstack.Object{}),
		}, `{"a":1,"b":["x",true,null],"c":{}}`},
		{"EscapedKey", jstack.Object{jstack.Field("\n", "")}, `{"\n":""}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := jstack.Stringify(tc.input); got != tc.want {
				t.Errorf("Stringify: got %#q, want %#q", got, tc.want)
			}
		})
	}
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		input float64
		want  string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{1, "1"},
		{-17, "-17"},
		{0.5, "0.5"},
		{0.1, "0.1"},
		{1.0 / 3, "0.3333333333333333"},
		{1e-6, "0.000001"},
		{1e-7, "1e-7"},
		{-2.5e-9, "-2.5e-9"},
		{1e20, "100000000000000000000"},
		{1e21, "1e+21"},
		{1.5e300, "1.5e+300"},
		{5e-324, "5e-324"},
		{math.MaxInt64, "9223372036854775808"},
		{math.NaN(), "null"},
		{math.Inf(1), "null"},
		{math.Inf(-1), "null"},
	}
	for _, tc := range tests {
		if got := jstack.Number(tc.input).JSON(); got != tc.want {
			t.Errorf("Number(%v): got %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestIndent(t *testing.T) {
	v := jstack.MustParse(`{"a":[1,2]}`)

	tests := []struct {
		indent string
		want   string
	}{
		{"", `{"a":[1,2]}`},
		{jstack.Spaces(0), `{"a":[1,2]}`},
		{jstack.Spaces(-3), `{"a":[1,2]}`},
		{jstack.Spaces(2), "{\n  \"a\": [\n    1,\n    2\n  ]\n}"},
		{"\t", "{\n\t\"a\": [\n\t\t1,\n\t\t2\n\t]\n}"},
	}
	for _, tc := range tests {
		s := jstack.Stringifier{Indent: tc.indent}
		if got := s.Stringify(v); got != tc.want {
			t.Errorf("Indent %q: got\n%s\nwant\n%s", tc.indent, got, tc.want)
		}
	}

	// Empty containers stay on one line, and scalars are not padded.
	s := jstack.Stringifier{Indent: jstack.Spaces(1)}
	empty := jstack.MustParse(`[{}, [], "x"]`)
	if got, want := s.Stringify(empty), "[\n {},\n [],\n \"x\"\n]"; got != want {
		t.Errorf("Empty containers: got %q, want %q", got, want)
	}
	if got := s.Stringify(jstack.Number(3)); got != "3" {
		t.Errorf("Scalar: got %q, want %q", got, "3")
	}
}

func TestTransform(t *testing.T) {
	v := jstack.MustParse(`{"keep": 1, "drop": 2, "list": [1, "two", 3], "obj": {"drop": true}}`)

	// Drop members named "drop", omit string array elements, and double
	// other numbers.
	var keys []string
	s := jstack.Stringifier{
		Transform: func(key jstack.Key, v jstack.Value) (jstack.Value, bool) {
			keys = append(keys, key.String())
			if !key.InArray() && key.Name == "drop" {
				return nil, false
			}
			switch t := v.(type) {
			case jstack.String:
				return nil, !key.InArray()
			case jstack.Number:
				return t * 2, true
			}
			return v, true
		},
	}
	const want = `{"keep":2,"list":[2,null,6],"obj":{}}`
	if got := s.Stringify(v); got != want {
		t.Errorf("Transform: got %#q, want %#q", got, want)
	}

	// The transform sees members and elements in order, each container
	// before its contents.
	wantKeys := []string{"keep", "drop", "list", "obj", "0", "1", "2", "drop"}
	if diff := cmp.Diff(keys, wantKeys); diff != "" {
		t.Errorf("Transform keys (-got, +want):\n%s", diff)
	}

	// The input is not modified.
	if got := v.JSON(); !strings.Contains(got, `"drop":2`) {
		t.Errorf("Input was modified: %s", got)
	}
}

func TestTransformParent(t *testing.T) {
	arr := jstack.Array{jstack.Number(5)}
	obj := jstack.Object{jstack.Field("a", arr)}
	var parents []string
	s := jstack.Stringifier{
		Transform: func(key jstack.Key, v jstack.Value) (jstack.Value, bool) {
			parents = append(parents, key.Parent.JSON())
			if key.InArray() && key.Index != 0 {
				t.Errorf("Index: got %d, want 0", key.Index)
			}
			return v, true
		},
	}
	s.Stringify(obj)
	if diff := cmp.Diff(parents, []string{`{"a":[5]}`, `[5]`}); diff != "" {
		t.Errorf("Parents (-got, +want):\n%s", diff)
	}
}

func TestAllowKeys(t *testing.T) {
	v := jstack.MustParse(`{"id": 1, "name": "x", "skip": [1], "kids": [{"id": 2, "skip": 3}, 4]}`)
	s := jstack.Stringifier{Transform: jstack.AllowKeys("id", "kids")}
	const want = `{"id":1,"kids":[{"id":2},4]}`
	if got := s.Stringify(v); got != want {
		t.Errorf("AllowKeys: got %#q, want %#q", got, want)
	}

	none := jstack.Stringifier{Transform: jstack.AllowKeys()}
	if got := none.Stringify(v); got != "{}" {
		t.Errorf("AllowKeys(): got %#q, want {}", got)
	}
}

// randomValue generates a value of nesting depth at most depth. Object keys
// are unique so that the value survives a round trip unchanged.
func randomValue(r *rand.Rand, depth int) jstack.Value {
	n := 6
	if depth > 0 {
		n = 8
	}
	switch r.IntN(n) {
	case 0:
		return jstack.Null{}
	case 1:
		return jstack.Bool(r.IntN(2) == 0)
	case 2:
		return jstack.Number(r.IntN(2000) - 1000)
	case 3:
		return jstack.Number(r.NormFloat64() * math.Pow(10, float64(r.IntN(40)-20)))
	case 4, 5:
		return jstack.String(randomString(r))
	case 6:
		out := make(jstack.Array, r.IntN(5))
		for i := range out {
			out[i] = randomValue(r, depth-1)
		}
		return out
	default:
		out := jstack.Object{}
		for i := range r.IntN(5) {
			out = append(out, &jstack.Member{
				Key:   randomString(r) + strconv.Itoa(i),
				Value: randomValue(r, depth-1),
			})
		}
		return out
	}
}

var alphabet = []rune("abcXYZ09 \"\\/\b\f\n\r\t\x00\x1f\u007féü€ 😀")

func randomString(r *rand.Rand) string {
	var sb strings.Builder
	for range r.IntN(8) {
		sb.WriteRune(alphabet[r.IntN(len(alphabet))])
	}
	return sb.String()
}

func TestRoundTrip(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for i := range 500 {
		v := randomValue(r, 4)
		for _, indent := range []string{"", jstack.Spaces(2), "\t"} {
			s := jstack.Stringifier{Indent: indent}
			text := s.Stringify(v)
			got, err := jstack.Parse(text)
			if err != nil {
				t.Fatalf("Case %d: Parse %q: %v", i, text, err)
			}
			if diff := cmp.Diff(got, v); diff != "" {
				t.Fatalf("Case %d: round trip of %q (-got, +want):\n%s", i, text, diff)
			}

			// Stringify is idempotent over its own parsed output.
			if again := s.Stringify(got); again != text {
				t.Fatalf("Case %d: re-stringify:\n got %q\nwant %q", i, again, text)
			}
		}
	}
}
