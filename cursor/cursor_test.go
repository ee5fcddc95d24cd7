// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package cursor_test

import (
	"errors"
	"testing"

	"github.com/creachadair/jstack"
	"github.com/creachadair/jstack/cursor"
	"github.com/google/go-cmp/cmp"
)

const testJSON = `{
  "list": [
    {
      "x": 1
    },
    {
      "x": 2
    }
  ],
  "y": {
    "hello": "there"
  },
  "o": [
    "hi",
    "yourself"
  ],
  "xyz": {
    "p": true,
    "d": true,
    "q": false
  }
}`

func TestCursor(t *testing.T) {
	v, err := jstack.Parse(testJSON)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	root := v.(jstack.Object)

	tests := []struct {
		name string
		path []any
		want jstack.Value
		fail bool
	}{
		{"NilInput", nil, v, false},
		{"NilElement", []any{nil, "y", nil}, root.Find("y").Value, false},
		{"NoMatch", []any{"nonesuch"}, v, true},
		{"WrongType", []any{"o", "x"}, root.Find("o").Value, true},
		{"BadElement", []any{3.5}, v, true},

		{"ArrayPos", []any{"list", 1},
			root.Find("list").Value.(jstack.Array)[1],
			false,
		},
		{"ArrayNeg", []any{"list", -1},
			root.Find("list").Value.(jstack.Array)[1],
			false,
		},
		{"ArrayRange", []any{"o", 25},
			root.Find("o").Value,
			true,
		},
		{"ObjIndex", []any{1, "hello"}, jstack.String("there"), false},
		{"ObjRange", []any{-5}, v, true},
		{"ObjPath", []any{"xyz", "d"}, jstack.Bool(true), false},
		{"DeepPath", []any{"list", 0, "x"}, jstack.Number(1), false},

		{"FuncArray", []any{"o", testPathFunc}, jstack.ToValue(2), false},
		{"FuncObj", []any{"xyz", testPathFunc}, jstack.ToValue(3), false},
		{"FuncWrong", []any{"xyz", "d", testPathFunc}, jstack.Bool(true), true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := cursor.New(v).Down(tc.path...)
			err := c.Err()
			if err != nil {
				if tc.fail {
					t.Logf("Got expected error: %v", err)
				} else {
					t.Fatalf("Down %+v: unexpected error: %v", tc.path, err)
				}
			} else if tc.fail {
				t.Errorf("Down %+v: got %s, wanted error", tc.path, c.Value().JSON())
			}
			got := c.Value()
			if diff := cmp.Diff(got, tc.want); diff != "" {
				t.Errorf("Down %+v: wrong result (-got, +want):\n%s", tc.path, diff)
			} else if err == nil {
				t.Logf("Found %s OK", got.JSON())
			}
		})
	}
}

func TestNavigation(t *testing.T) {
	v := jstack.MustParse(testJSON)
	c := cursor.New(v)
	if !c.AtOrigin() {
		t.Error("New cursor is not at its origin")
	}

	c.Down("list", 0, "x")
	if c.AtOrigin() {
		t.Error("Cursor should not be at its origin")
	}
	if got := len(c.Path()); got != 4 {
		t.Errorf("Path length: got %d, want 4", got)
	}
	if got := c.Up().Value().JSON(); got != `{"x":1}` {
		t.Errorf("Up: got %s, want {\"x\":1}", got)
	}
	if got := c.Down("x").Value(); got != jstack.Number(1) {
		t.Errorf("Down after Up: got %v, want 1", got)
	}

	c.Down("nonesuch")
	if c.Err() == nil {
		t.Error("Down: got nil error, wanted error")
	}
	c.Reset()
	if !c.AtOrigin() || c.Err() != nil {
		t.Errorf("Reset: at origin %v, error %v", c.AtOrigin(), c.Err())
	}
	if c.Origin().JSON() != c.Value().JSON() {
		t.Error("Reset cursor does not point to its origin")
	}
}

func TestPath(t *testing.T) {
	v := jstack.MustParse(testJSON)

	s, err := cursor.Path[jstack.String](v, "y", "hello")
	if err != nil {
		t.Fatalf("Path: unexpected error: %v", err)
	} else if s != "there" {
		t.Errorf("Path: got %q, want %q", s, "there")
	}

	if n, err := cursor.Path[jstack.Number](v, "o", 0); err == nil {
		t.Errorf("Path: got %v, wanted type error", n)
	}
	if a, err := cursor.Path[jstack.Array](v, "missing"); err == nil {
		t.Errorf("Path: got %v, wanted error", a)
	}
}

func testPathFunc(v jstack.Value) (jstack.Value, error) {
	switch t := v.(type) {
	case jstack.Array:
		return jstack.ToValue(len(t)), nil
	case jstack.Object:
		return jstack.ToValue(len(t)), nil
	default:
		return nil, errors.New("not a thing with length")
	}
}
