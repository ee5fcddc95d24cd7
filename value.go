// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jstack

import (
	"fmt"
	"math"
)

// A Value is an arbitrary JSON value. The concrete type of a Value is one of
// Object, Array, String, Number, Bool, or Null.
type Value interface {
	// JSON returns the compact JSON encoding of the value.
	JSON() string

	isValue()
}

// An Object is an ordered collection of key-value members.
type Object []*Member

// A Member is a single key-value pair belonging to an Object.
type Member struct {
	Key   string
	Value Value
}

// Field constructs an object member with the given key and value.
// The value must be acceptable to ToValue.
func Field(key string, value any) *Member {
	return &Member{Key: key, Value: ToValue(value)}
}

// Find returns the first member of o with the given key, or nil.
func (o Object) Find(key string) *Member {
	for _, m := range o {
		if m.Key == key {
			return m
		}
	}
	return nil
}

// Set sets the value of the member of o with the given key, adding a new
// member at the end if none exists. An existing member keeps its position.
func (o *Object) Set(key string, v Value) {
	if m := o.Find(key); m != nil {
		m.Value = v
		return
	}
	*o = append(*o, &Member{Key: key, Value: v})
}

// Len reports the number of members in o.
func (o Object) Len() int { return len(o) }

// JSON satisfies the Value interface.
func (o Object) JSON() string { return Stringify(o) }

func (o Object) String() string { return fmt.Sprintf("Object(len=%d)", len(o)) }

// An Array is a sequence of values.
type Array []Value

// Len reports the number of elements in a.
func (a Array) Len() int { return len(a) }

// JSON satisfies the Value interface.
func (a Array) JSON() string { return Stringify(a) }

func (a Array) String() string { return fmt.Sprintf("Array(len=%d)", len(a)) }

// A String is a string value.
type String string

// JSON satisfies the Value interface.
func (s String) JSON() string { return Quote(string(s)) }

// A Number is a numeric value.
type Number float64

// JSON satisfies the Value interface.
func (n Number) JSON() string { return string(appendNumber(nil, float64(n))) }

// IsInt reports whether n is an integer.
func (n Number) IsInt() bool {
	f := float64(n)
	return !math.IsInf(f, 0) && f == math.Trunc(f)
}

// A Bool is a Boolean constant, true or false.
type Bool bool

// JSON satisfies the Value interface.
func (b Bool) JSON() string {
	if b {
		return "true"
	}
	return "false"
}

// Null represents the null constant.
type Null struct{}

// JSON satisfies the Value interface.
func (Null) JSON() string { return "null" }

func (Object) isValue() {}
func (Array) isValue()  {}
func (String) isValue() {}
func (Number) isValue() {}
func (Bool) isValue()   {}
func (Null) isValue()   {}

// ToValue converts a Go value into a JSON value. It panics if v does not
// have one of the following types:
//
//	Type           | Result
//	-------------- | -------------------------
//	nil            | Null{}
//	bool           | Bool
//	string         | String
//	int, int64     | Number
//	float64        | Number
//	[]any          | Array, elements converted
//	Value          | unchanged
func ToValue(v any) Value {
	switch t := v.(type) {
	case nil:
		return Null{}
	case Value:
		return t
	case bool:
		return Bool(t)
	case string:
		return String(t)
	case int:
		return Number(t)
	case int64:
		return Number(t)
	case float64:
		return Number(t)
	case []any:
		out := make(Array, len(t))
		for i, elt := range t {
			out[i] = ToValue(elt)
		}
		return out
	default:
		panic(fmt.Sprintf("invalid value %T", v))
	}
}
