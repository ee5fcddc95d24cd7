// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jstack

import (
	"errors"

	"github.com/creachadair/jstack/internal/escape"

	"go4.org/mem"
)

// Quote encodes src as a JSON string value. The contents are escaped and
// double quotation marks are added.
func Quote(src string) string { return string(escape.Quote(mem.S(src))) }

// Unquote decodes a JSON string value.  Double quotation marks are removed,
// and escape sequences are replaced with their unescaped equivalents.
//
// Unlike Parse, Unquote reports an error if src is not a string.
func Unquote(src string) (string, error) {
	v, err := Parse(src)
	if err != nil {
		return "", err
	}
	s, ok := v.(String)
	if !ok {
		return "", errors.New("value is not a string")
	}
	return string(s), nil
}
