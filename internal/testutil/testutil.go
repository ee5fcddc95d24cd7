// Package testutil defines support code for unit tests.
package testutil

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/creachadair/jstack"
	"github.com/tailscale/hujson"
)

// Reference decodes input with the standard library decoder and converts the
// result to a jstack.Value, for comparison with the output of jstack.Parse.
// Object members keep the position of their first occurrence, and a repeated
// key keeps its last value.
func Reference(input []byte) (jstack.Value, error) {
	if !json.Valid(input) {
		return nil, errors.New("invalid JSON")
	}
	dec := json.NewDecoder(bytes.NewReader(input))
	dec.UseNumber()
	v, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("extra data after value")
	}
	return v, nil
}

func decodeValue(dec *json.Decoder) (jstack.Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '[':
			out := jstack.Array{}
			for dec.More() {
				v, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				out = append(out, v)
			}
			_, err := dec.Token() // ]
			return out, err

		case '{':
			out := jstack.Object{}
			for dec.More() {
				key, err := dec.Token()
				if err != nil {
					return nil, err
				}
				v, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				out.Set(key.(string), v)
			}
			_, err := dec.Token() // }
			return out, err
		}
	case string:
		return jstack.String(t), nil
	case json.Number:
		// Out-of-range values are reported with ±Inf, which is what we want.
		f, _ := strconv.ParseFloat(string(t), 64)
		return jstack.Number(f), nil
	case bool:
		return jstack.Bool(t), nil
	case nil:
		return jstack.Null{}, nil
	}
	return nil, fmt.Errorf("unexpected token %v", tok)
}

// LoadFixture reads an annotated JSON file (JSON with comments and trailing
// commas) and decodes it into v, which must be a pointer.
func LoadFixture(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	std, err := hujson.Standardize(data)
	if err != nil {
		return fmt.Errorf("standardize %q: %w", path, err)
	}
	return json.Unmarshal(std, v)
}
