// Package loaders provides opt-in loader functions for shapes the engine has
// no string form for: delimiter-separated lists, string maps, and values read
// from files named by an environment variable.
//
// Each function matches the shape LoaderFor expects, so wiring one up is:
//
//	envtyped.LoadWithOptions(s, envtyped.Options{
//		FieldLoaders: map[string]envtyped.LoaderFunc{
//			"allowed_ports": envtyped.LoaderFor(loaders.Ints),
//		},
//	})
package loaders

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"envtyped/internal/logfmt"
)

// Strings parses a CSV line: comma delimiter, double-quote quoting with
// doubled quotes inside, spaces after the delimiter skipped. Empty input is
// an empty list.
func Strings(raw string) ([]string, error) {
	if raw == "" {
		return []string{}, nil
	}

	r := csv.NewReader(strings.NewReader(raw))
	r.TrimLeadingSpace = true

	record, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("%q cannot be parsed as a string list: %w", raw, err)
	}

	return record, nil
}

// Ints parses a CSV line of integers. Whitespace around each element is
// ignored.
func Ints(raw string) ([]int, error) {
	fields, err := Strings(raw)
	if err != nil {
		return nil, err
	}

	out := make([]int, len(fields))
	for i, field := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, fmt.Errorf("%q cannot be parsed as an int list: %w", raw, err)
		}

		out[i] = n
	}

	return out, nil
}

// StringMap parses a strict logfmt line ('a=1 msg="hello there"') into a
// string-to-string map.
func StringMap(raw string) (map[string]string, error) {
	return logfmt.ParseLine(raw)
}

// StringMapYAML parses an inline YAML mapping ('{a: "1", b: "2"}') into a
// string-to-string map. Values must be strings; quote anything YAML would
// read as a number or boolean.
func StringMapYAML(raw string) (map[string]string, error) {
	out := map[string]string{}
	if err := yaml.Unmarshal([]byte(raw), &out); err != nil {
		return nil, fmt.Errorf("%q cannot be parsed as a YAML map: %w", raw, err)
	}

	return out, nil
}
