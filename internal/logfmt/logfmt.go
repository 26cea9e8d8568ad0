// Package logfmt parses single logfmt lines into string maps.
//
// Configuration is not a place for skipping over bad input, so the parser is
// strict: any character that does not fit the grammar is an error.
package logfmt

import "fmt"

type stateEnum int

const (
	stateGarbage stateEnum = iota
	stateKey
	stateEqual
	stateBareValue
	stateQuotedValue
)

// ParseLine parses one logfmt line. Keys are [0-9A-Za-z]+ and require an
// "=" (a bare "key=" yields the empty string). Values are either bare, with
// no whitespace, or double-quoted with backslash escapes for the quote and
// the backslash itself.
func ParseLine(line string) (map[string]string, error) {
	output := map[string]string{}

	var key, value string

	escaped := false
	state := stateGarbage
	pos := 0

	for _, c := range line {
		pos++

		switch state {
		case stateGarbage:
			switch {
			case isKeyRune(c):
				key = string(c)
				state = stateKey
			case c == ' ':
			default:
				return nil, fmt.Errorf("unexpected %q at %d", c, pos)
			}

		case stateKey:
			switch {
			case isKeyRune(c):
				key += string(c)
			case c == '=':
				state = stateEqual
			default:
				return nil, fmt.Errorf("unexpected %q at %d", c, pos)
			}

		case stateEqual:
			switch {
			case c == '"':
				value = ""
				escaped = false
				state = stateQuotedValue
			case c > ' ':
				value = string(c)
				state = stateBareValue
			default:
				return nil, fmt.Errorf("unexpected %q at %d", c, pos)
			}

		case stateBareValue:
			switch {
			case c == ' ':
				output[key] = value
				state = stateGarbage
			case c > ' ':
				value += string(c)
			default:
				return nil, fmt.Errorf("unexpected %q at %d", c, pos)
			}

		case stateQuotedValue:
			switch {
			case c == '\\':
				if escaped {
					escaped = false
					value += string(c)
				} else {
					escaped = true
				}
			case c == '"':
				if escaped {
					escaped = false
					value += string(c)
				} else {
					output[key] = value
					state = stateGarbage
				}
			default:
				// Within a quoted value, any character goes.
				value += string(c)
			}
		}
	}

	switch state {
	case stateKey:
		return nil, fmt.Errorf("missing value for %s", key)
	case stateEqual:
		output[key] = ""
	case stateBareValue:
		output[key] = value
	case stateQuotedValue:
		return nil, fmt.Errorf("missing end quote for %s", key)
	}

	return output, nil
}

func isKeyRune(c rune) bool {
	return '0' <= c && c <= '9' || 'A' <= c && c <= 'Z' || 'a' <= c && c <= 'z'
}
