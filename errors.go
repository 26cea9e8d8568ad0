package envtyped

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// ErrNoLoader marks a field whose inner type has no string form and no
// explicit loader.
var ErrNoLoader = errors.New("no loader for type")

// SchemaError reports a schema that cannot be resolved at all: a bad field
// registration or a field type with no way to parse it. It fails the whole
// Load call before (or instead of) any field resolution.
type SchemaError struct {
	Field string
	Msg   string
	Err   error
}

func (e *SchemaError) Error() string {
	msg := "schema: " + e.Msg
	if e.Field != "" {
		msg = fmt.Sprintf("schema: field %s: %s", e.Field, e.Msg)
	}

	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

func (e *SchemaError) Unwrap() error { return e.Err }

// MissingVariableError reports a required field with no source entry.
// Suggestion carries a source key close enough to the expected variable name
// to look like a typo, when one exists.
type MissingVariableError struct {
	Field      string
	Var        string
	Type       reflect.Type
	Suggestion string
}

func (e *MissingVariableError) Error() string {
	msg := fmt.Sprintf("no value in environ for required field %s (variable %s) of type %s",
		e.Field, e.Var, e.Type)
	if e.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %s?)", e.Suggestion)
	}

	return msg
}

// InvalidValueError reports a raw string a loader rejected.
type InvalidValueError struct {
	Field string
	Var   string
	Raw   string
	Type  reflect.Type
	Err   error
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value %q in variable %s for field %s of type %s: %v",
		e.Raw, e.Var, e.Field, e.Type, e.Err)
}

func (e *InvalidValueError) Unwrap() error { return e.Err }

// LoadError aggregates every field that failed during one Load call.
type LoadError struct {
	Fields []error
}

func (e *LoadError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, err := range e.Fields {
		msgs[i] = err.Error()
	}

	return fmt.Sprintf("load environ: %d field(s) failed: %s",
		len(e.Fields), strings.Join(msgs, "; "))
}

func (e *LoadError) Unwrap() []error { return e.Fields }
