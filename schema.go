package envtyped

import (
	"fmt"
	"reflect"
)

// LoaderFunc coerces a raw environment string into a concrete value.
type LoaderFunc func(raw string) (any, error)

// NameMapper converts a schema field name into an environment variable name.
type NameMapper func(field string) string

// Schema describes the fields of a configuration record of type T.
// Fields are resolved by Load in registration order.
type Schema[T any] struct {
	fields []fieldSpec[T]
	names  map[string]struct{}
	err    error // first registration mistake, surfaced by Load
}

type fieldSpec[T any] struct {
	name       string
	typ        reflect.Type // inner type, with the optional wrapper stripped
	optional   bool
	hasDefault bool
	defValue   any // typed default, assigned as-is without coercion
	assign     func(*T, any) error
	fallback   LoaderFunc // string form of the inner type, nil if it has none
}

// NewSchema returns an empty schema for T.
func NewSchema[T any]() *Schema[T] {
	return &Schema[T]{names: map[string]struct{}{}}
}

// Field registers a required field: Load fails with MissingVariableError
// when its variable is absent and no default was supplied.
func Field[T, V any](s *Schema[T], name string, set func(*T, V)) {
	s.register(name, set, fieldSpec[T]{
		name:     name,
		typ:      reflect.TypeFor[V](),
		assign:   assignValue(name, set),
		fallback: fallbackFor[V](),
	})
}

// FieldDefault registers a field with a typed default. The default is used
// as-is when the variable is absent; it never goes through a loader.
func FieldDefault[T, V any](s *Schema[T], name string, set func(*T, V), def V) {
	s.register(name, set, fieldSpec[T]{
		name:       name,
		typ:        reflect.TypeFor[V](),
		hasDefault: true,
		defValue:   def,
		assign:     assignValue(name, set),
		fallback:   fallbackFor[V](),
	})
}

// Optional registers a field that resolves to nil when its variable is
// absent, empty, or any casing of "none".
func Optional[T, V any](s *Schema[T], name string, set func(*T, *V)) {
	s.register(name, set, fieldSpec[T]{
		name:     name,
		typ:      reflect.TypeFor[V](),
		optional: true,
		assign:   assignPointer(name, set),
		fallback: fallbackFor[V](),
	})
}

// OptionalDefault registers an optional field with a typed default. The
// default applies only when the variable is absent; a present empty or
// "none" value still resolves to nil.
func OptionalDefault[T, V any](s *Schema[T], name string, set func(*T, *V), def V) {
	s.register(name, set, fieldSpec[T]{
		name:       name,
		typ:        reflect.TypeFor[V](),
		optional:   true,
		hasDefault: true,
		defValue:   def,
		assign:     assignPointer(name, set),
		fallback:   fallbackFor[V](),
	})
}

func (s *Schema[T]) register(name string, set any, f fieldSpec[T]) {
	if s.err != nil {
		return
	}

	switch {
	case name == "":
		s.err = &SchemaError{Msg: "field registered with an empty name"}
	case set == nil || reflect.ValueOf(set).IsNil():
		s.err = &SchemaError{Field: name, Msg: "field registered with a nil setter"}
	default:
		if _, dup := s.names[name]; dup {
			s.err = &SchemaError{Field: name, Msg: "field registered twice"}
			return
		}

		s.names[name] = struct{}{}
		s.fields = append(s.fields, f)
	}
}

func assignValue[T, V any](name string, set func(*T, V)) func(*T, any) error {
	return func(t *T, v any) error {
		vv, ok := v.(V)
		if !ok {
			return fmt.Errorf("field %s: loader produced %T, need %s",
				name, v, reflect.TypeFor[V]())
		}

		set(t, vv)

		return nil
	}
}

func assignPointer[T, V any](name string, set func(*T, *V)) func(*T, any) error {
	return func(t *T, v any) error {
		if v == nil {
			set(t, nil)
			return nil
		}

		vv, ok := v.(V)
		if !ok {
			return fmt.Errorf("field %s: loader produced %T, need %s",
				name, v, reflect.TypeFor[V]())
		}

		set(t, &vv)

		return nil
	}
}
