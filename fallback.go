package envtyped

import (
	"encoding"
	"reflect"
	"strconv"
	"time"
)

var textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()

// fallbackFor resolves the string form of V once, at registration time:
// encoding.TextUnmarshaler, then time.ParseDuration, then strconv by kind.
// Returns nil when V has no string form; such a field needs a caller loader.
func fallbackFor[V any]() LoaderFunc {
	typ := reflect.TypeFor[V]()

	if reflect.PointerTo(typ).Implements(textUnmarshalerType) {
		return func(raw string) (any, error) {
			v := reflect.New(typ)
			if err := v.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(raw)); err != nil {
				return nil, err
			}

			return v.Elem().Interface(), nil
		}
	}

	if typ == reflect.TypeFor[time.Duration]() {
		return LoaderFor(time.ParseDuration)
	}

	return kindLoader(typ)
}

// kindLoader covers named types too: the parsed value is converted back to
// typ, so `type Port int` parses like an int but assigns as a Port.
func kindLoader(typ reflect.Type) LoaderFunc {
	switch typ.Kind() {
	default:
		return nil

	case reflect.String:
		return func(raw string) (any, error) {
			v := reflect.New(typ).Elem()
			v.SetString(raw)

			return v.Interface(), nil
		}

	case reflect.Bool:
		return func(raw string) (any, error) {
			b, err := strconv.ParseBool(raw)
			if err != nil {
				return nil, err
			}

			v := reflect.New(typ).Elem()
			v.SetBool(b)

			return v.Interface(), nil
		}

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		bits := typ.Bits()

		return func(raw string) (any, error) {
			n, err := strconv.ParseInt(raw, 10, bits)
			if err != nil {
				return nil, err
			}

			v := reflect.New(typ).Elem()
			v.SetInt(n)

			return v.Interface(), nil
		}

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		bits := typ.Bits()

		return func(raw string) (any, error) {
			n, err := strconv.ParseUint(raw, 10, bits)
			if err != nil {
				return nil, err
			}

			v := reflect.New(typ).Elem()
			v.SetUint(n)

			return v.Interface(), nil
		}

	case reflect.Float32, reflect.Float64:
		bits := typ.Bits()

		return func(raw string) (any, error) {
			f, err := strconv.ParseFloat(raw, bits)
			if err != nil {
				return nil, err
			}

			v := reflect.New(typ).Elem()
			v.SetFloat(f)

			return v.Interface(), nil
		}
	}
}
