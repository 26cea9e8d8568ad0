package envtyped

import (
	"os"
	"reflect"
	"strings"

	"envtyped/internal/suggest"
)

// Options tunes a single Load call. The zero value reads the process
// environment with the built-in loaders and uppercased variable names.
type Options struct {
	// Environ is the source map. nil means the process environment; an
	// empty non-nil map is an empty source.
	Environ map[string]string

	// Defaults maps field names to raw strings that are coerced exactly
	// like present source values. A present source entry wins over an
	// entry here; an entry here wins over the field's typed default.
	Defaults map[string]string

	// FieldLoaders override coercion per field name. Highest precedence.
	FieldLoaders map[string]LoaderFunc

	// TypeLoaders override coercion per inner type. They win over the
	// built-in loaders but lose to FieldLoaders.
	TypeLoaders map[reflect.Type]LoaderFunc

	// VarName maps a field name to its variable name. nil means
	// strings.ToUpper.
	VarName NameMapper

	// DisableDefaultLoaders turns off the built-in bool, date, time-of-day
	// and date-time loaders, leaving caller loaders and the field types'
	// own string forms.
	DisableDefaultLoaders bool
}

// Load resolves the schema against the process environment.
func Load[T any](s *Schema[T]) (T, error) {
	return LoadWithOptions(s, Options{})
}

// LoadWithOptions resolves every schema field in registration order. Either
// all fields resolve and the record is returned, or the call fails with a
// LoadError carrying one error per failed field. The schema and the maps in
// opts are only read, so a schema may be shared by concurrent Load calls.
func LoadWithOptions[T any](s *Schema[T], opts Options) (T, error) {
	var zero T

	if s.err != nil {
		return zero, s.err
	}

	if len(s.fields) == 0 {
		return zero, &SchemaError{Msg: "no fields registered"}
	}

	environ := opts.Environ
	if environ == nil {
		environ = processEnviron()
	}

	varName := opts.VarName
	if varName == nil {
		varName = strings.ToUpper
	}

	out := zero

	var (
		failed []error
		keys   []string // source keys, built on the first missing field
	)

	for i := range s.fields {
		f := &s.fields[i]
		key := varName(f.name)

		var raw *string
		if v, ok := environ[key]; ok {
			raw = &v
		}

		rawDefault, hasRawDefault := opts.Defaults[f.name]

		switch Disposition(raw, f.optional, hasRawDefault || f.hasDefault) {
		case DispositionUseDefault:
			// An explicit raw default wins over the typed schema default.
			// Raw defaults are coerced, typed defaults are used as-is.
			if hasRawDefault {
				if err := coerceInto(f, &opts, &out, key, rawDefault); err != nil {
					failed = append(failed, err)
				}

				continue
			}

			if err := f.assign(&out, f.defValue); err != nil {
				failed = append(failed, &SchemaError{Field: f.name, Msg: err.Error()})
			}

		case DispositionNull:
			if err := f.assign(&out, nil); err != nil {
				failed = append(failed, &SchemaError{Field: f.name, Msg: err.Error()})
			}

		case DispositionValue:
			if err := coerceInto(f, &opts, &out, key, *raw); err != nil {
				failed = append(failed, err)
			}

		case DispositionMissing:
			if keys == nil {
				keys = make([]string, 0, len(environ))
				for k := range environ {
					keys = append(keys, k)
				}
			}

			missing := &MissingVariableError{Field: f.name, Var: key, Type: f.typ}
			if hint, ok := suggest.Closest(key, keys); ok {
				missing.Suggestion = hint
			}

			failed = append(failed, missing)
		}
	}

	if len(failed) > 0 {
		return zero, &LoadError{Fields: failed}
	}

	return out, nil
}

func coerceInto[T any](f *fieldSpec[T], opts *Options, out *T, key, raw string) error {
	loader, err := selectLoader(f, opts)
	if err != nil {
		return err
	}

	v, err := loader(raw)
	if err != nil {
		return &InvalidValueError{Field: f.name, Var: key, Raw: raw, Type: f.typ, Err: err}
	}

	if err := f.assign(out, v); err != nil {
		return &InvalidValueError{Field: f.name, Var: key, Raw: raw, Type: f.typ, Err: err}
	}

	return nil
}

func processEnviron() map[string]string {
	entries := os.Environ()

	environ := make(map[string]string, len(entries))
	for _, kv := range entries {
		if i := strings.IndexByte(kv, '='); i >= 0 {
			environ[kv[:i]] = kv[i+1:]
		}
	}

	return environ
}
