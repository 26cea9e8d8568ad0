package envtyped

// LoaderFor adapts a typed parse function to a LoaderFunc, for use in
// Options.FieldLoaders and Options.TypeLoaders.
func LoaderFor[V any](parse func(string) (V, error)) LoaderFunc {
	return func(raw string) (any, error) {
		v, err := parse(raw)
		if err != nil {
			return nil, err
		}

		return v, nil
	}
}

// selectLoader resolves the coercion function for one field. First match
// wins: caller loader for the field name, caller loader for the inner type,
// built-in loader (unless disabled), the inner type's own string form.
func selectLoader[T any](f *fieldSpec[T], opts *Options) (LoaderFunc, error) {
	if fn, ok := opts.FieldLoaders[f.name]; ok && fn != nil {
		return fn, nil
	}

	if fn, ok := opts.TypeLoaders[f.typ]; ok && fn != nil {
		return fn, nil
	}

	if !opts.DisableDefaultLoaders {
		if fn, ok := builtinLoaders[f.typ]; ok {
			return fn, nil
		}
	}

	if f.fallback != nil {
		return f.fallback, nil
	}

	return nil, &SchemaError{Field: f.name, Msg: "type " + f.typ.String(), Err: ErrNoLoader}
}
