// Package envtyped loads environment variables into a strongly typed,
// validated configuration record.
//
// A record type gets an explicit schema: every field is registered with a
// name and a typed setter. Load then resolves each field against a source
// map (the process environment by default), selects a coercion function for
// it, and either returns a fully populated record or an error listing every
// field that failed. Partial records are never returned.
//
//	type Config struct {
//		DBHost string
//		DBPort int
//	}
//
//	s := envtyped.NewSchema[Config]()
//	envtyped.Field(s, "db_host", func(c *Config, v string) { c.DBHost = v })
//	envtyped.FieldDefault(s, "db_port", func(c *Config, v int) { c.DBPort = v }, 5432)
//
//	cfg, err := envtyped.Load(s)
//
// Coercion for a field is resolved in order: a caller loader for the field
// name, a caller loader for the field type, a built-in loader (strict
// booleans, ISO-8601 dates, times and date-times), and finally the type's
// own string form (encoding.TextUnmarshaler, time.ParseDuration, or strconv
// by kind). Types with none of these must be given an explicit loader.
package envtyped
