package envtyped

import "strings"

//go:generate go tool stringer -type=DispositionEnum -output=disposition_string.go

type DispositionEnum int

const (
	_ DispositionEnum = iota // skip zero value, use it as a default (invalid) value for DispositionEnum

	DispositionUseDefault
	DispositionNull
	DispositionValue
	DispositionMissing

	// DispositionTotal is a constant that represents the total number of dispositions defined
	DispositionTotal = int(iota)
)

// Disposition decides what happens to a single field, given the raw source
// entry (nil when the key is absent from the source), whether the field is
// optional, and whether any default applies to it.
//
// An absent key resolves to the default when one applies, to null when the
// field is optional, and is missing otherwise. A present value always wins
// over a default; a present empty or "none" value on an optional field
// resolves to null regardless of the inner type.
func Disposition(raw *string, optional, hasDefault bool) DispositionEnum {
	if raw == nil {
		switch {
		case hasDefault:
			return DispositionUseDefault
		case optional:
			return DispositionNull
		default:
			return DispositionMissing
		}
	}

	if optional && (*raw == "" || strings.EqualFold(*raw, "none")) {
		return DispositionNull
	}

	return DispositionValue
}
