package envtyped

import (
	"fmt"
	"reflect"
	"strings"
	"time"
)

// Date is a calendar date with no time of day and no zone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// ParseDate parses an ISO-8601 calendar date, e.g. "2021-01-01".
func ParseDate(raw string) (Date, error) {
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return Date{}, fmt.Errorf("%q cannot be parsed as a calendar date", raw)
	}

	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

// TimeOfDay is a wall-clock time with no date and no zone.
type TimeOfDay struct {
	Hour       int
	Minute     int
	Second     int
	Nanosecond int
}

func (t TimeOfDay) String() string {
	if t.Nanosecond != 0 {
		return fmt.Sprintf("%02d:%02d:%02d.%09d", t.Hour, t.Minute, t.Second, t.Nanosecond)
	}

	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

var timeOfDayLayouts = []string{
	"15:04:05.999999999",
	"15:04",
}

// ParseTimeOfDay parses an ISO-8601 time of day: "13:37", "13:37:59" or
// "13:37:59.123456".
func ParseTimeOfDay(raw string) (TimeOfDay, error) {
	for _, layout := range timeOfDayLayouts {
		t, err := time.Parse(layout, raw)
		if err != nil {
			continue
		}

		return TimeOfDay{
			Hour:       t.Hour(),
			Minute:     t.Minute(),
			Second:     t.Second(),
			Nanosecond: t.Nanosecond(),
		}, nil
	}

	return TimeOfDay{}, fmt.Errorf("%q cannot be parsed as a time of day", raw)
}

var dateTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseDateTime parses an ISO-8601 date-time. The zone offset, seconds and
// fractional seconds are all optional; a bare calendar date is midnight.
func ParseDateTime(raw string) (time.Time, error) {
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%q cannot be parsed as a date-time", raw)
}

// LoadBool accepts exactly "true" and "false", case-insensitively. Anything
// else, including "1" and "0", is an error.
func LoadBool(raw string) (bool, error) {
	switch {
	case strings.EqualFold(raw, "true"):
		return true, nil
	case strings.EqualFold(raw, "false"):
		return false, nil
	}

	return false, fmt.Errorf("%q cannot be parsed as boolean", raw)
}

// builtinLoaders is the fixed well-known set, consulted unless
// Options.DisableDefaultLoaders is set.
var builtinLoaders = map[reflect.Type]LoaderFunc{
	reflect.TypeFor[bool]():      LoaderFor(LoadBool),
	reflect.TypeFor[Date]():      LoaderFor(ParseDate),
	reflect.TypeFor[TimeOfDay](): LoaderFor(ParseTimeOfDay),
	reflect.TypeFor[time.Time](): LoaderFor(ParseDateTime),
}
