package envtyped_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"envtyped"
)

func TestLoadBool(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"true", "True", "TRUE", "tRuE"} {
		got, err := envtyped.LoadBool(raw)
		require.NoError(t, err, raw)
		assert.True(t, got, raw)
	}

	for _, raw := range []string{"false", "False", "FALSE", "fAlSe"} {
		got, err := envtyped.LoadBool(raw)
		require.NoError(t, err, raw)
		assert.False(t, got, raw)
	}

	for _, raw := range []string{"", "0", "1", "t", "f", "yes", "no", "truthy"} {
		_, err := envtyped.LoadBool(raw)
		assert.Error(t, err, raw)
	}
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	got, err := envtyped.ParseDate("2021-01-01")
	require.NoError(t, err)
	assert.Equal(t, envtyped.Date{Year: 2021, Month: time.January, Day: 1}, got)
	assert.Equal(t, "2021-01-01", got.String())

	for _, raw := range []string{"2023", "2021-13-01", "2021-01-32", "01-01-2021", "bicycle"} {
		_, err := envtyped.ParseDate(raw)
		assert.Error(t, err, raw)
	}
}

func TestParseTimeOfDay(t *testing.T) {
	t.Parallel()

	valid := []struct {
		raw  string
		want envtyped.TimeOfDay
	}{
		{"13:37", envtyped.TimeOfDay{Hour: 13, Minute: 37}},
		{"13:37:59", envtyped.TimeOfDay{Hour: 13, Minute: 37, Second: 59}},
		{"03:30:00.25", envtyped.TimeOfDay{Hour: 3, Minute: 30, Nanosecond: 250000000}},
		{"00:00", envtyped.TimeOfDay{}},
	}

	for _, tc := range valid {
		got, err := envtyped.ParseTimeOfDay(tc.raw)
		require.NoError(t, err, tc.raw)
		assert.Equal(t, tc.want, got, tc.raw)
	}

	for _, raw := range []string{"25:00", "13:61", "13", "bicycle", ""} {
		_, err := envtyped.ParseTimeOfDay(raw)
		assert.Error(t, err, raw)
	}

	assert.Equal(t, "13:37:59", envtyped.TimeOfDay{Hour: 13, Minute: 37, Second: 59}.String())
	assert.Equal(t, "03:30:00.250000000", envtyped.TimeOfDay{Hour: 3, Minute: 30, Nanosecond: 250000000}.String())
}

func TestParseDateTime(t *testing.T) {
	t.Parallel()

	valid := []struct {
		raw  string
		want time.Time
	}{
		{"2021-01-01T13:37:59Z", time.Date(2021, 1, 1, 13, 37, 59, 0, time.UTC)},
		{"2021-01-01T13:37:59", time.Date(2021, 1, 1, 13, 37, 59, 0, time.UTC)},
		{"2021-01-01 13:37:59", time.Date(2021, 1, 1, 13, 37, 59, 0, time.UTC)},
		{"2021-01-01T13:37", time.Date(2021, 1, 1, 13, 37, 0, 0, time.UTC)},
		{"2021-01-01", time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tc := range valid {
		got, err := envtyped.ParseDateTime(tc.raw)
		require.NoError(t, err, tc.raw)
		assert.True(t, tc.want.Equal(got), tc.raw)
	}

	t.Run("zone offset is kept", func(t *testing.T) {
		t.Parallel()

		got, err := envtyped.ParseDateTime("2021-01-01T13:37:59+02:00")
		require.NoError(t, err)

		_, offset := got.Zone()
		assert.Equal(t, 2*60*60, offset)
	})

	for _, raw := range []string{"2023", "bicycle", "true", "13:37:59"} {
		_, err := envtyped.ParseDateTime(raw)
		assert.Error(t, err, raw)
	}
}
