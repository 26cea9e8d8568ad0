package logfmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLineEmpty(t *testing.T) {
	t.Parallel()

	got, err := ParseLine("")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{}, got)
}

func TestParseLineOne(t *testing.T) {
	t.Parallel()

	cases := []struct {
		line string
		want map[string]string
	}{
		{"a=", map[string]string{"a": ""}},
		{"a=1", map[string]string{"a": "1"}},
		{"a=b", map[string]string{"a": "b"}},
		{"a=b ", map[string]string{"a": "b"}},

		{"foo=", map[string]string{"foo": ""}},
		{"foo=1234", map[string]string{"foo": "1234"}},
		{"foo=bar", map[string]string{"foo": "bar"}},

		{`foo=""`, map[string]string{"foo": ""}},
		{`foo="1234"`, map[string]string{"foo": "1234"}},
		{`foo="bar"`, map[string]string{"foo": "bar"}},

		{`foo="bar \\ boza"`, map[string]string{"foo": `bar \ boza`}},
		{`foo="bar \" boza"`, map[string]string{"foo": `bar " boza`}},
	}

	for _, tc := range cases {
		got, err := ParseLine(tc.line)
		require.NoError(t, err, tc.line)
		assert.Equal(t, tc.want, got, tc.line)
	}
}

func TestParseLineMultiple(t *testing.T) {
	t.Parallel()

	got, err := ParseLine(`a=1 msg="Hello, world!" quoted="And I said, \"That's what he said!\""`)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"a":      "1",
		"msg":    "Hello, world!",
		"quoted": `And I said, "That's what he said!"`,
	}, got)
}

func TestParseLineErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		line string
		want string
	}{
		{"@", "unexpected '@' at 1"},
		{"a=1 @", "unexpected '@' at 5"},
		{"a@", "unexpected '@' at 2"},
		{"a=1 b@", "unexpected '@' at 6"},
		{"a=\t", `unexpected '\t' at 3`},
		{"a=1 b=\t", `unexpected '\t' at 7`},
		{"a=1\t", `unexpected '\t' at 4`},
		{"a=1 b=1\t", `unexpected '\t' at 8`},
		{"a", "missing value for a"},
		{"a=1 b", "missing value for b"},
		{`a=1 b="123`, "missing end quote for b"},
	}

	for _, tc := range cases {
		_, err := ParseLine(tc.line)
		require.Error(t, err, tc.line)
		assert.ErrorContains(t, err, tc.want, tc.line)
	}
}
