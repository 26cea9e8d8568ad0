package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	t.Parallel()

	cases := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"a", "", 1},
		{"", "abc", 3},
		{"abc", "abc", 0},
		{"kitten", "sitting", 3},
		{"db_host", "db_hsot", 2},
		{"db_host", "db_port", 2},
		{"flag", "flags", 1},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Distance(tc.a, tc.b), "%s vs %s", tc.a, tc.b)
		assert.Equal(t, tc.want, Distance(tc.b, tc.a), "%s vs %s reversed", tc.b, tc.a)
	}
}

func TestClosest(t *testing.T) {
	t.Parallel()

	t.Run("typo is found", func(t *testing.T) {
		t.Parallel()

		got, ok := Closest("DB_HOST", []string{"DB_HSOT", "HOME", "PATH"})
		assert.True(t, ok)
		assert.Equal(t, "DB_HSOT", got)
	})

	t.Run("case-insensitive", func(t *testing.T) {
		t.Parallel()

		got, ok := Closest("DB_HOST", []string{"db_host"})
		assert.True(t, ok)
		assert.Equal(t, "db_host", got)
	})

	t.Run("nothing close enough", func(t *testing.T) {
		t.Parallel()

		_, ok := Closest("DB_HOST", []string{"HOME", "PATH", "SHELL"})
		assert.False(t, ok)
	})

	t.Run("no candidates", func(t *testing.T) {
		t.Parallel()

		_, ok := Closest("DB_HOST", nil)
		assert.False(t, ok)
	})

	t.Run("short names never match", func(t *testing.T) {
		t.Parallel()

		_, ok := Closest("N", []string{"M"})
		assert.False(t, ok)
	})
}
