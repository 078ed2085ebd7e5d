package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJobSort_ValidValues(t *testing.T) {
	cases := []struct {
		in   string
		want JobSort
	}{
		{"", JobSortRecent},
		{"recent", JobSortRecent},
		{"oldest", JobSortOldest},
		{"deadline", JobSortDeadline},
	}
	for _, c := range cases {
		got, err := ParseJobSort(c.in)
		require.NoError(t, err, "ParseJobSort(%q)", c.in)
		assert.Equal(t, c.want, got)
	}
}

func TestParseJobSort_InvalidValues(t *testing.T) {
	for _, in := range []string{"relevance", "RECENT", "deadline ", "newest"} {
		_, err := ParseJobSort(in)
		assert.Error(t, err, "ParseJobSort(%q) should fail", in)
	}
}
