package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLikePattern(t *testing.T) {
	testCases := []struct {
		name     string
		term     string
		expected string
	}{
		{name: "plain term", term: "milk", expected: "%milk%"},
		{name: "percent is escaped", term: "100%", expected: `%100\%%`},
		{name: "underscore is escaped", term: "a_b", expected: `%a\_b%`},
		{name: "backslash is escaped", term: `a\b`, expected: `%a\\b%`},
		{name: "empty term matches everything", term: "", expected: "%%"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, likePattern(tc.term))
		})
	}
}
