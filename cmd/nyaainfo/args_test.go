package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHoistFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected []string
	}{
		{
			"flags first",
			[]string{"nyaainfo", "--raw", "1"},
			[]string{"nyaainfo", "--raw", "--", "1"},
		},
		{
			"bool flag after positional",
			[]string{"nyaainfo", "1", "--raw"},
			[]string{"nyaainfo", "--raw", "--", "1"},
		},
		{
			"value flags after positional",
			[]string{"nyaainfo", "1", "-s", "-u", "U", "--password", "P", "--host", "http://h"},
			[]string{"nyaainfo", "-s", "-u", "U", "--password", "P", "--host", "http://h", "--", "1"},
		},
		{
			"inline value",
			[]string{"nyaainfo", "1", "--host=http://h", "-d"},
			[]string{"nyaainfo", "--host=http://h", "-d", "--", "1"},
		},
		{
			"value that looks positional is consumed",
			[]string{"nyaainfo", "-u", "42", "1"},
			[]string{"nyaainfo", "-u", "42", "--", "1"},
		},
		{
			"double dash ends options",
			[]string{"nyaainfo", "--raw", "--", "1", "--details"},
			[]string{"nyaainfo", "--raw", "--", "1", "--details"},
		},
		{
			"no positional",
			[]string{"nyaainfo", "-u", "U"},
			[]string{"nyaainfo", "-u", "U"},
		},
		{"empty", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, hoistFlags(tt.args))
		})
	}
}
