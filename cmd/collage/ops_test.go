package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOperation(t *testing.T) {
	tests := []struct {
		in   string
		want operation
	}{
		{"colorize:red:1:2", operation{kind: "colorize", channel: "red", col: 1, row: 2}},
		{"colorize:purple:0:0", operation{kind: "colorize", channel: "purple"}},
		{"grayscale:3:0", operation{kind: "grayscale", col: 3}},
		{"replace:0:1:shell", operation{kind: "replace", name: "shell", row: 1}},
		{"replace:2:2:C:\\tiles\\a.png", operation{kind: "replace", name: "C:\\tiles\\a.png", col: 2, row: 2}},
	}

	for _, tt := range tests {
		op, err := parseOperation(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, op, tt.in)
	}
}

func TestParseOperationInvalid(t *testing.T) {
	for _, in := range []string{
		"",
		"rotate:1:1",
		"colorize:red:1",
		"colorize:red:1:2:3",
		"grayscale:1",
		"grayscale:a:b",
		"replace:1:1",
		"replace:1:1:",
		"replace:x:1:shell",
	} {
		_, err := parseOperation(in)
		assert.Error(t, err, in)
	}
}
