package httpapi

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeSessionID(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"tab-1", "tab-1"},
		{"  abc_DEF.9  ", "abc_DEF.9"},
		{"", ""},
		{"has space", ""},
		{"../etc", ""},
		{"ünï", ""},
		{strings.Repeat("a", 129), ""},
		{strings.Repeat("a", 128), strings.Repeat("a", 128)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeSessionID(tt.input))
		})
	}
}
