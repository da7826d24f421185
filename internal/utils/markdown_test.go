package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlainText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "string vazia",
			input:    "",
			expected: "",
		},
		{
			name:     "apenas espaços",
			input:    "   ",
			expected: "",
		},
		{
			name:     "título sem markdown",
			input:    "U.S. natural gas consumption is expected to increase",
			expected: "U.S. natural gas consumption is expected to increase",
		},
		{
			name:     "negrito e itálico",
			input:    "Oil prices **rise** as *demand* recovers",
			expected: "Oil prices rise as demand recovers",
		},
		{
			name:     "link",
			input:    "Read the [EIA outlook](https://eia.gov) today",
			expected: "Read the EIA outlook today",
		},
		{
			name:     "heading",
			input:    "# Energy Outlook",
			expected: "Energy Outlook",
		},
		{
			name:     "código inline",
			input:    "Use `intensity` as measure",
			expected: "Use intensity as measure",
		},
		{
			name:     "quebras de linha viram espaço",
			input:    "first line\nsecond line",
			expected: "first line second line",
		},
		{
			name:     "asterisco escapado",
			input:    "a \\*literal\\* asterisk",
			expected: "a *literal* asterisk",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PlainText(tt.input))
		})
	}
}
