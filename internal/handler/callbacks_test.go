package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanCallbackData(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "normal string",
			input:    "42",
			expected: "42",
		},
		{
			name:     "string with whitespace",
			input:    "  42  ",
			expected: "42",
		},
		{
			name:     "string with newline",
			input:    "4\n2",
			expected: "42",
		},
		{
			name:     "string with unprintable characters",
			input:    "4\x002\x01",
			expected: "42",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := cleanCallbackData(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestParseAdID(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		expected      int64
		expectedError bool
	}{
		{
			name:     "plain id",
			input:    "42",
			expected: 42,
		},
		{
			name:     "id with stray whitespace",
			input:    " 42\n",
			expected: 42,
		},
		{
			name:          "not a number",
			input:         "abc",
			expectedError: true,
		},
		{
			name:          "empty",
			input:         "",
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := parseAdID(tt.input)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, id)
			}
		})
	}
}
