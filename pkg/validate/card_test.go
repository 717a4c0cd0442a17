package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsCardNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "Valid visa test number", input: "4111111111111111", expected: true},
		{name: "Grouped with spaces", input: "4111 1111 1111 1111", expected: true},
		{name: "Grouped with dashes", input: "5500-0000-0000-0004", expected: true},
		{name: "Checksum mismatch", input: "4111111111111112", expected: false},
		{name: "Too short", input: "79927398713", expected: false},
		{name: "Letters", input: "4111a11111111111", expected: false},
		{name: "Empty", input: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsCardNumber(tt.input))
		})
	}
}
