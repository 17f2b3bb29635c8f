package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayName(t *testing.T) {
	name := "Woda mineralna"
	empty := ""

	tests := []struct {
		name     string
		product  Product
		expected string
	}{
		{
			name:     "name set",
			product:  Product{Code: "5901234123457", Name: &name},
			expected: "Woda mineralna",
		},
		{
			name:     "nil name falls back to code",
			product:  Product{Code: "5901234123457"},
			expected: "5901234123457",
		},
		{
			name:     "empty name falls back to code",
			product:  Product{Code: "5901234123457", Name: &empty},
			expected: "5901234123457",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.product.DisplayName())
		})
	}
}
