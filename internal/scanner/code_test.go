package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		expected Classification
	}{
		{
			name:     "empty string",
			code:     "",
			expected: Classification{Kind: KindInvalid},
		},
		{
			name:     "letters",
			code:     "ABC",
			expected: Classification{Kind: KindInvalid},
		},
		{
			name:     "wrong length",
			code:     "123123",
			expected: Classification{Kind: KindInvalid},
		},
		{
			name:     "digits with letter",
			code:     "590152000005A",
			expected: Classification{Kind: KindInvalid},
		},
		{
			name:     "isbn",
			code:     "9781234567897",
			expected: Classification{Kind: KindBook},
		},
		{
			name:     "issn",
			code:     "9771234567898",
			expected: Classification{Kind: KindBook},
		},
		{
			name:     "ismn",
			code:     "9791234567896",
			expected: Classification{Kind: KindBook},
		},
		{
			name:     "belarus",
			code:     "4811234567891",
			expected: Classification{Kind: KindSanctionedCountry, Country: "Białoruś"},
		},
		{
			name:     "russia",
			code:     "4621234567894",
			expected: Classification{Kind: KindSanctionedCountry, Country: "Federacja Rosyjska"},
		},
		{
			name:     "peru",
			code:     "7751234567891",
			expected: Classification{Kind: KindFlaggedCountry, Country: "Peru"},
		},
		{
			name:     "bolivia",
			code:     "7771234567895",
			expected: Classification{Kind: KindFlaggedCountry, Country: "Boliwia"},
		},
		{
			name:     "argentina",
			code:     "7791234567899",
			expected: Classification{Kind: KindFlaggedCountry, Country: "Argentyna"},
		},
		{
			name:     "store internal",
			code:     "0001234567895",
			expected: Classification{Kind: KindInternal},
		},
		{
			name:     "polish product",
			code:     "5901520000059",
			expected: Classification{Kind: KindProduct},
		},
		{
			name:     "foreign product",
			code:     "4001234567890",
			expected: Classification{Kind: KindProduct},
		},
		{
			name:     "ean8 product",
			code:     "59012345",
			expected: Classification{Kind: KindProduct},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Classify(tc.code))
		})
	}
}

func TestIsValidEAN(t *testing.T) {
	assert.True(t, IsValidEAN("5901520000059"))
	assert.True(t, IsValidEAN("59015200"))
	assert.False(t, IsValidEAN(""))
	assert.False(t, IsValidEAN("590152000005"))
	assert.False(t, IsValidEAN("590152000005A"))
	assert.False(t, IsValidEAN("5901520000059x"))
}

func TestIsPolish(t *testing.T) {
	assert.True(t, IsPolish("5901520000059"))
	assert.True(t, IsPolish("59012345"))
	assert.False(t, IsPolish("4001234567890"))
	assert.False(t, IsPolish("590"))
	assert.False(t, IsPolish("ABC"))
}
