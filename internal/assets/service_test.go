package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublicURL(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		key      string
		expected string
	}{
		{
			name:     "plain http",
			cfg:      Config{Endpoint: "localhost:9000", Bucket: "pola-app-public"},
			key:      "logotypes/AA.jpg",
			expected: "http://localhost:9000/pola-app-public/logotypes/AA.jpg",
		},
		{
			name:     "https",
			cfg:      Config{Endpoint: "cdn.pola-app.pl", Bucket: "pola-app-public", UseSSL: true},
			key:      "logotypes/AA.jpg",
			expected: "https://cdn.pola-app.pl/pola-app-public/logotypes/AA.jpg",
		},
		{
			name:     "leading slash stripped",
			cfg:      Config{Endpoint: "localhost:9000", Bucket: "pola-app-public"},
			key:      "/logotypes/AA.jpg",
			expected: "http://localhost:9000/pola-app-public/logotypes/AA.jpg",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, New(tc.cfg).PublicURL(tc.key))
		})
	}
}
