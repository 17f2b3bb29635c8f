package produkty

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFetchProduct(t *testing.T) {
	tests := []struct {
		name           string
		statusCode     int
		responseBody   string
		expectedError  error
		expectedName   string
		expectedNip    string
		expectAnyError bool
	}{
		{
			name:         "OK",
			statusCode:   http.StatusOK,
			responseBody: `{"name":"Muszynianka 1.5l","company":{"nip":"7343278954"}}`,
			expectedName: "Muszynianka 1.5l",
			expectedNip:  "7343278954",
		},
		{
			name:         "no company",
			statusCode:   http.StatusOK,
			responseBody: `{"name":"Unknown water"}`,
			expectedName: "Unknown water",
		},
		{
			name:          "not found",
			statusCode:    http.StatusNotFound,
			responseBody:  `{}`,
			expectedError: ErrProductNotFound,
		},
		{
			name:           "server error",
			statusCode:     http.StatusInternalServerError,
			responseBody:   `{}`,
			expectAnyError: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/products/5901520000059", r.URL.Path)
				assert.Equal(t, "secret", r.Header.Get("X-API-KEY"))

				w.WriteHeader(tc.statusCode)
				w.Write([]byte(tc.responseBody))
			}))
			defer srv.Close()

			client := NewClient(Config{
				BaseURL: srv.URL,
				APIKey:  "secret",
				Timeout: time.Second,
			}, zap.NewNop())

			data, err := client.FetchProduct(context.Background(), "5901520000059")

			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				return
			}

			if tc.expectAnyError {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, data.Name)
			assert.Equal(t, tc.expectedName, *data.Name)

			if tc.expectedNip != "" {
				require.NotNil(t, data.BusinessID)
				assert.Equal(t, tc.expectedNip, *data.BusinessID)
			} else {
				assert.Nil(t, data.BusinessID)
			}
		})
	}
}
