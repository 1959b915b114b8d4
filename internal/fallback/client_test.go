package fallback

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPExtractorValidation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     HTTPConfig
		wantErr bool
	}{
		{"Valid URL", HTTPConfig{URL: "https://extract.example.com/v1"}, false},
		{"Missing URL", HTTPConfig{}, true},
		{"Not a URL", HTTPConfig{URL: "not a url"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewHTTPExtractor(tt.cfg, nil)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestHTTPExtractorExtract(t *testing.T) {
	var gotBody request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		_ = json.NewEncoder(w).Encode(Response{
			Success: true,
			Updates: map[string]string{"sat": "1450"},
			Misc:    []string{"Founded a community robotics workshop"},
		})
	}))
	defer srv.Close()

	ext, err := NewHTTPExtractor(HTTPConfig{URL: srv.URL}, nil)
	require.NoError(t, err)

	resp, err := ext.Extract(context.Background(), "document body")
	require.NoError(t, err)

	assert.Equal(t, "document body", gotBody.DocumentText)
	assert.True(t, resp.Success)
	assert.Equal(t, "1450", resp.Updates["sat"])
	assert.Len(t, resp.Misc, 1)
}

func TestHTTPExtractorNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	ext, err := NewHTTPExtractor(HTTPConfig{URL: srv.URL}, nil)
	require.NoError(t, err)

	_, err = ext.Extract(context.Background(), "document body")
	require.Error(t, err)

	var apiErr *APICallError
	assert.ErrorAs(t, err, &apiErr)
}

func TestHTTPExtractorSchemaViolation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		// Missing the required success flag.
		_, _ = w.Write([]byte(`{"updates": {"sat": "1450"}}`))
	}))
	defer srv.Close()

	ext, err := NewHTTPExtractor(HTTPConfig{URL: srv.URL}, nil)
	require.NoError(t, err)

	_, err = ext.Extract(context.Background(), "document body")
	require.Error(t, err)

	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestHTTPExtractorServiceFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(Response{Success: false, Error: "model overloaded"})
	}))
	defer srv.Close()

	ext, err := NewHTTPExtractor(HTTPConfig{URL: srv.URL}, nil)
	require.NoError(t, err)

	_, err = ext.Extract(context.Background(), "document body")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model overloaded")
}
