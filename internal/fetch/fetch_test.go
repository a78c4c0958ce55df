package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageFetcher_Fetch(t *testing.T) {
	body := []byte("fake-png-bytes")
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write(body)
	}))
	defer ts.Close()

	data, mimeType, err := NewImageFetcher().Fetch(context.Background(), ts.URL)
	require.NoError(t, err)
	assert.Equal(t, body, data)
	assert.Equal(t, "image/png", mimeType)
}

func TestImageFetcher_DefaultsToJPEGForNonImageContentType(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/octet-stream")
		w.Write([]byte("data"))
	}))
	defer ts.Close()

	_, mimeType, err := NewImageFetcher().Fetch(context.Background(), ts.URL)
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", mimeType)
}

func TestImageFetcher_ErrorStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer ts.Close()

	_, _, err := NewImageFetcher().Fetch(context.Background(), ts.URL)
	assert.Error(t, err)
}

func TestImageFetcher_SizeLimit(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/jpeg")
		w.Write(make([]byte, 64))
	}))
	defer ts.Close()

	_, _, err := NewImageFetcher().WithMaxSize(16).Fetch(context.Background(), ts.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too large")
}
