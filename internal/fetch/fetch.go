// Package fetch retrieves remote product images for scanning.
package fetch

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	// DefaultTimeout bounds a single image download.
	DefaultTimeout = 30 * time.Second
	// DefaultMaxImageSize is the largest image accepted (10MB).
	DefaultMaxImageSize = 10 * 1024 * 1024
)

// ImageFetcher downloads images over HTTP with a size cap.
type ImageFetcher struct {
	client  *resty.Client
	maxSize int64
}

// NewImageFetcher creates a fetcher with default limits.
func NewImageFetcher() *ImageFetcher {
	return &ImageFetcher{
		client:  resty.New().SetTimeout(DefaultTimeout),
		maxSize: DefaultMaxImageSize,
	}
}

// WithMaxSize sets a custom maximum image size.
func (f *ImageFetcher) WithMaxSize(maxSize int64) *ImageFetcher {
	f.maxSize = maxSize
	return f
}

// Fetch downloads the image at url and returns its bytes and MIME type.
func (f *ImageFetcher) Fetch(ctx context.Context, url string) ([]byte, string, error) {
	resp, err := f.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, "", fmt.Errorf("failed to fetch image: %w", err)
	}
	if resp.IsError() {
		return nil, "", fmt.Errorf("image fetch returned status %d", resp.StatusCode())
	}

	body := resp.Body()
	if int64(len(body)) > f.maxSize {
		return nil, "", fmt.Errorf("image too large: %d bytes (max %d)", len(body), f.maxSize)
	}

	mimeType := resp.Header().Get("Content-Type")
	if i := strings.Index(mimeType, ";"); i != -1 {
		mimeType = strings.TrimSpace(mimeType[:i])
	}
	if !strings.HasPrefix(mimeType, "image/") {
		mimeType = "image/jpeg"
	}
	return body, mimeType, nil
}
