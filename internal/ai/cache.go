package ai

import (
	"context"
	"crypto/sha256"
	"encoding/hex"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog/log"
)

const defaultCacheSize = 128

// CachedExtractor wraps an Extractor with an in-memory LRU cache keyed by
// image content, so re-scanning the same photo does not repeat the vision
// call. The cache lives and dies with the process.
type CachedExtractor struct {
	inner Extractor
	cache *lru.Cache[string, ListingDraft]
}

// NewCachedExtractor creates a caching wrapper around inner.
func NewCachedExtractor(inner Extractor) *CachedExtractor {
	cache, _ := lru.New[string, ListingDraft](defaultCacheSize)
	return &CachedExtractor{inner: inner, cache: cache}
}

// ExtractListing implements Extractor with caching. Only successful,
// validated drafts are cached; failures always reach the inner extractor
// again on retry.
func (c *CachedExtractor) ExtractListing(ctx context.Context, image []byte, mimeType string) (*ListingDraft, error) {
	key := hashImage(image)

	if cached, ok := c.cache.Get(key); ok {
		log.Debug().Str("hash", key[:16]).Msg("vision cache hit")
		draft := cached
		return &draft, nil
	}

	draft, err := c.inner.ExtractListing(ctx, image, mimeType)
	if err != nil {
		return nil, err
	}

	c.cache.Add(key, *draft)
	return draft, nil
}

func hashImage(image []byte) string {
	sum := sha256.Sum256(image)
	return hex.EncodeToString(sum[:])
}
