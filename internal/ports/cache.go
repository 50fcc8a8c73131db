package ports

import (
	"context"
	"time"

	"github.com/wavenote/speechsubs/internal/domain"
)

// CachedItem is a finished synthesis kept on disk, keyed by a content hash
// of the input text and voice. Word timings are cached alongside the audio
// so subtitles can be regenerated with a different split set without
// re-synthesizing.
type CachedItem struct {
	Voice     string
	AudioPath string             // WAV audio file path
	Words     []domain.TimedWord // word-level timing metadata
	CreatedAt time.Time          // when this item was cached
	ExpiresAt time.Time          // when this item should be considered stale
}

// CacheStore handles persistent caching of synthesis results.
type CacheStore interface {
	// Get retrieves a cached item by key, or ErrCacheMiss/ErrCacheExpired.
	Get(ctx context.Context, key string) (*CachedItem, error)

	// Set stores an item in the cache.
	Set(ctx context.Context, key string, item *CachedItem) error

	// Delete removes a specific item from the cache.
	Delete(ctx context.Context, key string) error

	// CleanExpired removes all expired items and returns the count removed.
	CleanExpired(ctx context.Context) (int, error)

	// Clear removes all cached items.
	Clear(ctx context.Context) error

	// EntryDir returns the cache directory used for a given key.
	EntryDir(key string) string

	// Stats returns cache statistics: item count and total size in bytes.
	Stats(ctx context.Context) (itemCount int, totalSize int64, err error)
}
