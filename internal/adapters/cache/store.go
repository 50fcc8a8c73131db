package cache

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/wavenote/speechsubs/internal/domain"
	"github.com/wavenote/speechsubs/internal/ports"
)

// FileCache stores finished synthesis results on disk, one directory per
// content-hash key, with a meta.json next to the audio.
type FileCache struct {
	baseDir string
	ttl     time.Duration
}

func NewFileCache(baseDir string, ttl time.Duration) *FileCache {
	return &FileCache{
		baseDir: baseDir,
		ttl:     ttl,
	}
}

type metaFile struct {
	Voice     string             `json:"voice"`
	AudioPath string             `json:"audio_path"`
	Words     []domain.TimedWord `json:"words"`
	CreatedAt time.Time          `json:"created_at"`
	ExpiresAt time.Time          `json:"expires_at"`
}

func (c *FileCache) EntryDir(key string) string {
	return filepath.Join(c.baseDir, key)
}

func (c *FileCache) metaPath(key string) string {
	return filepath.Join(c.EntryDir(key), "meta.json")
}

func (c *FileCache) Get(ctx context.Context, key string) (*ports.CachedItem, error) {
	data, err := os.ReadFile(c.metaPath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrCacheMiss
		}
		return nil, err
	}

	var meta metaFile
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	if time.Now().After(meta.ExpiresAt) {
		return nil, domain.ErrCacheExpired
	}

	// A cached item without its audio file is useless; treat it as a miss.
	if _, err := os.Stat(meta.AudioPath); err != nil {
		return nil, domain.ErrCacheMiss
	}

	return &ports.CachedItem{
		Voice:     meta.Voice,
		AudioPath: meta.AudioPath,
		Words:     meta.Words,
		CreatedAt: meta.CreatedAt,
		ExpiresAt: meta.ExpiresAt,
	}, nil
}

func (c *FileCache) Set(ctx context.Context, key string, item *ports.CachedItem) error {
	if err := os.MkdirAll(c.EntryDir(key), 0755); err != nil {
		return err
	}

	meta := metaFile{
		Voice:     item.Voice,
		AudioPath: item.AudioPath,
		Words:     item.Words,
		CreatedAt: item.CreatedAt,
		ExpiresAt: item.ExpiresAt,
	}

	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(c.metaPath(key), data, 0644)
}

func (c *FileCache) Delete(ctx context.Context, key string) error {
	return os.RemoveAll(c.EntryDir(key))
}

func (c *FileCache) CleanExpired(ctx context.Context) (int, error) {
	entries, err := os.ReadDir(c.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}

	cleaned := 0
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		key := entry.Name()
		_, err := c.Get(ctx, key)
		if err == domain.ErrCacheExpired {
			if err := c.Delete(ctx, key); err == nil {
				cleaned++
			}
		}
	}

	return cleaned, nil
}

func (c *FileCache) Clear(ctx context.Context) error {
	entries, err := os.ReadDir(c.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	for _, entry := range entries {
		if entry.IsDir() {
			_ = os.RemoveAll(filepath.Join(c.baseDir, entry.Name()))
		}
	}

	return nil
}

func (c *FileCache) Stats(ctx context.Context) (itemCount int, totalSize int64, err error) {
	entries, err := os.ReadDir(c.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, 0, nil
		}
		return 0, 0, err
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		itemCount++

		dirPath := filepath.Join(c.baseDir, entry.Name())
		_ = filepath.Walk(dirPath, func(path string, info os.FileInfo, err error) error {
			if err == nil && !info.IsDir() {
				totalSize += info.Size()
			}
			return nil
		})
	}

	return itemCount, totalSize, nil
}

var _ ports.CacheStore = (*FileCache)(nil)
