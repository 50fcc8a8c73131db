package application

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"time"

	"lukechampine.com/blake3"

	"github.com/wavenote/speechsubs/internal/domain"
	"github.com/wavenote/speechsubs/internal/ports"
	"github.com/wavenote/speechsubs/internal/srt"
)

// SynthesizeOptions configures one synthesis run
type SynthesizeOptions struct {
	Voice      string
	SplitChars domain.SplitSet // characters that end a subtitle group
	OutputPath string          // destination for the SRT document
	AudioPath  string          // optional destination for a WAV copy
	NoCache    bool
}

// SynthesizeResult contains the outcome of a synthesis run
type SynthesizeResult struct {
	Groups       []domain.SubtitleGroup
	SubtitlePath string
	AudioPath    string // empty unless a WAV copy was requested
	FromCache    bool
}

// SynthesizeService orchestrates synthesis and subtitle generation
type SynthesizeService struct {
	cache ports.CacheStore
	synth ports.Synthesizer
	ttl   time.Duration
}

// NewSynthesizeService creates a new synthesis service
func NewSynthesizeService(cache ports.CacheStore, synth ports.Synthesizer, ttl time.Duration) *SynthesizeService {
	return &SynthesizeService{
		cache: cache,
		synth: synth,
		ttl:   ttl,
	}
}

// CacheKey derives the cache key for a text/voice pair.
func CacheKey(text, voice string) string {
	h := blake3.New(32, nil)
	io.WriteString(h, voice)
	h.Write([]byte{0})
	io.WriteString(h, text)
	return hex.EncodeToString(h.Sum(nil))[:16]
}

// Synthesize produces an SRT subtitle track (and optionally the audio) for
// the given text. Subtitles are always regenerated from word timings, so a
// cache hit still honors the requested split set.
func (s *SynthesizeService) Synthesize(ctx context.Context, text string, opts SynthesizeOptions) (*SynthesizeResult, error) {
	key := CacheKey(text, opts.Voice)

	var words []domain.TimedWord
	var audioPath string
	fromCache := false

	if !opts.NoCache {
		if item, err := s.cache.Get(ctx, key); err == nil {
			words = item.Words
			audioPath = item.AudioPath
			fromCache = true
		}
	}

	if !fromCache {
		result, err := s.synth.Synthesize(ctx, text, opts.Voice, s.cache.EntryDir(key))
		if err != nil {
			return nil, err
		}
		words = result.Words
		audioPath = result.AudioPath

		// Cache result (failures are non-fatal)
		now := time.Now()
		_ = s.cache.Set(ctx, key, &ports.CachedItem{
			Voice:     opts.Voice,
			AudioPath: audioPath,
			Words:     words,
			CreatedAt: now,
			ExpiresAt: now.Add(s.ttl),
		})
	}

	groups := domain.GroupWords(words, opts.SplitChars)
	document := srt.Render(srt.FromGroups(groups))

	if err := writeFileAtomic(opts.OutputPath, []byte(document)); err != nil {
		return nil, fmt.Errorf("write subtitles: %w", err)
	}

	result := &SynthesizeResult{
		Groups:       groups,
		SubtitlePath: opts.OutputPath,
		FromCache:    fromCache,
	}

	if opts.AudioPath != "" {
		if err := copyFile(audioPath, opts.AudioPath); err != nil {
			return nil, fmt.Errorf("copy audio: %w", err)
		}
		result.AudioPath = opts.AudioPath
	}

	return result, nil
}
