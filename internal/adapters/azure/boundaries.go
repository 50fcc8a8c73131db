package azure

import (
	"encoding/json"
	"fmt"

	"github.com/wavenote/speechsubs/internal/domain"
)

// wordBoundary mirrors one record of the provider's .word.json file.
// Pointer fields distinguish an absent key from a zero value so malformed
// records surface instead of silently decoding to zeros. Key matching is
// case-insensitive, which covers both spellings the API has used.
type wordBoundary struct {
	Text     *string `json:"Text"`
	Offset   *int64  `json:"AudioOffset"`
	Duration *int64  `json:"Duration"`
}

// decodeWordBoundaries parses a word boundary file into timed words in
// utterance order.
func decodeWordBoundaries(data []byte) ([]domain.TimedWord, error) {
	var records []wordBoundary
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse word boundaries: %w", err)
	}

	words := make([]domain.TimedWord, 0, len(records))
	for i, rec := range records {
		if rec.Text == nil || rec.Offset == nil || rec.Duration == nil {
			return nil, fmt.Errorf("record %d: %w", i, domain.ErrMalformedToken)
		}
		words = append(words, domain.TimedWord{
			Text:     *rec.Text,
			Offset:   *rec.Offset,
			Duration: *rec.Duration,
		})
	}
	return words, nil
}
