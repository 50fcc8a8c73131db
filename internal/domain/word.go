package domain

// TimedWord is one word-level timing record from the speech provider.
// Offset and Duration are milliseconds from the start of the audio.
//
// The provider emits boundary files with either capitalized keys
// ("Text", "AudioOffset", "Duration") or all-lowercase ones depending on
// the API version; encoding/json matches field names case-insensitively,
// so a single set of tags covers both.
type TimedWord struct {
	Text     string `json:"Text"`
	Offset   int64  `json:"AudioOffset"`
	Duration int64  `json:"Duration"`
}

// EndOffset returns the time at which the word finishes playing.
func (w TimedWord) EndOffset() int64 {
	return w.Offset + w.Duration
}
