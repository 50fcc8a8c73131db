package ports

import (
	"context"

	"github.com/wavenote/speechsubs/internal/domain"
)

// SynthesisResult contains the artifacts of a finished batch synthesis job.
type SynthesisResult struct {
	AudioPath   string             // path to the extracted WAV file
	SummaryPath string             // path to the provider's summary.json, if present
	Words       []domain.TimedWord // word-level timing metadata in utterance order
}

// Synthesizer submits text to a speech provider and returns synthesized
// audio together with word-level timing metadata. Implementations own the
// network conversation; they do not retry.
type Synthesizer interface {
	// Synthesize runs one synthesis job and places its artifacts in destDir.
	Synthesize(ctx context.Context, text, voice, destDir string) (*SynthesisResult, error)
}
