package domain

import (
	"strings"

	"github.com/rivo/uniseg"
)

// SubtitleGroup is a contiguous span of spoken text with a start and end
// timestamp (milliseconds), destined for one subtitle display unit.
type SubtitleGroup struct {
	Text  string
	Start int64
	End   int64
}

// SplitSet holds the characters that end a subtitle group when one of them
// closes a word's text. Members are grapheme clusters, so full-width CJK
// punctuation and combining sequences are matched as single characters.
type SplitSet map[string]bool

// NewSplitSet builds a SplitSet from a string of split characters.
func NewSplitSet(chars string) SplitSet {
	set := make(SplitSet)
	g := uniseg.NewGraphemes(chars)
	for g.Next() {
		set[g.Str()] = true
	}
	return set
}

// lastGrapheme returns the final grapheme cluster of s, or "" if s is empty.
func lastGrapheme(s string) string {
	var last string
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		last = g.Str()
	}
	return last
}

// GroupWords folds an ordered sequence of timed words into subtitle groups.
//
// Words accumulate into the current group in order. A group closes when a
// word's own text ends in a split character; the decision looks only at the
// word's final character, never at the accumulated buffer, so a split
// character buried mid-word does not close the group. The group's start is
// the offset of the first word accumulated since the last close, captured
// once; its end is the closing word's offset plus duration.
//
// Trailing text that never meets a split character is flushed after the
// loop using the last word's end time, but only if it is non-empty once
// trimmed. An empty input yields no groups.
func GroupWords(words []TimedWord, splits SplitSet) []SubtitleGroup {
	var groups []SubtitleGroup
	var buf strings.Builder
	var start int64
	var last *TimedWord
	open := false

	for i := range words {
		w := words[i]
		if !open {
			start = w.Offset
			open = true
		}
		buf.WriteString(w.Text)
		last = &words[i]

		// An empty-text word has no last character and never splits.
		if !splits[lastGrapheme(w.Text)] {
			continue
		}

		groups = append(groups, SubtitleGroup{
			Text:  strings.TrimSpace(buf.String()),
			Start: start,
			End:   w.EndOffset(),
		})
		buf.Reset()
		open = false
		last = nil
	}

	if open {
		text := strings.TrimSpace(buf.String())
		if text != "" {
			// Defensive fallback of one second; in practice an open
			// group always has a closing candidate word.
			end := start + 1000
			if last != nil {
				end = last.EndOffset()
			}
			groups = append(groups, SubtitleGroup{Text: text, Start: start, End: end})
		}
	}

	return groups
}
