// Package srt serializes subtitle groups into the SubRip subtitle format
// and parses that format back into cues.
package srt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/wavenote/speechsubs/internal/domain"
)

// Cue is one subtitle record. The 1-based index is implied by position.
type Cue struct {
	Start time.Duration
	End   time.Duration
	Text  string
}

// FromGroups converts subtitle groups into cues in order.
func FromGroups(groups []domain.SubtitleGroup) []Cue {
	cues := make([]Cue, 0, len(groups))
	for _, g := range groups {
		cues = append(cues, Cue{
			Start: time.Duration(g.Start) * time.Millisecond,
			End:   time.Duration(g.End) * time.Millisecond,
			Text:  g.Text,
		})
	}
	return cues
}

// FormatTimestamp renders a duration as an SRT timestamp (HH:MM:SS,mmm).
// Hours are not capped at 24 for long-form input.
func FormatTimestamp(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	ms := d.Milliseconds()
	hours := ms / 3600000
	minutes := (ms % 3600000) / 60000
	seconds := (ms % 60000) / 1000
	millis := ms % 1000

	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, seconds, millis)
}

// Render serializes cues as an SRT document: index line, timing line, text
// lines, blank separator. Text is emitted verbatim, one line per embedded
// newline. Zero cues render as an empty document.
func Render(cues []Cue) string {
	if len(cues) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, cue := range cues {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "%d\n", i+1)
		fmt.Fprintf(&sb, "%s --> %s\n", FormatTimestamp(cue.Start), FormatTimestamp(cue.End))
		sb.WriteString(cue.Text)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Write renders cues to w as UTF-8.
func Write(w io.Writer, cues []Cue) error {
	_, err := io.WriteString(w, Render(cues))
	return err
}

// Parse reads an SRT document and returns its cues. Indices must be
// sequential from 1. A blank line always ends a cue's text, so text
// containing blank lines does not survive a round trip.
func Parse(r io.Reader) ([]Cue, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	var cues []Cue
	for {
		// Skip blank separator lines between blocks.
		line, ok := nextLine(scanner)
		for ok && strings.TrimSpace(line) == "" {
			line, ok = nextLine(scanner)
		}
		if !ok {
			break
		}

		index, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			return nil, fmt.Errorf("cue %d: invalid index line %q", len(cues)+1, line)
		}
		if index != len(cues)+1 {
			return nil, fmt.Errorf("cue index %d out of sequence, want %d", index, len(cues)+1)
		}

		timing, ok := nextLine(scanner)
		if !ok {
			return nil, fmt.Errorf("cue %d: missing timing line", index)
		}
		start, end, err := parseTiming(timing)
		if err != nil {
			return nil, fmt.Errorf("cue %d: %w", index, err)
		}

		var textLines []string
		for {
			line, ok = nextLine(scanner)
			if !ok || strings.TrimSpace(line) == "" {
				break
			}
			textLines = append(textLines, line)
		}
		if len(textLines) == 0 {
			return nil, fmt.Errorf("cue %d: missing text", index)
		}

		cues = append(cues, Cue{
			Start: start,
			End:   end,
			Text:  strings.Join(textLines, "\n"),
		})

		if !ok {
			break
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return cues, nil
}

func nextLine(scanner *bufio.Scanner) (string, bool) {
	if !scanner.Scan() {
		return "", false
	}
	return strings.TrimRight(scanner.Text(), "\r"), true
}

func parseTiming(line string) (start, end time.Duration, err error) {
	parts := strings.Split(line, " --> ")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid timing line %q", line)
	}
	start, err = parseTimestamp(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, err
	}
	end, err = parseTimestamp(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

func parseTimestamp(ts string) (time.Duration, error) {
	main, msPart, ok := strings.Cut(ts, ",")
	if !ok {
		return 0, fmt.Errorf("invalid timestamp %q", ts)
	}
	fields := strings.Split(main, ":")
	if len(fields) != 3 {
		return 0, fmt.Errorf("invalid timestamp %q", ts)
	}

	hours, err1 := strconv.Atoi(fields[0])
	minutes, err2 := strconv.Atoi(fields[1])
	seconds, err3 := strconv.Atoi(fields[2])
	millis, err4 := strconv.Atoi(msPart)
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
		return 0, fmt.Errorf("invalid timestamp %q", ts)
	}

	total := int64(hours)*3600000 + int64(minutes)*60000 + int64(seconds)*1000 + int64(millis)
	return time.Duration(total) * time.Millisecond, nil
}
