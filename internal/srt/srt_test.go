package srt

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/wavenote/speechsubs/internal/domain"
)

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		millis int64
		want   string
	}{
		{0, "00:00:00,000"},
		{450, "00:00:00,450"},
		{3500, "00:00:03,500"},
		{61001, "00:01:01,001"},
		{3600000, "01:00:00,000"},
		{90061234, "25:01:01,234"}, // beyond 24 hours
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got := FormatTimestamp(time.Duration(tt.millis) * time.Millisecond)
			if got != tt.want {
				t.Errorf("FormatTimestamp(%dms) = %s, want %s", tt.millis, got, tt.want)
			}
		})
	}
}

func TestRender(t *testing.T) {
	cues := []Cue{
		{Start: 0, End: 450 * time.Millisecond, Text: "你好？"},
		{Start: 800 * time.Millisecond, End: time.Second, Text: "Bye"},
	}

	got := Render(cues)
	want := "1\n" +
		"00:00:00,000 --> 00:00:00,450\n" +
		"你好？\n" +
		"\n" +
		"2\n" +
		"00:00:00,800 --> 00:00:01,000\n" +
		"Bye\n"

	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRender_Empty(t *testing.T) {
	if got := Render(nil); got != "" {
		t.Errorf("Render(nil) = %q, want empty document", got)
	}
}

func TestRender_MultilineText(t *testing.T) {
	cues := []Cue{
		{Start: 0, End: time.Second, Text: "first line\nsecond line"},
	}

	got := Render(cues)
	if !strings.Contains(got, "first line\nsecond line\n") {
		t.Errorf("Render() should emit embedded newlines verbatim, got %q", got)
	}
}

func TestParse_RoundTrip(t *testing.T) {
	cues := []Cue{
		{Start: 0, End: 450 * time.Millisecond, Text: "你好？"},
		{Start: 800 * time.Millisecond, End: time.Second, Text: "Bye"},
		{Start: 90061234 * time.Millisecond, End: 90062000 * time.Millisecond, Text: "long form"},
	}

	parsed, err := Parse(strings.NewReader(Render(cues)))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if !reflect.DeepEqual(parsed, cues) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", parsed, cues)
	}
}

func TestParse_RerenderIdentical(t *testing.T) {
	cues := []Cue{
		{Start: 0, End: 450 * time.Millisecond, Text: "alpha"},
		{Start: 500 * time.Millisecond, End: time.Second, Text: "beta\ngamma"},
	}

	first := Render(cues)
	parsed, err := Parse(strings.NewReader(first))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	second := Render(parsed)
	if first != second {
		t.Errorf("re-render differs:\n first %q\nsecond %q", first, second)
	}
}

func TestParse_CRLF(t *testing.T) {
	doc := "1\r\n00:00:00,000 --> 00:00:01,000\r\nhello\r\n"

	parsed, err := Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(parsed) != 1 || parsed[0].Text != "hello" {
		t.Errorf("Parse() = %+v, want one cue with text %q", parsed, "hello")
	}
}

func TestParse_IndexOutOfSequence(t *testing.T) {
	doc := "2\n00:00:00,000 --> 00:00:01,000\nhello\n"

	if _, err := Parse(strings.NewReader(doc)); err == nil {
		t.Error("Parse() should reject a document starting at index 2")
	}
}

func TestParse_Empty(t *testing.T) {
	parsed, err := Parse(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(parsed) != 0 {
		t.Errorf("Parse(\"\") = %+v, want no cues", parsed)
	}
}

func TestFromGroups(t *testing.T) {
	groups := []domain.SubtitleGroup{
		{Text: "你好？", Start: 0, End: 450},
		{Text: "Bye", Start: 800, End: 1000},
	}

	cues := FromGroups(groups)
	if len(cues) != 2 {
		t.Fatalf("FromGroups() returned %d cues, want 2", len(cues))
	}
	if cues[0].End != 450*time.Millisecond {
		t.Errorf("first cue end = %v, want 450ms", cues[0].End)
	}
	if cues[1].Text != "Bye" {
		t.Errorf("second cue text = %q, want %q", cues[1].Text, "Bye")
	}
}
