package cli

import (
	"strings"
	"testing"
)

func TestNewRootCmd_CacheTTLFlag(t *testing.T) {
	cmd := NewRootCmd()

	flag := cmd.PersistentFlags().Lookup("cache-ttl")
	if flag == nil {
		t.Fatal("cache-ttl flag not registered")
	}
	if flag.DefValue != "" {
		t.Errorf("expected empty default, got %q", flag.DefValue)
	}
}

func TestReadInputLine_PathWithSpaces(t *testing.T) {
	line, err := readInputLine(strings.NewReader("my notes file.txt\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if line != "my notes file.txt" {
		t.Errorf("expected 'my notes file.txt', got %q", line)
	}
}

func TestReadInputLine_EOFWithoutNewline(t *testing.T) {
	line, err := readInputLine(strings.NewReader("plain.txt"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if line != "plain.txt" {
		t.Errorf("expected 'plain.txt', got %q", line)
	}
}

func TestReadInputLine_Empty(t *testing.T) {
	line, err := readInputLine(strings.NewReader("\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if line != "" {
		t.Errorf("expected empty line, got %q", line)
	}
}
