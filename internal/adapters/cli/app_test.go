package cli

import (
	"testing"
	"time"

	"github.com/wavenote/speechsubs/internal/config"
)

func TestResolveTTL(t *testing.T) {
	cfg := config.DefaultConfig()

	ttl, err := resolveTTL(cfg, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ttl != 7*24*time.Hour {
		t.Errorf("expected config default 7d, got %s", ttl)
	}
}

func TestResolveTTL_FlagOverrides(t *testing.T) {
	cfg := config.DefaultConfig()

	ttl, err := resolveTTL(cfg, "24h")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ttl != 24*time.Hour {
		t.Errorf("expected 24h from flag, got %s", ttl)
	}
}

func TestResolveTTL_InvalidFlag(t *testing.T) {
	cfg := config.DefaultConfig()

	if _, err := resolveTTL(cfg, "bogus"); err == nil {
		t.Error("expected error for invalid duration flag")
	}
}

func TestResolveTTL_BadConfigFallsBack(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Defaults.CacheTTL = "not-a-duration"

	ttl, err := resolveTTL(cfg, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ttl != 7*24*time.Hour {
		t.Errorf("expected 7d fallback, got %s", ttl)
	}
}
