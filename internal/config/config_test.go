package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/wavenote/speechsubs/internal/domain"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Defaults.Voice != "en-US-JennyNeural" {
		t.Errorf("Default voice = %s, want en-US-JennyNeural", cfg.Defaults.Voice)
	}
	if cfg.Defaults.Language != "en" {
		t.Errorf("Default language = %s, want en", cfg.Defaults.Language)
	}
	if cfg.Defaults.CacheTTL != "7d" {
		t.Errorf("Default cache TTL = %s, want 7d", cfg.Defaults.CacheTTL)
	}
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		input    string
		wantSecs int64
		wantErr  bool
	}{
		{"24h", 86400, false},
		{"7d", 604800, false},
		{"30d", 2592000, false},
		{"1h", 3600, false},
		{"invalid", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			dur, err := ParseDuration(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseDuration(%s) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}
			if err == nil && int64(dur.Seconds()) != tt.wantSecs {
				t.Errorf("ParseDuration(%s) = %v, want %d seconds", tt.input, dur, tt.wantSecs)
			}
		})
	}
}

func TestConfig_Save_Load(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	cfg := DefaultConfig()
	cfg.Azure.Region = "eastus"
	cfg.Defaults.Voice = "zh-CN-YunjianNeural"

	if err := cfg.Save(configPath); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if loaded.Azure.Region != "eastus" {
		t.Errorf("Loaded region = %s, want eastus", loaded.Azure.Region)
	}
	if loaded.Defaults.Voice != "zh-CN-YunjianNeural" {
		t.Errorf("Loaded voice = %s, want zh-CN-YunjianNeural", loaded.Defaults.Voice)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("AZURE_SPEECH_KEY", "env-key")
	t.Setenv("AZURE_SPEECH_REGION", "westus2")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Azure.Key != "env-key" {
		t.Errorf("Key = %s, want env-key", cfg.Azure.Key)
	}
	if cfg.Azure.Region != "westus2" {
		t.Errorf("Region = %s, want westus2", cfg.Azure.Region)
	}

	key, region, err := cfg.Credentials()
	if err != nil {
		t.Fatalf("Credentials() error = %v", err)
	}
	if key != "env-key" || region != "westus2" {
		t.Errorf("Credentials() = (%s, %s)", key, region)
	}
}

func TestCredentials_Missing(t *testing.T) {
	t.Setenv("AZURE_SPEECH_KEY", "")
	t.Setenv("AZURE_SPEECH_REGION", "")

	cfg := DefaultConfig()
	if _, _, err := cfg.Credentials(); !errors.Is(err, domain.ErrMissingCredentials) {
		t.Errorf("Credentials() error = %v, want ErrMissingCredentials", err)
	}
}

func TestAppDir(t *testing.T) {
	dir := AppDir()
	if dir == "" {
		t.Error("AppDir() returned empty string")
	}

	home, _ := os.UserHomeDir()
	expected := filepath.Join(home, ".speechsubs")
	if dir != expected {
		t.Errorf("AppDir() = %s, want %s", dir, expected)
	}
}
