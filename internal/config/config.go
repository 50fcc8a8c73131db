package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/wavenote/speechsubs/internal/domain"
)

// Config represents the application configuration
type Config struct {
	Azure    AzureConfig    `yaml:"azure"`
	Defaults DefaultsConfig `yaml:"defaults"`
}

// AzureConfig holds speech service credentials
type AzureConfig struct {
	Key    string `yaml:"key"`
	Region string `yaml:"region"`
}

// DefaultsConfig holds default values
type DefaultsConfig struct {
	Voice    string `yaml:"voice"`
	Language string `yaml:"language"`
	CacheTTL string `yaml:"cache_ttl"`
}

// DefaultConfig returns configuration with default values
func DefaultConfig() *Config {
	return &Config{
		Defaults: DefaultsConfig{
			Voice:    "en-US-JennyNeural",
			Language: "en",
			CacheTTL: "7d",
		},
	}
}

// AppDir returns the application directory (~/.speechsubs)
func AppDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".speechsubs"
	}
	return filepath.Join(home, ".speechsubs")
}

// CacheDir returns the cache directory
func CacheDir() string {
	return filepath.Join(AppDir(), "cache")
}

// ConfigPath returns the config file path
func ConfigPath() string {
	return filepath.Join(AppDir(), "config.yaml")
}

// EnsureDirs creates all required directories
func EnsureDirs() error {
	dirs := []string{AppDir(), CacheDir()}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// Load reads config from file, returns default if not exists. Environment
// variables AZURE_SPEECH_KEY and AZURE_SPEECH_REGION override the file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if key := os.Getenv("AZURE_SPEECH_KEY"); key != "" {
		cfg.Azure.Key = key
	}
	if region := os.Getenv("AZURE_SPEECH_REGION"); region != "" {
		cfg.Azure.Region = region
	}

	return cfg, nil
}

// LoadDefault loads config from default path
func LoadDefault() (*Config, error) {
	return Load(ConfigPath())
}

// Save writes config to file
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// SaveDefault saves config to default path
func (c *Config) SaveDefault() error {
	return c.Save(ConfigPath())
}

// Credentials returns the speech key and region, or an error if either
// is missing.
func (c *Config) Credentials() (key, region string, err error) {
	if c.Azure.Key == "" || c.Azure.Region == "" {
		return "", "", domain.ErrMissingCredentials
	}
	return c.Azure.Key, c.Azure.Region, nil
}

// GetCacheTTL returns the cache TTL as a duration
func (c *Config) GetCacheTTL() (time.Duration, error) {
	return ParseDuration(c.Defaults.CacheTTL)
}

var durationPattern = regexp.MustCompile(`^(\d+)(h|d)$`)

// ParseDuration parses duration strings like "24h", "7d", "30d"
func ParseDuration(s string) (time.Duration, error) {
	matches := durationPattern.FindStringSubmatch(s)
	if len(matches) != 3 {
		return 0, fmt.Errorf("invalid duration format: %s (use format like 24h, 7d)", s)
	}

	value, _ := strconv.Atoi(matches[1])
	unit := matches[2]

	switch unit {
	case "h":
		return time.Duration(value) * time.Hour, nil
	case "d":
		return time.Duration(value) * 24 * time.Hour, nil
	default:
		return 0, fmt.Errorf("unknown duration unit: %s", unit)
	}
}
