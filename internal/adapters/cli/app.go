package cli

import (
	"time"

	"github.com/wavenote/speechsubs/internal/adapters/azure"
	"github.com/wavenote/speechsubs/internal/adapters/cache"
	"github.com/wavenote/speechsubs/internal/application"
	"github.com/wavenote/speechsubs/internal/config"
	"github.com/wavenote/speechsubs/internal/ports"
)

// App holds all application dependencies
type App struct {
	Config      *config.Config
	Cache       ports.CacheStore
	Synthesizer ports.Synthesizer

	SynthesizeSvc *application.SynthesizeService
	CacheSvc      *application.CacheService
}

// NewApp creates and wires up all dependencies
func NewApp() (*App, error) {
	// Ensure directories exist
	if err := config.EnsureDirs(); err != nil {
		return nil, err
	}

	// Load config
	cfg, err := config.LoadDefault()
	if err != nil {
		return nil, err
	}

	// Parse cache TTL
	ttl, err := resolveTTL(cfg, cacheTTLFlag)
	if err != nil {
		return nil, err
	}

	key, region, err := cfg.Credentials()
	if err != nil {
		// Leave the synthesizer without credentials; the client reports
		// the missing configuration when a job is actually submitted.
		key, region = "", ""
	}

	// Create adapters
	cacheStore := cache.NewFileCache(config.CacheDir(), ttl)
	synthesizer := azure.NewClient(key, region)

	// Create services
	synthesizeSvc := application.NewSynthesizeService(cacheStore, synthesizer, ttl)
	cacheSvc := application.NewCacheService(cacheStore)

	return &App{
		Config:        cfg,
		Cache:         cacheStore,
		Synthesizer:   synthesizer,
		SynthesizeSvc: synthesizeSvc,
		CacheSvc:      cacheSvc,
	}, nil
}

// resolveTTL returns the cache TTL, preferring an explicit --cache-ttl
// value over the config file. A bad flag value is an error; a bad config
// value falls back to the default.
func resolveTTL(cfg *config.Config, flagValue string) (time.Duration, error) {
	if flagValue != "" {
		return config.ParseDuration(flagValue)
	}

	ttl, err := cfg.GetCacheTTL()
	if err != nil {
		return 7 * 24 * time.Hour, nil
	}
	return ttl, nil
}

var globalApp *App

// GetApp returns the global app instance, creating it if needed
func GetApp() (*App, error) {
	if globalApp == nil {
		app, err := NewApp()
		if err != nil {
			return nil, err
		}
		globalApp = app
	}
	return globalApp, nil
}
