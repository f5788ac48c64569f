package testsupport

import (
	"path/filepath"
	"testing"

	"reviewd/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Reviewer.APIKey = "test"
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Paths.APIBind = "127.0.0.1:0"

	for _, opt := range opts {
		opt(&cfg)
	}

	return &cfg
}

// WithCacheTTLDays overrides the cache lifetime on the test config.
func WithCacheTTLDays(days int) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Cache.TTLDays = days
	}
}

// WithReviewerBaseURL points the reviewer client at a test server.
func WithReviewerBaseURL(url string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Reviewer.BaseURL = url
	}
}
