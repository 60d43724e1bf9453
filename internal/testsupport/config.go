package testsupport

import (
	"path/filepath"
	"testing"

	"mealplan/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Catalog.APIKey = "test"
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Paths.ListDir = filepath.Join(base, "lists")

	for _, opt := range opts {
		opt(&cfg)
	}

	return &cfg
}

// WithAPIKey sets the catalog API key on the test config.
func WithAPIKey(key string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Catalog.APIKey = key
	}
}

// WithPageSize overrides the catalog page size on the test config.
func WithPageSize(size int64) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Catalog.PageSize = size
	}
}
