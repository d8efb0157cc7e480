package testsupport

import (
	"path/filepath"
	"testing"

	"foldersort/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config whose lock directory is a unique temp
// directory per test. It applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.LockDir = filepath.Join(base, "locks")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithCategories replaces the category list on the test config.
func WithCategories(categories ...config.Category) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Categories = categories
	}
}

// WithExclude sets the exclusion patterns on the test config.
func WithExclude(patterns ...string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Organize.Exclude = patterns
	}
}

// WithFallback overrides the fallback category name.
func WithFallback(name string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Organize.Fallback = name
	}
}
