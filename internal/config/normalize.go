package config

import (
	"fmt"
	"os"
	"strings"

	"foldersort/internal/category"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeOrganize()
	if err := c.normalizeCategories(); err != nil {
		return err
	}
	return c.normalizeLogging()
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.LockDir) == "" {
		c.Paths.LockDir = defaultLockDir()
	}
	if c.Paths.LockDir, err = expandPath(c.Paths.LockDir); err != nil {
		return fmt.Errorf("paths.lock_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeOrganize() {
	c.Organize.Fallback = strings.TrimSpace(c.Organize.Fallback)
	if c.Organize.Fallback == "" {
		c.Organize.Fallback = category.DefaultFallback
	}
	c.Organize.Exclude = dedupeTrimmed(c.Organize.Exclude)
}

func (c *Config) normalizeCategories() error {
	if len(c.Categories) == 0 {
		c.Categories = defaultCategories()
		return nil
	}
	for i := range c.Categories {
		cat := &c.Categories[i]
		cat.Name = strings.TrimSpace(cat.Name)
		exts := make([]string, 0, len(cat.Extensions))
		seen := make(map[string]struct{}, len(cat.Extensions))
		for _, raw := range cat.Extensions {
			ext, err := category.NormalizeExtension(raw)
			if err != nil {
				return fmt.Errorf("categories[%d] (%s): %w", i, cat.Name, err)
			}
			if _, dup := seen[ext]; dup {
				continue
			}
			seen[ext] = struct{}{}
			exts = append(exts, ext)
		}
		cat.Extensions = exts
	}
	return nil
}

func (c *Config) normalizeLogging() error {
	if value, ok := os.LookupEnv("FOLDERSORT_LOG_LEVEL"); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	if value, ok := os.LookupEnv("FOLDERSORT_LOG_FORMAT"); ok && strings.TrimSpace(value) != "" {
		c.Logging.Format = value
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	var err error
	if c.Logging.File, err = expandPath(strings.TrimSpace(c.Logging.File)); err != nil {
		return fmt.Errorf("logging.file: %w", err)
	}
	return nil
}

func dedupeTrimmed(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, value := range values {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}
	return out
}
