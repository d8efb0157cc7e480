package config

import (
	"fmt"
	"path/filepath"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateCategories(); err != nil {
		return err
	}
	if err := c.validateOrganize(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateCategories() error {
	if _, err := c.CategoryTable(); err != nil {
		return fmt.Errorf("categories: %w", err)
	}
	return nil
}

func (c *Config) validateOrganize() error {
	for _, pattern := range c.Organize.Exclude {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return fmt.Errorf("organize.exclude: invalid pattern %q: %w", pattern, err)
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be \"console\" or \"json\", got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error; got %q", c.Logging.Level)
	}
	return nil
}
