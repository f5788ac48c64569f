package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateReviewer(); err != nil {
		return err
	}
	if err := c.validateCache(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateReviewer() error {
	if c.Reviewer.APIKey == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			defaultPath = "~/.config/reviewd/config.toml"
		}
		return fmt.Errorf("reviewer.api_key is required. Set REVIEWD_API_KEY env var or edit %s (create with 'reviewctl config init')", defaultPath)
	}
	if c.Reviewer.BaseURL == "" {
		return errors.New("reviewer.base_url must be set")
	}
	if c.Reviewer.Model == "" {
		return errors.New("reviewer.model must be set")
	}
	if c.Reviewer.TimeoutSeconds <= 0 {
		return errors.New("reviewer.timeout_seconds must be positive")
	}
	return nil
}

func (c *Config) validateCache() error {
	if c.Cache.TTLDays <= 0 {
		return errors.New("cache.ttl_days must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
