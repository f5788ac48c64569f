package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeReviewer()
	c.normalizeCache()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir
	}
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	c.Paths.APIBind = strings.TrimSpace(c.Paths.APIBind)
	if c.Paths.APIBind == "" {
		c.Paths.APIBind = defaultAPIBind
	}
	return nil
}

func (c *Config) normalizeReviewer() {
	c.Reviewer.APIKey = strings.TrimSpace(c.Reviewer.APIKey)
	if c.Reviewer.APIKey == "" {
		if value, ok := os.LookupEnv("REVIEWD_API_KEY"); ok {
			c.Reviewer.APIKey = strings.TrimSpace(value)
		}
	}
	c.Reviewer.BaseURL = strings.TrimSpace(c.Reviewer.BaseURL)
	if c.Reviewer.BaseURL == "" {
		c.Reviewer.BaseURL = defaultReviewerBaseURL
	}
	c.Reviewer.Model = strings.TrimSpace(c.Reviewer.Model)
	if c.Reviewer.Model == "" {
		c.Reviewer.Model = defaultReviewerModel
	}
	if c.Reviewer.TimeoutSeconds <= 0 {
		c.Reviewer.TimeoutSeconds = defaultReviewerTimeoutSeconds
	}
}

func (c *Config) normalizeCache() {
	if c.Cache.TTLDays <= 0 {
		c.Cache.TTLDays = defaultCacheTTLDays
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
