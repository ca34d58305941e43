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
	c.normalizeClean()
	c.normalizeHistory()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.StateDir) == "" {
		if value, ok := os.LookupEnv("CORPUSPREP_STATE_DIR"); ok && strings.TrimSpace(value) != "" {
			c.Paths.StateDir = strings.TrimSpace(value)
		} else {
			c.Paths.StateDir = defaultStateDir
		}
	}
	if c.Paths.StateDir, err = expandPath(c.Paths.StateDir); err != nil {
		return fmt.Errorf("paths.state_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeClean() {
	c.Clean.Input = strings.TrimSpace(c.Clean.Input)
	if c.Clean.Input == "" {
		c.Clean.Input = defaultCleanInput
	}
	c.Clean.Output = strings.TrimSpace(c.Clean.Output)
	if c.Clean.Output == "" {
		c.Clean.Output = defaultCleanOutput
	}
	c.Clean.Encoding = strings.ToLower(strings.TrimSpace(c.Clean.Encoding))
	if c.Clean.Encoding == "" {
		c.Clean.Encoding = defaultCleanEncoding
	}
}

func (c *Config) normalizeHistory() {
	c.History.Driver = strings.ToLower(strings.TrimSpace(c.History.Driver))
	switch c.History.Driver {
	case "", "sqlite", "sqlite3":
		c.History.Driver = "sqlite"
	case "postgresql":
		c.History.Driver = "postgres"
	}
	c.History.DSN = strings.TrimSpace(c.History.DSN)
	if c.History.DSN == "" {
		if value, ok := os.LookupEnv("CORPUSPREP_HISTORY_DSN"); ok {
			c.History.DSN = strings.TrimSpace(value)
		}
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
