package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateClean(); err != nil {
		return err
	}
	if err := c.validateGibberish(); err != nil {
		return err
	}
	if err := c.validateSplit(); err != nil {
		return err
	}
	if err := c.validateHistory(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateClean() error {
	if c.Clean.HeaderRows < 0 {
		return errors.New("clean.header_rows must be >= 0")
	}
	if c.Clean.Column < 0 {
		return errors.New("clean.column must be >= 0")
	}
	switch c.Clean.Encoding {
	case "utf-8", "utf8", "latin1", "iso-8859-1", "windows-1252", "cp1252":
	default:
		return fmt.Errorf("clean.encoding: unsupported value %q", c.Clean.Encoding)
	}
	return nil
}

func (c *Config) validateGibberish() error {
	if c.Gibberish.MeanWordLength <= 0 {
		return errors.New("gibberish.mean_word_length must be positive")
	}
	if c.Gibberish.StdWordLength < 0 {
		return errors.New("gibberish.std_word_length must be >= 0")
	}
	if c.Gibberish.MeanSentenceLength <= 0 {
		return errors.New("gibberish.mean_sentence_length must be positive")
	}
	return nil
}

func (c *Config) validateSplit() error {
	if c.Split.TrainRatio < 0 || c.Split.TrainRatio > 1 {
		return errors.New("split.train_ratio must be between 0 and 1")
	}
	return nil
}

func (c *Config) validateHistory() error {
	if !c.History.Enabled {
		return nil
	}
	switch c.History.Driver {
	case "sqlite":
	case "postgres":
		if c.History.DSN == "" {
			return errors.New("history.dsn must be set when history.driver is postgres (or export CORPUSPREP_HISTORY_DSN)")
		}
	default:
		return fmt.Errorf("history.driver: unsupported value %q", c.History.Driver)
	}
	return nil
}
