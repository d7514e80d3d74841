package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if c.Tagger.SimilarityThreshold < 0 || c.Tagger.SimilarityThreshold > 1 {
		return errors.New("tagger.similarity_threshold must be between 0 and 1")
	}
	if c.Recommend.MaxResults < 1 {
		return errors.New("recommend.max_results must be at least 1")
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
