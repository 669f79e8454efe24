package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable. It runs before any data
// processing so bad settings fail fast.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateMatching(); err != nil {
		return err
	}
	if err := c.validateEmbedding(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if c.Paths.DataDir == "" {
		return errors.New("paths.data_dir must be set")
	}
	return nil
}

func (c *Config) validateMatching() error {
	m := c.Matching
	if m.LowThreshold < 0 || m.LowThreshold > 1 {
		return errors.New("matching.low_threshold must be between 0 and 1")
	}
	if m.HighThreshold < 0 || m.HighThreshold > 1 {
		return errors.New("matching.high_threshold must be between 0 and 1")
	}
	if m.LowThreshold > m.HighThreshold {
		return fmt.Errorf("matching.low_threshold (%v) must not exceed matching.high_threshold (%v)",
			m.LowThreshold, m.HighThreshold)
	}
	if m.MinTokenLength < 1 {
		return errors.New("matching.min_token_length must be at least 1")
	}
	switch m.AssignmentStrategy {
	case StrategyGreedy, StrategyOptimal:
	default:
		return fmt.Errorf("matching.assignment_strategy must be %q or %q, got %q",
			StrategyGreedy, StrategyOptimal, m.AssignmentStrategy)
	}
	return nil
}

func (c *Config) validateEmbedding() error {
	e := c.Embedding
	if e.BaseURL == "" {
		return errors.New("embedding.base_url must be set")
	}
	if e.Model == "" {
		return errors.New("embedding.model must be set")
	}
	if e.TimeoutSeconds <= 0 {
		return errors.New("embedding.timeout_seconds must be positive")
	}
	if e.BatchSize <= 0 {
		return errors.New("embedding.batch_size must be positive")
	}
	return nil
}
