package main

import (
	"log/slog"
	"strings"
	"sync"

	"tickermatch/internal/config"
	"tickermatch/internal/embedding"
	"tickermatch/internal/logging"
	"tickermatch/internal/runlock"
	"tickermatch/internal/store"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) logger() *slog.Logger {
	cfg, err := c.ensureConfig()
	if err != nil {
		return logging.NewNop()
	}
	logger, err := logging.New(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	if err != nil {
		return logging.NewNop()
	}
	return logger
}

func (c *commandContext) embedder() (embedding.Embedder, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return embedding.NewClient(embedding.Config{
		BaseURL:        cfg.Embedding.BaseURL,
		APIKey:         cfg.Embedding.APIKey,
		Model:          cfg.Embedding.Model,
		TimeoutSeconds: cfg.Embedding.TimeoutSeconds,
	}), nil
}

// withStore opens the database, holding the data-directory lock for the
// duration of fn. Write commands go through here so concurrent
// invocations cannot interleave.
func (c *commandContext) withStore(fn func(*store.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}

	lock := runlock.New(cfg.LockPath())
	if err := lock.Acquire(); err != nil {
		return err
	}
	defer func() {
		_ = lock.Release()
	}()

	s, err := store.Open(cfg)
	if err != nil {
		return err
	}
	defer func() {
		_ = s.Close()
	}()
	return fn(s)
}
