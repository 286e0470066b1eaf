package cmd

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ziadkadry99/doccatalog/internal/config"
	"github.com/ziadkadry99/doccatalog/internal/logging"
	"github.com/ziadkadry99/doccatalog/internal/render"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `doccatalog init` to create a config file", err)
	}
	if verbose {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// newLogger builds the process logger from config.
func newLogger(cfg *config.Config) (zerolog.Logger, error) {
	log, err := logging.Open(cfg.Log)
	if err != nil {
		return log, fmt.Errorf("creating logger: %w", err)
	}
	return log, nil
}

// newRenderer loads the configured catalog and binds a renderer to it.
func newRenderer(cfg *config.Config) (*render.Renderer, error) {
	cat, err := cfg.Catalog()
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	r, err := render.New(cat, cfg.Title)
	if err != nil {
		return nil, fmt.Errorf("creating renderer: %w", err)
	}
	return r, nil
}
