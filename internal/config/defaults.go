package config

import (
	"time"

	"github.com/ziadkadry99/doccatalog/internal/catalog"
	"github.com/ziadkadry99/doccatalog/internal/logging"
	"github.com/ziadkadry99/doccatalog/internal/render"
)

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Port:            8080,
		Title:           render.DefaultTitle,
		StaticDir:       "public",
		BasePath:        catalog.DefaultBase,
		DefaultCategory: catalog.DefaultCategory,
		CacheTTL:        10 * time.Minute,
		Log:             logging.DefaultConfig(),
	}
}
