package config

import (
	"time"

	"github.com/ziadkadry99/doccatalog/internal/logging"
)

// DefaultPath is the config file looked up when --config is not given.
const DefaultPath = ".doccatalog.yml"

// Config is the top-level doccatalog configuration, corresponding to .doccatalog.yml.
type Config struct {
	Port            int            `yaml:"port" koanf:"port"`
	Title           string         `yaml:"title" koanf:"title"`
	StaticDir       string         `yaml:"static_dir" koanf:"static_dir"`
	BasePath        string         `yaml:"base_path" koanf:"base_path"`
	CatalogFile     string         `yaml:"catalog_file" koanf:"catalog_file"`
	DefaultCategory string         `yaml:"default_category" koanf:"default_category"`
	AllowAllOrigins bool           `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	CacheTTL        time.Duration  `yaml:"cache_ttl" koanf:"cache_ttl"`
	Log             logging.Config `yaml:"log" koanf:"log"`
}
