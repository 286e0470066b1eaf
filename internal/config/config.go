package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/ziadkadry99/doccatalog/internal/catalog"
	"github.com/ziadkadry99/doccatalog/internal/logging"
)

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (DOCCATALOG_*). Nested keys use a
// double underscore: DOCCATALOG_LOG__LEVEL -> log.level.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider("DOCCATALOG_", ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, "DOCCATALOG_"))
		return strings.ReplaceAll(key, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// MarshalYAML writes cache_ttl as a duration string ("10m0s") instead of
// the nanosecond integer yaml.v3 would emit for a time.Duration.
func (c Config) MarshalYAML() (any, error) {
	type plain Config
	var node yamlv3.Node
	if err := node.Encode(plain(c)); err != nil {
		return nil, err
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == "cache_ttl" {
			node.Content[i+1].SetString(c.CacheTTL.String())
		}
	}
	return &node, nil
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.BasePath == "" {
		return fmt.Errorf("base_path is required")
	}
	if c.DefaultCategory == "" {
		return fmt.Errorf("default_category is required")
	}
	if c.StaticDir == "" {
		return fmt.Errorf("static_dir is required")
	}
	if c.CacheTTL < 0 {
		return fmt.Errorf("cache_ttl must be non-negative")
	}
	if !logging.ValidFormat(c.Log.Format) {
		return fmt.Errorf("invalid log format %q: must be one of auto, json, console", c.Log.Format)
	}
	return nil
}

// Catalog returns the configured catalog: the YAML file when catalog_file
// is set, otherwise the built-in table rebased on base_path.
func (c *Config) Catalog() (*catalog.Catalog, error) {
	if c.CatalogFile != "" {
		return catalog.Load(c.CatalogFile)
	}
	def := catalog.Default()
	if c.BasePath == def.Base() {
		return def, nil
	}
	return catalog.New(c.BasePath, def.Categories())
}
