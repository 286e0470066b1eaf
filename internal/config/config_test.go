package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Port)
	}
	if cfg.BasePath != "./assets/PDF" {
		t.Errorf("expected default base_path %q, got %q", "./assets/PDF", cfg.BasePath)
	}
	if cfg.DefaultCategory != "articulos" {
		t.Errorf("expected default category %q, got %q", "articulos", cfg.DefaultCategory)
	}
	if cfg.StaticDir != "public" {
		t.Errorf("expected default static_dir %q, got %q", "public", cfg.StaticDir)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.doccatalog.yml")

	original := DefaultConfig()
	original.Port = 9090
	original.DefaultCategory = "eia"
	original.StaticDir = "site"
	original.AllowAllOrigins = true
	original.CacheTTL = time.Minute
	original.Log.Level = "debug"

	// Save.
	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Load back.
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Port != original.Port {
		t.Errorf("port: got %d, want %d", loaded.Port, original.Port)
	}
	if loaded.DefaultCategory != original.DefaultCategory {
		t.Errorf("default_category: got %q, want %q", loaded.DefaultCategory, original.DefaultCategory)
	}
	if loaded.StaticDir != original.StaticDir {
		t.Errorf("static_dir: got %q, want %q", loaded.StaticDir, original.StaticDir)
	}
	if !loaded.AllowAllOrigins {
		t.Error("allow_all_origins: got false, want true")
	}
	if loaded.CacheTTL != original.CacheTTL {
		t.Errorf("cache_ttl: got %v, want %v", loaded.CacheTTL, original.CacheTTL)
	}
	if loaded.Log.Level != "debug" {
		t.Errorf("log.level: got %q, want %q", loaded.Log.Level, "debug")
	}
}

func TestSaveWritesDurationString(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.yml")
	if err := DefaultConfig().Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "cache_ttl: 10m0s\n") {
		t.Errorf("cache_ttl not written as a duration:\n%s", data)
	}
	if strings.Index(string(data), "allow_all_origins:") > strings.Index(string(data), "cache_ttl:") {
		t.Errorf("key order changed:\n%s", data)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.CacheTTL != 10*time.Minute {
		t.Errorf("cache_ttl = %v, want 10m", cfg.CacheTTL)
	}
}

func TestLoadDurationString(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.yml")
	if err := os.WriteFile(path, []byte("cache_ttl: 90s\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.CacheTTL != 90*time.Second {
		t.Errorf("cache_ttl = %v, want 90s", cfg.CacheTTL)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.Port != 8080 {
		t.Errorf("expected default port, got %d", cfg.Port)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.yml")
	if err := DefaultConfig().Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("DOCCATALOG_DEFAULT_CATEGORY", "normativos")
	t.Setenv("DOCCATALOG_PORT", "7000")
	t.Setenv("DOCCATALOG_LOG__FORMAT", "json")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.DefaultCategory != "normativos" {
		t.Errorf("env override failed: got %q", loaded.DefaultCategory)
	}
	if loaded.Port != 7000 {
		t.Errorf("port override failed: got %d", loaded.Port)
	}
	if loaded.Log.Format != "json" {
		t.Errorf("log.format override failed: got %q", loaded.Log.Format)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"negative port", func(c *Config) { c.Port = -1 }, true},
		{"port too large", func(c *Config) { c.Port = 70000 }, true},
		{"empty base path", func(c *Config) { c.BasePath = "" }, true},
		{"empty default category", func(c *Config) { c.DefaultCategory = "" }, true},
		{"empty static dir", func(c *Config) { c.StaticDir = "" }, true},
		{"negative ttl", func(c *Config) { c.CacheTTL = -time.Second }, true},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }, true},
	}
	for _, tt := range tests {
		cfg := DefaultConfig()
		tt.mutate(cfg)
		err := cfg.Validate()
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: Validate() error = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
	}
}

func TestCatalogDefault(t *testing.T) {
	c, err := DefaultConfig().Catalog()
	if err != nil {
		t.Fatalf("Catalog: %v", err)
	}
	if len(c.Categories()) != 4 {
		t.Errorf("categories = %d, want 4", len(c.Categories()))
	}
}

func TestCatalogRebased(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BasePath = "/static/pdf"
	c, err := cfg.Catalog()
	if err != nil {
		t.Fatalf("Catalog: %v", err)
	}
	links := c.Links("eia")
	if len(links) != 1 || links[0].Path != "/static/pdf/EIA/Resumen_Ejecutivo_EIA_Volta.pdf" {
		t.Errorf("links = %+v", links)
	}
}

func TestCatalogFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yml")
	content := "categories:\n  - id: guias\n    folder: Guias\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := DefaultConfig()
	cfg.CatalogFile = path
	c, err := cfg.Catalog()
	if err != nil {
		t.Fatalf("Catalog: %v", err)
	}
	if !c.Has("guias") || c.Has("eia") {
		t.Errorf("unexpected categories: %+v", c.Categories())
	}
}

func TestValidatePort(t *testing.T) {
	for _, s := range []string{"0", "8080", "65535"} {
		if err := validatePort(s); err != nil {
			t.Errorf("validatePort(%q) = %v", s, err)
		}
	}
	for _, s := range []string{"", "abc", "-1", "70000"} {
		if err := validatePort(s); err == nil {
			t.Errorf("validatePort(%q) = nil, want error", s)
		}
	}
}
