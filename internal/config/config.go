// Package config handles server configuration for showroom.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the server settings. All fields have working defaults so the
// demo runs with no config file at all.
type Config struct {
	// Addr is the listen address.
	Addr string `toml:"addr"`

	// BaseURL is the externally visible origin, used to build the page
	// URLs embedded in QR codes and share payloads. Required when the
	// server sits behind a proxy.
	BaseURL string `toml:"base_url"`

	// QREndpoint is the base URL of the external QR image service.
	QREndpoint string `toml:"qr_endpoint"`

	// CatalogPath is the YAML product catalog.
	CatalogPath string `toml:"catalog_path"`

	// FadeMs is the texture-swap fade duration in milliseconds.
	FadeMs int `toml:"fade_ms"`

	// WatchCatalog reloads the catalog when the file changes on disk.
	WatchCatalog bool `toml:"watch_catalog"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Addr:        ":8080",
		BaseURL:     "http://localhost:8080",
		QREndpoint:  "https://api.qrserver.com/v1",
		CatalogPath: "catalog/catalog.yaml",
		FadeMs:      300,
	}
}

// Load reads a TOML config file over the defaults. An empty path returns the
// defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path) //nolint:gosec // operator-supplied config path
	if err != nil {
		return Config{}, err
	}
	if err := toml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the loaded values.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr must not be empty")
	}
	if c.CatalogPath == "" {
		return fmt.Errorf("catalog_path must not be empty")
	}
	if c.FadeMs < 0 {
		return fmt.Errorf("fade_ms must not be negative")
	}
	return nil
}
