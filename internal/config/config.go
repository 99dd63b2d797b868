package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration
type Config struct {
	CatalogURL     string `yaml:"catalog_url"`         // e.g. "https://guia.example.com/attractions"
	CatalogFile    string `yaml:"catalog_file"`        // local yaml/json catalog, used when catalog_url is empty
	RequestTimeout int    `yaml:"request_timeout"`     // seconds
	FetchRetries   int    `yaml:"fetch_retries"`       // transport retries per fetch episode
	MapCommand     string `yaml:"map_command"`         // external map viewer; auto-detected when empty
	MsgTimeout     int    `yaml:"default_msg_timeout"` // seconds
	LogFile        string `yaml:"log_file"`            // "~/" is expanded; GUIA_LOG_FILE wins
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		RequestTimeout: 10,
		FetchRetries:   0,
		MsgTimeout:     3,
	}
}

// Timeout returns the request timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.RequestTimeout) * time.Second
}

// MessageTimeout returns how long status messages stay on screen.
func (c *Config) MessageTimeout() time.Duration {
	return time.Duration(c.MsgTimeout) * time.Second
}

// HasCatalog reports whether any catalog source is configured.
func (c *Config) HasCatalog() bool {
	return c.CatalogURL != "" || c.CatalogFile != ""
}

// Load loads configuration from file, then applies GUIA_CATALOG and
// finally falls back to a catalog file in the working directory.
func Load() (*Config, error) {
	return LoadFile(getConfigPath())
}

// LoadFile is Load with an explicit config path. A missing file is not an error.
func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %q: %w", path, err)
			}
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("read config %q: %w", path, err)
		}
	}

	if src := os.Getenv("GUIA_CATALOG"); src != "" {
		cfg.CatalogURL, cfg.CatalogFile = parseCatalogSource(src)
	}

	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 10
	}
	if cfg.MsgTimeout <= 0 {
		cfg.MsgTimeout = 3
	}
	if cfg.FetchRetries < 0 {
		cfg.FetchRetries = 0
	}

	if !cfg.HasCatalog() {
		cfg.CatalogFile = detectCatalogFile()
	}

	return cfg, nil
}

// getConfigPath returns the path to the config file
func getConfigPath() string {
	if p := os.Getenv("GUIA_CONFIG"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "guia", "config.yml")
}

// detectCatalogFile looks for a catalog file in the current directory
func detectCatalogFile() string {
	for _, name := range []string{"attractions.yml", "attractions.yaml", "attractions.json"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// parseCatalogSource splits a catalog source into a URL or a file path
func parseCatalogSource(src string) (url, file string) {
	src = strings.TrimSpace(src)
	if src == "" {
		return "", ""
	}
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		return src, ""
	}
	return "", strings.TrimPrefix(src, "file://")
}
