package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCatalogSource(t *testing.T) {
	tests := []struct {
		src      string
		wantURL  string
		wantFile string
	}{
		{"https://guia.example.com/attractions", "https://guia.example.com/attractions", ""},
		{"http://localhost:8088/attractions", "http://localhost:8088/attractions", ""},
		{"attractions.yml", "", "attractions.yml"},
		{"file:///tmp/attractions.json", "", "/tmp/attractions.json"},
		{"  ", "", ""},
		{"", "", ""},
	}
	for _, tt := range tests {
		gotURL, gotFile := parseCatalogSource(tt.src)
		if gotURL != tt.wantURL || gotFile != tt.wantFile {
			t.Errorf("parseCatalogSource(%q) = (%q, %q), want (%q, %q)",
				tt.src, gotURL, gotFile, tt.wantURL, tt.wantFile)
		}
	}
}

func TestLoadFile(t *testing.T) {
	t.Setenv("GUIA_CATALOG", "")

	t.Run("reads yaml and fills defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		data := "catalog_url: https://guia.example.com/attractions\nfetch_retries: 2\nmap_command: firefox\nlog_file: ~/guia.log\n"
		require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

		cfg, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "https://guia.example.com/attractions", cfg.CatalogURL)
		assert.Equal(t, 2, cfg.FetchRetries)
		assert.Equal(t, "firefox", cfg.MapCommand)
		assert.Equal(t, "~/guia.log", cfg.LogFile)
		assert.Equal(t, 10, cfg.RequestTimeout)
		assert.Equal(t, 3, cfg.MsgTimeout)
	})

	t.Run("missing file uses defaults", func(t *testing.T) {
		cfg, err := LoadFile(filepath.Join(t.TempDir(), "absent.yml"))
		require.NoError(t, err)
		assert.Equal(t, 0, cfg.FetchRetries)
		assert.Equal(t, 10, cfg.RequestTimeout)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("catalog_url: [\n"), 0o644))
		_, err := LoadFile(path)
		require.Error(t, err)
	})

	t.Run("env overrides file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("catalog_url: https://a.example.com\n"), 0o644))
		t.Setenv("GUIA_CATALOG", "local.yml")

		cfg, err := LoadFile(path)
		require.NoError(t, err)
		assert.Empty(t, cfg.CatalogURL)
		assert.Equal(t, "local.yml", cfg.CatalogFile)
	})
}
