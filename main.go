package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/turkosaurus/guia/internal/catalog"
	"github.com/turkosaurus/guia/internal/config"
	"github.com/turkosaurus/guia/internal/mapview"
	"github.com/turkosaurus/guia/internal/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	fetcher, err := catalog.New(cfg)
	if errors.Is(err, catalog.ErrNoSource) {
		fmt.Fprintln(os.Stderr, "No attraction catalog configured.")
		fmt.Fprintln(os.Stderr, "Set GUIA_CATALOG to a URL or file, put an attractions.yml in this")
		fmt.Fprintln(os.Stderr, "directory, or create a config file at ~/.config/guia/config.yml:")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "catalog_url: http://localhost:8080/attractions")
		fmt.Fprintln(os.Stderr, "request_timeout: 10")
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "fatal: catalog: %v\n", err)
		os.Exit(1)
	}

	logger, err := newFileLogger(cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fatal: cannot initialize logger: %v\n", err)
		os.Exit(1)
	}
	slog.SetDefault(logger)
	slog.Info("starting guia",
		"version", ui.Version,
		"catalog_url", cfg.CatalogURL,
		"catalog_file", cfg.CatalogFile,
	)

	opener := mapview.NewExecOpener(cfg.MapCommand)
	p := tea.NewProgram(
		ui.NewApp(cfg, fetcher, opener),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: run: %v\n", err)
		os.Exit(1)
	}
}
