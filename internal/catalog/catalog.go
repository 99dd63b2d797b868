// Package catalog fetches the attraction collection from its data source.
package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/turkosaurus/guia/internal/config"
	"github.com/turkosaurus/guia/internal/types"
)

var (
	// ErrNetwork marks transport failures: unreachable host, timeouts, non-2xx status.
	ErrNetwork = errors.New("network error")
	// ErrData marks payloads that could not be decoded or broke the id invariant.
	ErrData = errors.New("data error")
	// ErrNoSource is returned by New when neither a URL nor a file is configured.
	ErrNoSource = errors.New("no catalog source configured")
)

// Fetcher loads the full, ordered attraction collection.
type Fetcher interface {
	FetchAttractions(ctx context.Context) ([]types.Attraction, error)
}

// New builds the Fetcher described by cfg. A URL wins over a file.
func New(cfg *config.Config) (Fetcher, error) {
	switch {
	case cfg.CatalogURL != "":
		return NewHTTPClient(cfg.CatalogURL, cfg.FetchRetries, cfg.Timeout()), nil
	case cfg.CatalogFile != "":
		return NewFileClient(cfg.CatalogFile), nil
	}
	return nil, ErrNoSource
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context) ([]types.Attraction, error)

func (f FetcherFunc) FetchAttractions(ctx context.Context) ([]types.Attraction, error) {
	return f(ctx)
}

func dataError(err error) error {
	return fmt.Errorf("%w: %w", ErrData, err)
}
