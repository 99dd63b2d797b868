package ui

import (
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/turkosaurus/guia/internal/catalog"
	"github.com/turkosaurus/guia/internal/types"
)

const defaultFetchTimeout = 10 * time.Second

// CatalogController owns the attraction list of one catalog screen instance.
// It is created when the screen is mounted and destroyed when it is popped;
// completions addressed to another instance or arriving after Destroy are
// ignored.
type CatalogController struct {
	id      uuid.UUID
	fetcher catalog.Fetcher
	timeout time.Duration
	list    Fetchable[[]types.Attraction]
}

func NewCatalogController(fetcher catalog.Fetcher, timeout time.Duration) *CatalogController {
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}
	return &CatalogController{
		id:      uuid.New(),
		fetcher: fetcher,
		timeout: timeout,
	}
}

// ID identifies this screen instance in fetch settlements.
func (c *CatalogController) ID() uuid.UUID { return c.id }

// Activate is called each time the screen becomes visible. It starts a fetch
// unless one is already in flight.
func (c *CatalogController) Activate() tea.Cmd {
	gen, ok := c.list.Start()
	if !ok {
		slog.Debug("catalog activate: fetch already in flight",
			"controller", c.id,
			"generation", gen,
		)
		return nil
	}
	slog.Debug("catalog activate", "controller", c.id, "generation", gen)
	return loadAttractions(c.fetcher, c.id, gen, c.timeout)
}

// Refresh starts a new episode that supersedes any in-flight one.
func (c *CatalogController) Refresh() tea.Cmd {
	gen, ok := c.list.Supersede()
	if !ok {
		return nil
	}
	slog.Debug("catalog refresh", "controller", c.id, "generation", gen)
	return loadAttractions(c.fetcher, c.id, gen, c.timeout)
}

// Apply folds a settlement into the list state. It reports whether the
// message changed anything.
func (c *CatalogController) Apply(msg attractionsLoadedMsg) bool {
	if msg.owner != c.id {
		slog.Debug("catalog: settlement for another controller",
			"controller", c.id,
			"owner", msg.owner,
		)
		return false
	}
	var applied bool
	if msg.err != nil {
		applied = c.list.Fail(msg.gen, msg.err)
	} else {
		applied = c.list.Resolve(msg.gen, msg.attractions)
	}
	if !applied {
		slog.Debug("catalog: dropped stale settlement",
			"controller", c.id,
			"generation", msg.gen,
			"current", c.list.Generation(),
			"detached", c.list.Detached(),
		)
	}
	return applied
}

// Records returns the last successfully loaded attractions in source order,
// or an empty slice.
func (c *CatalogController) Records() []types.Attraction {
	if c.list.Data == nil {
		return []types.Attraction{}
	}
	return c.list.Data
}

// Busy reports whether a fetch is in flight.
func (c *CatalogController) Busy() bool { return c.list.IsLoading() }

// Err returns the error of the last episode when it failed.
func (c *CatalogController) Err() error {
	if c.list.State != LoadError {
		return nil
	}
	return c.list.Err
}

// State exposes the current load state for rendering.
func (c *CatalogController) State() LoadState { return c.list.State }

// Destroy detaches the controller; later settlements are ignored.
func (c *CatalogController) Destroy() {
	c.list.Detach()
	slog.Debug("catalog destroyed", "controller", c.id)
}
