package ui

import (
	"context"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/turkosaurus/guia/internal/catalog"
	"github.com/turkosaurus/guia/internal/mapview"
	"github.com/turkosaurus/guia/internal/nav"
)

func loadAttractions(fetcher catalog.Fetcher, owner uuid.UUID, gen uint64, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		start := time.Now()
		list, err := fetcher.FetchAttractions(ctx)
		if err != nil {
			slog.Warn("fetch attractions",
				"controller", owner,
				"generation", gen,
				"error", err,
			)
			return attractionsLoadedMsg{owner: owner, gen: gen, err: err}
		}
		slog.Debug("fetched attractions",
			"controller", owner,
			"generation", gen,
			"count", len(list),
			"elapsed", time.Since(start),
		)
		return attractionsLoadedMsg{owner: owner, gen: gen, attractions: list}
	}
}

// openMap runs the external handoff off the event loop; its failure is
// reported as a message and never propagates further.
func openMap(opener mapview.Opener, mapRef string) tea.Cmd {
	return func() tea.Msg {
		err := opener.Open(mapRef)
		if err != nil {
			slog.Warn("open external map", "map_ref", mapRef, "error", err)
		}
		return mapOpenedMsg{mapRef: mapRef, err: err}
	}
}

func emit(intent nav.Intent) tea.Cmd {
	return func() tea.Msg {
		return intentMsg{intent: intent}
	}
}

func navigate(target string) tea.Cmd {
	return func() tea.Msg {
		return navigateMsg{target: target}
	}
}

// clearMsg clears status message seq after a delay unless a newer one replaced it.
func clearMsg(after time.Duration, seq int) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return clearMsgMsg{seq: seq}
	})
}
