package ui

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turkosaurus/guia/internal/catalog"
	"github.com/turkosaurus/guia/internal/types"
)

var (
	attractionA = types.Attraction{ID: "1", Name: "Louvre", City: "Paris", MapLink: "geo:48.86,2.34", State: "IDF"}
	attractionB = types.Attraction{ID: "2", Name: "Eiffel", City: "Paris", MapLink: "Eiffel Tower, Paris", State: "IDF"}
)

// stubFetcher serves whatever next holds at the moment a command runs and
// counts calls.
type stubFetcher struct {
	next  []types.Attraction
	err   error
	calls atomic.Int32
}

func (s *stubFetcher) FetchAttractions(context.Context) ([]types.Attraction, error) {
	s.calls.Add(1)
	return s.next, s.err
}

// collect runs cmd and flattens batches into the messages they produce.
func collect(t *testing.T, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(t, c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

// settlement runs cmd and returns the single fetch settlement it produced.
func settlement(t *testing.T, cmd tea.Cmd) attractionsLoadedMsg {
	t.Helper()
	var found []attractionsLoadedMsg
	for _, msg := range collect(t, cmd) {
		if m, ok := msg.(attractionsLoadedMsg); ok {
			found = append(found, m)
		}
	}
	require.Len(t, found, 1, "expected exactly one fetch settlement")
	return found[0]
}

func TestCatalogController_LoadsInSourceOrder(t *testing.T) {
	f := &stubFetcher{next: []types.Attraction{attractionA, attractionB}}
	ctl := NewCatalogController(f, time.Second)

	assert.Equal(t, LoadIdle, ctl.State())
	assert.NotNil(t, ctl.Records())
	assert.Empty(t, ctl.Records())

	cmd := ctl.Activate()
	require.NotNil(t, cmd)
	assert.True(t, ctl.Busy())

	require.True(t, ctl.Apply(settlement(t, cmd)))
	assert.False(t, ctl.Busy())
	assert.Equal(t, LoadReady, ctl.State())
	assert.NoError(t, ctl.Err())
	require.Len(t, ctl.Records(), 2)
	assert.Equal(t, "1", ctl.Records()[0].ID)
	assert.Equal(t, "2", ctl.Records()[1].ID)
}

func TestCatalogController_ActivateWhileLoadingIssuesOneFetch(t *testing.T) {
	f := &stubFetcher{next: []types.Attraction{attractionA}}
	ctl := NewCatalogController(f, time.Second)

	first := ctl.Activate()
	require.NotNil(t, first)
	assert.Nil(t, ctl.Activate(), "second activation must not start another fetch")

	ctl.Apply(settlement(t, first))
	assert.Equal(t, int32(1), f.calls.Load())
}

func TestCatalogController_RefreshSupersedes(t *testing.T) {
	x := []types.Attraction{attractionA}
	y := []types.Attraction{attractionB}

	run := func(t *testing.T, newestFirst bool) *CatalogController {
		f := &stubFetcher{}
		ctl := NewCatalogController(f, time.Second)

		first := ctl.Activate()
		second := ctl.Refresh()
		require.NotNil(t, second)

		f.next = x
		m1 := settlement(t, first)
		f.next = y
		m2 := settlement(t, second)

		if newestFirst {
			assert.True(t, ctl.Apply(m2))
			assert.False(t, ctl.Apply(m1), "older generation must be dropped")
		} else {
			assert.False(t, ctl.Apply(m1), "older generation must be dropped")
			assert.True(t, ctl.Busy(), "still waiting on the newest fetch")
			assert.True(t, ctl.Apply(m2))
		}
		return ctl
	}

	for _, tt := range []struct {
		name        string
		newestFirst bool
	}{
		{"stale arrives first", false},
		{"stale arrives last", true},
	} {
		t.Run(tt.name, func(t *testing.T) {
			ctl := run(t, tt.newestFirst)
			assert.False(t, ctl.Busy())
			assert.Equal(t, y, ctl.Records())
		})
	}
}

func TestCatalogController_Failure(t *testing.T) {
	t.Run("no prior data", func(t *testing.T) {
		f := &stubFetcher{err: fmt.Errorf("fetch: %w", catalog.ErrNetwork)}
		ctl := NewCatalogController(f, time.Second)

		assert.NotPanics(t, func() {
			ctl.Apply(settlement(t, ctl.Activate()))
		})
		assert.False(t, ctl.Busy())
		assert.Equal(t, LoadError, ctl.State())
		assert.ErrorIs(t, ctl.Err(), catalog.ErrNetwork)
		assert.NotNil(t, ctl.Records())
		assert.Empty(t, ctl.Records())
	})

	t.Run("keeps last good records", func(t *testing.T) {
		f := &stubFetcher{next: []types.Attraction{attractionA}}
		ctl := NewCatalogController(f, time.Second)
		ctl.Apply(settlement(t, ctl.Activate()))

		f.next, f.err = nil, errors.New("boom")
		ctl.Apply(settlement(t, ctl.Refresh()))
		assert.Error(t, ctl.Err())
		assert.Equal(t, []types.Attraction{attractionA}, ctl.Records())

		f.err = nil
		f.next = []types.Attraction{attractionB}
		ctl.Apply(settlement(t, ctl.Refresh()))
		assert.NoError(t, ctl.Err(), "a successful retry clears the error")
		assert.Equal(t, []types.Attraction{attractionB}, ctl.Records())
	})
}

func TestCatalogController_DestroyIgnoresLateCompletion(t *testing.T) {
	f := &stubFetcher{next: []types.Attraction{attractionA}}
	ctl := NewCatalogController(f, time.Second)
	cmd := ctl.Activate()

	ctl.Destroy()
	assert.False(t, ctl.Apply(settlement(t, cmd)))
	assert.Empty(t, ctl.Records())
}

func TestCatalogController_DropsOtherOwner(t *testing.T) {
	f := &stubFetcher{next: []types.Attraction{attractionA}}
	old := NewCatalogController(f, time.Second)
	fresh := NewCatalogController(f, time.Second)
	require.NotEqual(t, old.ID(), fresh.ID())

	stale := settlement(t, old.Activate())
	fresh.Activate()

	assert.False(t, fresh.Apply(stale), "same generation, different instance")
	assert.True(t, fresh.Busy())
}

func TestCatalogController_FetchReceivesTimeout(t *testing.T) {
	var deadline time.Time
	var hasDeadline bool
	f := catalog.FetcherFunc(func(ctx context.Context) ([]types.Attraction, error) {
		deadline, hasDeadline = ctx.Deadline()
		return nil, nil
	})
	ctl := NewCatalogController(f, 5*time.Second)
	ctl.Apply(settlement(t, ctl.Activate()))

	require.True(t, hasDeadline)
	assert.WithinDuration(t, time.Now().Add(5*time.Second), deadline, 2*time.Second)
	assert.Equal(t, LoadReady, ctl.State())
	assert.Empty(t, ctl.Records())
}
