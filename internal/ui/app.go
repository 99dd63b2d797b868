package ui

import (
	"errors"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/turkosaurus/guia/internal/catalog"
	"github.com/turkosaurus/guia/internal/config"
	"github.com/turkosaurus/guia/internal/mapview"
	"github.com/turkosaurus/guia/internal/nav"
	"github.com/turkosaurus/guia/internal/types"
	"github.com/turkosaurus/guia/internal/ui/keys"
	"github.com/turkosaurus/guia/internal/ui/styles"
)

// override at build time
//
//	go build -ldflags "-X 'github.com/turkosaurus/guia/internal/ui.Version=1.2.3'"
var Version string = "dev"

// App is the top-level tea.Model. It owns the navigation stack and mounts
// and unmounts screens as routes are pushed and popped.
type App struct {
	config  *config.Config
	fetcher catalog.Fetcher
	opener  mapview.Opener
	styles  styles.Styles
	keys    keys.KeyMap

	stack *nav.Stack

	home           HomeView
	catalog        CatalogView
	catalogMounted bool
	detail         DetailView
	find           FindView

	width, height int
	message       string
	msgSeq        int
}

func NewApp(cfg *config.Config, fetcher catalog.Fetcher, opener mapview.Opener) App {
	s := styles.DefaultStyles()
	k := keys.DefaultKeyMap()
	return App{
		config:  cfg,
		fetcher: fetcher,
		opener:  opener,
		styles:  s,
		keys:    k,
		stack:   nav.NewStack(nav.Route{Name: nav.RouteHome}),
		home:    NewHomeView(DefaultShortcuts(), s, k),
		find:    NewFindView(s, k),
	}
}

func (a App) Init() tea.Cmd {
	return nil
}

// Route returns the route currently on screen.
func (a App) Route() nav.Route { return a.stack.Current() }

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.catalogMounted {
			a.catalog, _ = a.catalog.Update(msg)
		}
		return a, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, a.keys.Back):
			return a.back()
		}
		return a.updateScreen(msg)

	case tea.MouseMsg:
		return a.updateScreen(msg)

	case navigateMsg:
		return a.navigate(msg.target)

	case intentMsg:
		return a.dispatch(msg.intent)

	case attractionsLoadedMsg:
		if !a.catalogMounted {
			slog.Debug("dropping settlement for unmounted catalog",
				"owner", msg.owner,
				"generation", msg.gen,
			)
			return a, nil
		}
		var cmd tea.Cmd
		a.catalog, cmd = a.catalog.Update(msg)
		return a, cmd

	case spinner.TickMsg:
		if !a.catalogMounted {
			return a, nil
		}
		var cmd tea.Cmd
		a.catalog, cmd = a.catalog.Update(msg)
		return a, cmd

	case mapOpenedMsg:
		return a.handleMapOpened(msg)

	case clearMsgMsg:
		if msg.seq == a.msgSeq {
			a.message = ""
		}
	}
	return a, nil
}

func (a App) updateScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.stack.Current().Name {
	case nav.RouteHome:
		a.home, cmd = a.home.Update(msg)
	case nav.RouteCatalog:
		if a.catalogMounted {
			a.catalog, cmd = a.catalog.Update(msg)
		}
	case nav.RouteDetail:
		a.detail, cmd = a.detail.Update(msg)
	}
	return a, cmd
}

// dispatch routes an intent. Intents from a screen that is no longer on
// top are dropped.
func (a App) dispatch(intent nav.Intent) (tea.Model, tea.Cmd) {
	current := a.stack.Current().Name
	slog.Debug("intent", "kind", intent.Kind.String(), "route", current)

	switch intent.Kind {
	case nav.OpenDetail, nav.OpenFindOptions:
		if current != nav.RouteCatalog {
			return a, nil
		}
		target, _ := intent.Target()
		return a.navigate(target)

	case nav.Refresh:
		if current != nav.RouteCatalog || !a.catalogMounted {
			return a, nil
		}
		return a, a.catalog.Refresh()

	case nav.OpenExternalMap:
		if current != nav.RouteCatalog && current != nav.RouteDetail {
			return a, nil
		}
		return a, openMap(a.opener, intent.MapRef)
	}
	return a, nil
}

func (a App) navigate(target string) (tea.Model, tea.Cmd) {
	route, err := a.stack.Navigate(target)
	if err != nil {
		slog.Error("navigate", "target", target, "error", err)
		return a.setMessage("error: " + err.Error())
	}
	slog.Info("navigate", "target", target, "depth", a.stack.Depth())
	return a.mount(route)
}

// mount prepares the screen for a freshly pushed route.
func (a App) mount(route nav.Route) (tea.Model, tea.Cmd) {
	switch route.Name {
	case nav.RouteCatalog:
		if a.catalogMounted {
			a.catalog.Controller().Destroy()
		}
		ctl := NewCatalogController(a.fetcher, a.config.Timeout())
		a.catalog = NewCatalogView(ctl, a.styles, a.keys)
		a.catalog, _ = a.catalog.Update(tea.WindowSizeMsg{Width: a.width, Height: a.height})
		a.catalogMounted = true
		return a, a.catalog.Activate()

	case nav.RouteDetail:
		a.detail = NewDetailView(route.ID, a.catalogRecords(), a.styles, a.keys)
	}
	return a, nil
}

// back pops the current route, tearing down the catalog when it leaves the
// stack and re-activating it when it comes back on top.
func (a App) back() (tea.Model, tea.Cmd) {
	popped, ok := a.stack.Back()
	if !ok {
		return a, nil
	}
	slog.Info("navigate back", "from", popped.Target(), "to", a.stack.Current().Target())

	if popped.Name == nav.RouteCatalog && a.catalogMounted {
		a.catalog.Controller().Destroy()
		a.catalogMounted = false
	}
	if a.stack.Current().Name == nav.RouteCatalog && a.catalogMounted {
		return a, a.catalog.Activate()
	}
	return a, nil
}

func (a App) handleMapOpened(msg mapOpenedMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.err == nil:
		return a.setMessage("opened map viewer")
	case errors.Is(msg.err, mapview.ErrNoLocation):
		return a.setMessage("this attraction has no map location")
	case errors.Is(msg.err, mapview.ErrUnavailable):
		return a.setMessage("no map viewer available · location: " + msg.mapRef)
	}
	return a.setMessage("error: " + msg.err.Error())
}

func (a App) setMessage(text string) (tea.Model, tea.Cmd) {
	a.msgSeq++
	a.message = text
	return a, clearMsg(a.config.MessageTimeout(), a.msgSeq)
}

func (a App) catalogRecords() []types.Attraction {
	if !a.catalogMounted {
		return nil
	}
	return a.catalog.Controller().Records()
}

func (a App) View() string {
	switch a.stack.Current().Name {
	case nav.RouteCatalog:
		if a.catalogMounted {
			return a.catalog.View(a.message)
		}
	case nav.RouteDetail:
		return a.detail.View(a.width, a.height, a.message)
	case nav.RouteFindOptions:
		return a.find.View(a.width, a.height, a.message)
	}
	return a.home.View(a.width, a.height, a.message)
}
