// Package nav defines navigation intents, route targets and the screen stack.
package nav

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Fixed route names. Detail routes are parameterized: "attractiveView/{id}".
const (
	RouteHome        = "Home"
	RouteCatalog     = "ListAttractive"
	RouteFindOptions = "FindOptions"
	RouteDetail      = "attractiveView"
)

var ErrUnknownRoute = errors.New("unknown route")

// IntentKind enumerates what a user interaction asks for.
type IntentKind int

const (
	OpenDetail IntentKind = iota
	OpenFindOptions
	OpenExternalMap
	Refresh
)

func (k IntentKind) String() string {
	switch k {
	case OpenDetail:
		return "open-detail"
	case OpenFindOptions:
		return "open-find-options"
	case OpenExternalMap:
		return "open-external-map"
	case Refresh:
		return "refresh"
	}
	return fmt.Sprintf("intent(%d)", int(k))
}

// Intent is a transient request emitted by a screen.
type Intent struct {
	Kind         IntentKind
	AttractionID string // OpenDetail
	MapRef       string // OpenExternalMap
}

func DetailIntent(id string) Intent  { return Intent{Kind: OpenDetail, AttractionID: id} }
func FindOptionsIntent() Intent      { return Intent{Kind: OpenFindOptions} }
func MapIntent(mapRef string) Intent { return Intent{Kind: OpenExternalMap, MapRef: mapRef} }
func RefreshIntent() Intent          { return Intent{Kind: Refresh} }

// Target returns the navigation target for intents that change screens.
func (i Intent) Target() (string, bool) {
	switch i.Kind {
	case OpenDetail:
		return DetailTarget(i.AttractionID), true
	case OpenFindOptions:
		return RouteFindOptions, true
	}
	return "", false
}

// DetailTarget builds "attractiveView/{id}".
func DetailTarget(id string) string {
	return RouteDetail + "/" + url.PathEscape(id)
}

// Route is a parsed navigation target.
type Route struct {
	Name string
	ID   string // set for detail routes
}

// Target formats the route back into its target string.
func (r Route) Target() string {
	if r.Name == RouteDetail {
		return DetailTarget(r.ID)
	}
	return r.Name
}

// Parse validates a navigation target.
func Parse(target string) (Route, error) {
	switch target {
	case RouteHome, RouteCatalog, RouteFindOptions:
		return Route{Name: target}, nil
	}
	if rest, ok := strings.CutPrefix(target, RouteDetail+"/"); ok {
		id, err := url.PathUnescape(rest)
		if err != nil {
			return Route{}, fmt.Errorf("%w: %q: %w", ErrUnknownRoute, target, err)
		}
		if id == "" {
			return Route{}, fmt.Errorf("%w: %q: empty attraction id", ErrUnknownRoute, target)
		}
		return Route{Name: RouteDetail, ID: id}, nil
	}
	return Route{}, fmt.Errorf("%w: %q", ErrUnknownRoute, target)
}

// Stack is the history of visited routes. The bottom entry is never popped.
type Stack struct {
	routes []Route
}

// NewStack starts a history at root.
func NewStack(root Route) *Stack {
	return &Stack{routes: []Route{root}}
}

// Navigate parses target and pushes it.
func (s *Stack) Navigate(target string) (Route, error) {
	r, err := Parse(target)
	if err != nil {
		return Route{}, err
	}
	s.routes = append(s.routes, r)
	return r, nil
}

// Back pops the current route and returns it; ok is false at the root.
func (s *Stack) Back() (popped Route, ok bool) {
	if len(s.routes) <= 1 {
		return Route{}, false
	}
	popped = s.routes[len(s.routes)-1]
	s.routes = s.routes[:len(s.routes)-1]
	return popped, true
}

// Current returns the route on top of the stack.
func (s *Stack) Current() Route {
	return s.routes[len(s.routes)-1]
}

// Depth returns the number of routes in the history.
func (s *Stack) Depth() int { return len(s.routes) }
