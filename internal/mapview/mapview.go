// Package mapview hands a location off to an external map viewer.
package mapview

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os/exec"
	"runtime"
	"strings"
)

var (
	// ErrUnavailable means no external viewer can service the request.
	ErrUnavailable = errors.New("no external map viewer available")
	// ErrNoLocation means the map reference was empty.
	ErrNoLocation = errors.New("attraction has no map location")
)

const searchURL = "https://www.google.com/maps/search/?api=1&query="

// Opener opens a map reference outside the application.
type Opener interface {
	Open(mapRef string) error
}

// OpenerFunc adapts a function to the Opener interface.
type OpenerFunc func(mapRef string) error

func (f OpenerFunc) Open(mapRef string) error { return f(mapRef) }

// ExecOpener starts a desktop command (xdg-open, open, ...) with the resolved URL.
type ExecOpener struct {
	command []string

	lookPath func(string) (string, error)
	start    func(name string, args ...string) error
}

// NewExecOpener returns an opener for command, or for the platform default
// when command is empty. The command is split on whitespace.
func NewExecOpener(command string) *ExecOpener {
	args := strings.Fields(command)
	if len(args) == 0 {
		args = defaultCommand(runtime.GOOS)
	}
	return &ExecOpener{
		command:  args,
		lookPath: exec.LookPath,
		start: func(name string, args ...string) error {
			return exec.Command(name, args...).Start()
		},
	}
}

func defaultCommand(goos string) []string {
	switch goos {
	case "darwin":
		return []string{"open"}
	case "windows":
		return []string{"rundll32", "url.dll,FileProtocolHandler"}
	default:
		return []string{"xdg-open"}
	}
}

// Open resolves mapRef and starts the viewer without waiting for it.
func (o *ExecOpener) Open(mapRef string) error {
	target, err := ResolveURL(mapRef)
	if err != nil {
		return err
	}
	bin, err := o.lookPath(o.command[0])
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrUnavailable, o.command[0], err)
	}
	args := append(append([]string{}, o.command[1:]...), target)
	if err := o.start(bin, args...); err != nil {
		return fmt.Errorf("%w: start %s: %w", ErrUnavailable, bin, err)
	}
	slog.Debug("opened external map viewer", "command", bin, "target", target)
	return nil
}

// ResolveURL turns a map reference into something a desktop viewer can open:
// http(s) links pass through, geo: URIs and bare coordinates or place names
// become a map search URL.
func ResolveURL(mapRef string) (string, error) {
	ref := strings.TrimSpace(mapRef)
	if ref == "" {
		return "", ErrNoLocation
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref, nil
	}
	if strings.HasPrefix(ref, "geo:") {
		ref = strings.TrimSpace(geoQuery(strings.TrimPrefix(ref, "geo:")))
		if ref == "" {
			return "", ErrNoLocation
		}
	}
	return searchURL + url.QueryEscape(ref), nil
}

// geoQuery extracts the search part of a geo URI body ("lat,lon?q=name").
// A non-empty q parameter wins over the coordinates.
func geoQuery(body string) string {
	coords, rawQuery, _ := strings.Cut(body, "?")
	if i := strings.Index(coords, ";"); i >= 0 {
		coords = coords[:i]
	}
	if values, err := url.ParseQuery(rawQuery); err == nil {
		if q := strings.TrimSpace(values.Get("q")); q != "" {
			return q
		}
	}
	return coords
}
