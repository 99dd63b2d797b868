// Package fixture serves a static attraction catalog over HTTP for local
// development and tests.
package fixture

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"github.com/go-chi/render"

	"github.com/turkosaurus/guia/internal/types"
)

// Options tunes the fixture server.
type Options struct {
	Latency    time.Duration // artificial delay before each catalog response
	RateLimit  int           // requests per minute per IP; 0 disables
	FailStatus int           // when non-zero, catalog endpoints answer with this status
}

// NewRouter returns a handler serving attractions in the given order.
func NewRouter(attractions []types.Attraction, opts Options) http.Handler {
	r := chi.NewRouter()
	if opts.RateLimit > 0 {
		r.Use(httprate.LimitByIP(opts.RateLimit, time.Minute))
	}
	r.Use(render.SetContentType(render.ContentTypeJSON))
	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		render.JSON(w, req, map[string]bool{"ok": true})
	})

	r.Group(func(r chi.Router) {
		r.Use(delay(opts.Latency), fail(opts.FailStatus))
		r.Get("/attractions", func(w http.ResponseWriter, req *http.Request) {
			slog.Debug("fixture: list attractions",
				"count", len(attractions),
				"request_id", req.Header.Get("X-Request-ID"),
			)
			render.JSON(w, req, attractions)
		})
		r.Get("/attractions/{id}", func(w http.ResponseWriter, req *http.Request) {
			id := chi.URLParam(req, "id")
			a := types.FindAttraction(attractions, id)
			if a == nil {
				render.Status(req, http.StatusNotFound)
				render.JSON(w, req, map[string]string{"error": "not_found", "id": id})
				return
			}
			render.JSON(w, req, a)
		})
	})
	return r
}

func delay(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if d > 0 {
				if err := sleep(req.Context(), d); err != nil {
					return
				}
			}
			next.ServeHTTP(w, req)
		})
	}
}

func fail(status int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if status != 0 {
				render.Status(req, status)
				render.JSON(w, req, map[string]string{"error": http.StatusText(status)})
				return
			}
			next.ServeHTTP(w, req)
		})
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
