// Command guia-fixtures serves an attraction catalog file over HTTP so the
// TUI can be pointed at a real endpoint during development.
//
// Usage:
//
//	guia-fixtures -catalog attractions.yml -addr :8080 -latency 2s
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/turkosaurus/guia/internal/catalog"
	"github.com/turkosaurus/guia/internal/fixture"
)

func main() {
	path := flag.String("catalog", "attractions.yml", "yaml or json catalog file to serve")
	addr := flag.String("addr", ":8080", "listen address")
	latency := flag.Duration("latency", 0, "artificial delay before each catalog response")
	rate := flag.Int("rate", 60, "requests per minute per IP, 0 disables limiting")
	failStatus := flag.Int("fail", 0, "answer catalog requests with this HTTP status")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	attractions, err := catalog.NewFileClient(*path).FetchAttractions(ctx)
	if err != nil {
		slog.Error("load catalog", "path", *path, "error", err)
		os.Exit(1)
	}

	srv := &http.Server{
		Addr: *addr,
		Handler: fixture.NewRouter(attractions, fixture.Options{
			Latency:    *latency,
			RateLimit:  *rate,
			FailStatus: *failStatus,
		}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown", "error", err)
		}
	}()

	slog.Info("serving attractions",
		"addr", *addr,
		"count", len(attractions),
		"latency", *latency,
		"rate", *rate,
	)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("listen", "error", err)
		os.Exit(1)
	}
}
