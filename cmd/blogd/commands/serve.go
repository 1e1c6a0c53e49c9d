package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	prom "github.com/prometheus/client_golang/prometheus"

	"github.com/hhpeter/blogd/internal/feed"
	"github.com/hhpeter/blogd/internal/metrics"
	"github.com/hhpeter/blogd/internal/server/httpserver"
	"github.com/hhpeter/blogd/internal/views"
	"github.com/hhpeter/blogd/internal/watcher"
)

// ServeCmd implements the 'serve' command.
type ServeCmd struct {
	Watch bool `short:"w" help:"Watch the content directory and invalidate caches on change"`
}

func (s *ServeCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	registry := prom.NewRegistry()
	recorder := metrics.NewPrometheusRecorder(registry)

	repo := newRepository(cfg, recorder)
	renderer := feed.NewRenderer(repo, cfg, recorder)

	if err := os.MkdirAll(filepath.Dir(cfg.Views.Path), 0750); err != nil {
		return fmt.Errorf("create views directory: %w", err)
	}
	store, err := views.NewSQLiteStore(cfg.Views.Path)
	if err != nil {
		return fmt.Errorf("open view store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			slog.Error("Error closing view store", "error", err)
		}
	}()

	if s.Watch {
		cw, err := watcher.New(cfg.Content.Dir, cfg.LocaleCodes(), repo)
		if err != nil {
			return fmt.Errorf("start content watcher: %w", err)
		}
		defer func() { _ = cw.Close() }()
		cw.Start(ctx)
	}

	srv := httpserver.New(cfg, httpserver.Options{
		Repository: repo,
		Feed:       renderer,
		Views:      store,
		Recorder:   recorder,
		Registry:   registry,
		Logger:     slog.Default(),
	})

	slog.Info("Starting blogd", "addr", cfg.Server.Addr, "content_dir", cfg.Content.Dir)
	if err := srv.Start(ctx); err != nil {
		return fmt.Errorf("http server: %w", err)
	}
	slog.Info("Server stopped")
	return nil
}
