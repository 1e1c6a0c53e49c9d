// Package watcher invalidates the content repository cache when post files
// change on disk.
package watcher

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/hhpeter/blogd/internal/logfields"
)

// Invalidator is the slice of the content repository the watcher drives.
type Invalidator interface {
	Invalidate()
}

// ContentWatcher monitors the content tree and drops memoized summaries on change.
//
// Without the watcher the cache is never invalidated (content is assumed
// immutable per process); with it, edits show up on the next request.
type ContentWatcher struct {
	contentDir   string
	repo         Invalidator
	watcher      *fsnotify.Watcher
	debounceTime time.Duration
}

// New creates a watcher over contentDir and its locale subdirectories.
func New(contentDir string, locales []string, repo Invalidator) (*ContentWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	absDir, err := filepath.Abs(contentDir)
	if err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("failed to resolve content path: %w", err)
	}

	if err := w.Add(absDir); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("failed to watch content directory %s: %w", absDir, err)
	}
	for _, locale := range locales {
		dir := filepath.Join(absDir, locale)
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, fmt.Errorf("failed to watch locale directory %s: %w", dir, err)
		}
	}

	return &ContentWatcher{
		contentDir:   absDir,
		repo:         repo,
		watcher:      w,
		debounceTime: 500 * time.Millisecond, // Debounce rapid editor save sequences
	}, nil
}

// Start monitors events until ctx is canceled.
func (cw *ContentWatcher) Start(ctx context.Context) {
	slog.Info("Starting content watcher", logfields.Path(cw.contentDir))
	go cw.watchLoop(ctx)
}

// Close stops the underlying file system watcher.
func (cw *ContentWatcher) Close() error {
	return cw.watcher.Close()
}

func (cw *ContentWatcher) watchLoop(ctx context.Context) {
	var timer *time.Timer
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-cw.watcher.Events:
			if !ok {
				return
			}
			if !isPostEvent(event) {
				continue
			}
			// Coalesce bursts of events into one invalidation.
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(cw.debounceTime, func() {
				slog.Info("Content changed, invalidating summary cache", logfields.File(filepath.Base(event.Name)))
				cw.repo.Invalidate()
			})
		case err, ok := <-cw.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("Content watcher error", logfields.Error(err))
		}
	}
}

func isPostEvent(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	ext := strings.ToLower(filepath.Ext(event.Name))
	return ext == ".md" || ext == ".mdx"
}
