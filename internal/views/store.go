// Package views persists per-post view counts.
package views

import "context"

// Store maps post slugs to non-negative view counts.
//
// Counts are keyed by slug alone; posts that exist in several locales share
// one counter. Implementations must serialize increments so concurrent
// requests never lose updates.
type Store interface {
	// Get returns the count for slug, zero when the slug has never been viewed.
	Get(ctx context.Context, slug string) (int64, error)

	// Increment adds one view for slug and returns the new count.
	Increment(ctx context.Context, slug string) (int64, error)

	// Close releases any resources held by the store.
	Close() error
}
