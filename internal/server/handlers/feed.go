package handlers

import (
	"net/http"

	"github.com/hhpeter/blogd/internal/config"
	berrors "github.com/hhpeter/blogd/internal/errors"
	"github.com/hhpeter/blogd/internal/feed"
)

// feedCacheControl advertises a shared max-age with stale-while-revalidate
// so CDNs keep serving the feed while it revalidates in the background.
const feedCacheControl = "public, s-maxage=3600, stale-while-revalidate=86400"

// FeedHandlers serves the RSS feed endpoint.
type FeedHandlers struct {
	renderer *feed.Renderer
	cfg      *config.Config
	adapter  *berrors.HTTPErrorAdapter
}

// NewFeedHandlers constructs FeedHandlers.
func NewFeedHandlers(renderer *feed.Renderer, cfg *config.Config, adapter *berrors.HTTPErrorAdapter) *FeedHandlers {
	return &FeedHandlers{renderer: renderer, cfg: cfg, adapter: adapter}
}

// Get handles GET /api/feed.
func (h *FeedHandlers) Get(w http.ResponseWriter, r *http.Request) {
	locale := r.URL.Query().Get("locale")
	if locale == "" {
		locale = h.cfg.Content.DefaultLocale
	}

	doc, err := h.renderer.Render(r.Context(), locale)
	if err != nil {
		h.adapter.WriteErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Content-Type", feed.ContentType)
	w.Header().Set("Cache-Control", feedCacheControl)
	_, _ = w.Write(doc)
}
