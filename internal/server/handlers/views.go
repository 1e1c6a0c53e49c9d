package handlers

import (
	"net/http"

	berrors "github.com/hhpeter/blogd/internal/errors"
	"github.com/hhpeter/blogd/internal/metrics"
	"github.com/hhpeter/blogd/internal/server/responses"
	"github.com/hhpeter/blogd/internal/views"
)

// ViewHandlers serves the per-post view counter endpoints.
type ViewHandlers struct {
	store    views.Store
	adapter  *berrors.HTTPErrorAdapter
	recorder metrics.Recorder
}

// NewViewHandlers constructs ViewHandlers. recorder may be nil.
func NewViewHandlers(store views.Store, adapter *berrors.HTTPErrorAdapter, recorder metrics.Recorder) *ViewHandlers {
	if recorder == nil {
		recorder = metrics.NoopRecorder{}
	}
	return &ViewHandlers{store: store, adapter: adapter, recorder: recorder}
}

// Get handles GET /api/posts/{slug}/views.
func (h *ViewHandlers) Get(w http.ResponseWriter, r *http.Request) {
	slug, err := h.slug(r)
	if err != nil {
		h.adapter.WriteErrorResponse(w, r, err)
		return
	}

	count, err := h.store.Get(r.Context(), slug)
	if err != nil {
		h.adapter.WriteErrorResponse(w, r, berrors.Wrap(err, berrors.CategoryStorage, berrors.SeverityError, "reading view count"))
		return
	}
	_ = writeJSON(w, http.StatusOK, responses.ViewsResponse{Views: count})
}

// Increment handles POST /api/posts/{slug}/views.
func (h *ViewHandlers) Increment(w http.ResponseWriter, r *http.Request) {
	slug, err := h.slug(r)
	if err != nil {
		h.adapter.WriteErrorResponse(w, r, err)
		return
	}

	count, err := h.store.Increment(r.Context(), slug)
	if err != nil {
		h.adapter.WriteErrorResponse(w, r, berrors.Wrap(err, berrors.CategoryStorage, berrors.SeverityError, "incrementing view count"))
		return
	}
	h.recorder.IncViewIncrement()
	_ = writeJSON(w, http.StatusOK, responses.ViewsResponse{Views: count})
}

func (h *ViewHandlers) slug(r *http.Request) (string, error) {
	slug := r.PathValue("slug")
	if slug == "" {
		return "", berrors.New(berrors.CategoryInvalidParam, berrors.SeverityError, "Slug parameter required")
	}
	return slug, nil
}
