package handlers

import (
	"net/http"
	"strconv"

	"github.com/hhpeter/blogd/internal/config"
	"github.com/hhpeter/blogd/internal/content"
	berrors "github.com/hhpeter/blogd/internal/errors"
	"github.com/hhpeter/blogd/internal/pagination"
	"github.com/hhpeter/blogd/internal/server/responses"
)

// defaultPageSize matches the blog page's posts-per-page.
const defaultPageSize = 6

// PostHandlers serves the post listing, detail, and related endpoints.
type PostHandlers struct {
	repo    *content.Repository
	cfg     *config.Config
	adapter *berrors.HTTPErrorAdapter
}

// NewPostHandlers constructs PostHandlers.
func NewPostHandlers(repo *content.Repository, cfg *config.Config, adapter *berrors.HTTPErrorAdapter) *PostHandlers {
	return &PostHandlers{repo: repo, cfg: cfg, adapter: adapter}
}

// List handles GET /api/posts. With paginated=true it returns a
// PaginatedPostsResponse, otherwise the full summary list.
func (h *PostHandlers) List(w http.ResponseWriter, r *http.Request) {
	locale := h.locale(r)

	summaries, err := h.repo.ListSummaries(r.Context(), locale)
	if err != nil {
		h.adapter.WriteErrorResponse(w, r, err)
		return
	}

	if r.URL.Query().Get("paginated") != "true" {
		_ = writeJSON(w, http.StatusOK, summaries)
		return
	}

	page, err := queryInt(r, "page", 1)
	if err != nil {
		h.adapter.WriteErrorResponse(w, r, err)
		return
	}
	limit, err := queryInt(r, "limit", defaultPageSize)
	if err != nil {
		h.adapter.WriteErrorResponse(w, r, err)
		return
	}

	result, err := pagination.Paginate(summaries, page, limit)
	if err != nil {
		h.adapter.WriteErrorResponse(w, r, err)
		return
	}

	_ = writeJSON(w, http.StatusOK, responses.PaginatedPostsResponse{
		Posts:       result.Items,
		Total:       result.Total,
		Page:        result.PageNumber,
		Limit:       result.PageSize,
		TotalPages:  result.TotalPages,
		HasNextPage: result.HasNextPage,
		HasPrevPage: result.HasPrevPage,
	})
}

// Get handles GET /api/posts/{slug} and returns the rendered document.
func (h *PostHandlers) Get(w http.ResponseWriter, r *http.Request) {
	locale := h.locale(r)
	slug := r.PathValue("slug")

	doc, err := h.repo.GetBySlug(r.Context(), slug, locale)
	if err != nil {
		h.adapter.WriteErrorResponse(w, r, err)
		return
	}

	_ = writeJSON(w, http.StatusOK, responses.PostResponse{Summary: doc.Summary, HTML: doc.HTML})
}

// Related handles GET /api/posts/{slug}/related.
func (h *PostHandlers) Related(w http.ResponseWriter, r *http.Request) {
	locale := h.locale(r)
	slug := r.PathValue("slug")

	limit, err := queryInt(r, "limit", content.DefaultRelatedLimit)
	if err != nil {
		h.adapter.WriteErrorResponse(w, r, err)
		return
	}

	summaries, err := h.repo.ListSummaries(r.Context(), locale)
	if err != nil {
		h.adapter.WriteErrorResponse(w, r, err)
		return
	}

	var target *content.Summary
	for i := range summaries {
		if summaries[i].Slug == slug {
			target = &summaries[i]
			break
		}
	}
	if target == nil {
		h.adapter.WriteErrorResponse(w, r, berrors.New(berrors.CategoryNotFound, berrors.SeverityWarning, "post not found").
			WithContext("slug", slug).
			WithContext("locale", locale))
		return
	}

	related := content.Related(*target, summaries, limit)
	if related == nil {
		related = []content.Summary{}
	}
	_ = writeJSON(w, http.StatusOK, related)
}

func (h *PostHandlers) locale(r *http.Request) string {
	locale := r.URL.Query().Get("locale")
	if locale == "" {
		locale = h.cfg.Content.DefaultLocale
	}
	return locale
}

// queryInt parses an integer query parameter, falling back to def when absent.
// A present but non-numeric value is an invalid_param error, not a fallback.
func queryInt(r *http.Request, key string, def int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, berrors.New(berrors.CategoryInvalidParam, berrors.SeverityError, "Invalid pagination parameters").
			WithContext(key, raw)
	}
	return n, nil
}
