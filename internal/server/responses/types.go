// Package responses defines API response types used by blogd HTTP handlers.
package responses

import (
	"time"

	"github.com/hhpeter/blogd/internal/content"
)

// PaginatedPostsResponse is the paginated post listing payload.
type PaginatedPostsResponse struct {
	Posts       []content.Summary `json:"posts"`
	Total       int               `json:"total"`
	Page        int               `json:"page"`
	Limit       int               `json:"limit"`
	TotalPages  int               `json:"totalPages"`
	HasNextPage bool              `json:"hasNextPage"`
	HasPrevPage bool              `json:"hasPrevPage"`
}

// PostResponse is the full post payload including the rendered body.
type PostResponse struct {
	content.Summary
	HTML string `json:"html"`
}

// ViewsResponse carries a post's view count.
type ViewsResponse struct {
	Views int64 `json:"views"`
}

// HealthResponse represents the health check API response.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
}
