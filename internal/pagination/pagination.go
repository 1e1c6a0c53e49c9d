// Package pagination slices an ordered collection into bounds-checked pages.
package pagination

import (
	berrors "github.com/hhpeter/blogd/internal/errors"
)

// MaxPageSize bounds the page size accepted from callers.
const MaxPageSize = 50

// Page is a view over one page of an ordered sequence.
type Page[T any] struct {
	Items       []T
	Total       int
	PageNumber  int
	PageSize    int
	TotalPages  int
	HasNextPage bool
	HasPrevPage bool
}

// Paginate slices items into the requested page.
//
// page must be >= 1 and pageSize within [1, MaxPageSize]; violations fail
// with an invalid_param error the HTTP layer surfaces as 400. A page beyond
// the last one yields an empty slice, not an error.
func Paginate[T any](items []T, page, pageSize int) (Page[T], error) {
	if page < 1 || pageSize < 1 || pageSize > MaxPageSize {
		return Page[T]{}, berrors.New(berrors.CategoryInvalidParam, berrors.SeverityError, "Invalid pagination parameters").
			WithContext("page", page).
			WithContext("limit", pageSize)
	}

	total := len(items)
	totalPages := 0
	if total > 0 {
		totalPages = (total + pageSize - 1) / pageSize
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Page[T]{
		Items:       items[start:end],
		Total:       total,
		PageNumber:  page,
		PageSize:    pageSize,
		TotalPages:  totalPages,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}, nil
}
