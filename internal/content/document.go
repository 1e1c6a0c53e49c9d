// Package content discovers, validates, and serves locale-scoped blog posts
// from the content directory.
package content

import (
	"strings"
	"time"
)

// Summary is the listing view of a post: validated frontmatter plus fields
// derived at load time.
type Summary struct {
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Date        time.Time `json:"-"`
	RawDate     string    `json:"date"`
	Excerpt     string    `json:"excerpt,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	ReadingTime int       `json:"readingTime"`
}

// Document is a fully loaded post including its body.
type Document struct {
	Summary
	Body string `json:"-"`
	HTML string `json:"html"`
}

// wordsPerMinute is the assumed average reading speed.
const wordsPerMinute = 200

// ReadingTime estimates reading minutes for text: whitespace-delimited word
// count at 200 words per minute, rounded up, never below 1.
func ReadingTime(text string) int {
	words := len(strings.Fields(text))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		return 1
	}
	return minutes
}
