package content

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	berrors "github.com/hhpeter/blogd/internal/errors"
	"github.com/hhpeter/blogd/internal/frontmatter"
	"github.com/hhpeter/blogd/internal/markdown"
	"github.com/hhpeter/blogd/internal/metrics"
)

// defaultScanConcurrency bounds parallel file reads during a locale scan.
const defaultScanConcurrency = 8

// Repository lists and loads posts for the configured locales.
//
// Summaries are memoized per locale for the lifetime of the process; content
// is assumed immutable between deploys. Invalidate drops the memo (wired to
// the content watcher when enabled). A race where two requests both miss and
// both scan is accepted: entries are written at most once per key and both
// computations yield the same result.
type Repository struct {
	root        string
	locales     map[string]struct{}
	renderer    *markdown.Renderer
	recorder    metrics.Recorder
	concurrency int

	mu    sync.Mutex
	cache map[string][]Summary
}

// NewRepository constructs a Repository over root, restricted to the given
// locale codes.
func NewRepository(root string, locales []string, renderer *markdown.Renderer, recorder metrics.Recorder) *Repository {
	set := make(map[string]struct{}, len(locales))
	for _, l := range locales {
		set[l] = struct{}{}
	}
	if recorder == nil {
		recorder = metrics.NoopRecorder{}
	}
	return &Repository{
		root:        root,
		locales:     set,
		renderer:    renderer,
		recorder:    recorder,
		concurrency: defaultScanConcurrency,
		cache:       make(map[string][]Summary),
	}
}

// ListSummaries returns all posts for locale, newest first. Ties on equal
// dates keep directory enumeration order (os.ReadDir sorts by filename); that
// ordering is documented, not contractual.
//
// Any unreadable or malformed post aborts the whole listing. Skipping bad
// files would silently shrink the blog, so the policy is fail-fast.
func (r *Repository) ListSummaries(ctx context.Context, locale string) ([]Summary, error) {
	if err := r.checkLocale(locale); err != nil {
		return nil, err
	}

	r.mu.Lock()
	cached, ok := r.cache[locale]
	r.mu.Unlock()
	r.recorder.IncCacheResult(ok)
	if ok {
		return cached, nil
	}

	start := time.Now()
	summaries, err := r.scanLocale(ctx, locale)
	if err != nil {
		return nil, err
	}
	r.recorder.ObserveScanDuration(locale, time.Since(start))

	r.mu.Lock()
	if existing, ok := r.cache[locale]; ok {
		// Lost the race against a concurrent scan; keep the stabilized entry.
		summaries = existing
	} else {
		r.cache[locale] = summaries
	}
	r.mu.Unlock()

	return summaries, nil
}

// ListSlugs returns the slugs of all posts for locale, newest first.
func (r *Repository) ListSlugs(ctx context.Context, locale string) ([]string, error) {
	summaries, err := r.ListSummaries(ctx, locale)
	if err != nil {
		return nil, err
	}
	slugs := make([]string, len(summaries))
	for i, s := range summaries {
		slugs[i] = s.Slug
	}
	return slugs, nil
}

// GetBySlug loads one post and renders its body to HTML.
//
// A missing file is a not_found error (test with errors.IsNotFound); any
// other I/O or validation failure propagates with its own category.
func (r *Repository) GetBySlug(ctx context.Context, slug, locale string) (*Document, error) {
	if err := r.checkLocale(locale); err != nil {
		return nil, err
	}
	if err := checkSlug(slug); err != nil {
		return nil, err
	}

	path := filepath.Join(r.root, locale, slug+".md")
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		path = filepath.Join(r.root, locale, slug+".mdx")
		data, err = os.ReadFile(path)
	}
	if os.IsNotExist(err) {
		return nil, berrors.New(berrors.CategoryNotFound, berrors.SeverityWarning, fmt.Sprintf("post %q not found", slug)).
			WithContext("slug", slug).
			WithContext("locale", locale)
	}
	if err != nil {
		return nil, berrors.Wrap(err, berrors.CategoryFileSystem, berrors.SeverityError, "reading post file").
			WithContext("path", path)
	}

	summary, body, err := parsePost(slug, data)
	if err != nil {
		return nil, err
	}

	html, err := r.renderer.Render([]byte(body))
	if err != nil {
		return nil, berrors.Wrap(err, berrors.CategoryInternal, berrors.SeverityError, "rendering post body").
			WithContext("slug", slug)
	}

	return &Document{Summary: *summary, Body: body, HTML: string(html)}, nil
}

// Invalidate drops all memoized summaries. The next listing rescans disk.
func (r *Repository) Invalidate() {
	r.mu.Lock()
	r.cache = make(map[string][]Summary)
	r.mu.Unlock()
}

func (r *Repository) checkLocale(locale string) error {
	if _, ok := r.locales[locale]; !ok {
		return berrors.New(berrors.CategoryInvalidParam, berrors.SeverityError, fmt.Sprintf("unsupported locale %q", locale)).
			WithContext("locale", locale)
	}
	return nil
}

func (r *Repository) scanLocale(ctx context.Context, locale string) ([]Summary, error) {
	dir := filepath.Join(r.root, locale)
	entries, err := os.ReadDir(dir)
	if err != nil {
		// A valid locale without a readable directory is a deployment problem,
		// not a per-call condition.
		return nil, berrors.Wrap(err, berrors.CategoryFileSystem, berrors.SeverityFatal, "reading content directory").
			WithContext("dir", dir).
			WithContext("locale", locale)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasSuffix(name, ".md") || strings.HasSuffix(name, ".mdx") {
			files = append(files, name)
		}
	}

	results := runOrdered(ctx, files, r.concurrency, func(name string) (*Summary, error) {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, berrors.Wrap(err, berrors.CategoryFileSystem, berrors.SeverityError, "reading post file").
				WithContext("file", name)
		}
		slug := strings.TrimSuffix(strings.TrimSuffix(name, ".mdx"), ".md")
		summary, _, err := parsePost(slug, data)
		return summary, err
	})

	summaries := make([]Summary, 0, len(results))
	for _, res := range results {
		if res.Err != nil {
			return nil, res.Err
		}
		summaries = append(summaries, *res.Value)
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].Date.After(summaries[j].Date)
	})
	return summaries, nil
}

// parsePost splits, validates, and derives fields for one post file.
func parsePost(slug string, data []byte) (*Summary, string, error) {
	raw, body, _, err := frontmatter.Split(data)
	if err != nil {
		return nil, "", berrors.Wrap(err, berrors.CategoryValidation, berrors.SeverityError, "splitting frontmatter").
			WithContext("slug", slug)
	}
	fields, err := frontmatter.ParseYAML(raw)
	if err != nil {
		return nil, "", berrors.Wrap(err, berrors.CategoryValidation, berrors.SeverityError, "parsing frontmatter").
			WithContext("slug", slug)
	}
	fm, err := frontmatter.Validate(fields)
	if err != nil {
		return nil, "", berrors.Wrap(err, berrors.CategoryValidation, berrors.SeverityError, "validating frontmatter").
			WithContext("slug", slug)
	}

	return &Summary{
		Slug:        slug,
		Title:       fm.Title,
		Date:        fm.Date,
		RawDate:     fm.RawDate,
		Excerpt:     fm.Excerpt,
		Tags:        fm.Tags,
		ReadingTime: ReadingTime(string(body)),
	}, string(body), nil
}

func checkSlug(slug string) error {
	if slug == "" || strings.ContainsAny(slug, "/\\") || strings.Contains(slug, "..") {
		return berrors.New(berrors.CategoryInvalidParam, berrors.SeverityError, fmt.Sprintf("invalid slug %q", slug)).
			WithContext("slug", slug)
	}
	return nil
}

type orderedResult[T any] struct {
	Value T
	Err   error
}

// runOrdered fans fn out over items with bounded concurrency, preserving
// input order in the result slice.
func runOrdered[T any, R any](ctx context.Context, items []T, concurrency int, fn func(T) (R, error)) []orderedResult[R] {
	if len(items) == 0 {
		return nil
	}
	if concurrency < 1 {
		concurrency = 1
	}
	if concurrency > len(items) {
		concurrency = len(items)
	}

	sem := make(chan struct{}, concurrency)
	results := make([]orderedResult[R], len(items))

	var wg sync.WaitGroup
	for i, item := range items {
		wg.Add(1)
		go func(i int, item T) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			if err := ctx.Err(); err != nil {
				results[i] = orderedResult[R]{Err: err}
				return
			}
			v, err := fn(item)
			results[i] = orderedResult[R]{Value: v, Err: err}
		}(i, item)
	}
	wg.Wait()
	return results
}
