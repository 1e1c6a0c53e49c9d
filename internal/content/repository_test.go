package content

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	berrors "github.com/hhpeter/blogd/internal/errors"
	"github.com/hhpeter/blogd/internal/markdown"
)

func writePost(t *testing.T, root, locale, slug, content string) {
	t.Helper()
	dir := filepath.Join(root, locale)
	require.NoError(t, os.MkdirAll(dir, 0750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, slug+".md"), []byte(content), 0644))
}

func postFile(title, date string, tags ...string) string {
	fm := fmt.Sprintf("---\ntitle: %q\ndate: %q\n", title, date)
	if len(tags) > 0 {
		fm += "tags:\n"
		for _, tag := range tags {
			fm += fmt.Sprintf("  - %q\n", tag)
		}
	}
	return fm + "---\n# " + title + "\n\nSome body text.\n"
}

func newTestRepository(t *testing.T, root string) *Repository {
	t.Helper()
	return NewRepository(root, []string{"en", "hu"}, markdown.NewRenderer(), nil)
}

func TestListSummaries_SortedByDateDescending(t *testing.T) {
	root := t.TempDir()
	writePost(t, root, "en", "oldest", postFile("Oldest", "2023-01-01"))
	writePost(t, root, "en", "newest", postFile("Newest", "2024-06-01"))
	writePost(t, root, "en", "middle", postFile("Middle", "2024-01-01"))

	repo := newTestRepository(t, root)
	summaries, err := repo.ListSummaries(context.Background(), "en")
	require.NoError(t, err)
	require.Len(t, summaries, 3)
	require.Equal(t, "newest", summaries[0].Slug)
	require.Equal(t, "middle", summaries[1].Slug)
	require.Equal(t, "oldest", summaries[2].Slug)
}

func TestListSummaries_EqualDates_KeepFilenameOrder(t *testing.T) {
	root := t.TempDir()
	writePost(t, root, "en", "alpha", postFile("Alpha", "2024-01-01"))
	writePost(t, root, "en", "beta", postFile("Beta", "2024-01-01"))

	repo := newTestRepository(t, root)
	summaries, err := repo.ListSummaries(context.Background(), "en")
	require.NoError(t, err)
	require.Equal(t, "alpha", summaries[0].Slug)
	require.Equal(t, "beta", summaries[1].Slug)
}

func TestListSummaries_DerivesReadingTimeAndFrontmatter(t *testing.T) {
	root := t.TempDir()
	writePost(t, root, "en", "post", postFile("A Post", "2024-01-01", "Tech", "Life"))

	repo := newTestRepository(t, root)
	summaries, err := repo.ListSummaries(context.Background(), "en")
	require.NoError(t, err)
	require.Len(t, summaries, 1)

	s := summaries[0]
	require.Equal(t, "A Post", s.Title)
	require.Equal(t, "2024-01-01", s.RawDate)
	require.Equal(t, []string{"Tech", "Life"}, s.Tags)
	require.Equal(t, 1, s.ReadingTime)
}

func TestListSummaries_MalformedPost_AbortsWholeListing(t *testing.T) {
	root := t.TempDir()
	writePost(t, root, "en", "good", postFile("Good", "2024-01-01"))
	writePost(t, root, "en", "bad", "---\ndate: \"2024-01-01\"\n---\nNo title here.\n")

	repo := newTestRepository(t, root)
	_, err := repo.ListSummaries(context.Background(), "en")
	require.Error(t, err)
	require.True(t, berrors.IsCategory(err, berrors.CategoryValidation))
}

func TestListSummaries_UnsupportedLocale_Fails(t *testing.T) {
	repo := newTestRepository(t, t.TempDir())
	_, err := repo.ListSummaries(context.Background(), "de")
	require.Error(t, err)
	require.True(t, berrors.IsCategory(err, berrors.CategoryInvalidParam))
}

func TestListSummaries_MissingLocaleDirectory_FailsAsFilesystem(t *testing.T) {
	repo := newTestRepository(t, t.TempDir())
	_, err := repo.ListSummaries(context.Background(), "en")
	require.Error(t, err)
	require.True(t, berrors.IsCategory(err, berrors.CategoryFileSystem))
}

func TestListSummaries_IgnoresNonMarkdownFiles(t *testing.T) {
	root := t.TempDir()
	writePost(t, root, "en", "post", postFile("Post", "2024-01-01"))
	require.NoError(t, os.WriteFile(filepath.Join(root, "en", "notes.txt"), []byte("ignore me"), 0644))

	repo := newTestRepository(t, root)
	summaries, err := repo.ListSummaries(context.Background(), "en")
	require.NoError(t, err)
	require.Len(t, summaries, 1)
}

func TestListSummaries_MemoizesPerLocale(t *testing.T) {
	root := t.TempDir()
	writePost(t, root, "en", "post", postFile("Post", "2024-01-01"))

	repo := newTestRepository(t, root)
	first, err := repo.ListSummaries(context.Background(), "en")
	require.NoError(t, err)

	// A new file is invisible until invalidation.
	writePost(t, root, "en", "later", postFile("Later", "2024-02-01"))
	second, err := repo.ListSummaries(context.Background(), "en")
	require.NoError(t, err)
	require.Len(t, second, len(first))

	repo.Invalidate()
	third, err := repo.ListSummaries(context.Background(), "en")
	require.NoError(t, err)
	require.Len(t, third, 2)
}

func TestListSlugs_ProjectsSummaries(t *testing.T) {
	root := t.TempDir()
	writePost(t, root, "en", "first", postFile("First", "2024-02-01"))
	writePost(t, root, "en", "second", postFile("Second", "2024-01-01"))

	repo := newTestRepository(t, root)
	slugs, err := repo.ListSlugs(context.Background(), "en")
	require.NoError(t, err)
	require.Equal(t, []string{"first", "second"}, slugs)
}

func TestGetBySlug_RendersBodyToHTML(t *testing.T) {
	root := t.TempDir()
	writePost(t, root, "en", "post", postFile("A Post", "2024-01-01"))

	repo := newTestRepository(t, root)
	doc, err := repo.GetBySlug(context.Background(), "post", "en")
	require.NoError(t, err)
	require.Equal(t, "A Post", doc.Title)
	require.Contains(t, doc.HTML, "<h1")
	require.Contains(t, doc.HTML, "A Post")
	require.Contains(t, doc.Body, "# A Post")
}

func TestGetBySlug_MissingFile_IsNotFound(t *testing.T) {
	root := t.TempDir()
	writePost(t, root, "en", "exists", postFile("Exists", "2024-01-01"))

	repo := newTestRepository(t, root)
	_, err := repo.GetBySlug(context.Background(), "missing", "en")
	require.Error(t, err)
	require.True(t, berrors.IsNotFound(err))
}

func TestGetBySlug_MalformedFrontmatter_FailsAsValidation(t *testing.T) {
	root := t.TempDir()
	writePost(t, root, "en", "bad", "---\ntitle: \"Bad\"\n---\nNo date.\n")

	repo := newTestRepository(t, root)
	_, err := repo.GetBySlug(context.Background(), "bad", "en")
	require.Error(t, err)
	require.True(t, berrors.IsCategory(err, berrors.CategoryValidation))
}

func TestGetBySlug_TraversalSlug_Rejected(t *testing.T) {
	repo := newTestRepository(t, t.TempDir())
	_, err := repo.GetBySlug(context.Background(), "../secrets", "en")
	require.Error(t, err)
	require.True(t, berrors.IsCategory(err, berrors.CategoryInvalidParam))
}

func TestGetBySlug_LocaleIsolation(t *testing.T) {
	root := t.TempDir()
	writePost(t, root, "hu", "szia", postFile("Szia", "2024-01-01"))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "en"), 0750))

	repo := newTestRepository(t, root)
	_, err := repo.GetBySlug(context.Background(), "szia", "en")
	require.True(t, berrors.IsNotFound(err))

	doc, err := repo.GetBySlug(context.Background(), "szia", "hu")
	require.NoError(t, err)
	require.Equal(t, "Szia", doc.Title)
}
