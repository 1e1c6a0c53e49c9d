package frontmatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestValidate_AllFields_ReturnsTypedRecord(t *testing.T) {
	fields := map[string]any{
		"title":   "Hello World",
		"date":    "2024-01-15",
		"excerpt": "A short summary.",
		"tags":    []any{"Tech", "Life"},
	}

	fm, err := Validate(fields)
	require.NoError(t, err)
	require.Equal(t, "Hello World", fm.Title)
	require.Equal(t, "2024-01-15", fm.RawDate)
	require.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), fm.Date)
	require.Equal(t, "A short summary.", fm.Excerpt)
	require.Equal(t, []string{"Tech", "Life"}, fm.Tags)
}

func TestValidate_MinimalFields_OptionalFieldsStayZero(t *testing.T) {
	fm, err := Validate(map[string]any{"title": "Hello", "date": "2024-01-01"})
	require.NoError(t, err)
	require.Empty(t, fm.Excerpt)
	require.Nil(t, fm.Tags)
}

func TestValidate_MissingTitle_Fails(t *testing.T) {
	_, err := Validate(map[string]any{"date": "2024-01-01"})
	require.Error(t, err)

	var missing *MissingFieldError
	require.ErrorAs(t, err, &missing)
	require.Equal(t, "title", missing.Field)
}

func TestValidate_EmptyTitle_Fails(t *testing.T) {
	_, err := Validate(map[string]any{"title": "", "date": "2024-01-01"})

	var missing *MissingFieldError
	require.ErrorAs(t, err, &missing)
	require.Equal(t, "title", missing.Field)
}

func TestValidate_NonStringTitle_Fails(t *testing.T) {
	_, err := Validate(map[string]any{"title": 42, "date": "2024-01-01"})

	var missing *MissingFieldError
	require.ErrorAs(t, err, &missing)
	require.Equal(t, "title", missing.Field)
}

func TestValidate_MissingDate_FailsWithTitleInMessage(t *testing.T) {
	_, err := Validate(map[string]any{"title": "Hello"})

	var missing *MissingFieldError
	require.ErrorAs(t, err, &missing)
	require.Equal(t, "date", missing.Field)
	require.Equal(t, "Hello", missing.Title)
	require.Contains(t, err.Error(), "Hello")
}

func TestValidate_EmptyDate_Fails(t *testing.T) {
	_, err := Validate(map[string]any{"title": "Hello", "date": ""})

	var missing *MissingFieldError
	require.ErrorAs(t, err, &missing)
	require.Equal(t, "date", missing.Field)
}

func TestValidate_UnparseableDate_FailsAsInvalid(t *testing.T) {
	_, err := Validate(map[string]any{"title": "Hello", "date": "not a date"})

	var invalid *InvalidFieldError
	require.ErrorAs(t, err, &invalid)
	require.Equal(t, "date", invalid.Field)
}

func TestValidate_YAMLResolvedDate_Accepted(t *testing.T) {
	// Unquoted ISO dates arrive from yaml.v3 as time.Time, not string.
	when := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)

	fm, err := Validate(map[string]any{"title": "Hello", "date": when})
	require.NoError(t, err)
	require.Equal(t, when, fm.Date)
	require.Equal(t, "2024-03-02", fm.RawDate)
}

func TestValidate_RFC3339Date_Accepted(t *testing.T) {
	fm, err := Validate(map[string]any{"title": "Hello", "date": "2024-01-15T10:30:00Z"})
	require.NoError(t, err)
	require.Equal(t, time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC), fm.Date)
}

func TestValidate_NonStringExcerpt_Fails(t *testing.T) {
	_, err := Validate(map[string]any{"title": "Hello", "date": "2024-01-01", "excerpt": 7})

	var invalid *InvalidFieldError
	require.ErrorAs(t, err, &invalid)
	require.Equal(t, "excerpt", invalid.Field)
	require.Equal(t, "Hello", invalid.Title)
}

func TestValidate_NonSequenceTags_Fails(t *testing.T) {
	_, err := Validate(map[string]any{"title": "Hello", "date": "2024-01-01", "tags": "Tech"})

	var invalid *InvalidFieldError
	require.ErrorAs(t, err, &invalid)
	require.Equal(t, "tags", invalid.Field)
}

func TestValidate_NonStringTagElements_SilentlyDropped(t *testing.T) {
	// Tags are lenient where excerpt is strict; behavior carried over as-is.
	fm, err := Validate(map[string]any{
		"title": "Hello",
		"date":  "2024-01-01",
		"tags":  []any{"Tech", 42, nil, "Life"},
	})
	require.NoError(t, err)
	require.Equal(t, []string{"Tech", "Life"}, fm.Tags)
}
