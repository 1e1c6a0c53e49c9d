package frontmatter

import (
	"fmt"
	"time"
)

// Frontmatter is the validated metadata of a single post.
type Frontmatter struct {
	Title   string
	RawDate string
	Date    time.Time
	Excerpt string
	Tags    []string
}

// MissingFieldError reports a required frontmatter field that is absent or empty.
type MissingFieldError struct {
	Field string
	Title string // post title when known, for diagnostics
}

func (e *MissingFieldError) Error() string {
	if e.Title != "" {
		return fmt.Sprintf("missing required frontmatter field %q for post %q", e.Field, e.Title)
	}
	return fmt.Sprintf("missing required frontmatter field %q", e.Field)
}

// InvalidFieldError reports a frontmatter field with a value of the wrong shape.
type InvalidFieldError struct {
	Field string
	Title string
}

func (e *InvalidFieldError) Error() string {
	if e.Title != "" {
		return fmt.Sprintf("invalid frontmatter field %q for post %q", e.Field, e.Title)
	}
	return fmt.Sprintf("invalid frontmatter field %q", e.Field)
}

// dateLayouts are accepted post date formats, tried in order.
var dateLayouts = []string{"2006-01-02", time.RFC3339}

// Validate turns a raw frontmatter map into a typed Frontmatter record.
//
// title and date are mandatory; excerpt must be a string when present; tags
// must be a sequence when present, with non-string elements silently dropped.
// Tags stay lenient while excerpt stays strict so a stray tag entry never
// takes a whole post offline.
func Validate(fields map[string]any) (*Frontmatter, error) {
	title, ok := fields["title"].(string)
	if !ok || title == "" {
		return nil, &MissingFieldError{Field: "title"}
	}

	// yaml.v3 resolves unquoted ISO dates to time.Time when decoding into
	// interface{}, so the date field arrives either typed or as a string.
	var rawDate string
	var date time.Time
	switch v := fields["date"].(type) {
	case time.Time:
		date = v
		rawDate = v.Format("2006-01-02")
	case string:
		if v == "" {
			return nil, &MissingFieldError{Field: "date", Title: title}
		}
		parsed, err := parseDate(v)
		if err != nil {
			return nil, &InvalidFieldError{Field: "date", Title: title}
		}
		rawDate = v
		date = parsed
	default:
		return nil, &MissingFieldError{Field: "date", Title: title}
	}

	fm := &Frontmatter{Title: title, RawDate: rawDate, Date: date}

	if excerpt, present := fields["excerpt"]; present && excerpt != nil {
		s, ok := excerpt.(string)
		if !ok {
			return nil, &InvalidFieldError{Field: "excerpt", Title: title}
		}
		fm.Excerpt = s
	}

	if tags, present := fields["tags"]; present && tags != nil {
		seq, ok := tags.([]any)
		if !ok {
			return nil, &InvalidFieldError{Field: "tags", Title: title}
		}
		for _, elem := range seq {
			if s, ok := elem.(string); ok {
				fm.Tags = append(fm.Tags, s)
			}
		}
	}

	return fm, nil
}

func parseDate(raw string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
