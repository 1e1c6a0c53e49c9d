// Package feed renders the RSS 2.0 syndication document for a locale.
package feed

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"time"

	"github.com/hhpeter/blogd/internal/config"
	"github.com/hhpeter/blogd/internal/content"
	berrors "github.com/hhpeter/blogd/internal/errors"
	"github.com/hhpeter/blogd/internal/metrics"
)

// ContentType is the media type feeds are served with.
const ContentType = "application/rss+xml; charset=utf-8"

// SummaryLister is the slice of the content repository the renderer needs.
type SummaryLister interface {
	ListSummaries(ctx context.Context, locale string) ([]content.Summary, error)
}

// Renderer builds RSS documents from the current post set.
//
// lastBuildDate is wall-clock time, so two renders of unchanged content
// differ byte-for-byte. The feed is never diffed against itself, so that is
// acceptable.
type Renderer struct {
	lister   SummaryLister
	cfg      *config.Config
	recorder metrics.Recorder
	now      func() time.Time
}

// NewRenderer constructs a Renderer. recorder may be nil.
func NewRenderer(lister SummaryLister, cfg *config.Config, recorder metrics.Recorder) *Renderer {
	if recorder == nil {
		recorder = metrics.NoopRecorder{}
	}
	return &Renderer{lister: lister, cfg: cfg, recorder: recorder, now: time.Now}
}

type rss struct {
	XMLName xml.Name `xml:"rss"`
	Version string   `xml:"version,attr"`
	AtomNS  string   `xml:"xmlns:atom,attr"`
	Channel channel  `xml:"channel"`
}

type channel struct {
	Title         string   `xml:"title"`
	Description   string   `xml:"description"`
	Link          string   `xml:"link"`
	AtomLink      atomLink `xml:"atom:link"`
	Language      string   `xml:"language"`
	LastBuildDate string   `xml:"lastBuildDate"`
	Generator     string   `xml:"generator"`
	Items         []item   `xml:"item"`
}

type atomLink struct {
	Href string `xml:"href,attr"`
	Rel  string `xml:"rel,attr"`
	Type string `xml:"type,attr"`
}

type item struct {
	Title       string   `xml:"title"`
	Link        string   `xml:"link"`
	GUID        string   `xml:"guid"`
	PubDate     string   `xml:"pubDate"`
	Description string   `xml:"description,omitempty"`
	Categories  []string `xml:"category"`
	Author      string   `xml:"author,omitempty"`
}

// Render produces the RSS document for locale from the full (unpaginated)
// post listing. Text content is escaped by the XML marshaller.
func (r *Renderer) Render(ctx context.Context, locale string) ([]byte, error) {
	loc, ok := r.cfg.LocaleByCode(locale)
	if !ok {
		return nil, berrors.New(berrors.CategoryInvalidParam, berrors.SeverityError, fmt.Sprintf("unsupported locale %q", locale)).
			WithContext("locale", locale)
	}

	start := r.now()
	summaries, err := r.lister.ListSummaries(ctx, locale)
	if err != nil {
		return nil, err
	}

	baseURL := r.cfg.Site.BaseURL
	author := ""
	if r.cfg.Site.AuthorEmail != "" {
		author = r.cfg.Site.AuthorEmail
		if r.cfg.Site.AuthorName != "" {
			author = fmt.Sprintf("%s (%s)", r.cfg.Site.AuthorEmail, r.cfg.Site.AuthorName)
		}
	}

	items := make([]item, 0, len(summaries))
	for _, s := range summaries {
		link := fmt.Sprintf("%s/%s/blog/%s", baseURL, locale, s.Slug)
		items = append(items, item{
			Title:       s.Title,
			Link:        link,
			GUID:        link,
			PubDate:     s.Date.UTC().Format(http.TimeFormat),
			Description: s.Excerpt,
			Categories:  s.Tags,
			Author:      author,
		})
	}

	doc := rss{
		Version: "2.0",
		AtomNS:  "http://www.w3.org/2005/Atom",
		Channel: channel{
			Title:       loc.FeedTitle,
			Description: loc.FeedDescription,
			Link:        fmt.Sprintf("%s/%s", baseURL, locale),
			AtomLink: atomLink{
				Href: fmt.Sprintf("%s/%s/feed.xml", baseURL, locale),
				Rel:  "self",
				Type: "application/rss+xml",
			},
			Language:      loc.Language,
			LastBuildDate: r.now().UTC().Format(http.TimeFormat),
			Generator:     "blogd",
			Items:         items,
		},
	}

	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, berrors.Wrap(err, berrors.CategoryInternal, berrors.SeverityError, "marshaling feed").
			WithContext("locale", locale)
	}
	r.recorder.ObserveFeedRenderDuration(locale, r.now().Sub(start))

	return append([]byte(xml.Header), out...), nil
}
