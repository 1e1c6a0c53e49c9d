package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/hhpeter/blogd/internal/feed"
	"github.com/hhpeter/blogd/internal/metrics"
)

// FeedCmd implements the 'feed' command: render a locale's RSS to stdout.
type FeedCmd struct {
	Locale string `short:"l" help:"Locale to render (defaults to the configured default locale)"`
}

func (f *FeedCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	locale := f.Locale
	if locale == "" {
		locale = cfg.Content.DefaultLocale
	}

	repo := newRepository(cfg, metrics.NoopRecorder{})
	renderer := feed.NewRenderer(repo, cfg, metrics.NoopRecorder{})

	doc, err := renderer.Render(context.Background(), locale)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(append(doc, '\n'))
	return err
}
