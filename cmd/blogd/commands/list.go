package commands

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/hhpeter/blogd/internal/metrics"
)

// ListCmd implements the 'list' command: print post summaries for a locale.
type ListCmd struct {
	Locale string `short:"l" help:"Locale to list (defaults to the configured default locale)"`
}

func (l *ListCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	locale := l.Locale
	if locale == "" {
		locale = cfg.Content.DefaultLocale
	}

	repo := newRepository(cfg, metrics.NoopRecorder{})
	summaries, err := repo.ListSummaries(context.Background(), locale)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tSLUG\tTITLE\tMIN\tTAGS")
	for _, s := range summaries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n", s.RawDate, s.Slug, s.Title, s.ReadingTime, strings.Join(s.Tags, ","))
	}
	return w.Flush()
}
